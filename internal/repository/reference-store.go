package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"art-valuation-service/internal/domain"
)

// Store is the Postgres-backed reference store. It satisfies
// domain.ReferenceStore; EnsureSchema and Seed are startup-only extras.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// EnsureSchema creates the lookup tables if they do not exist.
func (r *Store) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS artists (
			name TEXT PRIMARY KEY,
			frequency INTEGER NOT NULL,
			median_price DOUBLE PRECISION NOT NULL,
			price_std DOUBLE PRECISION NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS technique_artist_medians (
			technique TEXT NOT NULL,
			artist TEXT NOT NULL,
			median_price DOUBLE PRECISION NOT NULL,
			sample_count INTEGER NOT NULL,
			PRIMARY KEY (technique, artist)
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure reference schema: %w", err)
		}
	}
	return nil
}

// seedArtists makes the service usable out of the box; it is not a
// correctness-critical dataset.
var seedArtists = []domain.ArtistRecord{
	{Name: "pablo picasso", Frequency: 150, MedianPrice: 50000, PriceStd: 25000},
	{Name: "salvador dali", Frequency: 80, MedianPrice: 30000, PriceStd: 15000},
	{Name: "vincent van gogh", Frequency: 200, MedianPrice: 75000, PriceStd: 40000},
	{Name: "claude monet", Frequency: 120, MedianPrice: 40000, PriceStd: 20000},
	{Name: "andy warhol", Frequency: 100, MedianPrice: 35000, PriceStd: 18000},
}

var seedTechniqueArtists = []domain.TechniqueArtistRecord{
	{Technique: "oil on canvas", Artist: "pablo picasso", MedianPrice: 55000, SampleCount: 25},
	{Technique: "oil on canvas", Artist: "vincent van gogh", MedianPrice: 80000, SampleCount: 30},
	{Technique: "oil on canvas", Artist: "claude monet", MedianPrice: 45000, SampleCount: 20},
	{Technique: "lithograph", Artist: "andy warhol", MedianPrice: 25000, SampleCount: 15},
	{Technique: "etching", Artist: "salvador dali", MedianPrice: 20000, SampleCount: 10},
	{Technique: "watercolor", Artist: "pablo picasso", MedianPrice: 30000, SampleCount: 12},
	{Technique: "screenprint", Artist: "andy warhol", MedianPrice: 15000, SampleCount: 8},
}

// Seed inserts the well-known reference rows. ON CONFLICT DO NOTHING makes it
// idempotent, so concurrent startups cannot double-seed.
func (r *Store) Seed(ctx context.Context) error {
	for _, a := range seedArtists {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO artists (name, frequency, median_price, price_std)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (name) DO NOTHING`,
			a.Name, a.Frequency, a.MedianPrice, a.PriceStd,
		)
		if err != nil {
			return fmt.Errorf("seed artist %q: %w", a.Name, err)
		}
	}
	for _, t := range seedTechniqueArtists {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO technique_artist_medians (technique, artist, median_price, sample_count)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (technique, artist) DO NOTHING`,
			t.Technique, t.Artist, t.MedianPrice, t.SampleCount,
		)
		if err != nil {
			return fmt.Errorf("seed technique-artist %q/%q: %w", t.Technique, t.Artist, err)
		}
	}
	return nil
}

func (r *Store) GetArtist(ctx context.Context, name string) (domain.ArtistRecord, error) {
	key := domain.NormalizeName(name)
	record := domain.ArtistRecord{Name: key}

	err := r.pool.QueryRow(ctx,
		`SELECT frequency, median_price, price_std FROM artists WHERE name = $1`, key,
	).Scan(&record.Frequency, &record.MedianPrice, &record.PriceStd)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.DefaultArtistRecord(key), nil
	}
	if err != nil {
		return domain.ArtistRecord{}, fmt.Errorf("get artist: %w", err)
	}
	return record, nil
}

func (r *Store) GetTechniqueArtistMedian(ctx context.Context, technique, artist string) (domain.TechniqueArtistRecord, error) {
	techKey := domain.NormalizeName(technique)
	artistKey := domain.NormalizeName(artist)
	record := domain.TechniqueArtistRecord{Technique: techKey, Artist: artistKey}

	err := r.pool.QueryRow(ctx,
		`SELECT median_price, sample_count FROM technique_artist_medians
		 WHERE technique = $1 AND artist = $2`, techKey, artistKey,
	).Scan(&record.MedianPrice, &record.SampleCount)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.DefaultTechniqueArtistRecord(techKey, artistKey), nil
	}
	if err != nil {
		return domain.TechniqueArtistRecord{}, fmt.Errorf("get technique-artist median: %w", err)
	}
	return record, nil
}

func (r *Store) UpsertArtist(ctx context.Context, record domain.ArtistRecord) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO artists (name, frequency, median_price, price_std)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (name) DO UPDATE
		 SET frequency = EXCLUDED.frequency,
		     median_price = EXCLUDED.median_price,
		     price_std = EXCLUDED.price_std`,
		domain.NormalizeName(record.Name), record.Frequency, record.MedianPrice, record.PriceStd,
	)
	if err != nil {
		return fmt.Errorf("upsert artist: %w", err)
	}
	return nil
}

func (r *Store) UpsertTechniqueArtist(ctx context.Context, record domain.TechniqueArtistRecord) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO technique_artist_medians (technique, artist, median_price, sample_count)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (technique, artist) DO UPDATE
		 SET median_price = EXCLUDED.median_price,
		     sample_count = EXCLUDED.sample_count`,
		domain.NormalizeName(record.Technique), domain.NormalizeName(record.Artist),
		record.MedianPrice, record.SampleCount,
	)
	if err != nil {
		return fmt.Errorf("upsert technique-artist: %w", err)
	}
	return nil
}
