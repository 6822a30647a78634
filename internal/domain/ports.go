package domain

import "context"

// ReferenceStore is the durable lookup of artist and technique-artist market
// statistics. Lookups never miss: absent keys yield the default records.
type ReferenceStore interface {
	GetArtist(ctx context.Context, name string) (ArtistRecord, error)
	GetTechniqueArtistMedian(ctx context.Context, technique, artist string) (TechniqueArtistRecord, error)
	UpsertArtist(ctx context.Context, record ArtistRecord) error
	UpsertTechniqueArtist(ctx context.Context, record TechniqueArtistRecord) error
}

// Scorer is the opaque trained model: anything that maps a schema-aligned
// feature vector to a raw log-space price satisfies it.
type Scorer interface {
	Score(v *FeatureVector) (float64, error)
}
