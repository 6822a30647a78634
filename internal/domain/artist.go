package domain

import "strings"

// ArtistRecord holds the market statistics tracked per artist. Records are
// keyed by the normalized artist name.
type ArtistRecord struct {
	Name        string  `json:"name"`
	Frequency   int     `json:"frequency"`
	MedianPrice float64 `json:"median_price"`
	PriceStd    float64 `json:"price_std"`
}

// TechniqueArtistRecord holds the median price observed for a specific
// (technique, artist) pair.
type TechniqueArtistRecord struct {
	Technique   string  `json:"technique"`
	Artist      string  `json:"artist"`
	MedianPrice float64 `json:"median_price"`
	SampleCount int     `json:"sample_count"`
}

// NormalizeName is the canonical key form shared by the reference store and
// the feature builder: lower-cased and trimmed.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// DefaultArtistRecord is the synthetic record used for artists absent from
// the reference store. Absence is not an error, it is the unknown-artist case.
func DefaultArtistRecord(name string) ArtistRecord {
	return ArtistRecord{
		Name:        NormalizeName(name),
		Frequency:   1,
		MedianPrice: 500.0,
		PriceStd:    250.0,
	}
}

// DefaultTechniqueArtistRecord is the fallback for unseen (technique, artist)
// pairs.
func DefaultTechniqueArtistRecord(technique, artist string) TechniqueArtistRecord {
	return TechniqueArtistRecord{
		Technique:   NormalizeName(technique),
		Artist:      NormalizeName(artist),
		MedianPrice: 1000.0,
		SampleCount: 1,
	}
}
