package domain

import "fmt"

const (
	MinYear = 1200
	MaxYear = 2024
)

// ArtworkAttributes is the raw per-request description of an artwork. It is
// validated once, consumed by the feature builder, and discarded.
type ArtworkAttributes struct {
	Artist      string  `json:"artist"`
	ObjectType  string  `json:"object_type"`
	Technique   string  `json:"technique"`
	Signature   string  `json:"signature"`
	Condition   string  `json:"condition"`
	EditionType string  `json:"edition_type"`
	Year        int     `json:"year"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`

	HasEdition     bool `json:"has_edition"`
	HasCertificate bool `json:"has_certificate"`
	HasFrame       bool `json:"has_frame"`
	HasDamage      bool `json:"has_damage"`

	Expert string `json:"expert"`
	Title  string `json:"title"`

	// Optional pre-computed signals.
	TitleWordCount    *int     `json:"title_word_count,omitempty"`
	ColorfulnessScore *float64 `json:"colorfulness_score,omitempty"`
	SVDEntropy        *float64 `json:"svd_entropy,omitempty"`
}

// ImageFeatures are the two visual descriptors the vision package computes.
type ImageFeatures struct {
	Colorfulness float64 `json:"colorfulness_score"`
	SVDEntropy   float64 `json:"svd_entropy"`
}

// Validate checks the attribute ranges before any store or model access.
func (a ArtworkAttributes) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"artist", a.Artist},
		{"object_type", a.ObjectType},
		{"technique", a.Technique},
		{"signature", a.Signature},
		{"condition", a.Condition},
		{"edition_type", a.EditionType},
	}
	for _, f := range required {
		if NormalizeName(f.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidAttributes, f.name)
		}
	}
	if a.Year < MinYear || a.Year > MaxYear {
		return fmt.Errorf("%w: year must be between %d and %d", ErrInvalidAttributes, MinYear, MaxYear)
	}
	if a.Width <= 0 {
		return fmt.Errorf("%w: width must be positive", ErrInvalidAttributes)
	}
	if a.Height <= 0 {
		return fmt.Errorf("%w: height must be positive", ErrInvalidAttributes)
	}
	return nil
}
