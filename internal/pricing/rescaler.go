// Package pricing corrects the model's raw log-space output with
// artist-popularity priors. The training data is skewed, so raw predictions
// systematically undershoot for famous artists and overshoot for obscure
// ones; the tiers inject a population prior the model cannot see.
package pricing

import (
	"fmt"
	"math"

	"art-valuation-service/internal/domain"
)

// Tier scales the base price for artists at or above a frequency threshold,
// with a floor expressed as a fraction of the artist's median price.
type Tier struct {
	MinFrequency int
	Multiplier   float64
	FloorRatio   float64
}

// Rescaler maps raw log-space model output to a final clamped price. The
// multipliers and thresholds are empirically chosen constants carried as
// data, not business rules.
type Rescaler struct {
	Tiers              []Tier
	DefaultMultiplier  float64
	DefaultFloor       float64
	MinPrice, MaxPrice float64
}

// NewRescaler returns the rescaler with the production constants. Tiers are
// evaluated highest threshold first.
func NewRescaler() *Rescaler {
	return &Rescaler{
		Tiers: []Tier{
			{MinFrequency: 100, Multiplier: 20, FloorRatio: 0.10},
			{MinFrequency: 50, Multiplier: 15, FloorRatio: 0.05},
			{MinFrequency: 20, Multiplier: 10, FloorRatio: 0.02},
		},
		DefaultMultiplier: 3,
		DefaultFloor:      10,
		MinPrice:          10,
		MaxPrice:          1_000_000,
	}
}

// Rescale converts a raw log-space prediction to a final price for the given
// artist. Non-finite input is rejected; everything else is deterministic and
// side-effect free.
func (r *Rescaler) Rescale(rawLogPrice float64, artist domain.ArtistRecord) (float64, error) {
	if math.IsNaN(rawLogPrice) || math.IsInf(rawLogPrice, 0) {
		return 0, fmt.Errorf("%w: %v", domain.ErrInvalidScore, rawLogPrice)
	}

	base := math.Expm1(rawLogPrice)

	price := math.Max(base*r.DefaultMultiplier, r.DefaultFloor)
	for _, tier := range r.Tiers {
		if artist.Frequency >= tier.MinFrequency {
			price = math.Max(base*tier.Multiplier, artist.MedianPrice*tier.FloorRatio)
			break
		}
	}

	return math.Min(math.Max(price, r.MinPrice), r.MaxPrice), nil
}

// ConfidenceFor derives the confidence tier from artist frequency. The
// thresholds are independent of the pricing tiers.
func ConfidenceFor(frequency int) domain.Confidence {
	switch {
	case frequency >= 20:
		return domain.ConfidenceHigh
	case frequency >= 5:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceLow
	}
}

// PopularityFor derives the popularity tier from artist frequency.
func PopularityFor(frequency int) domain.Popularity {
	switch {
	case frequency >= 50:
		return domain.PopularityVeryPopular
	case frequency >= 10:
		return domain.PopularityPopular
	case frequency >= 5:
		return domain.PopularityKnown
	default:
		return domain.PopularityUnknown
	}
}
