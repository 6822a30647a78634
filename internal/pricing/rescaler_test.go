package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"art-valuation-service/internal/domain"
)

// rawLogFor builds the log-space input whose expm1 equals base.
func rawLogFor(base float64) float64 {
	return math.Log1p(base)
}

func TestRescale_VeryPopularArtist(t *testing.T) {
	// Picasso: seeded frequency 150, median 50000; expm1(raw) = 100.
	r := NewRescaler()
	artist := domain.ArtistRecord{Name: "pablo picasso", Frequency: 150, MedianPrice: 50000}

	price, err := r.Rescale(rawLogFor(100), artist)
	assert.NoError(t, err)
	// max(100*20, 50000*0.10) = max(2000, 5000)
	assert.InDelta(t, 5000, price, 1e-6)
	assert.Equal(t, domain.ConfidenceHigh, ConfidenceFor(artist.Frequency))
	assert.Equal(t, domain.PopularityVeryPopular, PopularityFor(artist.Frequency))
}

func TestRescale_UnknownArtist(t *testing.T) {
	// Unknown artist falls back to the default record (frequency 1).
	r := NewRescaler()
	artist := domain.DefaultArtistRecord("Jane Doe")

	price, err := r.Rescale(rawLogFor(50), artist)
	assert.NoError(t, err)
	// max(50*3, 10) = 150
	assert.InDelta(t, 150, price, 1e-6)
	assert.Equal(t, domain.ConfidenceLow, ConfidenceFor(artist.Frequency))
	assert.Equal(t, domain.PopularityUnknown, PopularityFor(artist.Frequency))
}

func TestRescale_TierSelection(t *testing.T) {
	r := NewRescaler()
	base := 500.0

	cases := []struct {
		frequency int
		want      float64
	}{
		{150, 500 * 20}, // median floor 100*0.1=tiny here, multiplier wins
		{60, 500 * 15},
		{25, 500 * 10},
		{10, 500 * 3},
		{1, 500 * 3},
	}
	for _, tc := range cases {
		artist := domain.ArtistRecord{Frequency: tc.frequency, MedianPrice: 1000}
		price, err := r.Rescale(rawLogFor(base), artist)
		assert.NoError(t, err)
		assert.InDelta(t, tc.want, price, 1e-6, "frequency %d", tc.frequency)
	}
}

func TestRescale_TierMonotonicity(t *testing.T) {
	// At equal base price and median, the f>=100 tier never prices below the
	// f>=50 tier (20x vs 15x), and so on down the ladder.
	r := NewRescaler()
	base := 250.0
	median := 2000.0

	var prev float64
	for i, freq := range []int{1, 20, 50, 100} {
		price, err := r.Rescale(rawLogFor(base), domain.ArtistRecord{Frequency: freq, MedianPrice: median})
		assert.NoError(t, err)
		if i > 0 {
			assert.GreaterOrEqual(t, price, prev, "frequency %d", freq)
		}
		prev = price
	}
}

func TestRescale_MedianFloor(t *testing.T) {
	// A famous artist with a tiny base prediction is floored at a fraction of
	// their median price.
	r := NewRescaler()
	artist := domain.ArtistRecord{Frequency: 100, MedianPrice: 80000}

	price, err := r.Rescale(rawLogFor(10), artist)
	assert.NoError(t, err)
	// max(10*20, 80000*0.10) = 8000
	assert.InDelta(t, 8000, price, 1e-6)
}

func TestRescale_Clamping(t *testing.T) {
	r := NewRescaler()

	price, err := r.Rescale(rawLogFor(0.5), domain.ArtistRecord{Frequency: 1})
	assert.NoError(t, err)
	assert.Equal(t, 10.0, price)

	price, err = r.Rescale(rawLogFor(200000), domain.ArtistRecord{Frequency: 100, MedianPrice: 50000})
	assert.NoError(t, err)
	assert.Equal(t, 1_000_000.0, price)
}

func TestRescale_NonFiniteInput(t *testing.T) {
	r := NewRescaler()

	for _, raw := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := r.Rescale(raw, domain.ArtistRecord{Frequency: 1})
		assert.ErrorIs(t, err, domain.ErrInvalidScore)
	}
}

func TestExpm1Log1pRoundTrip(t *testing.T) {
	// The rescaler's base-price computation relies on expm1 inverting the
	// log1p transform the model was trained on.
	for _, price := range []float64{25, 100, 500, 5000, 8000} {
		assert.InDelta(t, price, math.Expm1(math.Log1p(price)), 1e-9)
	}
}

func TestConfidenceTiers(t *testing.T) {
	assert.Equal(t, domain.ConfidenceLow, ConfidenceFor(4))
	assert.Equal(t, domain.ConfidenceMedium, ConfidenceFor(5))
	assert.Equal(t, domain.ConfidenceMedium, ConfidenceFor(19))
	assert.Equal(t, domain.ConfidenceHigh, ConfidenceFor(20))
}

func TestPopularityTiers(t *testing.T) {
	assert.Equal(t, domain.PopularityUnknown, PopularityFor(4))
	assert.Equal(t, domain.PopularityKnown, PopularityFor(5))
	assert.Equal(t, domain.PopularityPopular, PopularityFor(10))
	assert.Equal(t, domain.PopularityVeryPopular, PopularityFor(50))
}
