package feature

import (
	"context"
	"fmt"
	"math"
	"strings"

	"art-valuation-service/internal/domain"
)

// AuctionYear is the reference year the model was trained against. Age
// features are computed from it, not from the wall clock: shifting it would
// move every request off the training distribution.
const AuctionYear = 2024

// epsilon guards the ratio features against division by zero.
const epsilon = 1e-8

// substringFlag derives a binary feature from a substring match on a
// normalized input field. Keeping the flags as data makes the derived
// booleans auditable in one place.
type substringFlag struct {
	Name  string
	Match string
}

var signatureFlags = []substringFlag{
	{Name: "has_hand_signed", Match: "hand"},
	{Name: "has_plate_signed", Match: "plate"},
	{Name: "has_unsigned", Match: "unsigned"},
}

var techniqueFlags = []substringFlag{
	{Name: "has_etching", Match: "etching"},
	{Name: "has_lithograph", Match: "lithograph"},
	{Name: "has_woodcut", Match: "woodcut"},
	{Name: "has_screenprint", Match: "screenprint"},
}

// techniqueWeights score technique complexity per matched flag.
var techniqueWeights = map[string]float64{
	"has_etching":     2,
	"has_lithograph":  2,
	"has_woodcut":     3,
	"has_screenprint": 1,
}

var editionCodes = map[string]float64{
	"unique":   1,
	"numbered": 2,
	"limited":  3,
	"open":     4,
}

// Builder assembles the fixed-schema feature vector consumed by the scoring
// model from raw artwork attributes and reference-store lookups.
type Builder struct {
	store  domain.ReferenceStore
	schema *domain.Schema
}

func NewBuilder(store domain.ReferenceStore, schema *domain.Schema) *Builder {
	return &Builder{store: store, schema: schema}
}

// Build computes the full feature set and projects it onto the model schema.
// Partial vectors are never returned: any failure surfaces as a
// feature-construction error.
func (b *Builder) Build(ctx context.Context, attrs domain.ArtworkAttributes, img *domain.ImageFeatures) (*domain.FeatureVector, error) {
	features, err := b.Features(ctx, attrs, img)
	if err != nil {
		return nil, err
	}
	return domain.NewFeatureVector(b.schema, features), nil
}

// Features computes the raw name-to-value mapping before schema projection.
// Exposed separately so the groups can be inspected without a schema.
func (b *Builder) Features(ctx context.Context, attrs domain.ArtworkAttributes, img *domain.ImageFeatures) (map[string]any, error) {
	artist, err := b.store.GetArtist(ctx, attrs.Artist)
	if err != nil {
		return nil, fmt.Errorf("%w: artist lookup: %v", domain.ErrFeatureConstruction, err)
	}

	features := make(map[string]any, 64)

	// Categorical base fields.
	technique := domain.NormalizeName(attrs.Technique)
	signature := domain.NormalizeName(attrs.Signature)
	editionType := domain.NormalizeName(attrs.EditionType)
	expert := domain.NormalizeName(attrs.Expert)
	features["OBJECT"] = domain.NormalizeName(attrs.ObjectType)
	features["ARTIST"] = domain.NormalizeName(attrs.Artist)
	features["EXPERT"] = expert
	features["TECHNIQUE_SIMPLE"] = technique
	features["SIGNATURE_SIMPLE"] = signature
	features["CONDITION_SIMPLE"] = domain.NormalizeName(attrs.Condition)

	// Edition type, both as numeric code and raw category.
	features["edition_type"] = editionCodes[editionType]
	features["EDITION_TYPE"] = editionType

	// Physical numerics.
	width := attrs.Width
	height := attrs.Height
	area := width * height
	features["width"] = width
	features["height"] = height
	features["area"] = area
	features["EXPERT_RAW"] = expert
	features["auction_year"] = float64(AuctionYear)

	// Signature and technique substring flags. The signature flags are
	// independent matches, not mutually exclusive.
	for _, flag := range signatureFlags {
		features[flag.Name] = boolToFloat(strings.Contains(signature, flag.Match))
	}
	techniqueCount := 0.0
	techniqueScore := 0.0
	for _, flag := range techniqueFlags {
		matched := strings.Contains(technique, flag.Match)
		features[flag.Name] = boolToFloat(matched)
		if matched {
			techniqueCount++
			techniqueScore += techniqueWeights[flag.Name]
		}
	}

	// Condition, edition and physical flags.
	hasLimited := boolToFloat(strings.Contains(editionType, "limited"))
	hasCertificate := boolToFloat(attrs.HasCertificate)
	hasFrame := boolToFloat(attrs.HasFrame)
	hasDamage := boolToFloat(attrs.HasDamage)
	hasEdition := boolToFloat(attrs.HasEdition)
	features["has_limited_edition"] = hasLimited
	features["has_certificate"] = hasCertificate
	features["has_frame"] = hasFrame
	features["has_damage"] = hasDamage
	features["has_edition"] = hasEdition

	// Image features: explicit extraction wins, then attribute overrides,
	// then neutral zeros.
	switch {
	case img != nil:
		features["colorfulness_score"] = img.Colorfulness
		features["svd_entropy"] = img.SVDEntropy
	default:
		features["colorfulness_score"] = derefOrZero(attrs.ColorfulnessScore)
		features["svd_entropy"] = derefOrZero(attrs.SVDEntropy)
	}

	// Derived dimension features.
	features["aspect_ratio"] = width / (height + epsilon)
	features["log_area"] = math.Log1p(area)
	features["log_width"] = math.Log1p(width)
	features["log_height"] = math.Log1p(height)
	features["area_per_width"] = area / (width + epsilon)
	features["area_per_height"] = area / (height + epsilon)
	features["size_category"] = sizeCategory(area)

	// Age features, mutually exclusive by construction.
	age := AuctionYear - attrs.Year
	if age < 0 {
		age = 0
	}
	features["log_age"] = math.Log1p(float64(age))
	features["is_antique"] = boolToFloat(age >= 100)
	features["is_vintage"] = boolToFloat(age >= 20 && age < 100)
	features["is_modern"] = boolToFloat(age < 20)
	features["year_category"] = yearCategory(attrs.Year)

	// Artist popularity from the reference store.
	freq := float64(artist.Frequency)
	features["log_artist_frequency"] = math.Log1p(freq)
	features["artist_rarity"] = 1 / (freq + 1)
	features["is_rare_artist"] = boolToFloat(artist.Frequency <= 5)
	features["is_popular_artist"] = boolToFloat(artist.Frequency >= 50)
	features["is_very_popular_artist"] = boolToFloat(artist.Frequency >= 100)
	features["artist_frequency"] = freq

	// Technique complexity aggregates.
	features["technique_count"] = techniqueCount
	features["technique_score"] = techniqueScore
	features["has_multiple_techniques"] = boolToFloat(techniqueCount > 1)

	// Aggregate signature flag.
	features["has_any_signature"] = boolToFloat(
		strings.Contains(signature, "hand") || strings.Contains(signature, "plate"))

	// Object rarity is a placeholder group: there is no object-frequency
	// source, so the values are fixed.
	features["object_frequency"] = 100.0
	features["is_rare_object"] = 0.0
	features["is_common_object"] = 1.0

	// Composite edition/physical scores. physical_features can go negative
	// when damage outweighs frame and certificate.
	features["edition_features"] = hasEdition + hasLimited + hasCertificate
	features["physical_features"] = hasFrame + hasCertificate - hasDamage

	// Interaction terms.
	features["size_artist_interaction"] = area * freq
	features["technique_artist_interaction"] = techniqueCount * freq

	features["title_word_count"] = titleWordCount(attrs)

	// Market ratio: technique-specific median relative to the artist's
	// general median.
	tech, err := b.store.GetTechniqueArtistMedian(ctx, attrs.Technique, attrs.Artist)
	if err != nil {
		return nil, fmt.Errorf("%w: technique-artist lookup: %v", domain.ErrFeatureConstruction, err)
	}
	if tech.MedianPrice > 0 && artist.MedianPrice > 0 {
		features["price_vs_tech_artist_median"] = tech.MedianPrice / artist.MedianPrice
	} else {
		features["price_vs_tech_artist_median"] = 1.0
	}

	return features, nil
}

func sizeCategory(area float64) string {
	switch {
	case area <= 100:
		return "tiny"
	case area <= 1000:
		return "small"
	case area <= 5000:
		return "medium"
	default:
		return "large"
	}
}

func yearCategory(year int) string {
	switch {
	case year < 1900:
		return "pre_1900"
	case year < 1950:
		return "early_1900s"
	case year < 1980:
		return "mid_1900s"
	case year < 2000:
		return "late_1900s"
	default:
		return "modern"
	}
}

func titleWordCount(attrs domain.ArtworkAttributes) float64 {
	title := strings.TrimSpace(attrs.Title)
	if title != "" && title != "Untitled" {
		return float64(len(strings.Fields(title)))
	}
	if attrs.TitleWordCount != nil {
		return float64(*attrs.TitleWordCount)
	}
	return 3
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func derefOrZero(f *float64) float64 {
	if f == nil {
		return 0.0
	}
	return *f
}
