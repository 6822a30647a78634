package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validAttributes() ArtworkAttributes {
	return ArtworkAttributes{
		Artist:      "Jane Doe",
		ObjectType:  "print",
		Technique:   "etching",
		Signature:   "hand signed",
		Condition:   "good",
		EditionType: "numbered",
		Year:        1975,
		Width:       50,
		Height:      70,
	}
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, validAttributes().Validate())
}

func TestValidate_ZeroWidth(t *testing.T) {
	attrs := validAttributes()
	attrs.Width = 0
	err := attrs.Validate()
	assert.ErrorIs(t, err, ErrInvalidAttributes)
}

func TestValidate_NegativeHeight(t *testing.T) {
	attrs := validAttributes()
	attrs.Height = -1
	assert.ErrorIs(t, attrs.Validate(), ErrInvalidAttributes)
}

func TestValidate_YearOutOfRange(t *testing.T) {
	attrs := validAttributes()

	attrs.Year = 1199
	assert.ErrorIs(t, attrs.Validate(), ErrInvalidAttributes)

	attrs.Year = 2025
	assert.ErrorIs(t, attrs.Validate(), ErrInvalidAttributes)

	attrs.Year = 1200
	assert.NoError(t, attrs.Validate())

	attrs.Year = 2024
	assert.NoError(t, attrs.Validate())
}

func TestValidate_MissingArtist(t *testing.T) {
	attrs := validAttributes()
	attrs.Artist = "   "
	assert.ErrorIs(t, attrs.Validate(), ErrInvalidAttributes)
}
