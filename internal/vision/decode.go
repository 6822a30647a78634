package vision

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"art-valuation-service/internal/domain"
)

// Decode parses uploaded image bytes. Undecodable input maps to the
// unreadable-image domain error so the HTTP layer can answer 422.
func Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty payload", domain.ErrUnreadableImage)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnreadableImage, err)
	}
	return img, nil
}
