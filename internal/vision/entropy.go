package vision

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
	"gonum.org/v1/gonum/mat"
)

// entropySize is the fixed grayscale resolution the singular value spectrum
// is computed on. Resizing before the SVD trades fine detail for speed and
// makes the entropy comparable across input resolutions.
const entropySize = 64

// spectrumFloor discards singular values that are numerical noise.
const spectrumFloor = 1e-10

// SpectralEntropy returns the base-2 Shannon entropy of the normalized
// singular value spectrum of the grayscaled, 64x64-resized image. A nil or
// degenerate image yields 0.
func SpectralEntropy(img image.Image) float64 {
	if img == nil || img.Bounds().Empty() {
		return 0.0
	}

	gray := image.NewGray(image.Rect(0, 0, entropySize, entropySize))
	xdraw.ApproxBiLinear.Scale(gray, gray.Bounds(), img, img.Bounds(), xdraw.Src, nil)

	data := make([]float64, entropySize*entropySize)
	for y := 0; y < entropySize; y++ {
		for x := 0; x < entropySize; x++ {
			data[y*entropySize+x] = float64(gray.GrayAt(x, y).Y)
		}
	}

	var svd mat.SVD
	if ok := svd.Factorize(mat.NewDense(entropySize, entropySize, data), mat.SVDNone); !ok {
		return 0.0
	}
	values := svd.Values(nil)

	var total float64
	for _, s := range values {
		total += s
	}
	if total <= 0 {
		return 0.0
	}

	var entropy float64
	for _, s := range values {
		p := s / total
		if p > spectrumFloor {
			entropy -= p * math.Log2(p)
		}
	}
	if entropy < 0 {
		return 0.0
	}
	return entropy
}
