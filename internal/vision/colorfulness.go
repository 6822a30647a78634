// Package vision computes the two advisory visual descriptors used as model
// features: colorfulness and SVD spectral entropy. Both absorb failure and
// return a neutral 0.0 rather than propagating errors.
package vision

import (
	"image"
	"math"
)

// Colorfulness measures chromatic variety from the rg = R-G and
// yb = 0.5(R+G)-B opponent channels:
//
//	sqrt(std(rg)^2 + std(yb)^2) + 0.3*sqrt(mean(rg)^2 + mean(yb)^2)
//
// A nil or empty image yields 0.
func Colorfulness(img image.Image) float64 {
	if img == nil {
		return 0.0
	}
	bounds := img.Bounds()
	n := float64(bounds.Dx() * bounds.Dy())
	if n == 0 {
		return 0.0
	}

	var sumRG, sumSqRG, sumYB, sumSqYB float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			rf := float64(r >> 8)
			gf := float64(g >> 8)
			bf := float64(b >> 8)

			rg := rf - gf
			yb := 0.5*(rf+gf) - bf
			sumRG += rg
			sumSqRG += rg * rg
			sumYB += yb
			sumSqYB += yb * yb
		}
	}

	meanRG := sumRG / n
	meanYB := sumYB / n
	varRG := sumSqRG/n - meanRG*meanRG
	varYB := sumSqYB/n - meanYB*meanYB
	if varRG < 0 {
		varRG = 0
	}
	if varYB < 0 {
		varYB = 0
	}

	return math.Sqrt(varRG+varYB) + 0.3*math.Hypot(meanRG, meanYB)
}
