// Package tomo implements the forward and inverse Radon transform for
// square greyscale rasters, assuming all content lies within the
// circle inscribed in the image.
package tomo

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Theta returns n projection angles in degrees, evenly spaced over a
// full rotation with the endpoint excluded: 0, 360/n, ..., 360(n-1)/n.
func Theta(n int) []float64 {
	theta := make([]float64, n)
	for i := range theta {
		theta[i] = 360 * float64(i) / float64(n)
	}
	return theta
}

// CropSquare returns the centered square crop of side min(h, w).
// Square inputs are returned as a copy.
func CropSquare(img *mat.Dense) *mat.Dense {
	h, w := img.Dims()
	n := h
	if w < n {
		n = w
	}
	rOff := (h - n + 1) / 2
	cOff := (w - n + 1) / 2
	return mat.DenseCopyOf(img.Slice(rOff, rOff+n, cOff, cOff+n))
}

// Radon computes the forward Radon transform (sinogram) of img over
// the given projection angles in degrees. The image is first cropped
// to its centered square of side N = min(h, w); content outside the
// inscribed circle is assumed dark. The result is N x len(theta):
// row = projection position, column = projection angle. Each column
// holds the line integrals of the image rotated by that angle, sampled
// with bilinear interpolation.
func Radon(img *mat.Dense, theta []float64) *mat.Dense {
	sq := CropSquare(img)
	n, _ := sq.Dims()
	center := float64(n-1) / 2

	sino := mat.NewDense(n, len(theta), nil)
	for k, deg := range theta {
		sin, cos := math.Sincos(deg * math.Pi / 180)
		for j := 0; j < n; j++ {
			x := float64(j) - center
			var sum float64
			for i := 0; i < n; i++ {
				y := float64(i) - center
				// Rotate the sample point back into the source frame.
				sx := cos*x - sin*y + center
				sy := sin*x + cos*y + center
				sum += bilinear(sq, sy, sx)
			}
			sino.Set(j, k, sum)
		}
	}
	return sino
}

// bilinear samples the raster at fractional (row, col), returning zero
// outside the image.
func bilinear(m *mat.Dense, row, col float64) float64 {
	h, w := m.Dims()
	r0 := int(math.Floor(row))
	c0 := int(math.Floor(col))
	fr := row - float64(r0)
	fc := col - float64(c0)

	var sum float64
	for dr := 0; dr <= 1; dr++ {
		for dc := 0; dc <= 1; dc++ {
			r, c := r0+dr, c0+dc
			if r < 0 || r >= h || c < 0 || c >= w {
				continue
			}
			wr := 1 - fr
			if dr == 1 {
				wr = fr
			}
			wc := 1 - fc
			if dc == 1 {
				wc = fc
			}
			sum += wr * wc * m.At(r, c)
		}
	}
	return sum
}
