package raster

import (
	"image"
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	xdraw "golang.org/x/image/draw"
)

// Invert returns the photographic negative: each value v becomes 1-v.
func Invert(m *mat.Dense) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 { return 1 - v }, m)
	return &out
}

// MaxValue returns the largest element of the raster.
func MaxValue(m *mat.Dense) float64 {
	return floats.Max(m.RawMatrix().Data)
}

// Normalize returns the raster divided by its maximum value, so the
// brightest element becomes 1. A raster with no positive values is
// returned unchanged (copied).
func Normalize(m *mat.Dense) *mat.Dense {
	out := mat.DenseCopyOf(m)
	max := MaxValue(out)
	if max > 0 {
		out.Scale(1/max, out)
	}
	return out
}

// AdjustGamma returns the power-law contrast correction v^gamma.
// Exponents below 1 brighten, above 1 darken.
func AdjustGamma(m *mat.Dense, gamma float64) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 { return math.Pow(v, gamma) }, m)
	return &out
}

// Snap pushes near-extreme values to the extremes in place: values
// above hi become 1 and values below lo become 0. Used to clean up
// antialiasing halos after rescaling binary artwork.
func Snap(m *mat.Dense, lo, hi float64) {
	m.Apply(func(_, _ int, v float64) float64 {
		if v > hi {
			return 1
		}
		if v < lo {
			return 0
		}
		return v
	}, m)
}

// Quantize returns the raster snapped to 8-bit intensity steps:
// round(v*255)/255. This reproduces what a round trip through an
// 8-bit file would do to the values, without touching disk.
func Quantize(m *mat.Dense) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 { return math.Round(v*255) / 255 }, m)
	return &out
}

// Rotate90 returns the raster rotated a quarter turn counter-clockwise.
// An (h, w) input becomes a (w, h) output with no interpolation.
func Rotate90(m *mat.Dense) *mat.Dense {
	h, w := m.Dims()
	out := mat.NewDense(w, h, nil)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			out.Set(w-1-c, r, m.At(r, c))
		}
	}
	return out
}

// Rescale resizes the raster by a uniform factor using bilinear
// interpolation. Output dimensions are the rounded scaled input
// dimensions. The resampling runs through a 16-bit grey intermediate.
func Rescale(m *mat.Dense, factor float64) *mat.Dense {
	h, w := m.Dims()
	nh := int(math.Round(float64(h) * factor))
	nw := int(math.Round(float64(w) * factor))
	if nh < 1 {
		nh = 1
	}
	if nw < 1 {
		nw = 1
	}

	src := image.NewGray16(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src.SetGray16(x, y, color.Gray16{Y: uint16(math.Round(clamp01(m.At(y, x)) * 65535))})
		}
	}

	dst := image.NewGray16(image.Rect(0, 0, nw, nh))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	out := mat.NewDense(nh, nw, nil)
	for y := 0; y < nh; y++ {
		for x := 0; x < nw; x++ {
			out.Set(y, x, float64(dst.Gray16At(x, y).Y)/65535)
		}
	}
	return out
}
