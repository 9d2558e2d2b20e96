// Package raster provides greyscale raster images backed by gonum
// matrices, with loading, saving, and compositing operations.
//
// A raster is a *mat.Dense in row-major order whose elements are light
// intensities in [0, 1]. Operations that produce a new raster leave
// their input untouched; operations documented as in-place mutate the
// receiver argument.
package raster

import (
	"gonum.org/v1/gonum/mat"
)

// BlendMode specifies how a source raster is combined with the region
// of the target it is copied into.
type BlendMode int

const (
	// BlendCopy overwrites the target region unconditionally.
	BlendCopy BlendMode = iota
	// BlendMax keeps the element-wise maximum of target and source,
	// so bright content accumulates against a dark background.
	BlendMax
)

func (m BlendMode) String() string {
	switch m {
	case BlendCopy:
		return "Copy"
	case BlendMax:
		return "Max"
	default:
		return "Unknown"
	}
}

// CopyIn writes src into the region of dst starting at (rOff, cOff)
// and sized to src's dimensions. The region must lie entirely within
// dst; violating that panics with an index error. No clipping is done.
func CopyIn(dst, src *mat.Dense, rOff, cOff int, mode BlendMode) {
	h, w := src.Dims()
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			v := src.At(r, c)
			if mode == BlendMax {
				if t := dst.At(rOff+r, cOff+c); t > v {
					v = t
				}
			}
			dst.Set(rOff+r, cOff+c, v)
		}
	}
}

// Zeros returns an all-zero raster of the given dimensions.
func Zeros(rows, cols int) *mat.Dense {
	return mat.NewDense(rows, cols, nil)
}

// Ones returns an all-one (solid white) raster of the given dimensions.
func Ones(rows, cols int) *mat.Dense {
	m := mat.NewDense(rows, cols, nil)
	data := m.RawMatrix().Data
	for i := range data {
		data[i] = 1
	}
	return m
}
