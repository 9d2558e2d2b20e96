package raster

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"math"
	"os"

	"gonum.org/v1/gonum/mat"

	_ "golang.org/x/image/tiff"
)

// ReadGrey reads an image file and returns one channel as a raster in
// [0, 1]. The channel index selects the non-premultiplied component:
// 0=red, 1=green, 2=blue, 3=alpha. Greyscale inputs yield the same
// values for channels 0-2. This is how a single nxm intensity plane is
// pulled out of an asset saved in RGB or RGBA form.
func ReadGrey(path string, channel int) (*mat.Dense, error) {
	if channel < 0 || channel > 3 {
		return nil, fmt.Errorf("invalid channel %d for %s: must be 0-3", channel, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	return FromImage(img, channel), nil
}

// FromImage extracts the given channel of img as a raster in [0, 1].
func FromImage(img image.Image, channel int) *mat.Dense {
	bounds := img.Bounds()
	h, w := bounds.Dy(), bounds.Dx()
	m := mat.NewDense(h, w, nil)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			var v uint8
			switch channel {
			case 0:
				v = c.R
			case 1:
				v = c.G
			case 2:
				v = c.B
			case 3:
				v = c.A
			}
			m.Set(y, x, float64(v)/255)
		}
	}
	return m
}

// ToImage converts a raster to an 8-bit greyscale image. Values are
// clamped to [0, 1] and rounded to the nearest of 256 levels.
func ToImage(m *mat.Dense) *image.Gray {
	h, w := m.Dims()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(math.Round(clamp01(m.At(y, x)) * 255))})
		}
	}
	return img
}

// WritePNG writes a raster to path as an 8-bit greyscale PNG,
// overwriting any existing file.
func WritePNG(path string, m *mat.Dense) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, ToImage(m)); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
