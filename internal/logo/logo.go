// Package logo assembles the tomography-themed project logo from a
// base image and a set of decorative raster assets.
//
// The pipeline inverts the base image, computes its sinogram with a
// gamma-corrected and quantized variant, reconstructs it for visual
// inspection, prepares the letter/arrow/text layers, and composites
// everything onto one canvas at fixed offsets.
package logo

import (
	"image"
	"path/filepath"

	"gonum.org/v1/gonum/mat"

	"logo-gen/internal/raster"
	"logo-gen/internal/tomo"
)

// spacer is the fixed gap, in pixels, between composited layers and
// around the canvas edge. The separator bars are spacer pixels thick.
const spacer = 5

// Asset file names, resolved against Config.AssetDir.
const (
	assetLetters    = "mbir.png"
	assetArrowLeft  = "arrow_left.png"
	assetArrowRight = "arrow_right.png"
	assetText       = "text.png"
)

// Config selects the pipeline inputs and outputs.
type Config struct {
	ImagePath string // base image the sinogram is computed from
	AssetDir  string // directory holding the decorative assets
	OutDir    string // directory the PNG outputs are written to
}

// Figure is one intermediate view of the pipeline, kept so a viewer
// can replay what the run produced.
type Figure struct {
	Title string
	Image *image.Gray
}

// Result reports what a pipeline run produced.
type Result struct {
	Figures      []Figure
	SinogramPath string // rotated gamma-corrected sinogram, 8-bit PNG
	LogoPath     string // assembled logo, 8-bit PNG
}

// Generate runs the full logo pipeline. The first error aborts the
// run; nothing is written before the base image has loaded. The
// sinogram PNG is written before the decorative assets are read, so a
// missing asset still leaves that side artifact behind.
func Generate(cfg Config) (*Result, error) {
	res := &Result{}

	// Base image as a negative: bright letters on dark ground.
	base, err := raster.ReadGrey(cfg.ImagePath, 0)
	if err != nil {
		return nil, err
	}
	img := raster.Invert(base)
	letters := mat.DenseCopyOf(img)
	res.addFigure("Original", img)

	// Sinogram over a full rotation, one angle per pixel of the
	// larger image dimension.
	h, w := img.Dims()
	n := h
	if w > n {
		n = w
	}
	theta := tomo.Theta(n)
	sinogram := tomo.Radon(img, theta)

	sinoScaled := raster.Normalize(sinogram)
	gammaCorrected := raster.AdjustGamma(sinoScaled, 0.4)
	res.addFigure("Radon transform (sinogram, 0-360 deg)", sinoScaled)
	res.addFigure("Gamma corrected (0-360 deg)", gammaCorrected)

	// Quantize to 8-bit steps, rotate a quarter turn, and persist the
	// side artifact. The rotated array is reused for compositing.
	sinoInt := raster.Quantize(gammaCorrected)
	sino := raster.Rotate90(sinoInt)
	res.SinogramPath = filepath.Join(cfg.OutDir, "sinogram_rot.png")
	if err := raster.WritePNG(res.SinogramPath, sino); err != nil {
		return nil, err
	}

	// Reconstructions for visual comparison only; neither feeds the
	// composite. Gamma 2 undoes the display correction applied above.
	reconOrig := tomo.IRadon(raster.Quantize(sinoScaled), theta)
	reconGamma := tomo.IRadon(raster.AdjustGamma(sinoInt, 2), theta)
	res.addFigure("Recon from original", raster.Normalize(reconOrig))
	res.addFigure("Recon from gamma corrected", raster.Normalize(reconGamma))

	// Decorative layers.
	layers, err := prepareLayers(cfg, sino, letters)
	if err != nil {
		return nil, err
	}

	canvas := assemble(sino, letters, layers)
	res.addFigure("Logo", canvas)

	res.LogoPath = filepath.Join(cfg.OutDir, "logo.png")
	if err := raster.WritePNG(res.LogoPath, canvas); err != nil {
		return nil, err
	}
	return res, nil
}

// assemble lays the prepared layers out on a zero-filled canvas.
// Offsets are chained positional arithmetic; the only deliberate
// overlap is the letters layer max-blended over the arrows.
func assemble(sino, letters *mat.Dense, l *layerSet) *mat.Dense {
	sinoH, sinoW := sino.Dims()
	_, lettersW := letters.Dims()
	mbirH, mbirW := l.mbir.Dims()
	_, textW := l.text.Dims()

	height := sinoH + mbirH + 3*spacer
	width := mbirW + textW + 2*spacer
	canvas := raster.Zeros(height, width)

	// Sinogram block and its vertical separator.
	raster.CopyIn(canvas, sino, spacer, spacer, raster.BlendCopy)
	raster.CopyIn(canvas, raster.Ones(sinoH, spacer), spacer, sinoW, raster.BlendCopy)

	// Arrows side by side, then the letters blended over them.
	j := sinoW + spacer
	raster.CopyIn(canvas, l.arrowLeft, spacer, j, raster.BlendCopy)
	_, arrowW := l.arrowLeft.Dims()
	raster.CopyIn(canvas, l.arrowRight, spacer, j+arrowW, raster.BlendCopy)
	raster.CopyIn(canvas, letters, spacer, j, raster.BlendMax)

	// Stylized text to the right of the letters.
	raster.CopyIn(canvas, l.text, spacer, sinoW+lettersW+spacer, raster.BlendCopy)

	// Horizontal separator and the rescaled letters beneath it.
	raster.CopyIn(canvas, raster.Ones(spacer, sinoW+spacer+lettersW), spacer+sinoH, spacer, raster.BlendCopy)
	raster.CopyIn(canvas, l.mbir, 2*spacer+sinoH, spacer, raster.BlendCopy)

	return canvas
}

func (r *Result) addFigure(title string, m *mat.Dense) {
	r.Figures = append(r.Figures, Figure{Title: title, Image: raster.ToImage(m)})
}

func assetPath(cfg Config, name string) string {
	return filepath.Join(cfg.AssetDir, name)
}
