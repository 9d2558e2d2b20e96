package logo

import (
	"gonum.org/v1/gonum/mat"

	"logo-gen/internal/raster"
)

// layerSet holds the prepared decorative layers, ready to composite.
type layerSet struct {
	mbir       *mat.Dense // rescaled letters for the bottom row
	arrowLeft  *mat.Dense
	arrowRight *mat.Dense
	text       *mat.Dense // stylized text column
}

// prepareLayers loads the decorative assets and rescales and recolors
// them against the dimensions of the rotated sinogram and the base
// letters layer. The arrows and text come from the alpha channel of
// their files; the letters come from the red channel.
func prepareLayers(cfg Config, sino, letters *mat.Dense) (*layerSet, error) {
	sinoH, sinoW := sino.Dims()
	lettersH, lettersW := letters.Dims()

	mbir, err := raster.ReadGrey(assetPath(cfg, assetLetters), 0)
	if err != nil {
		return nil, err
	}
	arrowLeft, err := raster.ReadGrey(assetPath(cfg, assetArrowLeft), 3)
	if err != nil {
		return nil, err
	}
	arrowRight, err := raster.ReadGrey(assetPath(cfg, assetArrowRight), 3)
	if err != nil {
		return nil, err
	}
	text, err := raster.ReadGrey(assetPath(cfg, assetText), 3)
	if err != nil {
		return nil, err
	}

	// Bottom-row letters span the sinogram width plus the base
	// letters height. Gamma then snap cleans the antialiased edges.
	_, mbirW := mbir.Dims()
	mbir = raster.Rescale(mbir, float64(sinoW+lettersH)/float64(mbirW))
	mbir = raster.AdjustGamma(mbir, 0.2)
	raster.Snap(mbir, 0.05, 0.95)

	// Each arrow fills half the base letters width.
	_, alW := arrowLeft.Dims()
	arrowLeft = raster.Rescale(arrowLeft, float64(lettersW)/2/float64(alW))
	_, arW := arrowRight.Dims()
	arrowRight = raster.Rescale(arrowRight, float64(lettersW)/2/float64(arW))

	// The text column matches the full stacked height of sinogram,
	// bottom letters, and one spacer.
	mbirH, _ := mbir.Dims()
	textH, _ := text.Dims()
	text = raster.Invert(raster.Rescale(text, float64(sinoH+mbirH+spacer)/float64(textH)))
	text = raster.AdjustGamma(text, 1.5)
	raster.Snap(text, 0.05, 0.95)

	return &layerSet{
		mbir:       mbir,
		arrowLeft:  arrowLeft,
		arrowRight: arrowRight,
		text:       text,
	}, nil
}
