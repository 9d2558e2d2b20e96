package logo

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeFixtures places a 100x100 base image (centered dark square on
// white, so the inverted pipeline works on a bright square) and four
// 100x100 placeholder assets into dir.
func writeFixtures(t *testing.T, dir string) string {
	t.Helper()

	base := image.NewGray(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			v := uint8(255)
			if x >= 30 && x < 70 && y >= 30 && y < 70 {
				v = 0
			}
			base.SetGray(x, y, color.Gray{Y: v})
		}
	}
	writeFixture(t, filepath.Join(dir, "svmbir.png"), base)

	letters := image.NewGray(image.Rect(0, 0, 100, 100))
	for y := 40; y < 60; y++ {
		for x := 10; x < 90; x++ {
			letters.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	writeFixture(t, filepath.Join(dir, "mbir.png"), letters)

	for _, name := range []string{"arrow_left.png", "arrow_right.png", "text.png"} {
		asset := image.NewNRGBA(image.Rect(0, 0, 100, 100))
		for y := 0; y < 100; y++ {
			for x := 0; x < 100; x++ {
				a := uint8(0)
				if x > 20 && x < 80 && y > 20 && y < 80 {
					a = 255
				}
				asset.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: a})
			}
		}
		writeFixture(t, filepath.Join(dir, name), asset)
	}

	return filepath.Join(dir, "svmbir.png")
}

func writeFixture(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func decodeBounds(t *testing.T, path string) image.Rectangle {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img.Bounds()
}

func TestGenerate(t *testing.T) {
	assetDir := t.TempDir()
	outDir := t.TempDir()
	basePath := writeFixtures(t, assetDir)

	res, err := Generate(Config{
		ImagePath: basePath,
		AssetDir:  assetDir,
		OutDir:    outDir,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	// 100x100 base: sinogram is 100x100, bottom letters rescale to
	// 200x200, text to 305x305. Canvas: 315 rows by 515 columns.
	logoBounds := decodeBounds(t, res.LogoPath)
	if logoBounds.Dx() != 515 || logoBounds.Dy() != 315 {
		t.Errorf("logo.png = %dx%d, want 515x315", logoBounds.Dx(), logoBounds.Dy())
	}

	sinoBounds := decodeBounds(t, res.SinogramPath)
	if sinoBounds.Dx() != 100 || sinoBounds.Dy() != 100 {
		t.Errorf("sinogram_rot.png = %dx%d, want 100x100", sinoBounds.Dx(), sinoBounds.Dy())
	}

	// The vertical separator bar is solid white.
	f, err := os.Open(res.LogoPath)
	if err != nil {
		t.Fatalf("open logo: %v", err)
	}
	defer f.Close()
	logoImg, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode logo: %v", err)
	}
	r, g, b, _ := logoImg.At(102, 50).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff {
		t.Errorf("separator pixel = %v, want white", logoImg.At(102, 50))
	}

	if len(res.Figures) != 6 {
		t.Errorf("got %d figures, want 6", len(res.Figures))
	}
}

func TestGenerateMissingBaseImage(t *testing.T) {
	outDir := t.TempDir()
	_, err := Generate(Config{
		ImagePath: filepath.Join(t.TempDir(), "missing.png"),
		AssetDir:  t.TempDir(),
		OutDir:    outDir,
	})
	if err == nil {
		t.Fatal("expected error for missing base image")
	}

	entries, readErr := os.ReadDir(outDir)
	if readErr != nil {
		t.Fatalf("read out dir: %v", readErr)
	}
	if len(entries) != 0 {
		t.Errorf("pipeline wrote %d files before failing on the base image", len(entries))
	}
}

func TestGenerateMissingAsset(t *testing.T) {
	assetDir := t.TempDir()
	outDir := t.TempDir()
	basePath := writeFixtures(t, assetDir)
	if err := os.Remove(filepath.Join(assetDir, "text.png")); err != nil {
		t.Fatal(err)
	}

	_, err := Generate(Config{
		ImagePath: basePath,
		AssetDir:  assetDir,
		OutDir:    outDir,
	})
	if err == nil {
		t.Fatal("expected error for missing asset")
	}

	// The sinogram side artifact is written before assets load.
	if _, statErr := os.Stat(filepath.Join(outDir, "sinogram_rot.png")); statErr != nil {
		t.Errorf("sinogram_rot.png missing: %v", statErr)
	}
	if _, statErr := os.Stat(filepath.Join(outDir, "logo.png")); statErr == nil {
		t.Error("logo.png written despite missing asset")
	}
}
