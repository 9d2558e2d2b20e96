// Command sinotest computes the sinogram of an image, reconstructs it
// by filtered back-projection, and reports round-trip quality.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"logo-gen/internal/raster"
	"logo-gen/internal/tomo"
)

func main() {
	imagePath := flag.String("image", "", "Path to image (PNG, JPEG, or TIFF)")
	angles := flag.Int("angles", 0, "Projection angle count (0 = one per pixel of the larger dimension)")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: sinotest -image <path> [-angles n]")
		os.Exit(1)
	}

	img, err := raster.ReadGrey(*imagePath, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load image: %v\n", err)
		os.Exit(1)
	}

	h, w := img.Dims()
	fmt.Printf("Loaded image: %dx%d pixels\n", w, h)

	n := *angles
	if n <= 0 {
		n = h
		if w > n {
			n = w
		}
	}
	theta := tomo.Theta(n)
	fmt.Printf("Projection angles: %d over 0-360 deg\n", n)

	sino := tomo.Radon(img, theta)
	sh, sw := sino.Dims()
	fmt.Printf("Sinogram: %d positions x %d angles, max %.3f\n", sh, sw, raster.MaxValue(sino))

	recon := tomo.IRadon(sino, theta)

	// Compare against the centered square crop the transform worked
	// on, restricted to the inscribed circle.
	crop := tomo.CropSquare(img)
	side, _ := crop.Dims()
	center := float64(side-1) / 2
	radius := float64(side) / 2

	var sumSq float64
	var count int
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			dy := float64(r) - center
			dx := float64(c) - center
			if dy*dy+dx*dx > radius*radius {
				continue
			}
			d := recon.At(r, c) - crop.At(r, c)
			sumSq += d * d
			count++
		}
	}
	rms := math.Sqrt(sumSq / float64(count))

	fmt.Printf("Reconstruction: %dx%d\n", side, side)
	fmt.Printf("Round-trip RMS error (inscribed circle): %.4f\n", rms)
}
