// Package main provides the entry point for the logo generator.
package main

import (
	"flag"
	"fmt"
	"log"

	"logo-gen/internal/logo"
	"logo-gen/internal/version"
	"logo-gen/ui/viewer"
)

const appTitle = "Logo Generator"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	imagePath := flag.String("image", "images/svmbir.png", "Base image the sinogram is computed from")
	assetDir := flag.String("assets", "images", "Directory holding the decorative assets")
	outDir := flag.String("out", ".", "Directory the PNG outputs are written to")
	show := flag.Bool("show", false, "Display the intermediate figures after the run")
	showVersion := flag.Bool("version", false, "Print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("logo-gen %s (commit %s, built %s)\n",
			version.Version, version.GitCommit, version.BuildTime)
		return
	}

	log.Printf("Starting %s v%s", appTitle, version.Version)

	result, err := logo.Generate(logo.Config{
		ImagePath: *imagePath,
		AssetDir:  *assetDir,
		OutDir:    *outDir,
	})
	if err != nil {
		log.Fatalf("Logo generation failed: %v", err)
	}

	log.Printf("Wrote %s", result.SinogramPath)
	log.Printf("Wrote %s", result.LogoPath)

	if *show {
		figures := make([]viewer.Figure, len(result.Figures))
		for i, fig := range result.Figures {
			figures[i] = viewer.Figure{Title: fig.Title, Image: fig.Image}
		}
		viewer.Show(appTitle, figures)
	}
}
