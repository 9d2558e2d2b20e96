// Package viewer displays the figures a pipeline run collected.
package viewer

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// Figure is one titled image to display.
type Figure struct {
	Title string
	Image image.Image
}

// Show opens a window with one tab per figure and blocks until the
// window is closed. Figures are collected during the run and shown
// once at the end, so the pipeline itself never waits on the viewer.
func Show(title string, figures []Figure) {
	a := app.New()
	w := a.NewWindow(title)

	tabs := container.NewAppTabs()
	for _, fig := range figures {
		img := fynecanvas.NewImageFromImage(fig.Image)
		img.FillMode = fynecanvas.ImageFillContain
		img.ScaleMode = fynecanvas.ImageScalePixels
		tabs.Append(container.NewTabItem(fig.Title, img))
	}
	w.SetContent(tabs)
	w.Resize(fyne.NewSize(900, 600))
	w.ShowAndRun()
}
