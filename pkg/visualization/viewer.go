// Package visualization assembles the interactive viewer window: the
// contrast-stretched grayscale image with a colorbar legend mapping
// intensity back to pixel value.
package visualization

import (
	"fmt"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"showfits/pkg/fitsimg"
	"showfits/pkg/stretch"
)

// Viewer renders one data unit as a grayscale image window.
type Viewer struct {
	// unit is the active data unit being displayed
	unit *fitsimg.Unit

	// vmin and vmax are the display bounds of the contrast stretch
	vmin float64
	vmax float64

	// windowWidth and windowHeight are the initial window size in pixels
	windowWidth  int
	windowHeight int
}

// NewViewer creates a viewer for the given unit with precomputed
// display bounds.
func NewViewer(unit *fitsimg.Unit, vmin, vmax float64, windowWidth, windowHeight int) *Viewer {
	return &Viewer{
		unit:         unit,
		vmin:         vmin,
		vmax:         vmax,
		windowWidth:  windowWidth,
		windowHeight: windowHeight,
	}
}

// Title returns the window title for the displayed grid.
func (v *Viewer) Title() string {
	return fmt.Sprintf("Width: %d, Height: %d", v.unit.Width, v.unit.Height)
}

// Image rasterizes the unit's pixel grid with the viewer's display bounds.
func (v *Viewer) Image() *image.Gray {
	return stretch.Gray(v.unit.Data, v.unit.Width, v.unit.Height, v.vmin, v.vmax)
}

// legend builds the colorbar strip with the display bounds labelled at
// its ends, white/vmax at the top.
func (v *Viewer) legend() fyne.CanvasObject {
	ramp := canvas.NewImageFromImage(stretch.Colorbar(16, 256))
	ramp.FillMode = canvas.ImageFillStretch
	ramp.SetMinSize(fyne.NewSize(16, 0))

	high := widget.NewLabel(fmt.Sprintf("%.6g", v.vmax))
	low := widget.NewLabel(fmt.Sprintf("%.6g", v.vmin))

	return container.NewBorder(high, low, nil, nil, ramp)
}

// Show opens the viewer window and blocks until the user closes it.
// The image fills the available area with independently scaled axes.
func (v *Viewer) Show() {
	a := app.New()
	w := a.NewWindow(v.Title())

	pic := canvas.NewImageFromImage(v.Image())
	pic.FillMode = canvas.ImageFillStretch

	w.SetContent(container.NewBorder(nil, nil, nil, v.legend(), pic))
	w.Resize(fyne.NewSize(float32(v.windowWidth), float32(v.windowHeight)))
	w.CenterOnScreen()
	w.ShowAndRun()
}
