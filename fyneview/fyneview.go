// Package fyneview shows the current shape of a drawer in a Fyne window.
package fyneview

import (
	"image"

	"fyne.io/fyne/v2"
	fyneCanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"
	"github.com/tdewolff/shapedraw"
)

// ShapeView is a widget that draws the state's shape centered in whatever space it is given. It rasterizes again on every resize or Refresh.
type ShapeView struct {
	widget.BaseWidget
	state   *shapedraw.State
	minSize fyne.Size
}

// New returns a view of state.
func New(state *shapedraw.State) *ShapeView {
	v := &ShapeView{
		state:   state,
		minSize: fyne.NewSize(200.0, 200.0),
	}
	v.ExtendBaseWidget(v)
	return v
}

// SetMinSize sets the smallest size the view asks for in the layout.
func (v *ShapeView) SetMinSize(size fyne.Size) {
	v.minSize = size
	v.Refresh()
}

// MinSize implements fyne.CanvasObject.
func (v *ShapeView) MinSize() fyne.Size {
	return v.minSize
}

// CreateRenderer implements fyne.Widget.
func (v *ShapeView) CreateRenderer() fyne.WidgetRenderer {
	raster := fyneCanvas.NewRaster(v.Image)
	return widget.NewSimpleRenderer(raster)
}

// Image returns the state rendered at w by h pixels.
func (v *ShapeView) Image(w, h int) image.Image {
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	c := v.state.Render(w, h)
	return rasterizer.Draw(c, canvas.DPMM(1.0), canvas.DefaultColorSpace)
}
