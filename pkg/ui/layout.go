package ui

import (
	"fyne.io/fyne/v2"

	"github.com/dixieflatline76/Backdrop/pkg/backdrop"
)

// geometryFunc sizes the backdrop for a viewport.
type geometryFunc func(viewportWidth, viewportHeight float64) backdrop.Geometry

// backdropLayout centers its objects at the size geometry picks for the
// container. Objects may overflow the container on either axis.
type backdropLayout struct {
	geometry geometryFunc
}

// MinSize lets the backdrop shrink to nothing.
func (l *backdropLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(0, 0)
}

// Layout arranges the objects.
func (l *backdropLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	g := l.geometry(float64(containerSize.Width), float64(containerSize.Height))
	size := fyne.NewSize(float32(g.Width), float32(g.Height))
	pos := fyne.NewPos((containerSize.Width-size.Width)/2, (containerSize.Height-size.Height)/2)

	for _, o := range objects {
		o.Resize(size)
		o.Move(pos)
	}
}
