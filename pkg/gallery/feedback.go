package gallery

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// Pulse acknowledges a long press with a brief flash over the backdrop.
// Desktop drivers have no vibration API, so the flash stands in for it.
type Pulse struct {
	veil *canvas.Rectangle
	anim *fyne.Animation
}

// NewPulse creates a pulse. Its Object must be stacked above the backdrop.
func NewPulse() *Pulse {
	veil := canvas.NewRectangle(color.Transparent)
	anim := canvas.NewColorRGBAAnimation(
		color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x60},
		color.Transparent,
		pulseDuration,
		func(c color.Color) {
			veil.FillColor = c
			veil.Refresh()
		})
	return &Pulse{veil: veil, anim: anim}
}

// Object is the overlay the flash is drawn on.
func (p *Pulse) Object() fyne.CanvasObject {
	return p.veil
}

// Trigger starts the flash without waiting for it.
func (p *Pulse) Trigger() {
	fyne.Do(func() {
		p.anim.Stop()
		p.anim.Start()
	})
}
