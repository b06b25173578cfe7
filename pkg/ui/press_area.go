package ui

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// PressArea wraps content and fires OnLongPress once a press has been held
// for the configured delay. Releasing earlier cancels it.
type PressArea struct {
	widget.BaseWidget

	OnLongPress func()

	content fyne.CanvasObject
	delay   time.Duration

	mu    sync.Mutex
	gen   uint64 // bumped on every press and release
	timer *time.Timer
}

var (
	_ desktop.Mouseable = (*PressArea)(nil)
	_ mobile.Touchable  = (*PressArea)(nil)
)

// NewPressArea creates a press area around content.
func NewPressArea(content fyne.CanvasObject, delay time.Duration, onLongPress func()) *PressArea {
	p := &PressArea{
		OnLongPress: onLongPress,
		content:     content,
		delay:       delay,
	}
	p.ExtendBaseWidget(p)
	return p
}

// CreateRenderer implements fyne.Widget.
func (p *PressArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.content)
}

// MouseDown starts a press on the primary button.
func (p *PressArea) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		p.press()
	}
}

// MouseUp ends the press.
func (p *PressArea) MouseUp(*desktop.MouseEvent) {
	p.release()
}

// TouchDown starts a press.
func (p *PressArea) TouchDown(*mobile.TouchEvent) {
	p.press()
}

// TouchUp ends the press.
func (p *PressArea) TouchUp(*mobile.TouchEvent) {
	p.release()
}

// TouchCancel ends the press.
func (p *PressArea) TouchCancel(*mobile.TouchEvent) {
	p.release()
}

func (p *PressArea) press() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
	gen := p.gen
	p.timer = time.AfterFunc(p.delay, func() { p.fire(gen) })
}

func (p *PressArea) release() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *PressArea) stopLocked() {
	p.gen++
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}

// fire runs OnLongPress unless the press it was armed for has ended.
func (p *PressArea) fire(gen uint64) {
	p.mu.Lock()
	if gen != p.gen {
		p.mu.Unlock()
		return
	}
	p.timer = nil
	p.mu.Unlock()

	if p.OnLongPress != nil {
		fyne.Do(p.OnLongPress)
	}
}
