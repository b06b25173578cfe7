package gallery

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// Notifier shows information dialogs on a window.
type Notifier struct {
	win fyne.Window
}

// NewNotifier creates a notifier for win.
func NewNotifier(win fyne.Window) *Notifier {
	return &Notifier{win: win}
}

// Alert shows message and blocks until the user dismisses it. It must not be
// called from the UI goroutine.
func (n *Notifier) Alert(title, message string) {
	closed := make(chan struct{})
	fyne.Do(func() {
		d := dialog.NewInformation(title, message, n.win)
		d.SetOnClosed(func() { close(closed) })
		d.Show()
	})
	<-closed
}

// Chooser asks the user to pick one of several actions.
type Chooser struct {
	win fyne.Window
}

// NewChooser creates a chooser for win.
func NewChooser(win fyne.Window) *Chooser {
	return &Chooser{win: win}
}

// Choose shows a dialog with a cancel button followed by one button per
// option. onPick runs on the UI goroutine.
func (c *Chooser) Choose(title, message, cancel string, options []string, onPick func(index int)) {
	fyne.Do(func() {
		d := dialog.NewCustomWithoutButtons(title, widget.NewLabel(message), c.win)

		buttons := make([]fyne.CanvasObject, 0, len(options)+1)
		buttons = append(buttons, widget.NewButton(cancel, func() {
			d.Hide()
			onPick(-1)
		}))
		for i, label := range options {
			btn := widget.NewButton(label, func() {
				d.Hide()
				onPick(i)
			})
			btn.Importance = widget.HighImportance
			buttons = append(buttons, btn)
		}

		d.SetButtons(buttons)
		d.Show()
	})
}

// WindowScreen reports the size of a window's canvas.
type WindowScreen struct {
	win fyne.Window
}

// NewWindowScreen creates a screen for win.
func NewWindowScreen(win fyne.Window) *WindowScreen {
	return &WindowScreen{win: win}
}

// Size returns the canvas size in device independent pixels.
func (s *WindowScreen) Size() (float64, float64) {
	size := s.win.Canvas().Size()
	return float64(size.Width), float64(size.Height)
}
