//go:build !android && !ios

package main

import "fyne.io/fyne/v2"

// Phone-like portrait window so the backdrop reads like a wallpaper.
func configureWindow(w fyne.Window) {
	w.Resize(fyne.NewSize(390, 844))
	w.CenterOnScreen()
}
