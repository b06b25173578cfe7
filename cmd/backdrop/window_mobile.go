//go:build android || ios

package main

import "fyne.io/fyne/v2"

func configureWindow(w fyne.Window) {
	w.SetFullScreen(true)
}
