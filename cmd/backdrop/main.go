package main

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/dixieflatline76/Backdrop/asset"
	"github.com/dixieflatline76/Backdrop/config"
	"github.com/dixieflatline76/Backdrop/pkg/backdrop"
	"github.com/dixieflatline76/Backdrop/pkg/gallery"
	"github.com/dixieflatline76/Backdrop/pkg/ui"
	"github.com/dixieflatline76/Backdrop/util/log"
)

func main() {
	locked, err := acquireLock()
	if err != nil {
		log.Fatalf("Failed to check for a running %s: %v", config.AppName, err)
	}
	if !locked {
		log.Printf("Another instance of %s is already running.", config.AppName)
		return
	}
	defer releaseLock()

	a := app.NewWithID(config.AppID)
	if icon, err := asset.NewManager().GetIcon(asset.AppIcon); err == nil {
		a.SetIcon(icon)
	}
	cfg := config.NewAppConfig(a.Preferences())

	w := a.NewWindow(config.AppName)
	w.SetMaster()
	w.SetPadded(false)
	configureWindow(w)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pulse := gallery.NewPulse()
	deps := backdrop.Collaborators{
		Permission: permissionFor(a),
		Picker:     gallery.NewPicker(w, a.Storage(), pickerLocation(a)),
		Notifier:   gallery.NewNotifier(w),
		Chooser:    gallery.NewChooser(w),
		Screen:     gallery.NewWindowScreen(w),
	}
	if cfg.GetHapticsEnabled() {
		deps.Haptics = pulse
	}
	mgr := backdrop.NewManager(backdrop.NewPrefsStore(a.Preferences()), deps)

	view := ui.NewBackdropView(mgr, pulse.Object(), func() {
		go mgr.SelectImage(ctx, backdrop.ModeFullScreen)
	})
	w.SetContent(ui.NewPressArea(view, cfg.GetLongPressDelay(), func() {
		mgr.RequestReselect(ctx)
	}))

	a.Lifecycle().SetOnStarted(func() {
		log.Printf("%s %s started", config.AppName, config.AppVersion)
		go mgr.Restore(ctx)
	})
	w.ShowAndRun()
}

// permissionFor picks how gallery access is checked. Mobile pickers ask the
// user themselves.
func permissionFor(a fyne.App) backdrop.Permission {
	if a.Driver().Device().IsMobile() {
		return gallery.AlwaysGranted{}
	}
	return gallery.NewLibraryPermission(gallery.PicturesDir())
}

func pickerLocation(a fyne.App) string {
	if a.Driver().Device().IsMobile() {
		return ""
	}
	return gallery.PicturesDir()
}
