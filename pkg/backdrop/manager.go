package backdrop

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dixieflatline76/Backdrop/util"
	"github.com/dixieflatline76/Backdrop/util/log"
)

// Collaborators are the platform services the manager drives.
type Collaborators struct {
	Permission Permission
	Picker     Picker
	Haptics    Haptics // optional
	Notifier   Notifier
	Chooser    Chooser
	Screen     Screen
}

// Manager owns the selected image and its display dimensions. It restores
// them at startup, runs the picker flow and persists every completed pick.
type Manager struct {
	store Store
	deps  Collaborators

	busy     *util.SafeFlag // set while a selection is in flight
	dispatch func(func())   // runs selections started from dialog callbacks

	mu        sync.RWMutex
	image     ImageRef
	dims      *Dimensions
	listeners []func()
}

// NewManager creates a manager with empty state. Call Restore once the
// hosting window is up.
func NewManager(store Store, deps Collaborators) *Manager {
	return &Manager{
		store:    store,
		deps:     deps,
		busy:     util.NewSafeBool(),
		dispatch: func(f func()) { go f() },
	}
}

// OnChange registers fn to be called after a new image is committed.
// Listeners run on the goroutine that committed the change; a panic in one
// is logged and does not affect the others.
func (m *Manager) OnChange(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// State returns the current image and a copy of its dimensions. Both are
// empty until an image has been restored or selected.
func (m *Manager) State() (ImageRef, *Dimensions) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.dims == nil {
		return m.image, nil
	}
	d := *m.dims
	return m.image, &d
}

// Busy reports whether a selection is in progress.
func (m *Manager) Busy() bool {
	return m.busy.Value()
}

// Restore loads the saved record. With no saved record it opens the picker in
// full screen mode. An unreadable record is logged and leaves the state empty
// without opening the picker.
func (m *Manager) Restore(ctx context.Context) {
	text, err := m.store.Get(RecordKey)
	if err != nil {
		log.Printf("Failed to load the image: %v", err)
		return
	}
	if text == "" {
		log.Print("No saved image, opening the gallery")
		if err := m.SelectImage(ctx, ModeFullScreen); err != nil {
			log.Debugf("First run selection ended with: %v", err)
		}
		return
	}

	rec, err := decodeRecord(text)
	if err != nil {
		log.Printf("Failed to load the image: %v", err)
		return
	}
	m.commit(rec)
	log.Debugf("Restored %s at %vx%v", rec.URI, rec.Dimensions.Width, rec.Dimensions.Height)
}

// SelectImage asks for gallery access, lets the user pick an image and, on
// success, commits and saves it. Every failure is reported to the user here;
// the returned error only tells the caller what happened. A canceled pick
// returns nil.
func (m *Manager) SelectImage(ctx context.Context, mode Mode) (err error) {
	if !m.busy.TryAcquire() {
		log.Debugf("Ignoring %s selection, another one is in progress", mode)
		return ErrBusy
	}
	defer m.busy.Release()

	defer func() {
		if r := recover(); r != nil {
			err = m.unexpected(fmt.Errorf("panic: %v", r))
		}
	}()

	granted, err := m.deps.Permission.Request(ctx)
	if err != nil {
		return m.unexpected(err)
	}
	if !granted {
		m.alert(msgPermissionRequired)
		return ErrPermissionDenied
	}

	result, err := m.deps.Picker.Launch(ctx, m.pickOptions(mode))
	if err != nil {
		return m.unexpected(err)
	}
	if result.Canceled {
		log.Debug("Picker canceled")
		return nil
	}

	if len(result.Assets) == 0 || result.Assets[0].URI == "" {
		m.alert(msgInvalidImageFormat)
		return ErrInvalidAsset
	}
	asset := result.Assets[0]
	ref := ImageRef(asset.URI)
	if !ref.Valid() {
		m.alert(msgEmptyImageURI)
		return fmt.Errorf("%w: blank uri", ErrInvalidAsset)
	}

	dims := Dimensions{Width: asset.Width, Height: asset.Height * HeightFactor}
	if !dims.Valid() {
		log.Printf("Rejecting %s with dimensions %vx%v", ref, asset.Width, asset.Height)
		m.alert(msgInvalidImageFormat)
		return fmt.Errorf("%w: dimensions %vx%v", ErrInvalidAsset, asset.Width, asset.Height)
	}

	rec := Record{URI: ref, Dimensions: dims}
	text, err := encodeRecord(rec)
	if err != nil {
		return m.unexpected(err)
	}

	m.commit(rec)
	if err := m.store.Set(RecordKey, text); err != nil {
		log.Printf("Failed to save the image: %v", err)
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	log.Printf("Selected %s (%s)", ref, mode)
	return nil
}

// RequestReselect acknowledges a long press and asks the user which mode to
// pick a new image in.
func (m *Manager) RequestReselect(ctx context.Context) {
	m.triggerHaptics()

	modes := []Mode{ModeFullScreen, ModeDefault}
	labels := make([]string, len(modes))
	for i, mode := range modes {
		labels[i] = mode.String()
	}

	m.deps.Chooser.Choose(reselectTitle, reselectMessage, cancelLabel, labels, func(index int) {
		if index < 0 || index >= len(modes) {
			return
		}
		mode := modes[index]
		m.dispatch(func() {
			if err := m.SelectImage(ctx, mode); err != nil {
				log.Debugf("Reselect in %s mode ended with: %v", mode, err)
			}
		})
	})
}

// ComputeDisplayGeometry returns the size to draw the current image at in a
// viewport of the given size.
func (m *Manager) ComputeDisplayGeometry(viewportWidth, viewportHeight float64) (Geometry, error) {
	_, dims := m.State()
	return computeGeometry(dims, viewportWidth, viewportHeight)
}

func (m *Manager) pickOptions(mode Mode) PickOptions {
	opts := PickOptions{
		AllowsEditing: mode == ModeFullScreen,
		Quality:       pickQuality,
	}
	if mode != ModeFullScreen || m.deps.Screen == nil {
		return opts
	}
	w, h := m.deps.Screen.Size()
	if w <= 0 || h <= 0 {
		log.Printf("Screen size %vx%v unusable, picking without an aspect", w, h)
		return opts
	}
	opts.Aspect = &[2]float64{w, h}
	return opts
}

func (m *Manager) commit(rec Record) {
	m.mu.Lock()
	dims := rec.Dimensions
	m.image = rec.URI
	m.dims = &dims
	listeners := append([]func(){}, m.listeners...)
	m.mu.Unlock()

	for _, fn := range listeners {
		notify(fn)
	}
}

// notify runs a change listener. A listener that panics is logged so the
// commit it reports still gets saved.
func notify(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Change listener failed: %v", r)
		}
	}()
	fn()
}

// unexpected logs err and shows the generic failure message. A canceled
// context is not the user's concern and is only logged.
func (m *Manager) unexpected(err error) error {
	log.Printf("Error picking image: %v", err)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	m.alert(msgUnidentifiedFailure)
	return fmt.Errorf("%w: %w", ErrUnexpected, err)
}

func (m *Manager) alert(message string) {
	m.deps.Notifier.Alert(alertTitle, message)
}

func (m *Manager) triggerHaptics() {
	if m.deps.Haptics == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Debugf("Haptic feedback failed: %v", r)
		}
	}()
	m.deps.Haptics.Trigger()
}
