package backdrop

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrPermissionDenied is returned when gallery access was refused.
	ErrPermissionDenied = errors.New("gallery permission denied")
	// ErrInvalidAsset is returned when the picker result has no usable image.
	ErrInvalidAsset = errors.New("picked asset is not usable")
	// ErrUnexpected wraps any other collaborator failure during a selection.
	ErrUnexpected = errors.New("unexpected selection failure")
	// ErrBusy is returned when a selection is already in progress.
	ErrBusy = errors.New("a selection is already in progress")
	// ErrPersist is returned when the record could not be written.
	ErrPersist = errors.New("saving the selected image failed")
	// ErrZeroHeight is returned when display geometry is requested for an image
	// with no height.
	ErrZeroHeight = errors.New("image height is zero")
	// ErrZeroWidth is the width counterpart of ErrZeroHeight.
	ErrZeroWidth = errors.New("image width is zero")
)

// ImageRef locates the selected image. It is opaque to the manager.
type ImageRef string

// Valid reports whether the reference is non-empty after trimming whitespace.
func (r ImageRef) Valid() bool {
	return strings.TrimSpace(string(r)) != ""
}

// Dimensions is the display size recorded for the selected image.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Valid reports whether both sides are positive.
func (d Dimensions) Valid() bool {
	return d.Width > 0 && d.Height > 0
}

// Record is the persisted pair of image location and display dimensions.
type Record struct {
	URI        ImageRef   `json:"uri"`
	Dimensions Dimensions `json:"dimensions"`
}

// Geometry is the on-screen size the image should be drawn at.
type Geometry struct {
	Width  float64
	Height float64
}

// Mode selects how the picker crops the chosen image.
type Mode int

const (
	// ModeFullScreen locks the crop to the screen's aspect ratio.
	ModeFullScreen Mode = iota
	// ModeDefault keeps the image unconstrained.
	ModeDefault
)

func (m Mode) String() string {
	switch m {
	case ModeFullScreen:
		return "Full Screen"
	case ModeDefault:
		return "Default"
	default:
		return "Unknown"
	}
}

// PickOptions are passed to the picker.
type PickOptions struct {
	AllowsEditing bool
	Aspect        *[2]float64 // width, height; nil for unconstrained
	Quality       float64
}

// Asset is a single image returned by the picker.
type Asset struct {
	URI    string
	Width  float64
	Height float64
}

// PickResult is what the picker returns.
type PickResult struct {
	Canceled bool
	Assets   []Asset
}

// Permission asks for access to the user's pictures.
type Permission interface {
	Request(ctx context.Context) (bool, error)
}

// Picker lets the user choose an image.
type Picker interface {
	Launch(ctx context.Context, opts PickOptions) (PickResult, error)
}

// Haptics acknowledges a long press. It is best effort.
type Haptics interface {
	Trigger()
}

// Store is a string key-value store.
type Store interface {
	// Get returns "" with a nil error when the key is absent.
	Get(key string) (string, error)
	Set(key, value string) error
}

// Notifier shows a modal message the user must dismiss.
type Notifier interface {
	Alert(title, message string)
}

// Chooser presents a set of options next to a cancel button. onPick receives
// the chosen index, or -1 when the user cancels.
type Chooser interface {
	Choose(title, message, cancel string, options []string, onPick func(index int))
}

// Screen reports the size of the display surface.
type Screen interface {
	Size() (width, height float64)
}
