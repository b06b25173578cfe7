package gallery

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"math"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/tiff" // Register TIFF decoder
	_ "golang.org/x/image/webp" // Register WebP decoder

	"github.com/dixieflatline76/Backdrop/pkg/backdrop"
	"github.com/dixieflatline76/Backdrop/util/log"
)

// Picker lets the user choose an image with Fyne's file open dialog.
// When editing is requested with an aspect ratio it crops the pick to that
// ratio and hands back a copy kept in the application's storage.
type Picker struct {
	win      fyne.Window
	store    fyne.Storage
	location string // directory the dialog opens in; empty for the default
	cropper  *cropper
}

// NewPicker creates a picker whose dialogs belong to win. Cropped copies are
// written to store. location may be empty.
func NewPicker(win fyne.Window, store fyne.Storage, location string) *Picker {
	return &Picker{
		win:      win,
		store:    store,
		location: location,
		cropper:  newCropper(),
	}
}

type openResult struct {
	reader fyne.URIReadCloser
	err    error
}

// pendingOpen carries the dialog result to Launch. After Launch stops
// waiting, a late pick is closed rather than delivered.
type pendingOpen struct {
	mu        sync.Mutex
	abandoned bool
	done      chan openResult
}

func newPendingOpen() *pendingOpen {
	return &pendingOpen{done: make(chan openResult, 1)}
}

func (p *pendingOpen) deliver(r fyne.URIReadCloser, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.abandoned {
		closeReader(r)
		return
	}
	p.done <- openResult{reader: r, err: err}
}

func (p *pendingOpen) abandon() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.abandoned = true
	select {
	case res := <-p.done:
		closeReader(res.reader)
	default:
	}
}

func closeReader(r fyne.URIReadCloser) {
	if r == nil {
		return
	}
	log.Debugf("Discarding late pick %s", r.URI())
	if err := r.Close(); err != nil {
		log.Printf("Failed to close %s: %v", r.URI(), err)
	}
}

// Launch shows the open dialog and blocks until the user picks or cancels.
// If ctx ends first the dialog is dismissed. It must not be called from the
// UI goroutine.
func (p *Picker) Launch(ctx context.Context, opts backdrop.PickOptions) (backdrop.PickResult, error) {
	pending := newPendingOpen()
	var d *dialog.FileDialog
	fyne.Do(func() {
		d = dialog.NewFileOpen(pending.deliver, p.win)
		d.SetFilter(storage.NewExtensionFileFilter(imageExtensions))
		if loc := p.listableLocation(); loc != nil {
			d.SetLocation(loc)
		}
		d.Show()
	})

	var res openResult
	select {
	case <-ctx.Done():
		pending.abandon()
		fyne.Do(func() {
			if d != nil {
				d.Hide()
			}
		})
		return backdrop.PickResult{}, ctx.Err()
	case res = <-pending.done:
	}

	if res.err != nil {
		return backdrop.PickResult{}, fmt.Errorf("opening image: %w", res.err)
	}
	if res.reader == nil {
		return backdrop.PickResult{Canceled: true}, nil
	}
	defer res.reader.Close()

	return p.process(ctx, res.reader.URI(), res.reader, opts)
}

// process turns the chosen file into a pick result. Files that cannot be
// decoded as images yield a result with no assets.
func (p *Picker) process(ctx context.Context, uri fyne.URI, r io.Reader, opts backdrop.PickOptions) (backdrop.PickResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return backdrop.PickResult{}, fmt.Errorf("reading %s: %w", uri, err)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		log.Printf("Not an image %s: %v", uri, err)
		return backdrop.PickResult{}, nil
	}
	asset := backdrop.Asset{URI: uri.String(), Width: float64(cfg.Width), Height: float64(cfg.Height)}

	if !opts.AllowsEditing || opts.Aspect == nil {
		return backdrop.PickResult{Assets: []backdrop.Asset{asset}}, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return backdrop.PickResult{}, fmt.Errorf("decoding %s: %w", uri, err)
	}
	if !needsCrop(img, opts.Aspect[0], opts.Aspect[1]) {
		return backdrop.PickResult{Assets: []backdrop.Asset{asset}}, nil
	}

	cropped, err := p.cropper.CropToAspect(ctx, img, opts.Aspect[0], opts.Aspect[1])
	if err != nil {
		return backdrop.PickResult{}, fmt.Errorf("cropping %s: %w", uri, err)
	}
	saved, err := p.saveCrop(cropped, format, opts.Quality)
	if err != nil {
		return backdrop.PickResult{}, err
	}
	b := cropped.Bounds()
	log.Debugf("Cropped %s from %dx%d to %dx%d", uri, cfg.Width, cfg.Height, b.Dx(), b.Dy())

	return backdrop.PickResult{Assets: []backdrop.Asset{{
		URI:    saved.String(),
		Width:  float64(b.Dx()),
		Height: float64(b.Dy()),
	}}}, nil
}

// saveCrop writes img into app storage and removes older crops.
func (p *Picker) saveCrop(img image.Image, format string, quality float64) (fyne.URI, error) {
	ext, imgFormat := ".jpg", imaging.JPEG
	if format == "png" {
		ext, imgFormat = ".png", imaging.PNG
	}
	name := cropPrefix + uuid.NewString() + ext

	w, err := p.store.Create(name)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", name, err)
	}
	err = imaging.Encode(w, img, imgFormat, imaging.JPEGQuality(jpegQuality(quality)))
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, fmt.Errorf("writing %s: %w", name, err)
	}
	uri := w.URI()

	for _, old := range p.store.List() {
		if old == name || !strings.HasPrefix(old, cropPrefix) {
			continue
		}
		if err := p.store.Remove(old); err != nil {
			log.Printf("Failed to remove old crop %s: %v", old, err)
		}
	}
	return uri, nil
}

func (p *Picker) listableLocation() fyne.ListableURI {
	if p.location == "" {
		return nil
	}
	loc, err := storage.ListerForURI(storage.NewFileURI(p.location))
	if err != nil {
		log.Debugf("Picker location %s unavailable: %v", p.location, err)
		return nil
	}
	return loc
}

// jpegQuality maps a 0..1 picker quality onto the JPEG 1..100 scale.
func jpegQuality(q float64) int {
	if q <= 0 || q > 1 {
		q = 1
	}
	return int(math.Max(1, math.Round(q*100)))
}
