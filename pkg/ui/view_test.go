package ui

import (
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dixieflatline76/Backdrop/pkg/backdrop"
)

// fakeBackdrop is a settable Backdrop.
type fakeBackdrop struct {
	mu        sync.Mutex
	ref       backdrop.ImageRef
	dims      *backdrop.Dimensions
	listeners []func()
}

func (f *fakeBackdrop) State() (backdrop.ImageRef, *backdrop.Dimensions) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ref, f.dims
}

func (f *fakeBackdrop) ComputeDisplayGeometry(w, h float64) (backdrop.Geometry, error) {
	_, dims := f.State()
	if dims == nil {
		return backdrop.Geometry{Width: w, Height: h * backdrop.HeightFactor}, nil
	}
	if dims.Height == 0 {
		return backdrop.Geometry{}, backdrop.ErrZeroHeight
	}
	return backdrop.Geometry{Width: w, Height: w / (dims.Width / dims.Height)}, nil
}

func (f *fakeBackdrop) OnChange(fn func()) {
	f.listeners = append(f.listeners, fn)
}

func (f *fakeBackdrop) set(ref backdrop.ImageRef, dims *backdrop.Dimensions) {
	f.mu.Lock()
	f.ref, f.dims = ref, dims
	f.mu.Unlock()
	for _, fn := range f.listeners {
		fn()
	}
}

func TestBackdropView_EmptyShowsOpenGallery(t *testing.T) {
	test.NewTempApp(t)
	opened := 0
	v := NewBackdropView(&fakeBackdrop{}, nil, func() { opened++ })
	w := test.NewTempWindow(t, v)
	w.Resize(fyne.NewSize(400, 800))

	assert.True(t, v.empty.Visible())
	assert.False(t, v.image.Visible())

	test.Tap(v.empty.Objects[0].(fyne.Tappable))
	assert.Equal(t, 1, opened)
}

func TestBackdropView_ShowsSelectedImage(t *testing.T) {
	test.NewTempApp(t)
	src := &fakeBackdrop{}
	v := NewBackdropView(src, nil, func() {})
	w := test.NewTempWindow(t, v)
	w.Resize(fyne.NewSize(400, 800))

	src.set("file:///pictures/beach.jpg", &backdrop.Dimensions{Width: 1080, Height: 1920})

	assert.Eventually(t, v.image.Visible, time.Second, 5*time.Millisecond)
	assert.False(t, v.empty.Visible())
	require.Len(t, v.image.Objects, 1)
	img, ok := v.image.Objects[0].(*canvas.Image)
	require.True(t, ok)
	assert.Equal(t, backdrop.ImageRef("file:///pictures/beach.jpg"), v.shown)
	assert.Equal(t, canvas.ImageFillCover, img.FillMode)
}

func TestBackdropLayout(t *testing.T) {
	src := &fakeBackdrop{dims: &backdrop.Dimensions{Width: 1080, Height: 1920}}
	v := &BackdropView{source: src}
	l := &backdropLayout{geometry: v.geometry}
	obj := canvas.NewRectangle(nil)

	l.Layout([]fyne.CanvasObject{obj}, fyne.NewSize(400, 800))

	assert.Equal(t, float32(400), obj.Size().Width)
	assert.InDelta(t, 711.11, obj.Size().Height, 0.01)
	assert.Equal(t, float32(0), obj.Position().X)
	assert.InDelta(t, (800-711.11)/2, obj.Position().Y, 0.01)
}

func TestBackdropLayout_ZeroHeightFallsBack(t *testing.T) {
	src := &fakeBackdrop{dims: &backdrop.Dimensions{Width: 1080, Height: 0}}
	v := &BackdropView{source: src}
	l := &backdropLayout{geometry: v.geometry}
	obj := canvas.NewRectangle(nil)

	l.Layout([]fyne.CanvasObject{obj}, fyne.NewSize(400, 800))

	assert.Equal(t, fyne.NewSize(400, 800), obj.Size())
}
