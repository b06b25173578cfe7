package gallery

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dixieflatline76/Backdrop/pkg/backdrop"
)

// dirStorage is a fyne.Storage rooted in a temp directory.
type dirStorage struct {
	dir string
}

func (s *dirStorage) RootURI() fyne.URI {
	return storage.NewFileURI(s.dir)
}

func (s *dirStorage) Create(name string) (fyne.URIWriteCloser, error) {
	return storage.Writer(storage.NewFileURI(filepath.Join(s.dir, name)))
}

func (s *dirStorage) Open(name string) (fyne.URIReadCloser, error) {
	return storage.Reader(storage.NewFileURI(filepath.Join(s.dir, name)))
}

func (s *dirStorage) Save(name string) (fyne.URIWriteCloser, error) {
	return s.Create(name)
}

func (s *dirStorage) Remove(name string) error {
	return os.Remove(filepath.Join(s.dir, name))
}

func (s *dirStorage) List() []string {
	entries, _ := os.ReadDir(s.dir)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

// trackedReader is a fyne.URIReadCloser that records Close.
type trackedReader struct {
	*strings.Reader
	uri    fyne.URI
	closed bool
}

func (r *trackedReader) URI() fyne.URI { return r.uri }

func (r *trackedReader) Close() error {
	r.closed = true
	return nil
}

func newTrackedReader() *trackedReader {
	return &trackedReader{Reader: strings.NewReader(""), uri: storage.NewFileURI("/pictures/late.png")}
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, createTestImage(w, h)))
	return buf.Bytes()
}

func newTestPicker(t *testing.T) (*Picker, *dirStorage) {
	t.Helper()
	test.NewTempApp(t)
	store := &dirStorage{dir: t.TempDir()}
	return NewPicker(nil, store, ""), store
}

func TestPickerProcess(t *testing.T) {
	source := storage.NewFileURI("/pictures/beach.png")

	t.Run("Default mode reports the original", func(t *testing.T) {
		p, store := newTestPicker(t)
		res, err := p.process(context.Background(), source, bytes.NewReader(encodePNG(t, 300, 200)), backdrop.PickOptions{Quality: 1})
		require.NoError(t, err)

		require.Len(t, res.Assets, 1)
		assert.Equal(t, source.String(), res.Assets[0].URI)
		assert.Equal(t, 300.0, res.Assets[0].Width)
		assert.Equal(t, 200.0, res.Assets[0].Height)
		assert.Empty(t, store.List())
	})

	t.Run("Undecodable file has no assets", func(t *testing.T) {
		p, _ := newTestPicker(t)
		res, err := p.process(context.Background(), source, strings.NewReader("definitely not pixels"), backdrop.PickOptions{})
		require.NoError(t, err)
		assert.False(t, res.Canceled)
		assert.Empty(t, res.Assets)
	})

	t.Run("Full screen crops to the aspect", func(t *testing.T) {
		p, store := newTestPicker(t)
		opts := backdrop.PickOptions{AllowsEditing: true, Aspect: &[2]float64{9, 16}, Quality: 1}

		res, err := p.process(context.Background(), source, bytes.NewReader(encodePNG(t, 400, 400)), opts)
		require.NoError(t, err)
		require.Len(t, res.Assets, 1)

		asset := res.Assets[0]
		assert.NotEqual(t, source.String(), asset.URI)
		assert.InDelta(t, 400.0, asset.Height, 2)
		assert.InDelta(t, 9.0/16.0, asset.Width/asset.Height, 0.02)

		names := store.List()
		require.Len(t, names, 1)
		assert.True(t, strings.HasPrefix(names[0], cropPrefix))
		assert.True(t, strings.HasSuffix(names[0], ".png"))
	})

	t.Run("A new crop replaces the previous one", func(t *testing.T) {
		p, store := newTestPicker(t)
		opts := backdrop.PickOptions{AllowsEditing: true, Aspect: &[2]float64{9, 16}, Quality: 1}

		first, err := p.process(context.Background(), source, bytes.NewReader(encodePNG(t, 400, 400)), opts)
		require.NoError(t, err)
		second, err := p.process(context.Background(), source, bytes.NewReader(encodePNG(t, 400, 400)), opts)
		require.NoError(t, err)

		assert.NotEqual(t, first.Assets[0].URI, second.Assets[0].URI)
		assert.Len(t, store.List(), 1)
	})

	t.Run("Editing without an aspect keeps the original", func(t *testing.T) {
		p, store := newTestPicker(t)
		res, err := p.process(context.Background(), source, bytes.NewReader(encodePNG(t, 400, 400)), backdrop.PickOptions{AllowsEditing: true})
		require.NoError(t, err)
		assert.Equal(t, source.String(), res.Assets[0].URI)
		assert.Empty(t, store.List())
	})
}

func TestPendingOpen(t *testing.T) {
	t.Run("Delivers while waiting", func(t *testing.T) {
		pending := newPendingOpen()
		r := newTrackedReader()

		pending.deliver(r, nil)

		res := <-pending.done
		assert.Same(t, r, res.reader)
		assert.False(t, r.closed)
	})

	t.Run("Pick after abandon is closed", func(t *testing.T) {
		pending := newPendingOpen()
		r := newTrackedReader()

		pending.abandon()
		pending.deliver(r, nil)

		assert.True(t, r.closed)
		assert.Empty(t, pending.done)
	})

	t.Run("Undelivered pick is closed on abandon", func(t *testing.T) {
		pending := newPendingOpen()
		r := newTrackedReader()

		pending.deliver(r, nil)
		pending.abandon()

		assert.True(t, r.closed)
		assert.Empty(t, pending.done)
	})

	t.Run("Cancel after abandon", func(t *testing.T) {
		pending := newPendingOpen()
		pending.abandon()
		assert.NotPanics(t, func() { pending.deliver(nil, nil) })
	})
}

func TestJPEGQuality(t *testing.T) {
	assert.Equal(t, 100, jpegQuality(1))
	assert.Equal(t, 80, jpegQuality(0.8))
	assert.Equal(t, 100, jpegQuality(0))
	assert.Equal(t, 100, jpegQuality(7))
	assert.Equal(t, 1, jpegQuality(0.001))
}
