package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/dixieflatline76/Backdrop/pkg/backdrop"
	"github.com/dixieflatline76/Backdrop/util/log"
)

// openGalleryLabel is shown when there is no image yet.
const openGalleryLabel = "Open Gallery"

// Backdrop is the state the view renders.
type Backdrop interface {
	State() (backdrop.ImageRef, *backdrop.Dimensions)
	ComputeDisplayGeometry(viewportWidth, viewportHeight float64) (backdrop.Geometry, error)
	OnChange(fn func())
}

// BackdropView draws the selected image scaled to the window width, or an
// "Open Gallery" button when nothing has been selected.
type BackdropView struct {
	widget.BaseWidget

	source  Backdrop
	shown   backdrop.ImageRef
	image   *fyne.Container // holds the canvas.Image for shown
	empty   *fyne.Container
	overlay fyne.CanvasObject
}

// NewBackdropView creates a view of source. overlay is stacked on top and
// may be nil. onOpen runs when the "Open Gallery" button is tapped.
func NewBackdropView(source Backdrop, overlay fyne.CanvasObject, onOpen func()) *BackdropView {
	v := &BackdropView{
		source:  source,
		overlay: overlay,
		empty:   container.NewCenter(widget.NewButton(openGalleryLabel, onOpen)),
	}
	v.image = container.New(&backdropLayout{geometry: v.geometry})
	v.ExtendBaseWidget(v)

	source.OnChange(func() {
		fyne.Do(v.Refresh)
	})
	v.sync()
	return v
}

// CreateRenderer implements fyne.Widget.
func (v *BackdropView) CreateRenderer() fyne.WidgetRenderer {
	objects := []fyne.CanvasObject{v.image, v.empty}
	if v.overlay != nil {
		objects = append(objects, v.overlay)
	}
	return widget.NewSimpleRenderer(container.NewStack(objects...))
}

// Refresh picks up a newly selected image.
func (v *BackdropView) Refresh() {
	v.sync()
	v.BaseWidget.Refresh()
}

// sync swaps the displayed image when the selection has changed.
func (v *BackdropView) sync() {
	ref, _ := v.source.State()
	if ref == "" || !ref.Valid() {
		v.image.Hide()
		v.empty.Show()
		return
	}
	v.empty.Hide()
	v.image.Show()

	if ref == v.shown {
		v.image.Refresh()
		return
	}

	uri, err := storage.ParseURI(string(ref))
	if err != nil {
		log.Printf("Cannot display %s: %v", ref, err)
		return
	}
	img := canvas.NewImageFromURI(uri)
	img.FillMode = canvas.ImageFillCover
	img.ScaleMode = canvas.ImageScaleSmooth

	v.shown = ref
	v.image.Objects = []fyne.CanvasObject{img}
	v.image.Refresh()
}

// geometry is the display size for the current image. An unusable record
// falls back to covering the viewport.
func (v *BackdropView) geometry(width, height float64) backdrop.Geometry {
	g, err := v.source.ComputeDisplayGeometry(width, height)
	if err != nil {
		log.Printf("Cannot size backdrop: %v", err)
		return backdrop.Geometry{Width: width, Height: height}
	}
	return g
}
