package gallery

import (
	"context"
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/muesli/smartcrop"
)

// cropper cuts an image down to a target aspect ratio, keeping the most
// interesting region as scored by smartcrop.
type cropper struct {
	resampler imaging.ResampleFilter
}

func newCropper() *cropper {
	return &cropper{resampler: imaging.Lanczos}
}

// needsCrop reports whether img differs from the target aspect ratio.
func needsCrop(img image.Image, aspectW, aspectH float64) bool {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || aspectW <= 0 || aspectH <= 0 {
		return false
	}
	imageAspect := float64(b.Dx()) / float64(b.Dy())
	return math.Abs(imageAspect-aspectW/aspectH) > aspectTolerance
}

// CropToAspect returns the best region of img with the aspect ratio
// aspectW:aspectH, at the image's native resolution.
func (c *cropper) CropToAspect(ctx context.Context, img image.Image, aspectW, aspectH float64) (image.Image, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	if !needsCrop(img, aspectW, aspectH) {
		return img, nil
	}

	// smartcrop only looks at the ratio of the requested size.
	w, h := aspectBox(img.Bounds(), aspectW/aspectH)
	analyzer := smartcrop.NewAnalyzer(c)

	type cropResult struct {
		crop image.Rectangle
		err  error
	}
	resultChan := make(chan cropResult, 1)

	go func() {
		topCrop, err := analyzer.FindBestCrop(img, w, h)
		resultChan <- cropResult{crop: topCrop, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result := <-resultChan:
		if result.err != nil {
			return nil, fmt.Errorf("finding best crop: %w", result.err)
		}
		return imaging.Crop(img, result.crop), nil
	}
}

// Resize implements the smartcrop resizer used during analysis.
func (c *cropper) Resize(img image.Image, width, height uint) image.Image {
	return imaging.Resize(img, int(width), int(height), c.resampler)
}

// aspectBox is the largest box with the given aspect ratio that fits in b.
func aspectBox(b image.Rectangle, aspect float64) (int, int) {
	w, h := b.Dx(), b.Dy()
	if float64(w)/float64(h) > aspect {
		return int(math.Round(float64(h) * aspect)), h
	}
	return w, int(math.Round(float64(w) / aspect))
}

func checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
