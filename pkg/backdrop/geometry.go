package backdrop

// computeGeometry scales the image to the viewport width, keeping its aspect
// ratio. Without dimensions it falls back to an oversized full viewport.
func computeGeometry(dims *Dimensions, viewportWidth, viewportHeight float64) (Geometry, error) {
	if dims == nil {
		return Geometry{Width: viewportWidth, Height: viewportHeight * HeightFactor}, nil
	}
	if dims.Height == 0 {
		return Geometry{}, ErrZeroHeight
	}
	if dims.Width == 0 {
		return Geometry{}, ErrZeroWidth
	}
	ratio := dims.Width / dims.Height
	return Geometry{Width: viewportWidth, Height: viewportWidth / ratio}, nil
}
