package gallery

import "time"

// imageExtensions are the files the picker offers.
var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".webp", ".tif", ".tiff"}

// cropPrefix names the copies written when a pick is cropped to the screen.
const cropPrefix = "crop-"

// aspectTolerance is how close an image's aspect ratio must be to the
// requested one to skip cropping.
const aspectTolerance = 0.01

// pulseDuration is how long the press feedback flash lasts.
const pulseDuration = 180 * time.Millisecond
