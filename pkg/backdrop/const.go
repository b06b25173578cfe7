package backdrop

// RecordKey is the preference key the selected image record is stored under.
const RecordKey = "imageData"

// HeightFactor oversizes the picker-reported height to cover the gap between
// what the picker reports and what the display needs.
const HeightFactor = 1.1

// pickQuality asks the picker for the full quality original.
const pickQuality = 1.0

// Dialog copy.
const (
	reselectTitle   = "Change Picture"
	reselectMessage = "Select your picture size"
	cancelLabel     = "Cancel"

	alertTitle             = "Backdrop"
	msgPermissionRequired  = "Permission to access the gallery is required!"
	msgInvalidImageFormat  = "Image format not valid. Please try again."
	msgEmptyImageURI       = "Image URI is empty. Please try again."
	msgUnidentifiedFailure = "An unidentified error occurred. Please try again."
)
