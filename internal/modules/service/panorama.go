package service

import (
	"math"
)

// Equirectangular panorama limits. Dimensions of 0x0 mean "unknown" and
// skip the check; anything else must satisfy all of them.
const (
	panoramaRatio          = 2.0
	panoramaRatioTolerance = 0.05
	panoramaMinBytes       = 100 << 10
)

type panoramaSize struct {
	Width  int `validate:"gte=2048,lte=8192"`
	Height int `validate:"gte=1024,lte=4096"`
}

func validatePanorama(op string, width, height int) error {
	if width == 0 && height == 0 {
		return nil
	}
	if width <= 0 || height <= 0 {
		return validationErr(op, "image_width and image_height must both be set")
	}
	ratio := float64(width) / float64(height)
	if math.Abs(ratio-panoramaRatio) > panoramaRatioTolerance {
		return validationErr(op, "aspect ratio %.2f:1 is not 2:1 (±%.0f%%)", ratio, panoramaRatioTolerance*100)
	}
	return validateStruct(op, panoramaSize{Width: width, Height: height})
}

func validatePanoramaBytes(op string, size, maxBytes int64) error {
	if size < panoramaMinBytes {
		return validationErr(op, "file is smaller than %d KB", panoramaMinBytes>>10)
	}
	if size > maxBytes {
		return validationErr(op, "file exceeds %d MB", maxBytes>>20)
	}
	return nil
}
