package removebg

import "bilfoto-backend/pkg/models"

// ImageReader resolves image references to raw bytes
type ImageReader interface {
	ReadImage(ref models.ImageRef) ([]byte, error)
}
