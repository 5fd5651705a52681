package download

import "bilfoto-backend/pkg/models"

// ImageStore is the gallery store view the download service needs
type ImageStore interface {
	Images() []*models.ProcessedImage
	HasFolder(name string) bool
}

// ImageReader resolves image references to raw bytes
type ImageReader interface {
	ReadImage(ref models.ImageRef) ([]byte, error)
}
