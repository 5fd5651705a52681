package capture

import "io"

// PhotoStore persists captured photo frames and reports upload policy
type PhotoStore interface {
	SavePhoto(r io.Reader, mimeType string) (string, error)
	MaxSize() int64
	IsAllowedType(mimeType string) bool
}
