package models

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// ImageKind discriminates how an ImageRef addresses its image data
type ImageKind string

const (
	// ImageKindFile references image bytes on the local filesystem
	ImageKindFile ImageKind = "file"
	// ImageKindInline carries the image bytes in the reference itself
	ImageKindInline ImageKind = "inline"
)

// ImageRef is a tagged reference to an image: either a local file location
// or an inlined payload. Consumers branch on Kind instead of sniffing
// string prefixes.
type ImageRef struct {
	Kind     ImageKind `json:"kind"`
	Path     string    `json:"path,omitempty"`
	Data     []byte    `json:"data,omitempty"`
	MimeType string    `json:"mime_type,omitempty"`
}

// FileRef creates an ImageRef pointing at a local file
func FileRef(path string) ImageRef {
	return ImageRef{Kind: ImageKindFile, Path: path}
}

// InlineRef creates an ImageRef carrying the image bytes directly
func InlineRef(data []byte, mimeType string) ImageRef {
	return ImageRef{Kind: ImageKindInline, Data: data, MimeType: mimeType}
}

// ParseImageRef parses a URI-like image location string into an ImageRef.
// Accepted forms: "data:<mime>;base64,<payload>", "file://<path>", or a
// plain filesystem path.
func ParseImageRef(s string) (ImageRef, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ImageRef{}, errors.New("empty image reference")
	}

	if strings.HasPrefix(s, "data:") {
		rest := strings.TrimPrefix(s, "data:")
		mimeType, payload, found := strings.Cut(rest, ";base64,")
		if !found {
			return ImageRef{}, fmt.Errorf("unsupported data URI encoding: %.32s", s)
		}

		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return ImageRef{}, fmt.Errorf("invalid base64 payload: %w", err)
		}

		return InlineRef(data, mimeType), nil
	}

	if path, found := strings.CutPrefix(s, "file://"); found {
		if path == "" {
			return ImageRef{}, errors.New("empty file URI")
		}
		return FileRef(path), nil
	}

	return FileRef(s), nil
}

// IsZero reports whether the reference is empty
func (r ImageRef) IsZero() bool {
	return r.Kind == ""
}

// DataURI encodes an inline reference as a "data:" URI. File references
// have no inline bytes and return an error.
func (r ImageRef) DataURI() (string, error) {
	if r.Kind != ImageKindInline {
		return "", fmt.Errorf("cannot encode %s reference as data URI", r.Kind)
	}

	mimeType := r.MimeType
	if mimeType == "" {
		mimeType = "image/png"
	}

	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(r.Data)), nil
}

// Location returns the URI-like string form of the reference
func (r ImageRef) Location() string {
	switch r.Kind {
	case ImageKindFile:
		return r.Path
	case ImageKindInline:
		uri, err := r.DataURI()
		if err != nil {
			return ""
		}
		return uri
	default:
		return ""
	}
}

// ProcessedImage is a before/after pair produced by a successful
// background-removal call. FolderName is empty until the user assigns the
// image to a folder; assignment happens exactly once.
type ProcessedImage struct {
	Before     ImageRef `json:"before"`
	After      ImageRef `json:"after"`
	FolderName string   `json:"folder_name"`
}
