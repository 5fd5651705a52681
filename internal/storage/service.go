package storage

import (
	"bilfoto-backend/internal/config"
	"bilfoto-backend/pkg/models"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Service is the local-disk blob layer backing the capture and export
// flows. Uploaded frames land in the upload directory, export
// materialization goes through the temp directory. Both are scratch space:
// nothing stored here is expected to survive a restart.
type Service struct {
	uploadDir    string
	tempDir      string
	maxSize      int64
	allowedTypes []string
}

// NewService creates the storage service and ensures its directories exist
func NewService(cfg *config.StorageConfig) (*Service, error) {
	for _, dir := range []string{cfg.UploadDir, cfg.TempDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create storage directory %s: %w", dir, err)
		}
	}

	return &Service{
		uploadDir:    cfg.UploadDir,
		tempDir:      cfg.TempDir,
		maxSize:      cfg.MaxSize,
		allowedTypes: cfg.AllowedTypes,
	}, nil
}

// SavePhoto writes an uploaded photo stream into the upload directory and
// returns its location
func (s *Service) SavePhoto(r io.Reader, mimeType string) (string, error) {
	name := uuid.New().String() + ExtForMimeType(mimeType)
	path := filepath.Join(s.uploadDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create photo file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write photo file: %w", err)
	}

	return path, nil
}

// ReadImage returns the raw bytes behind an image reference
func (s *Service) ReadImage(ref models.ImageRef) ([]byte, error) {
	switch ref.Kind {
	case models.ImageKindInline:
		return ref.Data, nil
	case models.ImageKindFile:
		data, err := os.ReadFile(ref.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read image %s: %w", ref.Path, err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("cannot read image reference of kind %q", ref.Kind)
	}
}

// WriteTemp writes data to a fresh file in the temp directory and returns
// its path. Callers own cleanup.
func (s *Service) WriteTemp(data []byte, ext string) (string, error) {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	path := filepath.Join(s.tempDir, uuid.New().String()+ext)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}

	return path, nil
}

// ResolvePhoto maps a stored photo name back to its path inside the upload
// directory, rejecting anything that would escape it
func (s *Service) ResolvePhoto(name string) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("invalid photo name %q", name)
	}

	path := filepath.Join(s.uploadDir, name)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("photo %s not found: %w", name, err)
	}

	return path, nil
}

// MaxSize returns the configured upload size limit in bytes
func (s *Service) MaxSize() int64 {
	return s.maxSize
}

// IsAllowedType checks whether an upload content type is accepted
func (s *Service) IsAllowedType(mimeType string) bool {
	return slices.Contains(s.allowedTypes, mimeType)
}

// ExtForMimeType maps an image mime type to a file extension
func ExtForMimeType(mimeType string) string {
	switch mimeType {
	case "image/png":
		return ".png"
	case "image/heic", "image/heif":
		return ".heic"
	default:
		return ".jpg"
	}
}
