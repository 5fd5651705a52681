package library

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/otiai10/copy"
)

// Service is a directory-backed photo library: albums are directories
// under the library root and saving an asset copies its file in. It stands
// in for the device media library the mobile client exports into.
type Service struct {
	root string
}

// NewService creates the library service and ensures the root exists
func NewService(root string) (*Service, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create library root %s: %w", root, err)
	}

	return &Service{root: root}, nil
}

// CreateAlbum creates the album directory if needed and returns its path
func (s *Service) CreateAlbum(name string) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("invalid album name %q", name)
	}

	dir := filepath.Join(s.root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create album %s: %w", name, err)
	}

	return dir, nil
}

// SaveToAlbum copies a file into the named album, creating the album on
// first use
func (s *Service) SaveToAlbum(album, srcPath string) error {
	dir, err := s.CreateAlbum(album)
	if err != nil {
		return err
	}

	dst := filepath.Join(dir, filepath.Base(srcPath))
	if err := copy.Copy(srcPath, dst); err != nil {
		return fmt.Errorf("failed to save %s into album %s: %w", srcPath, album, err)
	}

	return nil
}
