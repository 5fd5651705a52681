package gallery

import (
	"bilfoto-backend/pkg/models"
	"slices"
	"sync"
)

// Store provides in-memory storage for processed images and folder names.
// It is the only registry for both: nothing is persisted, a restart starts
// empty. Mutations are serialized so concurrent capture flows and gallery
// reads never observe torn state.
type Store struct {
	// Processed images, newest first
	images []*models.ProcessedImage

	// Folder names, unique, in insertion order
	folders []string

	mutex sync.RWMutex
}

func NewStore() *Store {
	return &Store{
		images:  make([]*models.ProcessedImage, 0),
		folders: make([]string, 0),
	}
}

// AddFolder registers a folder name. Adding an existing name is a no-op.
func (s *Store) AddFolder(name string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if slices.Contains(s.folders, name) {
		return
	}

	s.folders = append(s.folders, name)
}

// AddImage prepends an image so the newest entry always lists first. The
// image's folder name is taken as-is: callers register new folders via
// AddFolder before assigning images to them.
func (s *Store) AddImage(image *models.ProcessedImage) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.images = append([]*models.ProcessedImage{image}, s.images...)
}

// Images returns the stored images, newest first
func (s *Store) Images() []*models.ProcessedImage {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]*models.ProcessedImage, len(s.images))
	copy(out, s.images)
	return out
}

// Folders returns the folder names in insertion order
func (s *Store) Folders() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]string, len(s.folders))
	copy(out, s.folders)
	return out
}

// HasFolder reports whether a folder name is registered
func (s *Store) HasFolder(name string) bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return slices.Contains(s.folders, name)
}
