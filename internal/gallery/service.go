package gallery

import (
	"os"
	"sort"
	"strings"

	"bilfoto-backend/internal/logging"
	"bilfoto-backend/pkg/models"

	"go.uber.org/zap"
)

// Service derives the grouped gallery view from the store and exports
// folders into the photo library
type Service struct {
	store        *Store
	materializer Materializer
	library      PhotoLibrary
	albumName    string
}

func NewService(store *Store, materializer Materializer, library PhotoLibrary, albumName string) *Service {
	return &Service{
		store:        store,
		materializer: materializer,
		library:      library,
		albumName:    albumName,
	}
}

// Store exposes the underlying image/folder store
func (s *Service) Store() *Store {
	return s.store
}

// CreateFolder registers a folder explicitly, before any image lands in it
func (s *Service) CreateFolder(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyFolderName
	}

	s.store.AddFolder(name)
	return nil
}

// AssignImage commits a transient processed image into a folder. The
// folder is created on first reference; the image's folder name is set
// here, exactly once.
func (s *Service) AssignImage(image *models.ProcessedImage, folderName string) error {
	if image == nil || image.After.IsZero() {
		return ErrImageRequired
	}
	if strings.TrimSpace(folderName) == "" {
		return ErrEmptyFolderName
	}

	s.store.AddFolder(folderName)
	image.FolderName = folderName
	s.store.AddImage(image)

	logging.Logger.Info("image assigned to folder",
		zap.String("folder", folderName))

	return nil
}

// Sections partitions the stored images by folder name. With a filter only
// that folder's section is produced, and a folder holding no images yields
// no sections at all. Without a filter the sections come out in
// lexicographic folder order, each listing its images newest first.
func (s *Service) Sections(folderFilter string) []Section {
	images := s.store.Images()

	if folderFilter != "" {
		filtered := make([]*models.ProcessedImage, 0)
		for _, image := range images {
			if image.FolderName == folderFilter {
				filtered = append(filtered, image)
			}
		}

		if len(filtered) == 0 {
			return []Section{}
		}
		return []Section{{FolderName: folderFilter, Images: filtered}}
	}

	grouped := make(map[string][]*models.ProcessedImage)
	for _, image := range images {
		grouped[image.FolderName] = append(grouped[image.FolderName], image)
	}

	names := make([]string, 0, len(grouped))
	for name := range grouped {
		names = append(names, name)
	}
	sort.Strings(names)

	sections := make([]Section, 0, len(names))
	for _, name := range names {
		sections = append(sections, Section{FolderName: name, Images: grouped[name]})
	}
	return sections
}

// SearchFolders filters folder names to those containing the query,
// case-insensitively. An empty query returns every folder. Relative order
// is preserved.
func (s *Service) SearchFolders(query string) []string {
	folders := s.store.Folders()
	if query == "" {
		return folders
	}

	needle := strings.ToLower(query)
	matched := make([]string, 0, len(folders))
	for _, name := range folders {
		if strings.Contains(strings.ToLower(name), needle) {
			matched = append(matched, name)
		}
	}
	return matched
}

// Export copies every image in a folder into the photo library album.
// Export is best-effort per image: one failure is logged and the rest
// continue. An empty folder trivially succeeds with 0/0.
func (s *Service) Export(folderName string) (*ExportResult, error) {
	if !s.store.HasFolder(folderName) {
		return nil, ErrFolderNotFound
	}

	images := s.folderImages(folderName)
	result := &ExportResult{
		FolderName: folderName,
		Album:      s.albumName,
		Total:      len(images),
	}

	for _, image := range images {
		if err := s.exportImage(image); err != nil {
			logging.Logger.Warn("failed to export image",
				zap.String("folder", folderName),
				zap.Error(err))
			continue
		}
		result.Succeeded++
	}

	logging.Logger.Info("folder exported",
		zap.String("folder", folderName),
		zap.Int("succeeded", result.Succeeded),
		zap.Int("total", result.Total))

	return result, nil
}

// exportImage materializes one result image as a file and hands it to the
// photo library
func (s *Service) exportImage(image *models.ProcessedImage) error {
	path, temporary, err := s.materialize(image.After)
	if err != nil {
		return err
	}
	if temporary {
		defer os.Remove(path)
	}

	return s.library.SaveToAlbum(s.albumName, path)
}

// materialize returns a filesystem path for an image reference, writing a
// temp file when the bytes only exist inline
func (s *Service) materialize(ref models.ImageRef) (string, bool, error) {
	if ref.Kind == models.ImageKindFile {
		return ref.Path, false, nil
	}

	path, err := s.materializer.WriteTemp(ref.Data, extForMimeType(ref.MimeType))
	if err != nil {
		return "", false, err
	}
	return path, true, nil
}

func (s *Service) folderImages(folderName string) []*models.ProcessedImage {
	images := make([]*models.ProcessedImage, 0)
	for _, image := range s.store.Images() {
		if image.FolderName == folderName {
			images = append(images, image)
		}
	}
	return images
}

func extForMimeType(mimeType string) string {
	switch mimeType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	default:
		return ".png"
	}
}
