package download

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"

	"bilfoto-backend/internal/logging"
	"bilfoto-backend/pkg/models"

	"go.uber.org/zap"
)

var ErrFolderNotFound = errors.New("folder not found")

type Service struct {
	store  ImageStore
	images ImageReader
}

func NewService(store ImageStore, images ImageReader) *Service {
	return &Service{
		store:  store,
		images: images,
	}
}

// StreamZipArchive streams a folder's result images into a ZIP archive
// directly to the writer, without temporary storage. Like the library
// export, it is best-effort per image.
func (s *Service) StreamZipArchive(writer io.Writer, folderName string) error {
	if !s.store.HasFolder(folderName) {
		return ErrFolderNotFound
	}

	zipWriter := zip.NewWriter(writer)
	defer zipWriter.Close()

	n := 0
	for _, image := range s.store.Images() {
		if image.FolderName != folderName {
			continue
		}

		if err := s.addImageToZip(zipWriter, image, folderName, n); err != nil {
			// Continue with other images even if one fails
			logging.Logger.Warn("failed to add image to zip",
				zap.String("folder", folderName),
				zap.Error(err))
			continue
		}
		n++
	}

	return nil
}

// addImageToZip reads one result image and writes it as a ZIP entry
func (s *Service) addImageToZip(zipWriter *zip.Writer, image *models.ProcessedImage, folderName string, index int) error {
	data, err := s.images.ReadImage(image.After)
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}

	name := fmt.Sprintf("%s-%03d%s", folderName, index+1, extForMimeType(image.After.MimeType))
	entry, err := zipWriter.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create ZIP entry: %w", err)
	}

	if _, err := entry.Write(data); err != nil {
		return fmt.Errorf("failed to write image to ZIP: %w", err)
	}

	return nil
}

func extForMimeType(mimeType string) string {
	switch mimeType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	default:
		return ".png"
	}
}
