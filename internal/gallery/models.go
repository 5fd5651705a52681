package gallery

import "bilfoto-backend/pkg/models"

// Section is one folder's slice of the gallery view
type Section struct {
	FolderName string                   `json:"folder_name"`
	Images     []*models.ProcessedImage `json:"images"`
}

type CreateFolderRequest struct {
	Name string `json:"name"`
}

type AssignImageRequest struct {
	Before     models.ImageRef `json:"before"`
	After      models.ImageRef `json:"after"`
	FolderName string          `json:"folder_name"`
}

type GalleryResponse struct {
	Sections []Section `json:"sections"`
}

type FoldersResponse struct {
	Folders []string `json:"folders"`
}

// ExportResult summarizes a best-effort bulk export
type ExportResult struct {
	FolderName string `json:"folder_name"`
	Album      string `json:"album"`
	Succeeded  int    `json:"succeeded"`
	Total      int    `json:"total"`
}
