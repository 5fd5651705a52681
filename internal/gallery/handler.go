package gallery

import (
	"net/http"

	"bilfoto-backend/pkg/models"

	"github.com/labstack/echo/v4"
)

// Handler handles gallery HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates a new Handler instance
func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers gallery routes with the Echo instance
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/gallery", h.GetGallery)
	e.GET("/gallery/folders", h.GetFolders)
	e.POST("/gallery/folders", h.CreateFolder)
	e.POST("/gallery/images", h.AssignImage)
	e.POST("/gallery/folders/:name/export", h.ExportFolder)
}

// GetGallery handles GET /gallery
// An optional ?folder= query narrows the view to one folder's section
func (h *Handler) GetGallery(c echo.Context) error {
	sections := h.service.Sections(c.QueryParam("folder"))

	return c.JSON(http.StatusOK, GalleryResponse{
		Sections: sections,
	})
}

// GetFolders handles GET /gallery/folders
// An optional ?q= query filters folder names by case-insensitive substring
func (h *Handler) GetFolders(c echo.Context) error {
	folders := h.service.SearchFolders(c.QueryParam("q"))

	return c.JSON(http.StatusOK, FoldersResponse{
		Folders: folders,
	})
}

// CreateFolder handles POST /gallery/folders
func (h *Handler) CreateFolder(c echo.Context) error {
	var req CreateFolderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request format",
		})
	}

	if err := h.service.CreateFolder(req.Name); err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"name":    req.Name,
	})
}

// AssignImage handles POST /gallery/images
// This is the folder-assignment step: the transient processed image enters
// the store under the chosen folder
func (h *Handler) AssignImage(c echo.Context) error {
	var req AssignImageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request format",
		})
	}

	image := &models.ProcessedImage{
		Before: req.Before,
		After:  req.After,
	}

	if err := h.service.AssignImage(image, req.FolderName); err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, image)
}

// ExportFolder handles POST /gallery/folders/:name/export
// Partial failure is still a success response; the counts tell the story
func (h *Handler) ExportFolder(c echo.Context) error {
	result, err := h.service.Export(c.Param("name"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// handleServiceError maps service errors to appropriate HTTP responses
func handleServiceError(c echo.Context, err error) error {
	resp := GetErrorResponse(err)
	return c.JSON(resp.StatusCode, map[string]string{
		"error": resp.Message,
	})
}
