package download

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests for download operations
type Handler struct {
	service *Service
}

// NewHandler creates a new download handler
func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers download routes with the Echo router
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/downloads/zip", h.DownloadZip)
}

// DownloadZip handles GET /downloads/zip?folder=<name>
// It streams a folder's result images as a ZIP archive directly to the
// response
func (h *Handler) DownloadZip(c echo.Context) error {
	folderName := c.QueryParam("folder")
	if folderName == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "folder query parameter is required",
		})
	}

	if !h.service.store.HasFolder(folderName) {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "Folder not found",
		})
	}

	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("%s-%s.zip", folderName, timestamp)

	c.Response().Header().Set("Content-Type", "application/zip")
	c.Response().Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Response().WriteHeader(http.StatusOK)

	if err := h.service.StreamZipArchive(c.Response().Writer, folderName); err != nil && !errors.Is(err, ErrFolderNotFound) {
		// Headers are already sent, so no error response is possible; log
		// and let the connection close
		c.Logger().Errorf("Failed to stream ZIP archive: %v", err)
	}

	return nil
}
