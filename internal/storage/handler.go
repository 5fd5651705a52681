package storage

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests for stored photo files
type Handler struct {
	service *Service
}

// NewHandler creates a new storage handler
func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers storage routes with the Echo router
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/storage/photos/:name", h.GetPhoto)
}

// GetPhoto handles GET /storage/photos/:name
// It serves a previously uploaded photo so clients can render before
// images without holding the bytes themselves
func (h *Handler) GetPhoto(c echo.Context) error {
	name := c.Param("name")

	path, err := h.service.ResolvePhoto(name)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "Photo not found",
		})
	}

	return c.File(path)
}
