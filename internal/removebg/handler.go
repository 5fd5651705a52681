package removebg

import (
	"io"
	"net/http"
	"strings"

	"bilfoto-backend/pkg/models"

	"github.com/labstack/echo/v4"
)

// Handler handles background-removal HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates a new Handler instance
func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers processing routes with the Echo instance
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/process", h.Process)
}

// Process handles POST /process
// It accepts either a JSON body referencing an already stored photo or a
// direct multipart upload of the source image
func (h *Handler) Process(c echo.Context) error {
	source, errResp := h.resolveSource(c)
	if errResp != nil {
		return c.JSON(http.StatusBadRequest, errResp)
	}

	image, err := h.service.Process(c.Request().Context(), source)
	if err != nil {
		resp := GetErrorResponse(err)
		return c.JSON(resp.StatusCode, map[string]string{
			"error": resp.Message,
		})
	}

	return c.JSON(http.StatusOK, ProcessResponse{Image: *image})
}

// resolveSource extracts the source image from the request body
func (h *Handler) resolveSource(c echo.Context) (models.ImageRef, map[string]string) {
	contentType := c.Request().Header.Get("Content-Type")

	if strings.Contains(contentType, "application/json") {
		var req ProcessRequest
		if err := c.Bind(&req); err != nil {
			return models.ImageRef{}, map[string]string{"error": "Invalid request format"}
		}

		source, err := models.ParseImageRef(req.Source)
		if err != nil {
			return models.ImageRef{}, map[string]string{"error": err.Error()}
		}
		return source, nil
	}

	file, err := c.FormFile("image_file")
	if err != nil {
		return models.ImageRef{}, map[string]string{"error": "image_file is required"}
	}

	src, err := file.Open()
	if err != nil {
		return models.ImageRef{}, map[string]string{"error": "Failed to open image file"}
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return models.ImageRef{}, map[string]string{"error": "Failed to read image file"}
	}

	return models.InlineRef(data, file.Header.Get("Content-Type")), nil
}
