package capture

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// Handler handles guided capture HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates a new Handler instance
func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers capture routes with the Echo instance
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/capture/angles", h.ListAngles)
	e.POST("/capture/sessions", h.StartSession)
	e.GET("/capture/sessions/:id", h.GetSession)
	e.POST("/capture/sessions/:id/photo", h.CapturePhoto)
	e.POST("/capture/sessions/:id/retry", h.RetryStep)
	e.POST("/capture/sessions/:id/previous", h.PreviousStep)
	e.POST("/capture/sessions/:id/finish", h.FinishSession)
	e.DELETE("/capture/sessions/:id", h.CancelSession)
}

// ListAngles handles GET /capture/angles
func (h *Handler) ListAngles(c echo.Context) error {
	return c.JSON(http.StatusOK, Angles())
}

// StartSession handles POST /capture/sessions
func (h *Handler) StartSession(c echo.Context) error {
	session := h.service.StartSession()

	return c.JSON(http.StatusCreated, CreateSessionResponse{
		SessionID: session.ID,
		Steps:     Angles(),
		Current:   session.CurrentStep(),
	})
}

// GetSession handles GET /capture/sessions/:id
func (h *Handler) GetSession(c echo.Context) error {
	session, err := h.service.GetSession(c.Param("id"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, h.service.Status(session))
}

// CapturePhoto handles POST /capture/sessions/:id/photo
// The captured frame arrives as a multipart file upload, the way the
// camera collaborator hands frames over
func (h *Handler) CapturePhoto(c echo.Context) error {
	sessionID := c.Param("id")
	if strings.TrimSpace(sessionID) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "session id is required",
		})
	}

	file, err := c.FormFile("photo")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Photo file is required",
		})
	}

	if err := h.validateImageFile(file); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to process photo file",
		})
	}
	defer src.Close()

	resp, err := h.service.CapturePhoto(sessionID, src, file.Header.Get("Content-Type"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// RetryStep handles POST /capture/sessions/:id/retry
func (h *Handler) RetryStep(c echo.Context) error {
	session, err := h.service.RetryCurrentStep(c.Param("id"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, h.service.Status(session))
}

// PreviousStep handles POST /capture/sessions/:id/previous
func (h *Handler) PreviousStep(c echo.Context) error {
	session, err := h.service.GoToPreviousStep(c.Param("id"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, h.service.Status(session))
}

// FinishSession handles POST /capture/sessions/:id/finish
// It completes the session with whatever subset of angles has a photo
func (h *Handler) FinishSession(c echo.Context) error {
	sessionID := c.Param("id")

	captured, err := h.service.FinishEarly(sessionID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, CompleteSessionResponse{
		SessionID: sessionID,
		Captured:  captured,
	})
}

// CancelSession handles DELETE /capture/sessions/:id
func (h *Handler) CancelSession(c echo.Context) error {
	if err := h.service.CancelSession(c.Param("id")); err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

// validateImageFile validates the uploaded photo file
func (h *Handler) validateImageFile(file *multipart.FileHeader) error {
	if file.Size > h.service.photos.MaxSize() {
		return fmt.Errorf("photo file size exceeds maximum allowed size of %d bytes", h.service.photos.MaxSize())
	}

	if file.Size == 0 {
		return errors.New("photo file is empty")
	}

	contentType := file.Header.Get("Content-Type")
	if !h.service.photos.IsAllowedType(contentType) {
		return errors.New("invalid image format. Supported formats: JPEG, PNG, HEIC")
	}

	return nil
}

// handleServiceError maps service errors to appropriate HTTP responses
func handleServiceError(c echo.Context, err error) error {
	resp := GetErrorResponse(err)
	return c.JSON(resp.StatusCode, map[string]string{
		"error": resp.Message,
	})
}
