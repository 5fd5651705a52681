package capture

import (
	"errors"
	"net/http"
)

var (
	ErrSessionNotFound    = errors.New("capture session not found")
	ErrSessionComplete    = errors.New("capture session already completed")
	ErrEmptyPhotoLocation = errors.New("empty photo location")
	ErrInvalidImageFormat = errors.New("invalid image format")
	ErrCaptureFailed      = errors.New("failed to store captured photo")
)

type ErrorResponse struct {
	StatusCode int
	Message    string
}

// GetErrorResponse returns appropriate HTTP response for an error
func GetErrorResponse(err error) ErrorResponse {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return ErrorResponse{http.StatusNotFound, err.Error()}
	case errors.Is(err, ErrSessionComplete):
		return ErrorResponse{http.StatusConflict, err.Error()}
	case errors.Is(err, ErrEmptyPhotoLocation):
		return ErrorResponse{http.StatusBadRequest, err.Error()}
	case errors.Is(err, ErrInvalidImageFormat):
		return ErrorResponse{http.StatusBadRequest, err.Error()}
	case errors.Is(err, ErrCaptureFailed):
		return ErrorResponse{http.StatusInternalServerError, "Failed to store the captured photo. Please try again."}
	default:
		return ErrorResponse{http.StatusInternalServerError, "An unexpected error occurred. Please try again."}
	}
}
