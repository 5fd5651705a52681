package gallery

import (
	"errors"
	"net/http"
)

var (
	ErrFolderNotFound  = errors.New("folder not found")
	ErrEmptyFolderName = errors.New("folder name is required")
	ErrImageRequired   = errors.New("processed image is required")
)

type ErrorResponse struct {
	StatusCode int
	Message    string
}

// GetErrorResponse returns appropriate HTTP response for an error
func GetErrorResponse(err error) ErrorResponse {
	switch {
	case errors.Is(err, ErrFolderNotFound):
		return ErrorResponse{http.StatusNotFound, err.Error()}
	case errors.Is(err, ErrEmptyFolderName):
		return ErrorResponse{http.StatusBadRequest, err.Error()}
	case errors.Is(err, ErrImageRequired):
		return ErrorResponse{http.StatusBadRequest, err.Error()}
	default:
		return ErrorResponse{http.StatusInternalServerError, "An unexpected error occurred. Please try again."}
	}
}
