package removebg

import (
	"errors"
	"net/http"
)

var (
	// ErrAssetUnavailable means the bundled background image never
	// resolved at startup; every processing call fails until it does.
	ErrAssetUnavailable = errors.New("background asset unavailable")

	// ErrProcessingFailed covers every way a removal call can go wrong:
	// transport failure, non-success status, or an unusable response
	// body. Callers re-submit manually; there is no automatic retry.
	ErrProcessingFailed = errors.New("background removal failed")
)

type ErrorResponse struct {
	StatusCode int
	Message    string
}

// GetErrorResponse returns appropriate HTTP response for an error
func GetErrorResponse(err error) ErrorResponse {
	switch {
	case errors.Is(err, ErrAssetUnavailable):
		return ErrorResponse{http.StatusServiceUnavailable, "Background asset is unavailable. Processing is disabled."}
	case errors.Is(err, ErrProcessingFailed):
		return ErrorResponse{http.StatusBadGateway, "Failed to process the image. Please try again."}
	default:
		return ErrorResponse{http.StatusInternalServerError, "An unexpected error occurred. Please try again."}
	}
}
