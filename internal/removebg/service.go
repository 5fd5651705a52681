package removebg

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"time"

	"bilfoto-backend/internal/config"
	"bilfoto-backend/internal/logging"
	"bilfoto-backend/pkg/models"

	"go.uber.org/zap"
)

// Service composites a car photo onto the fixed showroom background by
// calling the remote remove.bg endpoint. The background image is resolved
// from disk once at construction; if that fails the service stays up but
// every call reports ErrAssetUnavailable.
type Service struct {
	url        string
	apiKey     string
	httpClient *http.Client
	images     ImageReader
	background []byte
}

func NewService(cfg *config.RemoveBgConfig, images ImageReader) *Service {
	s := &Service{
		url:    cfg.URL,
		apiKey: cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		images: images,
	}

	background, err := os.ReadFile(cfg.BackgroundPath)
	if err != nil {
		logging.Logger.Error("failed to resolve background asset, processing disabled",
			zap.String("path", cfg.BackgroundPath),
			zap.Error(err))
	} else {
		s.background = background
	}

	return s
}

// Ready reports whether the background asset resolved
func (s *Service) Ready() bool {
	return s.background != nil
}

// RemoveBackground uploads the source photo together with the fixed
// background and returns the composited result as an inline PNG. Every
// transport-level or remote failure collapses into ErrProcessingFailed.
func (s *Service) RemoveBackground(ctx context.Context, source models.ImageRef) (models.ImageRef, error) {
	if s.background == nil {
		return models.ImageRef{}, ErrAssetUnavailable
	}

	sourceData, err := s.images.ReadImage(source)
	if err != nil {
		return models.ImageRef{}, fmt.Errorf("%w: %v", ErrProcessingFailed, err)
	}

	body, contentType, err := s.buildRequestBody(sourceData)
	if err != nil {
		return models.ImageRef{}, fmt.Errorf("%w: %v", ErrProcessingFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, body)
	if err != nil {
		return models.ImageRef{}, fmt.Errorf("%w: %v", ErrProcessingFailed, err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Api-Key", s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		logging.Logger.Error("remove.bg request failed", zap.Error(err))
		return models.ImageRef{}, fmt.Errorf("%w: %v", ErrProcessingFailed, err)
	}
	defer resp.Body.Close()

	result, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.ImageRef{}, fmt.Errorf("%w: failed to read response", ErrProcessingFailed)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logging.Logger.Error("remove.bg returned non-success status",
			zap.Int("status", resp.StatusCode))
		return models.ImageRef{}, fmt.Errorf("%w: service returned status %d", ErrProcessingFailed, resp.StatusCode)
	}

	// A success status with an empty body is still a failure: there is no
	// image to show the user.
	if len(result) == 0 {
		return models.ImageRef{}, fmt.Errorf("%w: empty response body", ErrProcessingFailed)
	}

	return models.InlineRef(result, "image/png"), nil
}

// Process runs a full removal for a source photo and pairs it with its
// result. The returned image is transient: it belongs to no folder until
// the caller assigns one.
func (s *Service) Process(ctx context.Context, source models.ImageRef) (*models.ProcessedImage, error) {
	start := time.Now()

	after, err := s.RemoveBackground(ctx, source)
	if err != nil {
		return nil, err
	}

	logging.Logger.Info("image processed",
		zap.String("source", source.Location()),
		zap.Duration("took", time.Since(start)))

	return &models.ProcessedImage{
		Before: source,
		After:  after,
	}, nil
}

// buildRequestBody assembles the multipart form the remove.bg API expects
func (s *Service) buildRequestBody(sourceData []byte) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	imagePart, err := writer.CreateFormFile("image_file", "photo.jpg")
	if err != nil {
		return nil, "", err
	}
	if _, err := imagePart.Write(sourceData); err != nil {
		return nil, "", err
	}

	if err := writer.WriteField("size", "auto"); err != nil {
		return nil, "", err
	}
	if err := writer.WriteField("add_shadow", "true"); err != nil {
		return nil, "", err
	}

	backgroundPart, err := writer.CreateFormFile("bg_image_file", "background.png")
	if err != nil {
		return nil, "", err
	}
	if _, err := backgroundPart.Write(s.background); err != nil {
		return nil, "", err
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return body, writer.FormDataContentType(), nil
}
