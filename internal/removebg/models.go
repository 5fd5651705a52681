package removebg

import "bilfoto-backend/pkg/models"

type ProcessRequest struct {
	Source string `json:"source"`
}

type ProcessResponse struct {
	Image models.ProcessedImage `json:"image"`
}
