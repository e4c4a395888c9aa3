package openuv

import (
	"context"

	"uv-dashboard/models"
)

// OpenUVAPI defines the interface for interacting with the OpenUV API
type OpenUVAPI interface {
	GetUV(ctx context.Context, lat float64, lon float64) (*models.OpenUVResponse, error)
	SetAPIKey(apiKey string)
}
