package openuv

import (
	"context"
	"net/url"
	"strconv"

	"uv-dashboard/api"
	"uv-dashboard/config"
	"uv-dashboard/models"
)

// OpenUVApiClient embeds the common HTTPClient
type OpenUVApiClient struct {
	*api.HTTPClient
	apiKey string
}

// NewOpenUVApiClient creates a new instance of OpenUVApiClient
func NewOpenUVApiClient(httpClient *api.HTTPClient) *OpenUVApiClient {
	return &OpenUVApiClient{
		HTTPClient: httpClient,
	}
}

// SetAPIKey sets the static credential sent with every request.
func (c *OpenUVApiClient) SetAPIKey(apiKey string) {
	c.apiKey = apiKey
}

// GetUV fetches the current and daily maximum UV index for a coordinate.
func (c *OpenUVApiClient) GetUV(ctx context.Context, lat float64, lon float64) (*models.OpenUVResponse, error) {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("lng", strconv.FormatFloat(lon, 'f', -1, 64))
	headers := map[string]string{config.OPENUV_API_KEY_HEADER: c.apiKey}

	var response models.OpenUVResponse
	if err := c.Request(ctx, "GET", "/uv", query, headers, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
