package noaa

import (
	"context"

	"uv-dashboard/api"
	"uv-dashboard/models/space_weather"
)

// NOAAApiClient embeds the common HTTPClient
type NOAAApiClient struct {
	*api.HTTPClient
}

// NewNOAAApiClient creates a new instance of NOAAApiClient
func NewNOAAApiClient(httpClient *api.HTTPClient) *NOAAApiClient {
	return &NOAAApiClient{HTTPClient: httpClient}
}

// GetFeed retrieves every record of a SWPC JSON feed.
func (c *NOAAApiClient) GetFeed(ctx context.Context, feed string) ([]space_weather.Record, error) {
	var records []space_weather.Record
	if err := c.Request(ctx, "GET", feed, nil, nil, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}
