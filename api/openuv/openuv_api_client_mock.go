package openuv

import (
	"context"
	"log"

	"uv-dashboard/models"
	"uv-dashboard/util"
)

// OpenUVApiClientMock serves a canned OpenUV response from a JSON file.
type OpenUVApiClientMock struct {
	responsePath string
}

// NewOpenUVApiClientMock creates a new instance of OpenUVApiClientMock
func NewOpenUVApiClientMock(responsePath string) *OpenUVApiClientMock {
	return &OpenUVApiClientMock{responsePath: responsePath}
}

func (c *OpenUVApiClientMock) SetAPIKey(apiKey string) {}

// GetUV ignores the coordinates and returns the fixture.
func (c *OpenUVApiClientMock) GetUV(ctx context.Context, lat float64, lon float64) (*models.OpenUVResponse, error) {
	response, err := util.ReadOpenUVResponseFromJSON(c.responsePath)
	if err != nil {
		log.Println("Could not read openuv response from json")
		return nil, err
	}
	return response, nil
}
