package util

import (
	"encoding/json"
	"fmt"
	"os"

	"uv-dashboard/models"
)

// ReadOpenUVResponseFromJSON loads an OpenUVResponse from JSON on disk.
func ReadOpenUVResponseFromJSON(filePath string) (*models.OpenUVResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.OpenUVResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal OpenUVResponse: %w", err)
	}
	return &resp, nil
}

// ReadLocationsFromJSON loads a location table from JSON on disk.
func ReadLocationsFromJSON(filePath string) ([]models.Location, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var locations []models.Location
	if err := json.Unmarshal(data, &locations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal locations: %w", err)
	}
	return locations, nil
}
