package models

import "time"

// UVDisplay is the last-known state of the UV panel.
type UVDisplay struct {
	Location  Location        `json:"location"`
	UV        float64         `json:"uv"`
	UVText    string          `json:"uv_text"`
	UVMax     float64         `json:"uv_max"`
	Category  UVCategory      `json:"category"`
	Forecast  []ForecastPoint `json:"forecast"`
	Sequence  uint64          `json:"sequence"`
	UpdatedAt time.Time       `json:"updated_at"`
}
