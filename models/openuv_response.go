// models/openuv_response.go
package models

import "time"

// OpenUVResponse is the body returned by GET /api/v1/uv.
type OpenUVResponse struct {
	Result *OpenUVResult `json:"result"`
}

// OpenUVResult keeps uv and uv_max as pointers so a missing field can be told apart from 0.
type OpenUVResult struct {
	UV        *float64   `json:"uv"`
	UVTime    *time.Time `json:"uv_time,omitempty"`
	UVMax     *float64   `json:"uv_max"`
	UVMaxTime *time.Time `json:"uv_max_time,omitempty"`
	Ozone     float64    `json:"ozone,omitempty"`
}
