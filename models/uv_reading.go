package models

// UVReading is the validated pair extracted from a provider response.
type UVReading struct {
	CurrentUV  float64 `json:"current_uv"`
	DailyMaxUV float64 `json:"daily_max_uv"`
}

// UVCategory is a severity label plus the indicator position on the 0-100% gauge.
type UVCategory struct {
	Label    string `json:"label"`
	Position string `json:"position"`
}
