package services

import "uv-dashboard/models"

// UV severity thresholds, checked highest first.
var uvCategories = []struct {
	min      float64
	label    string
	position string
}{
	{11, "Extreme", "95%"},
	{8, "Very High", "80%"},
	{6, "High", "60%"},
	{3, "Moderate", "40%"},
}

// CategorizeUV maps a UV index to its label and gauge position.
func CategorizeUV(uv float64) models.UVCategory {
	for _, c := range uvCategories {
		if uv >= c.min {
			return models.UVCategory{Label: c.label, Position: c.position}
		}
	}
	return models.UVCategory{Label: "Low", Position: "10%"}
}
