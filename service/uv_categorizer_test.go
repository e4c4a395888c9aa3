package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorizeUV(t *testing.T) {
	tests := []struct {
		uv       float64
		label    string
		position string
	}{
		{0, "Low", "10%"},
		{2.9, "Low", "10%"},
		{3, "Moderate", "40%"},
		{5.99, "Moderate", "40%"},
		{6, "High", "60%"},
		{7.2, "High", "60%"},
		{8, "Very High", "80%"},
		{10.99, "Very High", "80%"},
		{11, "Extreme", "95%"},
		{20, "Extreme", "95%"},
	}
	for _, tt := range tests {
		got := CategorizeUV(tt.uv)
		assert.Equal(t, tt.label, got.Label, "uv %v", tt.uv)
		assert.Equal(t, tt.position, got.Position, "uv %v", tt.uv)
	}
}
