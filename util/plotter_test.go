package util

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"uv-dashboard/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBarColor(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, COLOR_GREEN},
		{2.99, COLOR_GREEN},
		{3, COLOR_YELLOW},
		{5.99, COLOR_YELLOW},
		{6, COLOR_ORANGE},
		{7.99, COLOR_ORANGE},
		{8, COLOR_RED},
		{14, COLOR_RED},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BarColor(tt.value), "value %v", tt.value)
	}
}

func TestHourLabel(t *testing.T) {
	ts := time.Date(2026, 10, 15, 14, 59, 30, 0, time.UTC)

	assert.Equal(t, "14:00", HourLabel(ts, time.UTC))
	assert.Equal(t, "0:00", HourLabel(time.Date(2026, 10, 15, 0, 5, 0, 0, time.UTC), time.UTC))

	ist := time.FixedZone("IST", 5*3600+1800)
	assert.Equal(t, "20:00", HourLabel(ts, ist))
}

func sampleForecast(start time.Time, values ...float64) []models.ForecastPoint {
	out := make([]models.ForecastPoint, len(values))
	for i, v := range values {
		out[i] = models.ForecastPoint{Time: start.Add(time.Duration(i) * time.Hour), UV: v}
	}
	return out
}

func TestChartRenderer_Update(t *testing.T) {
	r := NewChartRenderer(time.UTC)
	start := time.Date(2026, 10, 15, 22, 10, 0, 0, time.UTC)

	chart := r.Update(sampleForecast(start, 0, 4, 7, 9))

	assert.Equal(t, []string{"22:00", "23:00", "0:00", "1:00"}, chart.Labels)
	assert.Equal(t, []float64{0, 4, 7, 9}, chart.Values)
	assert.Equal(t, []string{COLOR_GREEN, COLOR_YELLOW, COLOR_ORANGE, COLOR_RED}, chart.Colors)
	assert.Same(t, chart, r.Current())
}

func TestChartRenderer_UpdateDisposesPrevious(t *testing.T) {
	r := NewChartRenderer(time.UTC)
	start := time.Now()

	first := r.Update(sampleForecast(start, 1, 2))
	second := r.Update(sampleForecast(start, 3, 4))

	assert.True(t, first.Disposed())
	assert.False(t, second.Disposed())
	assert.NotEqual(t, first.ID, second.ID)
	assert.Same(t, second, r.Current())
}

func TestChartRenderer_Render(t *testing.T) {
	r := NewChartRenderer(time.UTC)

	var empty bytes.Buffer
	assert.ErrorIs(t, r.Render(&empty), ErrNoChart)

	chart := r.Update(sampleForecast(time.Now(), 0, 5, 0))

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf))
	assert.Contains(t, buf.String(), FORECAST_SERIES_NAME)
	assert.Contains(t, buf.String(), chart.ID)
}

func TestChartRenderer_DisposedConcurrentWithUpdate(t *testing.T) {
	r := NewChartRenderer(time.UTC)
	start := time.Now()
	first := r.Update(sampleForecast(start, 1))

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			r.Update(sampleForecast(start, float64(i%12)))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			_ = first.Disposed()
		}
	}()
	wg.Wait()

	assert.True(t, first.Disposed())
	assert.False(t, r.Current().Disposed())
}
