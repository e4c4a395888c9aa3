package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSimulateForecast_Shape(t *testing.T) {
	now := time.Date(2026, 10, 15, 8, 17, 0, 0, time.UTC)

	for _, maxUV := range []float64{0, 1, 4.5, 9, 13.7} {
		forecast := SimulateForecast(2, maxUV, now)

		assert.Len(t, forecast, FORECAST_POINTS)
		assert.InDelta(t, 0, forecast[0].UV, 1e-9)
		assert.InDelta(t, 0, forecast[11].UV, 1e-9)

		peak := 0.0
		for i, p := range forecast {
			assert.GreaterOrEqual(t, p.UV, 0.0)
			assert.LessOrEqual(t, p.UV, maxUV+1e-9)
			assert.True(t, now.Add(time.Duration(i)*time.Hour).Equal(p.Time))
			if p.UV > peak {
				peak = p.UV
			}
		}
		// sin(5pi/11) is the largest sample, about 0.99
		assert.InDelta(t, maxUV, peak, maxUV*0.011+1e-9)
		assert.InDelta(t, forecast[5].UV, forecast[6].UV, 1e-9)
	}
}

func TestSimulateForecast_IgnoresCurrentUV(t *testing.T) {
	now := time.Now()

	assert.Equal(t, SimulateForecast(1, 9, now), SimulateForecast(8, 9, now))
}
