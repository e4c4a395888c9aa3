package services

import (
	"math"
	"time"

	"uv-dashboard/models"
)

const FORECAST_POINTS = 12

// SimulateForecast builds a synthetic hourly UV series: a half sine from 0 at
// now up to maxUV and back to 0 eleven hours later. The provider has no hourly
// forecast field, so this stands in for one. currentUV does not shape the curve.
func SimulateForecast(currentUV, maxUV float64, now time.Time) []models.ForecastPoint {
	_ = currentUV
	forecast := make([]models.ForecastPoint, FORECAST_POINTS)
	for i := range forecast {
		uv := math.Max(0, maxUV*math.Sin(math.Pi*float64(i)/float64(FORECAST_POINTS-1)))
		forecast[i] = models.ForecastPoint{
			Time: now.Add(time.Duration(i) * time.Hour).UTC(),
			UV:   uv,
		}
	}
	return forecast
}
