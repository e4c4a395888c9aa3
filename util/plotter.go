package util

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"uv-dashboard/models"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Bar colours by UV severity.
const (
	COLOR_GREEN  = "#3EC70B"
	COLOR_YELLOW = "#FFD24C"
	COLOR_ORANGE = "#F29F05"
	COLOR_RED    = "#F24C3D"
)

const FORECAST_SERIES_NAME = "UV Index Forecast"
const CHART_Y_AXIS_MAX = 12

var ErrNoChart = errors.New("no chart rendered yet")

// BarColor picks the bar colour for a raw UV value.
func BarColor(value float64) string {
	switch {
	case value < 3:
		return COLOR_GREEN
	case value < 6:
		return COLOR_YELLOW
	case value < 8:
		return COLOR_ORANGE
	default:
		return COLOR_RED
	}
}

// HourLabel formats the hour of day of t in loc as "H:00".
func HourLabel(t time.Time, loc *time.Location) string {
	return fmt.Sprintf("%d:00", t.In(loc).Hour())
}

// ForecastChart is one bar chart instance built from a forecast series.
type ForecastChart struct {
	ID     string
	Labels []string
	Values []float64
	Colors []string

	bar      *charts.Bar // guarded by the owning ChartRenderer
	disposed atomic.Bool
}

func newForecastChart(id string, forecast []models.ForecastPoint, loc *time.Location) *ForecastChart {
	fc := &ForecastChart{
		ID:     id,
		Labels: make([]string, len(forecast)),
		Values: make([]float64, len(forecast)),
		Colors: make([]string, len(forecast)),
	}
	items := make([]opts.BarData, len(forecast))
	for i, p := range forecast {
		fc.Labels[i] = HourLabel(p.Time, loc)
		fc.Values[i] = p.UV
		fc.Colors[i] = BarColor(p.UV)
		items[i] = opts.BarData{
			Name:      fc.Labels[i],
			Value:     p.UV,
			ItemStyle: &opts.ItemStyle{Color: fc.Colors[i]},
		}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "UV Index Forecast",
			ChartID:   id,
			Width:     "800px",
			Height:    "400px",
		}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: CHART_Y_AXIS_MAX}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(fc.Labels).AddSeries(FORECAST_SERIES_NAME, items)

	fc.bar = bar
	return fc
}

// Disposed reports whether the chart was released by its owner.
func (fc *ForecastChart) Disposed() bool {
	return fc.disposed.Load()
}

func (fc *ForecastChart) dispose() {
	fc.disposed.Store(true)
	fc.bar = nil
}

// ChartRenderer owns at most one live forecast chart.
type ChartRenderer struct {
	mu         sync.Mutex
	location   *time.Location
	current    *ForecastChart
	generation uint64
}

// NewChartRenderer labels hours in loc; nil means time.Local.
func NewChartRenderer(loc *time.Location) *ChartRenderer {
	if loc == nil {
		loc = time.Local
	}
	return &ChartRenderer{location: loc}
}

// Update disposes the live chart, if any, then builds a new one from forecast.
func (r *ChartRenderer) Update(forecast []models.ForecastPoint) *ForecastChart {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current != nil {
		r.current.dispose()
		r.current = nil
	}
	r.generation++
	r.current = newForecastChart(fmt.Sprintf("uv-chart-%d", r.generation), forecast, r.location)
	log.Printf("[ChartRenderer] Rendered %s with %d bars", r.current.ID, len(forecast))
	return r.current
}

// Current returns the live chart or nil.
func (r *ChartRenderer) Current() *ForecastChart {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Render writes the live chart as a standalone HTML page.
func (r *ChartRenderer) Render(w io.Writer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return ErrNoChart
	}
	return r.current.bar.Render(w)
}
