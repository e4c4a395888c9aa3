package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"uv-dashboard/api/openuv"
	"uv-dashboard/dao/redis"
	"uv-dashboard/models"
	"uv-dashboard/util"

	"github.com/prometheus/client_golang/prometheus"
)

// Fetch outcomes reported on uvdash_uv_fetch_total.
const (
	OUTCOME_APPLIED = "applied"
	OUTCOME_STALE   = "stale"
	OUTCOME_FAILED  = "failed"
)

var errIncompleteResponse = errors.New("response is missing result.uv or result.uv_max")

// UVFetchController turns location changes into UV display updates.
type UVFetchController struct {
	mu         sync.Mutex
	uvAPI      openuv.OpenUVAPI
	locations  *models.LocationTable
	renderer   *util.ChartRenderer
	displayDao *redis.RedisDisplayDAO
	fetches    *prometheus.CounterVec
	seq        atomic.Uint64
	now        func() time.Time
}

// NewUVFetchController constructs a controller. registerer may be nil.
func NewUVFetchController(
	uvAPI openuv.OpenUVAPI,
	locations *models.LocationTable,
	renderer *util.ChartRenderer,
	displayDao *redis.RedisDisplayDAO,
	registerer prometheus.Registerer,
) *UVFetchController {
	fetches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "uvdash",
		Name:      "uv_fetch_total",
		Help:      "UV fetches by outcome.",
	}, []string{"outcome"})
	if registerer != nil {
		registerer.MustRegister(fetches)
	}

	return &UVFetchController{
		uvAPI:      uvAPI,
		locations:  locations,
		renderer:   renderer,
		displayDao: displayDao,
		fetches:    fetches,
		now:        time.Now,
	}
}

// Locations returns the selectable locations.
func (c *UVFetchController) Locations() []models.Location {
	return c.locations.All()
}

// SelectLocation fetches UV data for key and applies it to the display.
// Provider failures are logged and leave the last-known display in place;
// only an unknown key is reported back. The returned display may be nil
// when nothing has ever been applied.
func (c *UVFetchController) SelectLocation(ctx context.Context, key string) (*models.UVDisplay, error) {
	loc, ok := c.locations.Lookup(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocation, key)
	}

	seq := c.seq.Add(1)
	log.Printf("[UVFetchController] Fetch #%d for %s", seq, loc.ToString())

	resp, err := c.uvAPI.GetUV(ctx, loc.Lat, loc.Lon)
	if err != nil {
		c.fail(seq, loc, err)
		return c.Display(), nil
	}
	reading, err := readingFromResponse(resp)
	if err != nil {
		c.fail(seq, loc, err)
		return c.Display(), nil
	}

	c.apply(seq, loc, reading)
	return c.Display(), nil
}

// Display returns the last applied snapshot or nil.
func (c *UVFetchController) Display() *models.UVDisplay {
	d, err := c.displayDao.GetDisplay()
	if err != nil {
		log.Printf("[UVFetchController] Could not read display: %v", err)
		return nil
	}
	return d
}

// Renderer exposes the chart owner for the chart endpoint.
func (c *UVFetchController) Renderer() *util.ChartRenderer {
	return c.renderer
}

func (c *UVFetchController) fail(seq uint64, loc models.Location, err error) {
	log.Printf("[UVFetchController] OpenUV API error for fetch #%d (%s): %v", seq, loc.Key, err)
	c.fetches.WithLabelValues(OUTCOME_FAILED).Inc()
}

// apply updates the display only if seq is still the latest fetch issued.
func (c *UVFetchController) apply(seq uint64, loc models.Location, reading models.UVReading) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if latest := c.seq.Load(); seq != latest {
		log.Printf("[UVFetchController] Discarding stale fetch #%d for %s (latest #%d)", seq, loc.Key, latest)
		c.fetches.WithLabelValues(OUTCOME_STALE).Inc()
		return
	}

	now := c.now()
	forecast := SimulateForecast(reading.CurrentUV, reading.DailyMaxUV, now)
	display := &models.UVDisplay{
		Location:  loc,
		UV:        reading.CurrentUV,
		UVText:    FormatUV(reading.CurrentUV),
		UVMax:     reading.DailyMaxUV,
		Category:  CategorizeUV(reading.CurrentUV),
		Forecast:  forecast,
		Sequence:  seq,
		UpdatedAt: now.UTC(),
	}
	if err := c.displayDao.SetDisplay(display); err != nil {
		log.Printf("[UVFetchController] Could not store display for fetch #%d: %v", seq, err)
		c.fetches.WithLabelValues(OUTCOME_FAILED).Inc()
		return
	}
	c.renderer.Update(forecast)
	c.fetches.WithLabelValues(OUTCOME_APPLIED).Inc()
	log.Printf("[UVFetchController] Applied fetch #%d: %s uv=%.1f (%s)", seq, loc.Key, display.UV, display.Category.Label)
}

// FormatUV renders uv with one decimal, halves rounding up.
func FormatUV(uv float64) string {
	return strconv.FormatFloat(math.Floor(uv*10+0.5)/10, 'f', 1, 64)
}

func readingFromResponse(resp *models.OpenUVResponse) (models.UVReading, error) {
	if resp == nil || resp.Result == nil || resp.Result.UV == nil || resp.Result.UVMax == nil {
		return models.UVReading{}, errIncompleteResponse
	}
	return models.UVReading{CurrentUV: *resp.Result.UV, DailyMaxUV: *resp.Result.UVMax}, nil
}
