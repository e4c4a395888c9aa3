package handlers

import (
	"log"
	"net/http"

	services "uv-dashboard/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ClockResponse is the body of GET /v1/clock.
type ClockResponse struct {
	Label string `json:"label"`
}

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping() error
}

type DashboardHandler struct {
	store               Pinger
	clockService        *services.ClockService
	spaceWeatherService *services.SpaceWeatherService
	metrics             http.Handler
}

func NewDashboardHandler(
	store Pinger,
	clockService *services.ClockService,
	spaceWeatherService *services.SpaceWeatherService,
	gatherer prometheus.Gatherer,
) *DashboardHandler {
	return &DashboardHandler{
		store:               store,
		clockService:        clockService,
		spaceWeatherService: spaceWeatherService,
		metrics:             promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}),
	}
}

// Ping handles GET /ping; 503 when the display store is unreachable.
func (h *DashboardHandler) Ping(w http.ResponseWriter, r *http.Request) {
	log.Println("Pinging server")
	if err := h.store.Ping(); err != nil {
		log.Printf("[DashboardHandler] Display store ping failed: %v", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

// GetClock handles GET /v1/clock
func (h *DashboardHandler) GetClock(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ClockResponse{Label: h.clockService.Label()})
}

// GetSpaceWeather handles GET /v1/space-weather
func (h *DashboardHandler) GetSpaceWeather(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.spaceWeatherService.Latest(r.Context()))
}

// Metrics handles GET /metrics
func (h *DashboardHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	h.metrics.ServeHTTP(w, r)
}
