package handlers

import (
	"errors"
	"log"
	"net/http"

	"uv-dashboard/models"
	services "uv-dashboard/service"
	"uv-dashboard/util"
)

const LOCATION_KEY_QUERY_ARG = "key"

// DisplayResponse wraps the UV panel; Display is null until a fetch has been applied.
type DisplayResponse struct {
	Display *models.UVDisplay `json:"display"`
}

type UVHandler struct {
	controller *services.UVFetchController
}

func NewUVHandler(controller *services.UVFetchController) *UVHandler {
	return &UVHandler{controller: controller}
}

// GetLocations handles GET /v1/locations
func (h *UVHandler) GetLocations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.controller.Locations())
}

// GetDisplay handles GET /v1/uv
func (h *UVHandler) GetDisplay(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, DisplayResponse{Display: h.controller.Display()})
}

// SelectLocation handles POST /v1/uv/location?key={location}
func (h *UVHandler) SelectLocation(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get(LOCATION_KEY_QUERY_ARG)
	if key == "" {
		writeError(w, http.StatusBadRequest, "Missing argument "+LOCATION_KEY_QUERY_ARG)
		return
	}

	display, err := h.controller.SelectLocation(r.Context(), key)
	if err != nil {
		if errors.Is(err, services.ErrUnknownLocation) {
			writeError(w, http.StatusBadRequest, "Unknown location "+key)
			return
		}
		log.Println("Error selecting location:", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, DisplayResponse{Display: display})
}

// GetChart handles GET /v1/uv/chart
func (h *UVHandler) GetChart(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.controller.Renderer().Render(w); err != nil {
		if errors.Is(err, util.ErrNoChart) {
			writeError(w, http.StatusNotFound, "No forecast chart yet")
			return
		}
		log.Println("Error rendering chart:", err)
	}
}
