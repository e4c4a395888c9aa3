package space_weather

import "time"

// Record is one row of a NOAA SWPC JSON feed. Feeds differ in columns, so rows stay generic.
type Record map[string]interface{}

// Summary holds the latest record of every feed that could be fetched.
type Summary struct {
	XRayFlux   Record    `json:"xray_flux_latest,omitempty"`
	Plasma     Record    `json:"dscovr_plasma_latest,omitempty"`
	MagField   Record    `json:"dscovr_mag_latest,omitempty"`
	ProtonFlux Record    `json:"proton_flux_latest,omitempty"`
	FetchedAt  time.Time `json:"fetched_at"`
}
