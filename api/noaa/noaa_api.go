package noaa

import (
	"context"

	"uv-dashboard/models/space_weather"
)

// Feed paths relative to the SWPC JSON root.
const (
	GOES_XRAY_FLUX_FEED   = "/goes/primary/xrays-6-hour.json"
	DSCOVR_PLASMA_FEED    = "/dscovr/dscovr_plasma-1-minute.json"
	DSCOVR_MAG_FEED       = "/dscovr/dscovr_mag-1-minute.json"
	GOES_PROTON_FLUX_FEED = "/goes/primary/goes-proton-flux-7-day.json"
)

// SpaceWeatherAPI defines the interface for reading NOAA SWPC feeds
type SpaceWeatherAPI interface {
	GetFeed(ctx context.Context, feed string) ([]space_weather.Record, error)
}
