package services

import (
	"context"
	"log"
	"time"

	"uv-dashboard/api/noaa"
	"uv-dashboard/models/space_weather"
)

// SpaceWeatherService summarises the NOAA SWPC feeds.
type SpaceWeatherService struct {
	noaaAPI noaa.SpaceWeatherAPI
	now     func() time.Time
}

func NewSpaceWeatherService(noaaAPI noaa.SpaceWeatherAPI) *SpaceWeatherService {
	return &SpaceWeatherService{noaaAPI: noaaAPI, now: time.Now}
}

// Latest fetches every feed and keeps its last record. A failing feed is logged and left empty.
func (s *SpaceWeatherService) Latest(ctx context.Context) space_weather.Summary {
	summary := space_weather.Summary{FetchedAt: s.now().UTC()}
	summary.XRayFlux = s.latest(ctx, noaa.GOES_XRAY_FLUX_FEED)
	summary.Plasma = s.latest(ctx, noaa.DSCOVR_PLASMA_FEED)
	summary.MagField = s.latest(ctx, noaa.DSCOVR_MAG_FEED)
	summary.ProtonFlux = s.latest(ctx, noaa.GOES_PROTON_FLUX_FEED)
	return summary
}

func (s *SpaceWeatherService) latest(ctx context.Context, feed string) space_weather.Record {
	records, err := s.noaaAPI.GetFeed(ctx, feed)
	if err != nil {
		log.Printf("[SpaceWeatherService] Error fetching %s: %v", feed, err)
		return nil
	}
	if len(records) == 0 {
		log.Printf("[SpaceWeatherService] Feed %s returned no records", feed)
		return nil
	}
	log.Printf("[SpaceWeatherService] Fetched %s. Records: %d", feed, len(records))
	return records[len(records)-1]
}
