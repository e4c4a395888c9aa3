package main

import (
	"context"
	"log"
	"time"

	"uv-dashboard/config"
	"uv-dashboard/di"
)

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	container, err := di.NewContainer(settings)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// initial fetch for the default location; failures only log
	if _, err := container.UVFetchController.SelectLocation(ctx, settings.DefaultLocation); err != nil {
		log.Printf("Initial fetch for %s failed: %v", settings.DefaultLocation, err)
	}

	log.Println("starting clock job!")
	container.ClockService.StartPeriodicJob(ctx, config.CLOCK_REFRESH_SCHEDULE_MINUTES*time.Minute)

	log.Println("starting server!")
	container.HttpServer.Start()
}
