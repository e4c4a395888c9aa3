package di

import (
	"context"
	"fmt"
	"log"
	"time"

	"uv-dashboard/api"
	"uv-dashboard/api/noaa"
	"uv-dashboard/api/openuv"
	"uv-dashboard/config"
	"uv-dashboard/dao/redis"
	"uv-dashboard/db"
	"uv-dashboard/models"
	"uv-dashboard/server"
	"uv-dashboard/server/handlers"
	services "uv-dashboard/service"
	"uv-dashboard/util"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Container holds all application dependencies.
type Container struct {
	Settings            config.Settings
	Locations           *models.LocationTable
	RedisClient         db.RedisClient
	RedisDisplayDao     *redis.RedisDisplayDAO
	OpenUVAPI           openuv.OpenUVAPI
	SpaceWeatherAPI     noaa.SpaceWeatherAPI
	MetricsRegistry     *prometheus.Registry
	ChartRenderer       *util.ChartRenderer
	UVFetchController   *services.UVFetchController
	QuizService         *services.QuizService
	ReminderService     *services.ReminderService
	ClockService        *services.ClockService
	SpaceWeatherService *services.SpaceWeatherService
	MuxRouter           *mux.Router
	Router              *server.Router
	HttpServer          *server.UVDashboardHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(settings config.Settings) (*Container, error) {
	log.Printf("initializing container - env: %s", settings.Env)
	ctx := context.Background()

	tz, err := time.LoadLocation(settings.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", settings.Timezone, err)
	}

	locations, err := loadLocations(settings)
	if err != nil {
		return nil, err
	}
	if _, ok := locations.Lookup(settings.DefaultLocation); !ok {
		return nil, fmt.Errorf("default location %q is not in the location table", settings.DefaultLocation)
	}

	// Display store
	var redisClient db.RedisClient
	if settings.Store == config.STORE_REDIS {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     settings.RedisAddr,
			Password: settings.RedisPassword,
			DB:       settings.RedisDB,
		})
		goRedisClient, err := db.NewGoRedisClient(ctx, redisInternalClient)
		if err != nil {
			return nil, err
		}
		redisClient = goRedisClient
		log.Printf("Using redis display store at %s", settings.RedisAddr)
	} else {
		redisClient = db.NewMemoryRedisClient()
		log.Printf("Using in-memory display store")
	}
	redisDisplayDao := redis.NewRedisDisplayDAO(redisClient)

	// OpenUV - mocked outside prod
	var openUVAPI openuv.OpenUVAPI
	if settings.Env != "prod" {
		openUVAPI = openuv.NewOpenUVApiClientMock(config.GetResourcePath(config.OPENUV_RESPONSE_RESOURCE))
		log.Printf("Using mock openuv api")
	} else {
		log.Printf("Using prod openuv api")
		client := openuv.NewOpenUVApiClient(api.NewHTTPClient(settings.OpenUVBaseURL))
		client.SetAPIKey(settings.OpenUVAPIKey)
		openUVAPI = client
	}
	spaceWeatherAPI := noaa.NewNOAAApiClient(api.NewHTTPClient(settings.NOAABaseURL))

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	chartRenderer := util.NewChartRenderer(tz)
	uvFetchController := services.NewUVFetchController(openUVAPI, locations, chartRenderer, redisDisplayDao, registry)
	quizService := services.NewQuizService()
	reminderService := services.NewReminderService(tz)
	clockService := services.NewClockService(tz)
	spaceWeatherService := services.NewSpaceWeatherService(spaceWeatherAPI)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(
		handlers.NewUVHandler(uvFetchController),
		handlers.NewQuizHandler(quizService),
		handlers.NewReminderHandler(reminderService),
		handlers.NewDashboardHandler(redisClient, clockService, spaceWeatherService, registry),
		muxRouter,
	)
	httpServer := server.NewUVDashboardHttpServer(settings.Addr, router, muxRouter, redisClient)

	return &Container{
		Settings:            settings,
		Locations:           locations,
		RedisClient:         redisClient,
		RedisDisplayDao:     redisDisplayDao,
		OpenUVAPI:           openUVAPI,
		SpaceWeatherAPI:     spaceWeatherAPI,
		MetricsRegistry:     registry,
		ChartRenderer:       chartRenderer,
		UVFetchController:   uvFetchController,
		QuizService:         quizService,
		ReminderService:     reminderService,
		ClockService:        clockService,
		SpaceWeatherService: spaceWeatherService,
		MuxRouter:           muxRouter,
		Router:              router,
		HttpServer:          httpServer,
	}, nil
}

func loadLocations(settings config.Settings) (*models.LocationTable, error) {
	if settings.LocationsFile == "" {
		return models.NewLocationTable(config.DefaultLocations), nil
	}
	locations, err := util.ReadLocationsFromJSON(settings.LocationsFile)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded %d locations from %s", len(locations), settings.LocationsFile)
	return models.NewLocationTable(locations), nil
}
