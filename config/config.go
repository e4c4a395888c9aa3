package config

import (
	"os"
	"path/filepath"
	"strings"

	"uv-dashboard/models"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Display store backends
const STORE_MEMORY = "memory"
const STORE_REDIS = "redis"

// OpenUV API
const OPENUV_ENDPOINT_BASE_V1 = "https://api.openuv.io/api/v1"
const OPENUV_API_KEY_HEADER = "x-access-token"

// NOAA SWPC
const NOAA_SWPC_ENDPOINT_BASE = "https://services.swpc.noaa.gov/json"

// Dashboard config
const DEFAULT_LOCATION_KEY = "new-york"
const CLOCK_REFRESH_SCHEDULE_MINUTES = 1
const HTTP_ADDR = ":8080"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const OPENUV_RESPONSE_RESOURCE = "openuv_response.json"

const ENV_PREFIX = "UVDASH_"

// DefaultLocations is the selectable city table.
var DefaultLocations = []models.Location{
	{Key: "new-york", Lat: 40.7128, Lon: -74.0060},
	{Key: "nagpur", Lat: 21.1458, Lon: 79.0882},
	{Key: "mumbai", Lat: 19.0760, Lon: 72.8777},
	{Key: "delhi", Lat: 28.6139, Lon: 77.2090},
	{Key: "london", Lat: 51.5074, Lon: -0.1278},
}

// Settings are the values that can be overridden from the environment.
type Settings struct {
	Env             string `koanf:"env"`
	Addr            string `koanf:"addr"`
	OpenUVAPIKey    string `koanf:"openuv_api_key"`
	OpenUVBaseURL   string `koanf:"openuv_base_url"`
	NOAABaseURL     string `koanf:"noaa_base_url"`
	DefaultLocation string `koanf:"default_location"`
	LocationsFile   string `koanf:"locations_file"`
	Timezone        string `koanf:"timezone"`
	Store           string `koanf:"store"`
	RedisAddr       string `koanf:"redis_addr"`
	RedisPassword   string `koanf:"redis_password"`
	RedisDB         int    `koanf:"redis_db"`
}

// DefaultSettings returns the compiled-in configuration.
func DefaultSettings() Settings {
	return Settings{
		Env:             "dev",
		Addr:            HTTP_ADDR,
		OpenUVBaseURL:   OPENUV_ENDPOINT_BASE_V1,
		NOAABaseURL:     NOAA_SWPC_ENDPOINT_BASE,
		DefaultLocation: DEFAULT_LOCATION_KEY,
		Timezone:        "Local",
		Store:           STORE_MEMORY,
		RedisAddr:       REDIS_DB_ADDRESS,
		RedisPassword:   REDIS_DB_PASSWORD,
		RedisDB:         REDIS_DB,
	}
}

// LoadSettings layers defaults, an optional .env file and UVDASH_* variables.
// OPENUV_API_KEY is honoured as well since that is the name the key is usually exported under.
func LoadSettings() (Settings, error) {
	// a missing .env is fine
	_ = godotenv.Load(filepath.Join(BaseDir(), ".env"))

	s := DefaultSettings()
	if key := os.Getenv("OPENUV_API_KEY"); key != "" {
		s.OpenUVAPIKey = key
	}

	k := koanf.New(".")
	envProvider := env.Provider(ENV_PREFIX, ".", func(key string) string {
		return strings.TrimPrefix(strings.ToLower(key), strings.ToLower(ENV_PREFIX))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return Settings{}, err
	}
	if err := k.UnmarshalWithConf("", &s, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
