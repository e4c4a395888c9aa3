package di

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"uv-dashboard/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, root, name, content string) string {
	t.Helper()
	path := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewContainer_DevWiring(t *testing.T) {
	root := t.TempDir()
	t.Setenv("PROJECT_ROOT", root)
	writeFixture(t, root, filepath.Join(config.RESOURCES_PATH_PREFIX, config.OPENUV_RESPONSE_RESOURCE), `{"result":{"uv":11.4,"uv_max":12}}`)

	settings := config.DefaultSettings()
	settings.Timezone = "UTC"
	container, err := NewContainer(settings)
	require.NoError(t, err)

	display, err := container.UVFetchController.SelectLocation(context.Background(), "london")
	require.NoError(t, err)
	require.NotNil(t, display)
	assert.Equal(t, "Extreme", display.Category.Label)

	handler := container.HttpServer.Handler()
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `uvdash_uv_fetch_total{outcome="applied"} 1`)

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/v1/uv", nil))
	assert.Contains(t, rr.Body.String(), `"label":"Extreme"`)
}

func TestNewContainer_LocationsFile(t *testing.T) {
	root := t.TempDir()
	t.Setenv("PROJECT_ROOT", root)
	path := writeFixture(t, root, "locations.json", `[{"key":"synthetic","lat":0,"lon":0}]`)

	settings := config.DefaultSettings()
	settings.LocationsFile = path
	settings.DefaultLocation = "synthetic"
	container, err := NewContainer(settings)
	require.NoError(t, err)

	assert.Equal(t, []string{"synthetic"}, container.Locations.Keys())
}

func TestNewContainer_InvalidSettings(t *testing.T) {
	settings := config.DefaultSettings()
	settings.DefaultLocation = "atlantis"
	_, err := NewContainer(settings)
	assert.Error(t, err)

	settings = config.DefaultSettings()
	settings.Timezone = "Not/AZone"
	_, err = NewContainer(settings)
	assert.Error(t, err)
}

func TestNewContainer_PingAndShutdownWiring(t *testing.T) {
	root := t.TempDir()
	t.Setenv("PROJECT_ROOT", root)

	settings := config.DefaultSettings()
	container, err := NewContainer(settings)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	container.HttpServer.Handler().ServeHTTP(rr, httptest.NewRequest("GET", "/ping", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NoError(t, container.RedisClient.Close())
}
