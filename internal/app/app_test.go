package app

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/fantasy-lineups/internal/config"
	"github.com/riskibarqy/fantasy-lineups/internal/platform/logging"
)

func testConfig() config.Config {
	return config.Config{
		AppEnv:                      config.EnvDev,
		ServiceName:                 "fantasy-lineups-api",
		HTTPAddr:                    ":0",
		ReadTimeout:                 time.Second,
		WriteTimeout:                time.Second,
		CORSAllowedOrigins:          []string{"*"},
		LineupsSourceURL:            config.DefaultLineupsSourceURL,
		RosterSourceURL:             config.DefaultRosterSourceURL,
		UpstreamTimeout:             time.Second,
		Upstream:                    config.CircuitConfig{Enabled: true, FailureCount: 3, OpenTimeout: time.Second, HalfOpenMax: 1},
		LineupsCacheMaxAge:          time.Hour,
		LineupsStaleWhileRevalidate: 2 * time.Hour,
	}
}

func TestNewHTTPServer_ServesHealthz(t *testing.T) {
	t.Parallel()

	srv, err := NewHTTPServer(testConfig(), logging.NewNop())
	require.NoError(t, err)
	require.Equal(t, ":0", srv.Addr)
	require.Equal(t, time.Second, srv.ReadTimeout)

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.HTTPAddr = ""

	_, err := NewHTTPServer(cfg, logging.NewNop())
	require.Error(t, err)
}

func TestNewLineupService_MissingMappingsFile(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.MappingsFile = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := NewLineupService(cfg, logging.NewNop())
	require.ErrorContains(t, err, "load mappings")
}
