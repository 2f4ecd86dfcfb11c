package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ServiceName != "fantasy-lineups-api" {
		t.Fatalf("unexpected service name: %q", cfg.ServiceName)
	}
	if cfg.LineupsSourceURL != DefaultLineupsSourceURL {
		t.Fatalf("unexpected lineups source url: %q", cfg.LineupsSourceURL)
	}
	if cfg.RosterSourceURL != DefaultRosterSourceURL {
		t.Fatalf("unexpected roster source url: %q", cfg.RosterSourceURL)
	}
	if cfg.UpstreamTimeout != 15*time.Second {
		t.Fatalf("unexpected upstream timeout: %s", cfg.UpstreamTimeout)
	}
	if !cfg.Upstream.Enabled || cfg.Upstream.FailureCount != 5 || cfg.Upstream.HalfOpenMax != 1 {
		t.Fatalf("unexpected circuit defaults: %+v", cfg.Upstream)
	}
	if got := cfg.CacheControl(); got != "s-maxage=3600, stale-while-revalidate=7200" {
		t.Fatalf("unexpected cache control: %q", got)
	}
	if cfg.LogLevel.String() != "info" {
		t.Fatalf("unexpected log level: %s", cfg.LogLevel.String())
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected uptrace dsn: %q", cfg.UptraceDSN)
	}
}

func TestLoad_SourceURLValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("rejects non http scheme", func(t *testing.T) {
		t.Setenv("LINEUPS_SOURCE_URL", "ftp://example.com/lineups")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for ftp LINEUPS_SOURCE_URL")
		}
	})

	t.Run("rejects missing host", func(t *testing.T) {
		t.Setenv("ROSTER_SOURCE_URL", "https:///bootstrap-static")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for ROSTER_SOURCE_URL without host")
		}
	})

	t.Run("accepts override", func(t *testing.T) {
		t.Setenv("LINEUPS_SOURCE_URL", "http://127.0.0.1:9000/lineups")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.LineupsSourceURL != "http://127.0.0.1:9000/lineups" {
			t.Fatalf("unexpected lineups source url: %q", cfg.LineupsSourceURL)
		}
	})
}

func TestLoad_CircuitConfigValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("failure count must be positive", func(t *testing.T) {
		t.Setenv("UPSTREAM_CIRCUIT_FAILURE_COUNT", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for UPSTREAM_CIRCUIT_FAILURE_COUNT=0")
		}
	})

	t.Run("open timeout must parse", func(t *testing.T) {
		t.Setenv("UPSTREAM_CIRCUIT_OPEN_TIMEOUT", "soon")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid UPSTREAM_CIRCUIT_OPEN_TIMEOUT")
		}
	})

	t.Run("custom values", func(t *testing.T) {
		t.Setenv("UPSTREAM_CIRCUIT_ENABLED", "false")
		t.Setenv("UPSTREAM_CIRCUIT_FAILURE_COUNT", "3")
		t.Setenv("UPSTREAM_CIRCUIT_OPEN_TIMEOUT", "10s")
		t.Setenv("UPSTREAM_CIRCUIT_HALF_OPEN_MAX_REQ", "2")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		want := CircuitConfig{Enabled: false, FailureCount: 3, OpenTimeout: 10 * time.Second, HalfOpenMax: 2}
		if cfg.Upstream != want {
			t.Fatalf("unexpected circuit config: got=%+v want=%+v", cfg.Upstream, want)
		}
	})
}

func TestLoad_CacheDirectiveParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("custom windows", func(t *testing.T) {
		t.Setenv("LINEUPS_CACHE_MAX_AGE", "5m")
		t.Setenv("LINEUPS_STALE_WHILE_REVALIDATE", "0s")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if got := cfg.CacheControl(); got != "s-maxage=300, stale-while-revalidate=0" {
			t.Fatalf("unexpected cache control: %q", got)
		}
	})

	t.Run("max age must be positive", func(t *testing.T) {
		t.Setenv("LINEUPS_CACHE_MAX_AGE", "0s")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for LINEUPS_CACHE_MAX_AGE=0s")
		}
	})
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_SERVICE_NAME", "fantasy-lineups-api-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "fantasy-lineups-api-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
			t.Fatalf("unexpected second CORS origin: %s", cfg.CORSAllowedOrigins[1])
		}
	})

	t.Run("only separators", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " , ,")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for empty CORS origins")
		}
	})
}

func TestLoad_SwaggerDefaultsByEnv(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.SwaggerEnabled {
		t.Fatalf("expected swagger disabled in prod by default")
	}

	t.Setenv("SWAGGER_ENABLED", "true")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.SwaggerEnabled {
		t.Fatalf("expected SWAGGER_ENABLED to override the prod default")
	}

	t.Setenv("SWAGGER_ENABLED", "sometimes")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid SWAGGER_ENABLED")
	}
}
