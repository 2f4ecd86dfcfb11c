package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/fantasy-lineups/external/fpl"
	"github.com/riskibarqy/fantasy-lineups/external/rotowire"
	"github.com/riskibarqy/fantasy-lineups/internal/config"
	"github.com/riskibarqy/fantasy-lineups/internal/domain/identity"
	"github.com/riskibarqy/fantasy-lineups/internal/domain/player"
	"github.com/riskibarqy/fantasy-lineups/internal/interfaces/httpapi"
	"github.com/riskibarqy/fantasy-lineups/internal/platform/logging"
	"github.com/riskibarqy/fantasy-lineups/internal/platform/resilience"
	"github.com/riskibarqy/fantasy-lineups/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	svc, err := NewLineupService(cfg, logger)
	if err != nil {
		return nil, err
	}

	handler := httpapi.NewHandler(svc, cfg.CacheControl(), logger.Named("httpapi"))
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}

// NewLineupService wires both upstream clients and the mapping tables.
func NewLineupService(cfg config.Config, logger *logging.Logger) (*usecase.LineupService, error) {
	mappings, err := config.LoadMappings(cfg.MappingsFile)
	if err != nil {
		return nil, fmt.Errorf("load mappings: %w", err)
	}
	teams, err := mappings.TeamCodes()
	if err != nil {
		return nil, fmt.Errorf("build team table: %w", err)
	}

	lineupsClient := rotowire.NewClient(rotowire.ClientConfig{
		URL:            cfg.LineupsSourceURL,
		UserAgent:      cfg.UserAgent,
		Timeout:        cfg.UpstreamTimeout,
		Logger:         logger.Named("rotowire"),
		CircuitBreaker: breakerConfig("lineups_document", cfg.Upstream),
	})
	rosterClient := fpl.NewClient(fpl.ClientConfig{
		URL:            cfg.RosterSourceURL,
		UserAgent:      cfg.UserAgent,
		Timeout:        cfg.UpstreamTimeout,
		Logger:         logger.Named("fpl"),
		CircuitBreaker: breakerConfig("roster", cfg.Upstream),
	})

	svc, err := usecase.NewLineupService(
		lineupsClient,
		rotowire.NewParser(rotowire.DefaultMarkers()),
		rosterClient,
		usecase.LineupRules{
			Teams:     teams,
			Positions: player.NewPositionClassifier(mappings.PositionCodes()),
			Matcher:   identity.NewDefaultMatcher(mappings.NameNormalizer()),
			Tags:      mappings.TagTable(),
		},
		logger.Named("lineups"),
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("build lineup service: %w", err)
	}

	logger.Info("lineup service ready",
		"teams", teams.Len(),
		"lineups_source", cfg.LineupsSourceURL,
		"roster_source", cfg.RosterSourceURL,
		"circuit_enabled", cfg.Upstream.Enabled,
	)
	return svc, nil
}

func breakerConfig(name string, cfg config.CircuitConfig) resilience.CircuitBreakerConfig {
	return resilience.CircuitBreakerConfig{
		Name:             name,
		Enabled:          cfg.Enabled,
		FailureThreshold: cfg.FailureCount,
		OpenTimeout:      cfg.OpenTimeout,
		HalfOpenMaxReq:   cfg.HalfOpenMax,
	}
}
