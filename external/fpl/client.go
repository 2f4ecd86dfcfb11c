package fpl

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/fantasy-lineups/external/upstream"
	"github.com/riskibarqy/fantasy-lineups/internal/domain/player"
	"github.com/riskibarqy/fantasy-lineups/internal/platform/logging"
	"github.com/riskibarqy/fantasy-lineups/internal/platform/resilience"
	"github.com/riskibarqy/fantasy-lineups/internal/usecase"
)

const (
	defaultURL     = "https://fantasy.premierleague.com/api/bootstrap-static/"
	defaultReferer = "https://fantasy.premierleague.com/"
)

type ClientConfig struct {
	HTTPClient     *http.Client
	URL            string
	UserAgent      string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client loads the canonical roster from the bootstrap payload.
type Client struct {
	fetcher   *upstream.Fetcher
	logger    *logging.Logger
	validator *validator.Validate
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	url := strings.TrimSpace(cfg.URL)
	if url == "" {
		url = defaultURL
	}

	return &Client{
		fetcher: upstream.NewFetcher(upstream.Config{
			Source:         usecase.SourceRoster,
			HTTPClient:     cfg.HTTPClient,
			URL:            url,
			UserAgent:      cfg.UserAgent,
			Accept:         "application/json",
			Headers:        map[string]string{"Referer": defaultReferer},
			Timeout:        cfg.Timeout,
			Logger:         logger,
			CircuitBreaker: cfg.CircuitBreaker,
		}),
		logger:    logger,
		validator: validator.New(),
	}
}

// ListPlayers fetches the roster fresh on every call. Records that fail
// validation are skipped; a payload that cannot be decoded fails the call.
func (c *Client) ListPlayers(ctx context.Context) (player.Roster, error) {
	raw, err := c.fetcher.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	var payload bootstrapEnvelope
	if err := sonic.Unmarshal(raw, &payload); err != nil {
		return nil, usecase.NewUpstreamDecodeError(usecase.SourceRoster, fmt.Errorf("decode bootstrap payload: %w", err))
	}
	if payload.Elements == nil {
		return nil, usecase.NewUpstreamDecodeError(usecase.SourceRoster, fmt.Errorf("bootstrap payload has no elements"))
	}

	roster := make(player.Roster, 0, len(payload.Elements))
	skipped := 0
	for _, item := range payload.Elements {
		if err := c.validator.StructCtx(ctx, item); err != nil {
			skipped++
			c.logger.DebugContext(ctx, "skip invalid roster record", "player_id", item.ID, "error", err)
			continue
		}
		roster = append(roster, item.toPlayer())
	}
	if skipped > 0 {
		c.logger.WarnContext(ctx, "roster records skipped", "skipped", skipped, "kept", len(roster))
	}

	return roster, nil
}
