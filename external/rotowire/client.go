package rotowire

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-lineups/external/upstream"
	"github.com/riskibarqy/fantasy-lineups/internal/platform/logging"
	"github.com/riskibarqy/fantasy-lineups/internal/platform/resilience"
	"github.com/riskibarqy/fantasy-lineups/internal/usecase"
)

const (
	defaultURL       = "https://www.rotowire.com/soccer/lineups.php"
	defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"
)

type ClientConfig struct {
	HTTPClient     *http.Client
	URL            string
	UserAgent      string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client downloads the lineups page.
type Client struct {
	fetcher *upstream.Fetcher
}

func NewClient(cfg ClientConfig) *Client {
	url := strings.TrimSpace(cfg.URL)
	if url == "" {
		url = defaultURL
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Client{
		fetcher: upstream.NewFetcher(upstream.Config{
			Source:         usecase.SourceLineupsDocument,
			HTTPClient:     cfg.HTTPClient,
			URL:            url,
			UserAgent:      userAgent,
			Accept:         "text/html",
			Timeout:        cfg.Timeout,
			Logger:         cfg.Logger,
			CircuitBreaker: cfg.CircuitBreaker,
		}),
	}
}

// FetchDocument returns the raw page. Any non-2xx response is an
// usecase.ErrUpstreamFetch.
func (c *Client) FetchDocument(ctx context.Context) ([]byte, error) {
	return c.fetcher.Fetch(ctx)
}
