package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/riskibarqy/fantasy-lineups/internal/platform/logging"
	"github.com/riskibarqy/fantasy-lineups/internal/platform/resilience"
	"github.com/riskibarqy/fantasy-lineups/internal/usecase"
)

const (
	defaultTimeout      = 15 * time.Second
	defaultMaxBodyBytes = 16 << 20
)

var errTransient = crerr.New("upstream transient failure")

// Config describes one upstream GET endpoint.
type Config struct {
	Source         usecase.UpstreamSource
	HTTPClient     *http.Client
	URL            string
	UserAgent      string
	Accept         string
	Headers        map[string]string
	Timeout        time.Duration
	MaxBodyBytes   int64
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Fetcher issues a single GET per call. It never retries: a failed call is
// reported as usecase.ErrUpstreamFetch and concurrent identical calls share
// one request.
type Fetcher struct {
	source       usecase.UpstreamSource
	httpClient   *http.Client
	url          string
	userAgent    string
	accept       string
	headers      map[string]string
	timeout      time.Duration
	maxBodyBytes int64
	logger       *logging.Logger
	breaker      *resilience.CircuitBreaker
	flight       resilience.SingleFlight
}

func NewFetcher(cfg Config) *Fetcher {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.With("source", string(cfg.Source))

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	maxBodyBytes := cfg.MaxBodyBytes
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}

	breakerCfg := cfg.CircuitBreaker
	if breakerCfg.Name == "" {
		breakerCfg.Name = string(cfg.Source)
	}
	breaker := resilience.NewCircuitBreakerFromConfig(breakerCfg)
	breaker.OnStateChange(func(name string, from, to resilience.CircuitState) {
		logger.Warn("upstream circuit breaker state changed", "breaker", name, "from", string(from), "to", string(to))
	})

	return &Fetcher{
		source:       cfg.Source,
		httpClient:   httpClient,
		url:          strings.TrimSpace(cfg.URL),
		userAgent:    strings.TrimSpace(cfg.UserAgent),
		accept:       strings.TrimSpace(cfg.Accept),
		headers:      cloneHeaders(cfg.Headers),
		timeout:      timeout,
		maxBodyBytes: maxBodyBytes,
		logger:       logger,
		breaker:      breaker,
	}
}

func (f *Fetcher) Source() usecase.UpstreamSource {
	return f.source
}

// Breaker is nil when the circuit breaker is disabled.
func (f *Fetcher) Breaker() *resilience.CircuitBreaker {
	return f.breaker
}

// Fetch returns the full response body of a 2xx response.
func (f *Fetcher) Fetch(ctx context.Context) ([]byte, error) {
	if err := f.breaker.Allow(); err != nil {
		f.logger.WarnContext(ctx, "upstream circuit breaker rejected request", "state", string(f.breaker.State()))
		return nil, usecase.NewUpstreamFetchError(f.source, fmt.Errorf("%w: %w", usecase.ErrDependencyUnavailable, err))
	}

	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(
			attribute.String("upstream.source", string(f.source)),
			attribute.String("upstream.url", f.url),
		)
	}

	// The shared request outlives any single caller; each caller is released
	// by its own ctx only.
	out, err, shared := f.flight.DoContext(ctx, f.url, func() (any, error) {
		reqCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), f.timeout)
		defer cancel()

		raw, reqErr := f.executeRequest(reqCtx)
		f.breaker.Record(reqErr, isCircuitFailure)
		return raw, reqErr
	})
	if err != nil {
		f.logger.WarnContext(ctx, "upstream request failed", "url", f.url, "shared", shared, "error", err)
		return nil, usecase.NewUpstreamFetchError(f.source, err)
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, usecase.NewUpstreamFetchError(f.source, fmt.Errorf("unexpected response payload type %T", out))
	}
	return raw, nil
}

func (f *Fetcher) executeRequest(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, crerr.Wrap(err, "build request")
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	if f.accept != "" {
		req.Header.Set("Accept", f.accept)
	}
	for name, value := range f.headers {
		req.Header.Set(name, value)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, crerr.Mark(crerr.Wrap(ctxErr, "send request"), errTransient)
		}
		return nil, crerr.Mark(crerr.Wrap(err, "send request"), errTransient)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, f.maxBodyBytes+1)); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, crerr.Mark(crerr.Wrap(ctxErr, "read response body"), errTransient)
		}
		return nil, crerr.Mark(crerr.Wrap(err, "read response body"), errTransient)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := crerr.Newf("upstream status=%d body=%s", resp.StatusCode, abbreviateBody(buf.B))
		if isRetryableStatus(resp.StatusCode) {
			return nil, crerr.Mark(statusErr, errTransient)
		}
		return nil, statusErr
	}
	if int64(buf.Len()) > f.maxBodyBytes {
		return nil, crerr.Newf("response body exceeds %d bytes", f.maxBodyBytes)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.B)
	return out, nil
}

// isCircuitFailure counts only upstream-side failures against the breaker.
// The request context is detached from callers, so a deadline here means the
// upstream did not answer within the fetcher timeout.
func isCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return crerr.Is(err, errTransient)
}

func cloneHeaders(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for name, value := range in {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		out[name] = strings.TrimSpace(value)
	}
	return out
}

func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
