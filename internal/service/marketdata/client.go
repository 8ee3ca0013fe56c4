package marketdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dancaldera/investment-api/internal/domain/models"
	drepo "github.com/dancaldera/investment-api/internal/domain/repository"
	"github.com/dancaldera/investment-api/internal/service/ratelimit"
	xhttp "github.com/dancaldera/investment-api/pkg/http"
	"github.com/dancaldera/investment-api/pkg/logger"
)

// symbolAliases corrects known ticker typos and synonyms to the
// canonical provider symbol.
var symbolAliases = map[string]string{
	"APPL":   "AAPL",
	"FB":     "META",
	"BRKB":   "BRK-B",
	"BRK.B":  "BRK-B",
	"SPX":    "^GSPC",
	"SP500":  "^GSPC",
	"SPX500": "^GSPC",
}

// NormalizeSymbol trims, uppercases and applies the alias table.
func NormalizeSymbol(symbol string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if canonical, ok := symbolAliases[s]; ok {
		return canonical
	}
	return s
}

// requester sends a prepared HTTP request. *xhttp.Client is the
// production implementation; tests substitute a stub.
type requester interface {
	SendRequest(ctx context.Context, opts *xhttp.RequestOptions) (*http.Response, error)
}

// Client fetches close-price series from the provider chart endpoint.
// Every outbound attempt reserves a slot from the shared limiter first,
// so concurrent fetches across all requests keep the minimum spacing.
type Client struct {
	http        requester
	limiter     *ratelimit.Limiter
	log         *logger.Logger
	metrics     drepo.Metrics
	baseURL     string
	maxAttempts int
	backoffUnit time.Duration
}

// Option configures Client.
type Option func(*Client)

// WithRequester overrides the HTTP transport (tests).
func WithRequester(r requester) Option {
	return func(c *Client) { c.http = r }
}

// WithMetrics attaches an attempt-outcome recorder.
func WithMetrics(m drepo.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithRetry sets the attempt budget and the backoff time unit.
func WithRetry(maxAttempts int, unit time.Duration) Option {
	return func(c *Client) {
		c.maxAttempts = maxAttempts
		c.backoffUnit = unit
	}
}

// New creates a provider client. The limiter is required and shared
// with every other fetch path in the process.
func New(baseURL, userAgent string, timeout time.Duration, limiter *ratelimit.Limiter, log *logger.Logger, opts ...Option) *Client {
	c := &Client{
		http:        xhttp.NewClient(xhttp.WithTimeout(timeout), xhttp.WithUserAgent(userAgent)),
		limiter:     limiter,
		log:         log,
		baseURL:     strings.TrimRight(baseURL, "/"),
		maxAttempts: 3,
		backoffUnit: time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// chartResponse mirrors the provider chart JSON. Close entries decode
// as pointers so nulls survive parsing and can be dropped explicitly.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// Fetch retrieves an accepted close-price series for symbol. 404 fails
// immediately with ErrSymbolNotFound; 429 backs off exponentially
// (2^attempt units); every other failure backs off linearly. Once the
// attempt budget is spent the last error is wrapped in
// ErrDataUnavailable.
func (c *Client) Fetch(ctx context.Context, symbol string, interval drepo.Interval) (*models.PriceSeries, error) {
	sym := NormalizeSymbol(symbol)
	window := drepo.WindowFor(interval)

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		series, err := c.fetchOnce(ctx, sym, interval, window)
		if err == nil {
			c.recordAttempt(sym, "ok")
			c.log.Debug("fetched series",
				logger.String("symbol", sym),
				logger.String("interval", string(interval)),
				logger.Int("points", series.Len()))
			return series, nil
		}
		lastErr = err

		if errors.Is(err, ErrSymbolNotFound) {
			c.recordAttempt(sym, "not_found")
			return nil, fmt.Errorf("%w: %s", ErrSymbolNotFound, sym)
		}

		var backoff time.Duration
		if errors.Is(err, ErrRateLimited) {
			c.recordAttempt(sym, "rate_limited")
			backoff = time.Duration(1<<uint(attempt)) * c.backoffUnit
		} else {
			c.recordAttempt(sym, "error")
			backoff = time.Duration(attempt) * c.backoffUnit
		}

		c.log.Warn("fetch attempt failed",
			logger.String("symbol", sym),
			logger.Int("attempt", attempt),
			logger.Error(err))

		if attempt < c.maxAttempts {
			c.limiter.Clock().Sleep(backoff)
		}
	}

	return nil, fmt.Errorf("%w: %s after %d attempts: %w", ErrDataUnavailable, sym, c.maxAttempts, lastErr)
}

func (c *Client) fetchOnce(ctx context.Context, symbol string, interval drepo.Interval, window time.Duration) (*models.PriceSeries, error) {
	end := c.limiter.Clock().Now()
	start := end.Add(-window)

	resp, err := c.http.SendRequest(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    fmt.Sprintf("%s/v8/finance/chart/%s", c.baseURL, url.PathEscape(symbol)),
		QueryParams: map[string][]string{
			"interval": {string(interval)},
			"period1":  {strconv.FormatInt(start.Unix(), 10)},
			"period2":  {strconv.FormatInt(end.Unix(), 10)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("provider request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to payload parsing
	case http.StatusNotFound:
		return nil, ErrSymbolNotFound
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("provider status %d: %s", resp.StatusCode, truncate(body, 256))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read provider body: %w", err)
	}

	return parseChart(symbol, interval, body)
}

// parseChart validates the payload shape and drops null closes together
// with their timestamps. An empty or missing close array is malformed,
// never interpolated.
func parseChart(symbol string, interval drepo.Interval, body []byte) (*models.PriceSeries, error) {
	var chart chartResponse
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, &MalformedError{Reason: "invalid json", Payload: body}
	}
	if chart.Chart.Error != nil {
		return nil, &MalformedError{
			Reason:  fmt.Sprintf("provider error %s: %s", chart.Chart.Error.Code, chart.Chart.Error.Description),
			Payload: body,
		}
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, &MalformedError{Reason: "missing chart result", Payload: body}
	}

	result := chart.Chart.Result[0]
	closes := result.Indicators.Quote[0].Close
	if len(closes) == 0 {
		return nil, &MalformedError{Reason: "empty close array", Payload: body}
	}

	series := &models.PriceSeries{
		Symbol:     symbol,
		Interval:   string(interval),
		Timestamps: make([]int64, 0, len(closes)),
		Closes:     make([]float64, 0, len(closes)),
	}
	for i, c := range closes {
		if c == nil {
			continue
		}
		var ts int64
		if i < len(result.Timestamp) {
			ts = result.Timestamp[i]
		}
		series.Timestamps = append(series.Timestamps, ts)
		series.Closes = append(series.Closes, *c)
	}
	if series.Len() == 0 {
		return nil, &MalformedError{Reason: "close array holds only nulls", Payload: body}
	}
	return series, nil
}

func (c *Client) recordAttempt(symbol, outcome string) {
	if c.metrics != nil {
		c.metrics.RecordFetchAttempt(symbol, outcome)
	}
}
