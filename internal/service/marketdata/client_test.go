package marketdata

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	drepo "github.com/dancaldera/investment-api/internal/domain/repository"
	"github.com/dancaldera/investment-api/internal/service/ratelimit"
	xhttp "github.com/dancaldera/investment-api/pkg/http"
	"github.com/dancaldera/investment-api/pkg/logger"
)

// fakeClock never advances on its own; sleeps are recorded and move it
// forward so limiter spacing and retry backoff are observable.
type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
}

// stubRequester replays canned responses in order and counts calls.
type stubRequester struct {
	responses []*http.Response
	errs      []error
	calls     int
}

func (s *stubRequester) SendRequest(_ context.Context, _ *xhttp.RequestOptions) (*http.Response, error) {
	i := s.calls
	s.calls++
	if i >= len(s.responses) {
		return nil, errors.New("no more canned responses")
	}
	if s.errs != nil && s.errs[i] != nil {
		return nil, s.errs[i]
	}
	return s.responses[i], nil
}

func resp(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

const chartBody = `{"chart":{"result":[{"timestamp":[1,2,3,4],` +
	`"indicators":{"quote":[{"close":[10.0,null,11.5,12.0]}]}}]}}`

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	l, err := logger.New(&logger.Config{Level: "error", Format: "console", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

func newTestClient(t *testing.T, stub *stubRequester, clk *fakeClock) *Client {
	t.Helper()
	limiter := ratelimit.New(2*time.Second, clk)
	return New("https://example.test", "UA", time.Second, limiter, testLogger(t),
		WithRequester(stub), WithRetry(3, time.Second))
}

func TestFetchDropsNullCloses(t *testing.T) {
	stub := &stubRequester{responses: []*http.Response{resp(200, chartBody)}}
	c := newTestClient(t, stub, newFakeClock())

	series, err := c.Fetch(context.Background(), "aapl ", drepo.IntervalDaily)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if series.Symbol != "AAPL" {
		t.Errorf("symbol: got %q want AAPL", series.Symbol)
	}
	want := []float64{10.0, 11.5, 12.0}
	if len(series.Closes) != len(want) {
		t.Fatalf("closes: got %v want %v", series.Closes, want)
	}
	for i, v := range want {
		if series.Closes[i] != v {
			t.Errorf("closes[%d]: got %v want %v", i, series.Closes[i], v)
		}
	}
	if len(series.Timestamps) != 3 || series.Timestamps[1] != 3 {
		t.Errorf("timestamps misaligned after null drop: %v", series.Timestamps)
	}
}

func TestFetchAppliesAliasTable(t *testing.T) {
	if got := NormalizeSymbol(" appl"); got != "AAPL" {
		t.Errorf("APPL alias: got %q", got)
	}
	if got := NormalizeSymbol("sp500"); got != "^GSPC" {
		t.Errorf("SP500 alias: got %q", got)
	}
	if got := NormalizeSymbol("msft"); got != "MSFT" {
		t.Errorf("passthrough: got %q", got)
	}
}

func TestFetchRetriesRateLimitWithExponentialBackoff(t *testing.T) {
	stub := &stubRequester{responses: []*http.Response{
		resp(429, ""),
		resp(429, ""),
		resp(200, chartBody),
	}}
	clk := newFakeClock()
	c := newTestClient(t, stub, clk)

	series, err := c.Fetch(context.Background(), "AAPL", drepo.IntervalDaily)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if series.Len() != 3 {
		t.Fatalf("points: got %d want 3", series.Len())
	}
	if stub.calls != 3 {
		t.Fatalf("provider calls: got %d want 3", stub.calls)
	}

	// Sleeps interleave limiter spacing (2s between attempts) with the
	// 2^attempt backoff: 2s after attempt 1, 4s after attempt 2. The 4s
	// sleep can only come from the second backoff.
	found2, found4 := false, false
	for _, d := range clk.sleeps {
		if d == 2*time.Second {
			found2 = true
		}
		if d == 4*time.Second {
			found4 = true
		}
	}
	if !found2 || !found4 {
		t.Fatalf("expected 2s and 4s backoffs in %v", clk.sleeps)
	}
}

func TestFetchNotFoundFailsImmediately(t *testing.T) {
	stub := &stubRequester{responses: []*http.Response{resp(404, "")}}
	c := newTestClient(t, stub, newFakeClock())

	_, err := c.Fetch(context.Background(), "NOPE", drepo.IntervalDaily)
	if !errors.Is(err, ErrSymbolNotFound) {
		t.Fatalf("expected ErrSymbolNotFound, got %v", err)
	}
	if stub.calls != 1 {
		t.Fatalf("404 must not retry: got %d calls", stub.calls)
	}
}

func TestFetchMalformedExhaustsRetries(t *testing.T) {
	stub := &stubRequester{responses: []*http.Response{
		resp(200, `{"chart":{"result":[]}}`),
		resp(200, `not json`),
		resp(200, `{"chart":{"result":[{"indicators":{"quote":[{"close":[]}]}}]}}`),
	}}
	clk := newFakeClock()
	c := newTestClient(t, stub, clk)

	_, err := c.Fetch(context.Background(), "AAPL", drepo.IntervalDaily)
	if !errors.Is(err, ErrDataUnavailable) {
		t.Fatalf("expected ErrDataUnavailable, got %v", err)
	}
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("terminal error should carry the malformed kind: %v", err)
	}
	if stub.calls != 3 {
		t.Fatalf("provider calls: got %d want 3", stub.calls)
	}

	var malformed *MalformedError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedError in chain: %v", err)
	}
	if len(malformed.Payload) == 0 {
		t.Errorf("malformed error should keep the raw payload")
	}
}

func TestFetchAllNullClosesIsMalformed(t *testing.T) {
	body := `{"chart":{"result":[{"timestamp":[1],"indicators":{"quote":[{"close":[null]}]}}]}}`
	_, err := parseChart("AAPL", drepo.IntervalDaily, []byte(body))
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected malformed, got %v", err)
	}
}

func TestFetchNetworkErrorRetriesLinearly(t *testing.T) {
	stub := &stubRequester{
		responses: []*http.Response{nil, nil, resp(200, chartBody)},
		errs:      []error{errors.New("conn reset"), errors.New("conn reset"), nil},
	}
	clk := newFakeClock()
	c := newTestClient(t, stub, clk)

	if _, err := c.Fetch(context.Background(), "AAPL", drepo.IntervalDaily); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	found1, found2 := false, false
	for _, d := range clk.sleeps {
		if d == 1*time.Second {
			found1 = true
		}
		if d == 2*time.Second {
			found2 = true
		}
	}
	if !found1 || !found2 {
		t.Fatalf("expected 1s and 2s linear backoffs in %v", clk.sleeps)
	}
}
