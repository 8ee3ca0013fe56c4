package marketdata

import (
	"errors"
	"fmt"
)

// Sentinel error kinds for the fetch taxonomy. Callers branch with
// errors.Is; ErrDataUnavailable is the terminal catch-all wrapping the
// last attempt's failure once the retry budget is spent.
var (
	ErrSymbolNotFound    = errors.New("symbol not found")
	ErrRateLimited       = errors.New("provider rate limited")
	ErrMalformedResponse = errors.New("malformed provider response")
	ErrDataUnavailable   = errors.New("market data unavailable")
)

// MalformedError is a malformed-response failure that keeps the raw
// provider payload for diagnostics. It unwraps to ErrMalformedResponse.
type MalformedError struct {
	Reason  string
	Payload []byte
}

func (e *MalformedError) Error() string {
	if len(e.Payload) == 0 {
		return fmt.Sprintf("malformed provider response: %s", e.Reason)
	}
	return fmt.Sprintf("malformed provider response: %s: %s", e.Reason, truncate(e.Payload, 256))
}

func (e *MalformedError) Unwrap() error { return ErrMalformedResponse }

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
