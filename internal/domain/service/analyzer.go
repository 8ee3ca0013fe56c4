package service

import (
	"context"

	"github.com/dancaldera/investment-api/internal/domain/models"
)

// Analyzer produces a signal result for a symbol and interval. It never
// returns an error: terminal fetch failures come back as a result whose
// classification reports the failure.
type Analyzer interface {
	Analyze(ctx context.Context, symbol, interval string) *models.SignalResult
}
