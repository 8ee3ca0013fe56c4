package repository

import (
	"context"

	"github.com/dancaldera/investment-api/internal/domain/models"
)

// MarketData retrieves an accepted close-price series for a symbol.
type MarketData interface {
	Fetch(ctx context.Context, symbol string, interval Interval) (*models.PriceSeries, error)
}

// Notifier delivers a rendered report to an external channel.
type Notifier interface {
	Name() string
	Send(ctx context.Context, text string) error
}

// Metrics records operational measurements.
type Metrics interface {
	RecordFetchAttempt(symbol, outcome string)
	RecordAnalysis(classification string)
	RecordNotification(channel, status string)
	RecordLastPrice(symbol string, price float64)
	RecordLatency(op string, seconds float64)
}
