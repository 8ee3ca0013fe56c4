package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/dancaldera/investment-api/internal/domain/models"
	"github.com/dancaldera/investment-api/pkg/logger"
)

type fakeAnalyzer struct {
	results map[string]*models.SignalResult
}

func (f *fakeAnalyzer) Analyze(_ context.Context, symbol, interval string) *models.SignalResult {
	if r, ok := f.results[symbol]; ok {
		return r
	}
	return &models.SignalResult{
		Symbol:         symbol,
		Interval:       interval,
		Classification: models.ClassificationNoClearSignal,
		Report:         "no clear signal for " + symbol,
	}
}

type recordingNotifier struct {
	sent []string
	err  error
}

func (n *recordingNotifier) Name() string { return "recording" }

func (n *recordingNotifier) Send(_ context.Context, text string) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, text)
	return nil
}

type countingMetrics struct {
	notifications map[string]int
}

func (m *countingMetrics) RecordFetchAttempt(string, string) {}
func (m *countingMetrics) RecordAnalysis(string)             {}
func (m *countingMetrics) RecordLastPrice(string, float64)   {}
func (m *countingMetrics) RecordLatency(string, float64)     {}
func (m *countingMetrics) RecordNotification(_, status string) {
	if m.notifications == nil {
		m.notifications = map[string]int{}
	}
	m.notifications[status]++
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	l, err := logger.New(&logger.Config{Level: "error", Format: "console", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

func TestScanForwardsEveryReportByDefault(t *testing.T) {
	notifier := &recordingNotifier{}
	metrics := &countingMetrics{}
	s := New(Config{
		Schedule: "0 0 13 * * MON-FRI",
		Symbols:  []string{"AAPL", "MSFT"},
		Interval: "1d",
	}, &fakeAnalyzer{}, notifier, metrics, testLogger(t))

	s.RunNow()

	if len(notifier.sent) != 2 {
		t.Fatalf("sent: got %d want 2", len(notifier.sent))
	}
	if metrics.notifications["ok"] != 2 {
		t.Fatalf("ok notifications: got %d want 2", metrics.notifications["ok"])
	}
}

func TestScanOnlyActionableFilters(t *testing.T) {
	analyzer := &fakeAnalyzer{results: map[string]*models.SignalResult{
		"AAPL": {
			Symbol:         "AAPL",
			Classification: models.ClassificationBuy,
			Report:         "buy AAPL",
		},
	}}
	notifier := &recordingNotifier{}
	s := New(Config{
		Schedule:       "0 0 13 * * MON-FRI",
		Symbols:        []string{"AAPL", "MSFT"},
		Interval:       "1d",
		OnlyActionable: true,
	}, analyzer, notifier, &countingMetrics{}, testLogger(t))

	s.RunNow()

	if len(notifier.sent) != 1 || notifier.sent[0] != "buy AAPL" {
		t.Fatalf("only the actionable report should be sent, got %v", notifier.sent)
	}
}

func TestScanRecordsNotificationFailures(t *testing.T) {
	notifier := &recordingNotifier{err: errors.New("channel down")}
	metrics := &countingMetrics{}
	s := New(Config{
		Schedule: "0 0 13 * * MON-FRI",
		Symbols:  []string{"AAPL"},
		Interval: "1d",
	}, &fakeAnalyzer{}, notifier, metrics, testLogger(t))

	s.RunNow()

	if metrics.notifications["error"] != 1 {
		t.Fatalf("error notifications: got %d want 1", metrics.notifications["error"])
	}
}
