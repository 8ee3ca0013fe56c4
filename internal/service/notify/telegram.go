// Package notify delivers rendered analysis reports to an external
// channel. Telegram is the production channel; a log-only notifier
// stands in when no bot token is configured.
package notify

import (
	"context"
	"fmt"
	"time"

	xhttp "github.com/dancaldera/investment-api/pkg/http"
	"github.com/dancaldera/investment-api/pkg/logger"
)

const telegramAPI = "https://api.telegram.org"

// Telegram sends reports through the Bot API sendMessage call with
// bounded exponential retry.
type Telegram struct {
	client  *xhttp.Client
	log     *logger.Logger
	baseURL string
	token   string
	chatID  string
	retries int
}

// TelegramOption configures Telegram.
type TelegramOption func(*Telegram)

// WithBaseURL overrides the Bot API host (tests).
func WithBaseURL(u string) TelegramOption {
	return func(t *Telegram) { t.baseURL = u }
}

// WithClient overrides the HTTP client.
func WithClient(c *xhttp.Client) TelegramOption {
	return func(t *Telegram) { t.client = c }
}

// NewTelegram creates a Telegram notifier.
func NewTelegram(token, chatID string, timeout time.Duration, retries int, log *logger.Logger, opts ...TelegramOption) *Telegram {
	t := &Telegram{
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
		log:     log,
		baseURL: telegramAPI,
		token:   token,
		chatID:  chatID,
		retries: retries,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Telegram) Name() string { return "telegram" }

// Send delivers text to the configured chat, retrying transient
// failures with exponential backoff (1s, 2s, 4s, ...).
func (t *Telegram) Send(ctx context.Context, text string) error {
	var lastErr error
	for attempt := 0; attempt <= t.retries; attempt++ {
		err := t.sendOnce(ctx, text)
		if err == nil {
			return nil
		}
		lastErr = err
		t.log.Warn("telegram send failed",
			logger.Int("attempt", attempt+1),
			logger.Error(err))
		if attempt == t.retries {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(1<<uint(attempt)) * time.Second):
		}
	}
	return fmt.Errorf("telegram: %d attempts exhausted: %w", t.retries+1, lastErr)
}

func (t *Telegram) sendOnce(ctx context.Context, text string) error {
	return t.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		URL:    fmt.Sprintf("%s/bot%s/sendMessage", t.baseURL, t.token),
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
		Body: map[string]string{
			"chat_id": t.chatID,
			"text":    text,
		},
	}, nil)
}

// LogNotifier writes reports to the application log. It is the default
// channel when Telegram is not configured.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier creates a log-only notifier.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Name() string { return "log" }

func (n *LogNotifier) Send(_ context.Context, text string) error {
	n.log.Info("analysis report", logger.String("report", text))
	return nil
}
