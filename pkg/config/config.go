package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dancaldera/investment-api/pkg/util"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Auth struct {
		APIKey string `yaml:"api_key"` // empty disables the check
	} `yaml:"auth"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Provider struct {
		BaseURL   string        `yaml:"base_url"`
		UserAgent string        `yaml:"user_agent"`
		Timeout   time.Duration `yaml:"timeout"`
	} `yaml:"provider"`
	RateLimit struct {
		MinInterval time.Duration `yaml:"min_interval"`
	} `yaml:"ratelimit"`
	Fetch struct {
		MaxAttempts int           `yaml:"max_attempts"`
		BackoffUnit time.Duration `yaml:"backoff_unit"`
	} `yaml:"fetch"`
	Analysis struct {
		MinPoints map[string]int `yaml:"min_points"`
		Jitter    float64        `yaml:"jitter"`
		Weights   struct {
			Trend      int `yaml:"trend"`
			Momentum   int `yaml:"momentum"`
			Volatility int `yaml:"volatility"`
			MACD       int `yaml:"macd"`
			ADX        int `yaml:"adx"`
			Patterns   int `yaml:"patterns"`
		} `yaml:"weights"`
	} `yaml:"analysis"`
	Watchlist struct {
		Enabled        bool     `yaml:"enabled"`
		Schedule       string   `yaml:"schedule"`
		Symbols        []string `yaml:"symbols"`
		Interval       string   `yaml:"interval"`
		OnlyActionable bool     `yaml:"only_actionable"`
	} `yaml:"watchlist"`
	Telegram struct {
		BotToken string        `yaml:"bot_token"`
		ChatID   string        `yaml:"chat_id"`
		Timeout  time.Duration `yaml:"timeout"`
		Retries  int           `yaml:"retries"`
	} `yaml:"telegram"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = util.ParseIntDefault(v, c.Server.Port)
	}
	if v := os.Getenv("API_KEY"); v != "" {
		c.Auth.APIKey = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("PROVIDER_BASE_URL"); v != "" {
		c.Provider.BaseURL = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		c.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		c.Telegram.ChatID = v
	}
	if v := os.Getenv("WATCHLIST_SYMBOLS"); v != "" {
		c.Watchlist.Symbols = strings.Split(v, ",")
	}
	if v := os.Getenv("WATCHLIST_ENABLED"); v != "" {
		c.Watchlist.Enabled = util.ParseBoolDefault(v, c.Watchlist.Enabled)
	}

	return c, nil
}

// applyDefaults fills zero values with operational defaults.
func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stdout"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Provider.BaseURL == "" {
		c.Provider.BaseURL = "https://query1.finance.yahoo.com"
	}
	if c.Provider.UserAgent == "" {
		c.Provider.UserAgent = "Mozilla/5.0"
	}
	if c.Provider.Timeout == 0 {
		c.Provider.Timeout = 30 * time.Second
	}
	if c.RateLimit.MinInterval == 0 {
		c.RateLimit.MinInterval = 2 * time.Second
	}
	if c.Fetch.MaxAttempts == 0 {
		c.Fetch.MaxAttempts = 3
	}
	if c.Fetch.BackoffUnit == 0 {
		c.Fetch.BackoffUnit = time.Second
	}
	if c.Analysis.Jitter == 0 {
		c.Analysis.Jitter = 0.01
	}
	if c.Analysis.MinPoints == nil {
		c.Analysis.MinPoints = map[string]int{"1d": 10, "1wk": 10, "1mo": 10}
	}
	if c.Watchlist.Interval == "" {
		c.Watchlist.Interval = "1d"
	}
	if c.Watchlist.Schedule == "" {
		c.Watchlist.Schedule = "0 0 13 * * MON-FRI"
	}
	if c.Telegram.Timeout == 0 {
		c.Telegram.Timeout = 30 * time.Second
	}
	if c.Telegram.Retries == 0 {
		c.Telegram.Retries = 3
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port)
	}
	if c.Fetch.MaxAttempts < 1 {
		return fmt.Errorf("fetch.max_attempts must be >= 1, got %d", c.Fetch.MaxAttempts)
	}
	if c.RateLimit.MinInterval < 0 {
		return fmt.Errorf("ratelimit.min_interval must be >= 0")
	}
	if c.Analysis.Jitter < 0 || c.Analysis.Jitter > 0.1 {
		return fmt.Errorf("analysis.jitter must be in [0, 0.1], got %v", c.Analysis.Jitter)
	}
	if c.Watchlist.Enabled && len(c.Watchlist.Symbols) == 0 {
		return fmt.Errorf("watchlist.symbols cannot be empty when watchlist is enabled")
	}
	if c.Telegram.BotToken != "" && c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required when telegram.bot_token is set")
	}
	return nil
}

// MinPointsFor returns the minimum series length required for an interval.
func (c *Config) MinPointsFor(interval string) int {
	if n, ok := c.Analysis.MinPoints[interval]; ok && n > 0 {
		return n
	}
	return 10
}
