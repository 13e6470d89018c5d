package contract

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Default values for configuration.
const (
	// DefaultBaseURL is the local aw-server API root.
	DefaultBaseURL = "http://localhost:5600/api/0"

	// DefaultTimeoutSeconds bounds each upstream request.
	DefaultTimeoutSeconds = 30
)

// Config holds the validated runtime configuration.
type Config struct {
	BaseURL string        // ActivityWatch API root, trailing slash stripped
	Timeout time.Duration // per-request timeout
}

// ConfigRawInput holds the raw values resolved by Viper from defaults,
// config file, environment, and flags, before validation.
type ConfigRawInput struct {
	URL            string `mapstructure:"url"`
	TimeoutSeconds int    `mapstructure:"timeout"`
}

// ProcessAndValidate validates the raw inputs and populates the final
// Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- 1. Base URL validation ---
	raw := strings.TrimSpace(input.URL)
	if raw == "" {
		return fmt.Errorf("server URL cannot be empty")
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid server URL %q: %w", raw, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("server URL %q must use http or https", raw)
	}
	if parsed.Host == "" {
		return fmt.Errorf("server URL %q has no host", raw)
	}
	cfg.BaseURL = strings.TrimRight(raw, "/")

	// --- 2. Timeout validation ---
	if input.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout must be greater than 0 seconds (received %d)", input.TimeoutSeconds)
	}
	cfg.Timeout = time.Duration(input.TimeoutSeconds) * time.Second

	return nil
}
