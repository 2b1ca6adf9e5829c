// internal/common/config/config.go
package config

import "time"

// PlaceholderAPIKey is the value shipped in .env templates. A key equal to
// this string is treated the same as a missing key.
const PlaceholderAPIKey = "your_anthropic_api_key_here"

// Generation strategies. Empty means auto: anthropic when a real credential
// is configured, mock otherwise.
const (
	StrategyAnthropic = "anthropic"
	StrategyUpstream  = "upstream"
	StrategyMock      = "mock"
)

// Config is the main application configuration struct.
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Server     ServerConfig     `mapstructure:"server"`
	Anthropic  AnthropicConfig  `mapstructure:"anthropic"`
	Upstream   UpstreamConfig   `mapstructure:"upstream"`
	Generation GenerationConfig `mapstructure:"generation"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port              string   `mapstructure:"port"`
	AllowedOrigins    []string `mapstructure:"allowed_origins"`
	ReadHeaderTimeout int      `mapstructure:"read_header_timeout"` // milliseconds
	MaxBodyBytes      int64    `mapstructure:"max_body_bytes"`
}

// AnthropicConfig holds settings for direct calls to the Anthropic Messages API.
type AnthropicConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	BaseURL     string  `mapstructure:"base_url"`
	Model       string  `mapstructure:"model"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
	Timeout     int     `mapstructure:"timeout"` // milliseconds
}

// Configured reports whether a usable credential is present. The placeholder
// value from .env templates counts as unset.
func (a AnthropicConfig) Configured() bool {
	return a.APIKey != "" && a.APIKey != PlaceholderAPIKey
}

// UpstreamConfig holds settings for forwarding prompts to another relay
// instead of calling the model API directly.
type UpstreamConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout"` // milliseconds
}

type GenerationConfig struct {
	// Strategy selects the invocation path: "anthropic", "upstream", "mock",
	// or "" for auto selection based on credential presence.
	Strategy string `mapstructure:"strategy"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ResolveStrategy applies the precedence from the configuration surface:
// explicit mock flag > missing/placeholder credential > configured strategy.
func (c *Config) ResolveStrategy() string {
	if c.Generation.Strategy == StrategyMock {
		return StrategyMock
	}
	if c.Generation.Strategy == StrategyUpstream {
		return StrategyUpstream
	}
	if !c.Anthropic.Configured() {
		return StrategyMock
	}
	return StrategyAnthropic
}

// GetDuration converts milliseconds from config to time.Duration.
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}
