package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestLoadConfig_Defaults(t *testing.T) {
	req := require.New(t)
	t.Setenv("DISCORD_TOKEN", "token")

	config, err := LoadConfig()

	req.NoError(err)
	req.Equal("token", config.DiscordToken)
	req.Equal("!", config.CommandPrefix)
	req.Equal("INFO", config.LogLevel)
	req.Equal(256, config.BufferSize)
	req.Equal(2, config.SummaryWorkers)
	req.Equal(200*time.Millisecond, config.RestartInterval)
	req.Equal(15*time.Second, config.FetchTimeout)
	req.Equal(60*time.Second, config.SummaryTimeout)
	req.Equal(5*time.Second, config.AckLookupTimeout)
	req.Equal(BackendHuggingFace, config.SummaryBackend)
	req.Equal("gemini-2.0-flash", config.GeminiModel)
	req.Equal(30, config.SummaryRatePerMinute)
	req.Equal(24*time.Hour, config.CacheTTL)
	req.Equal(0, config.HealthPort)
	req.Equal(8081, config.DebugPort)
	req.Equal(time.Minute, config.HeartbeatInterval)
	req.Empty(config.CachePath)
}

func TestLoadConfig_MissingToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")
	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfig_Normalizes(t *testing.T) {
	req := require.New(t)
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SUMMARY_BACKEND", "Gemini")
	t.Setenv("GEMINI_API_KEY", "key")

	config, err := LoadConfig()

	req.NoError(err)
	req.Equal("DEBUG", config.LogLevel)
	req.Equal(BackendGemini, config.SummaryBackend)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		DiscordToken:   "token",
		CommandPrefix:  "!",
		LogLevel:       "INFO",
		BufferSize:     1,
		SummaryWorkers: 1,
		SummaryBackend: BackendHuggingFace,
	}

	tests := []struct {
		description string
		modify      func(c *Config)
		wantErr     bool
	}{
		{"Should accept a minimal config", func(c *Config) {}, false},
		{"Should require a Gemini key for the Gemini backend", func(c *Config) { c.SummaryBackend = BackendGemini }, true},
		{"Should accept Gemini with a key", func(c *Config) {
			c.SummaryBackend = BackendGemini
			c.GeminiAPIKey = "key"
		}, false},
		{"Should reject unknown backends", func(c *Config) { c.SummaryBackend = "openai" }, true},
		{"Should reject unknown log levels", func(c *Config) { c.LogLevel = "TRACE" }, true},
		{"Should reject an empty prefix", func(c *Config) { c.CommandPrefix = "" }, true},
		{"Should reject a zero buffer", func(c *Config) { c.BufferSize = 0 }, true},
		{"Should reject a zero worker pool", func(c *Config) { c.SummaryWorkers = 0 }, true},
		{"Should reject an invalid endpoint", func(c *Config) { c.HFAPIURL = "not a url" }, true},
		{"Should reject out of range ports", func(c *Config) { c.HealthPort = 70000 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			config := valid
			tt.modify(&config)
			err := config.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestConfig_SummaryLimiter(t *testing.T) {
	req := require.New(t)

	req.Nil(Config{}.SummaryLimiter())

	limiter := Config{SummaryRatePerMinute: 30}.SummaryLimiter()
	req.NotNil(limiter)
	req.Equal(rate.Every(2*time.Second), limiter.Limit())
	req.Equal(1, limiter.Burst())
}
