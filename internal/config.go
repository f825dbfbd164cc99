package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"golang.org/x/time/rate"
)

const (
	BackendHuggingFace = "huggingface"
	BackendGemini      = "gemini"
)

var validate = validator.New()

type Config struct {
	DiscordToken         string        `env:"DISCORD_TOKEN,required=true" validate:"required"`
	CommandPrefix        string        `env:"COMMAND_PREFIX,default=!" validate:"required"`
	LogLevel             string        `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR"`
	BufferSize           int           `env:"BUFFER_SIZE,default=256" validate:"min=1"`
	SummaryWorkers       int           `env:"SUMMARY_WORKERS,default=2" validate:"min=1,max=64"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,default=200ms" validate:"min=0"`
	FetchTimeout         time.Duration `env:"FETCH_TIMEOUT,default=15s" validate:"min=0"`
	SummaryTimeout       time.Duration `env:"SUMMARY_TIMEOUT,default=60s" validate:"min=0"`
	AckLookupTimeout     time.Duration `env:"ACK_LOOKUP_TIMEOUT,default=5s" validate:"min=0"`
	SummaryBackend       string        `env:"SUMMARY_BACKEND,default=huggingface" validate:"oneof=huggingface gemini"`
	HFAPIURL             string        `env:"HF_API_URL" validate:"omitempty,url"`
	HFAPIToken           string        `env:"HF_API_TOKEN"`
	GeminiAPIKey         string        `env:"GEMINI_API_KEY" validate:"required_if=SummaryBackend gemini"`
	GeminiModel          string        `env:"GEMINI_MODEL,default=gemini-2.0-flash"`
	SummaryRatePerMinute int           `env:"SUMMARY_RATE_PER_MINUTE,default=30" validate:"min=0"`
	CachePath            string        `env:"CACHE_PATH"`
	CacheTTL             time.Duration `env:"CACHE_TTL,default=24h" validate:"min=0"`
	LexiconDir           string        `env:"LEXICON_DIR"`
	HealthPort           int           `env:"HEALTH_PORT,default=0" validate:"min=0,max=65535"`
	DebugPort            int           `env:"DEBUG_PORT,default=8081" validate:"min=0,max=65535"`
	HeartbeatInterval    time.Duration `env:"HEARTBEAT_INTERVAL,default=1m" validate:"min=0"`
}

// LoadConfig reads the environment into a Config and validates it.
func LoadConfig() (Config, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	config.LogLevel = strings.ToUpper(strings.TrimSpace(config.LogLevel))
	config.SummaryBackend = strings.ToLower(strings.TrimSpace(config.SummaryBackend))
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// SummaryLimiter spreads SummaryRatePerMinute calls evenly over a minute, nil means unthrottled.
func (c Config) SummaryLimiter() *rate.Limiter {
	if c.SummaryRatePerMinute <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(c.SummaryRatePerMinute)), 1)
}
