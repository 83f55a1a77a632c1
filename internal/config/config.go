package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"     validate:"required"`
	Auth       AuthConfig       `mapstructure:"auth"`
	LLM        LLMConfig        `mapstructure:"llm"        validate:"required"`
	Generation GenerationConfig `mapstructure:"generation" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port"                     validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level"                validate:"required,oneof=debug info warn error"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gte=1"`
	// CORSAllowedOrigin is echoed in Access-Control-Allow-Origin. Empty
	// allows any origin.
	CORSAllowedOrigin string `mapstructure:"cors_allowed_origin"`
}

// ShutdownTimeout is the grace period given to in-flight requests on shutdown.
func (c ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// AuthConfig contains bearer-token settings. Authentication is disabled when
// JWTSecret is empty.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"omitempty,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"gte=1,lte=44640"`
}

// Enabled reports whether requests must carry a valid bearer token.
func (c AuthConfig) Enabled() bool {
	return c.JWTSecret != ""
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	// GeminiAPIKey may be empty, in which case every generation is served by
	// the deterministic fallback.
	GeminiAPIKey          string  `mapstructure:"gemini_api_key"`
	ModelName             string  `mapstructure:"model_name"              validate:"required"`
	PromptTemplatePath    string  `mapstructure:"prompt_template_path"    validate:"omitempty,file"`
	MaxRetries            int     `mapstructure:"max_retries"             validate:"gte=0,lte=10"`
	RetryDelaySeconds     int     `mapstructure:"retry_delay_seconds"     validate:"gte=1,lte=60"`
	RequestTimeoutSeconds int     `mapstructure:"request_timeout_seconds" validate:"gte=1,lte=300"`
	Temperature           float32 `mapstructure:"temperature"             validate:"gte=0,lte=2"`
}

// Online reports whether an API key is configured.
func (c LLMConfig) Online() bool {
	return c.GeminiAPIKey != ""
}

// RetryDelay is the base delay of the exponential backoff.
func (c LLMConfig) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelaySeconds) * time.Second
}

// RequestTimeout bounds a single model call.
func (c LLMConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// GenerationConfig controls what is asked of the model.
type GenerationConfig struct {
	FlashcardCount int `mapstructure:"flashcard_count" validate:"gte=1,lte=20"`
}
