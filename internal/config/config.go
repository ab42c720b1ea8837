package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	Suggest  SuggestConfig  `mapstructure:"suggest"`
	Major    MajorConfig    `mapstructure:"major"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret                   string `mapstructure:"jwt_secret"                     validate:"required,min=32"`
	TokenLifetimeMinutes        int    `mapstructure:"token_lifetime_minutes"         validate:"required,gt=0"`
	RefreshTokenLifetimeMinutes int    `mapstructure:"refresh_token_lifetime_minutes" validate:"required,gt=0"`
	BcryptCost                  int    `mapstructure:"bcrypt_cost"                    validate:"omitempty,gte=4,lte=31"`
}

// SuggestConfig contains settings for the LLM-backed peg-word suggester.
// The feature is optional: with an empty API key, suggestion endpoints are
// disabled and the rest of the application is unaffected.
type SuggestConfig struct {
	GeminiAPIKey      string `mapstructure:"gemini_api_key"`
	ModelName         string `mapstructure:"model_name"`
	MaxRetries        int    `mapstructure:"max_retries"         validate:"omitempty,gte=0,lte=10"`
	RetryDelaySeconds int    `mapstructure:"retry_delay_seconds" validate:"omitempty,gte=1,lte=60"`
}

// Enabled reports whether the suggestion feature is configured.
func (c SuggestConfig) Enabled() bool {
	return c.GeminiAPIKey != ""
}

// MajorConfig optionally overrides the standard digit-to-sound table.
// Keys are single digits "0".."9"; values are the sound families for each
// digit. An empty map means the standard major-system grouping is used.
// The table is immutable once loaded.
type MajorConfig struct {
	DigitSounds map[string][]string `mapstructure:"digit_sounds"`
}
