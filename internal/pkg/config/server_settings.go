package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// ServerSettings holds the REST listener, CORS and rate-limit configuration
type ServerSettings struct {
	Port               string        `mapstructure:"port" validate:"required,numeric"`
	AllowedOrigins     []string      `mapstructure:"allowed_origins" validate:"required,min=1,dive,required"`
	RateLimitTokens    uint64        `mapstructure:"rate_limit_tokens" validate:"required,min=1"`
	RateLimitInterval  time.Duration `mapstructure:"rate_limit_interval" validate:"required"`
	ShutdownTimeout    time.Duration `mapstructure:"shutdown_timeout" validate:"required"`
	ReadHeaderTimeout  time.Duration `mapstructure:"read_header_timeout" validate:"required"`
	MaxRequestBodySize int64         `mapstructure:"max_request_body_size" validate:"required,min=1"`
}

// Validate checks that all fields in ServerSettings are valid
func (s *ServerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for ServerSettings: %w", err)
	}
	if s.RateLimitInterval < time.Second {
		return fmt.Errorf("rate limit interval must be at least one second")
	}
	return nil
}
