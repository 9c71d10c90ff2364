package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Rate limit store constants
const (
	RateLimitStoreMemory = "memory"
	RateLimitStoreRedis  = "redis"
)

// RateLimitSettings configures the fixed-window request limiter
type RateLimitSettings struct {
	Enabled       bool          `mapstructure:"enabled"`
	Store         string        `mapstructure:"store" validate:"required,oneof=memory redis"`
	MaxRequests   int           `mapstructure:"max_requests" validate:"required,min=1"`
	Window        time.Duration `mapstructure:"window" validate:"required,gt=0"`
	BlockAfter    int           `mapstructure:"block_after" validate:"gte=0"`
	BlockDuration time.Duration `mapstructure:"block_duration" validate:"gte=0"`
	SweepInterval time.Duration `mapstructure:"sweep_interval" validate:"gte=0"`
}

// Validate checks that all fields in RateLimitSettings are valid
func (s *RateLimitSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for RateLimitSettings: %w", err)
	}
	return nil
}

// RedisSettings holds the connection settings of the shared redis instance
type RedisSettings struct {
	Addr     string `mapstructure:"addr" validate:"required,hostname_port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"gte=0"`
}

// Validate checks that all fields in RedisSettings are valid
func (s *RedisSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for RedisSettings: %w", err)
	}
	return nil
}

// AuthSettings configures account sessions
type AuthSettings struct {
	SessionTTL time.Duration `mapstructure:"session_ttl" validate:"required,gt=0"`
	BcryptCost int           `mapstructure:"bcrypt_cost" validate:"gte=4,lte=31"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}
	return nil
}
