package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding file settings
const EnvPrefix = "TRIFASICKO"

// RestConfig holds the settings of the REST API application
type RestConfig struct {
	Port           string                `mapstructure:"port"`
	Database       DatabaseSettings      `mapstructure:"database"`
	Logger         LoggerSettings        `mapstructure:"logger"`
	RateLimit      RateLimitSettings     `mapstructure:"rate_limit"`
	Redis          RedisSettings         `mapstructure:"redis"`
	Auth           AuthSettings          `mapstructure:"auth"`
	News           NewsSettings          `mapstructure:"news"`
	PriceIndicator APIConnectorSettings  `mapstructure:"price_indicator"`
	SpeedIndicator APIConnectorSettings  `mapstructure:"speed_indicator"`
	SecurityAPI    APIConnectorSettings  `mapstructure:"security_api"`
	AvatarStorage  BlobConnectorSettings `mapstructure:"avatar_storage"`
}

// Validate checks every section of RestConfig
func (c *RestConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.RateLimit.Validate(); err != nil {
		return err
	}
	if c.RateLimit.Store == RateLimitStoreRedis {
		if err := c.Redis.Validate(); err != nil {
			return err
		}
	}
	if err := c.Auth.Validate(); err != nil {
		return err
	}
	if err := c.News.Validate(); err != nil {
		return err
	}
	for name, api := range map[string]*APIConnectorSettings{
		"price_indicator": &c.PriceIndicator,
		"speed_indicator": &c.SpeedIndicator,
		"security_api":    &c.SecurityAPI,
	} {
		if err := api.Validate(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return c.AvatarStorage.Validate()
}

// InitializeRestConfig reads the YAML file at path, applies environment
// overrides and validates the result
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := viper.New()
	setRestDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func setRestDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")

	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "file:trifasicko.db")
	v.SetDefault("database.conn_max_lifetime", "30m")

	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.service_name", "trifasicko-rest-api")

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.store", RateLimitStoreMemory)
	v.SetDefault("rate_limit.max_requests", 100)
	v.SetDefault("rate_limit.window", "15m")
	v.SetDefault("rate_limit.block_after", 100)
	v.SetDefault("rate_limit.block_duration", "1h")
	v.SetDefault("rate_limit.sweep_interval", "1m")

	v.SetDefault("auth.session_ttl", "168h")
	v.SetDefault("auth.bcrypt_cost", 10)

	v.SetDefault("news.language", "es")
	v.SetDefault("news.page_size", 20)

	for _, api := range []string{"news.api", "price_indicator", "speed_indicator", "security_api"} {
		v.SetDefault(api+".timeout", "10s")
		v.SetDefault(api+".retry_count", 2)
		v.SetDefault(api+".retry_wait_time", "500ms")
	}

	v.SetDefault("avatar_storage.cloud_provider", LocalStorageProvider)
	v.SetDefault("avatar_storage.container_name", "avatars")
	v.SetDefault("avatar_storage.local_path", "./data/avatars")
}
