package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Feed   Feed   `mapstructure:"feed"`
	Orders Orders `mapstructure:"orders"`
	Logger Logger `mapstructure:"logger"`
	Server Server `mapstructure:"server"`
	Page   Page   `mapstructure:"page"`
}

// Feed holds the configuration for fetching orders.csv.
type Feed struct {
	BaseURL        string        `mapstructure:"base_url" validate:"required,url"`
	Path           string        `mapstructure:"path" validate:"required"`
	Timeout        time.Duration `mapstructure:"timeout" validate:"gte=0"`
	MaxAttempts    int           `mapstructure:"max_attempts" validate:"gte=1,lte=10"`
	RateLimit      float64       `mapstructure:"rate_limit" validate:"gt=0"`
	RateLimitBurst int           `mapstructure:"rate_limit_burst" validate:"gte=1"`
}

// Orders points at the CSV file on disk that the trade logger appends to.
type Orders struct {
	File string `mapstructure:"file" validate:"required"`
}

// Server holds the configuration for the web server.
type Server struct {
	Port int `mapstructure:"port" validate:"gte=1,lte=65535"`
}

// Page holds presentation settings for the rendered page.
type Page struct {
	Title string `mapstructure:"title"`
}

// Logger holds the configuration for the logger.
type Logger struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("feed.base_url", "http://localhost:8080")
	v.SetDefault("feed.path", "orders.csv")
	v.SetDefault("feed.timeout", 0)
	v.SetDefault("feed.max_attempts", 1) // one GET, no retry
	v.SetDefault("feed.rate_limit", 5)   // requests per second
	v.SetDefault("feed.rate_limit_burst", 5)
	v.SetDefault("orders.file", "orders.csv")
	v.SetDefault("page.title", "Arbitraža")
}

// LoadConfig reads configuration from file or environment variables.
// A missing config file is not an error; defaults and the environment apply.
func LoadConfig(path string) (config Config, err error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config") // name of config file (without extension)
	v.SetConfigType("yml")

	// Allow environment variables to override config file
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("failed to read config: %w", err)
		}
		err = nil
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("failed to decode config: %w", err)
	}

	err = Validate(&config)
	return
}

// Validate checks the loaded configuration against its struct tags.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
