package config

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	RunMigrations bool

	// Auth
	AuthEnabled   bool
	JWTSecret     string
	DefaultUserID string

	// HTTP
	CORSAllowedOrigins []string
	RateLimit          string // ulule limiter format, e.g. "300-M"; empty disables
	ShutdownTimeout    time.Duration

	// Analytics
	PosthogAPIKey string

	// AMQP
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", true)
	viper.SetDefault("RUN_MIGRATIONS", true)
	viper.SetDefault("AUTH_ENABLED", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("DEFAULT_USER_ID", "local-user")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("SHUTDOWN_TIMEOUT", "15s")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("AMQP_URL", "")
	viper.SetDefault("AMQP_EXCHANGE", "transactions")
	viper.SetDefault("AMQP_QUEUE", "transactions.changed")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:   viper.GetString("PGSQL_URL"),
		Port:          viper.GetString("PORT"),
		IsProduction:  viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck: viper.GetBool("ENABLE_DB_CHECK"),
		RunMigrations: viper.GetBool("RUN_MIGRATIONS"),
		AuthEnabled:   viper.GetBool("AUTH_ENABLED"),
		JWTSecret:     viper.GetString("JWT_SECRET"),
		DefaultUserID: viper.GetString("DEFAULT_USER_ID"),
		RateLimit:     viper.GetString("RATE_LIMIT"),
		PosthogAPIKey: viper.GetString("POSTHOG_API_KEY"),
		AMQPURL:       viper.GetString("AMQP_URL"),
		AMQPExchange:  viper.GetString("AMQP_EXCHANGE"),
		AMQPQueue:     viper.GetString("AMQP_QUEUE"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	shutdownStr := viper.GetString("SHUTDOWN_TIMEOUT")
	shutdownTimeout, err := time.ParseDuration(shutdownStr)
	if err != nil {
		shutdownTimeout = 15 * time.Second
		log.Printf("Warning: Invalid value for SHUTDOWN_TIMEOUT ('%s'). Defaulting to %s.\n", shutdownStr, shutdownTimeout)
	}
	cfg.ShutdownTimeout = shutdownTimeout

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns an error describing every invalid setting.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.AuthEnabled && c.IsProduction && c.JWTSecret == defaultJWTSecret {
		problems = append(problems, "JWT_SECRET must be set when auth is enabled in production")
	}

	if c.AMQPURL != "" && (c.AMQPExchange == "" || c.AMQPQueue == "") {
		problems = append(problems, "AMQP_EXCHANGE and AMQP_QUEUE are required when AMQP_URL is set")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(problems, "; "))
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
