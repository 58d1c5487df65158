package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	APIKey      string // API key for authentication
	LogLevel    string `validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	LogFormat   string `validate:"oneof=text json"`
	Environment string
	ServiceName string
	Version     string

	Storage           string `validate:"oneof=postgres memory"`
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int           `validate:"min=1"`
	DBMaxConnIdleTime time.Duration `validate:"min=0"`
	DBMaxConnLifetime time.Duration `validate:"min=0"`

	DiscordToken              string
	DiscordAppID              string
	DiscordGuildID            string
	DiscordForceCommandUpdate bool

	DiceMaxDice            int           `validate:"min=1,max=100000"`
	DiceMaxFaces           int           `validate:"min=2,max=1000000"`
	TrivialBucket          time.Duration `validate:"min=1s"`
	TrivialCacheSize       int           `validate:"min=1"`
	DefaultLocale          string        `validate:"required"`
	HistogramMaxIterations int           `validate:"min=1"`
	HistogramWorkers       int           `validate:"min=1"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:      getEnv(EnvAPIKey, ""),
		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvLogFormat, DefaultLogFormat),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),

		Storage:           getEnv(EnvStorage, DefaultStorage),
		DBUser:            getEnv(EnvDBUser, DefaultDBUser),
		DBPassword:        getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:            getEnv(EnvDBHost, DefaultDBHost),
		DBPort:            getEnv(EnvDBPort, DefaultDBPort),
		DBName:            getEnv(EnvDBName, DefaultDBName),
		DBMaxConns:        getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration(EnvDBMaxConnIdleTime, DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration(EnvDBMaxConnLifetime, DefaultDBMaxConnLifetime),

		DiscordToken:              getEnv(EnvDiscordToken, ""),
		DiscordAppID:              getEnv(EnvDiscordAppID, ""),
		DiscordGuildID:            getEnv(EnvDiscordGuildID, ""),
		DiscordForceCommandUpdate: getEnvAsBool(EnvDiscordForceCommandUpdate, false),

		DiceMaxDice:            getEnvAsInt(EnvDiceMaxDice, DefaultDiceMaxDice),
		DiceMaxFaces:           getEnvAsInt(EnvDiceMaxFaces, DefaultDiceMaxFaces),
		TrivialBucket:          getEnvAsDuration(EnvTrivialBucket, DefaultTrivialBucket),
		TrivialCacheSize:       getEnvAsInt(EnvTrivialCacheSize, DefaultTrivialCacheSize),
		DefaultLocale:          getEnv(EnvDefaultLocale, DefaultLocale),
		HistogramMaxIterations: getEnvAsInt(EnvHistogramMaxIterations, DefaultHistogramMaxIterations),
		HistogramWorkers:       getEnvAsInt(EnvHistogramWorkers, DefaultHistogramWorkers),
	}

	portStr := getEnv(EnvPort, DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

var validate = validator.New()

// Validate checks value ranges. Load does not call it so that callers can
// override fields before startup.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid configuration: PORT %d out of range", c.Port)
	}
	return nil
}

// DiscordEnabled reports whether the bot should be started
func (c *Config) DiscordEnabled() bool {
	return c.DiscordToken != "" && c.DiscordAppID != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
