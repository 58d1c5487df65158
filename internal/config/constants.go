package config

import "time"

// Environment variable names
const (
	EnvSchemaVersion = "ENV_SCHEMA_VERSION"

	EnvPort        = "PORT"
	EnvAPIKey      = "API_KEY"
	EnvLogLevel    = "LOG_LEVEL"
	EnvLogFormat   = "LOG_FORMAT"
	EnvEnvironment = "ENVIRONMENT"
	EnvServiceName = "SERVICE_NAME"
	EnvVersion     = "VERSION"

	EnvStorage           = "STORAGE"
	EnvDBUser            = "DB_USER"
	EnvDBPassword        = "DB_PASSWORD"
	EnvDBHost            = "DB_HOST"
	EnvDBPort            = "DB_PORT"
	EnvDBName            = "DB_NAME"
	EnvDBMaxConns        = "DB_MAX_CONNS"
	EnvDBMaxConnIdleTime = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxConnLifetime = "DB_MAX_CONN_LIFETIME"

	EnvDiscordToken              = "DISCORD_TOKEN"
	EnvDiscordAppID              = "DISCORD_APP_ID"
	EnvDiscordGuildID            = "DISCORD_GUILD_ID"
	EnvDiscordForceCommandUpdate = "DISCORD_FORCE_COMMAND_UPDATE"

	EnvDiceMaxDice            = "DICE_MAX_DICE"
	EnvDiceMaxFaces           = "DICE_MAX_FACES"
	EnvTrivialBucket          = "TRIVIAL_BUCKET"
	EnvTrivialCacheSize       = "TRIVIAL_CACHE_SIZE"
	EnvDefaultLocale          = "DEFAULT_LOCALE"
	EnvHistogramMaxIterations = "HISTOGRAM_MAX_ITERATIONS"
	EnvHistogramWorkers       = "HISTOGRAM_WORKERS"
)

// Storage backends
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Defaults
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultServiceName = "dice-bot"
	DefaultVersion     = "dev"

	DefaultStorage           = StoragePostgres
	DefaultDBUser            = "postgres"
	DefaultDBPassword        = "postgres"
	DefaultDBHost            = "localhost"
	DefaultDBPort            = "5432"
	DefaultDBName            = "dicebot"
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultDiceMaxDice            = 1000
	DefaultDiceMaxFaces           = 10000
	DefaultTrivialBucket          = time.Minute
	DefaultTrivialCacheSize       = 10000
	DefaultLocale                 = "en-US"
	DefaultHistogramMaxIterations = 1_000_000
	DefaultHistogramWorkers       = 4
)

// Example values shipped in .env.example that must never reach production
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
)
