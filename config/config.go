package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"pokerledger/database"
	"pokerledger/domain/entities"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken      string
	GuildID           string // Guild the slash commands are registered in
	AnnounceChannelID string // Channel that receives finished-game summaries

	// Database configuration
	DatabaseURL  string
	DatabaseName string

	// NATS configuration
	NATSServers string // NATS server addresses (comma-separated)

	// Game defaults used when /game create omits them
	DefaultStartingStack int64
	DefaultSmallBlind    int64
	DefaultBigBlind      int64
	DefaultChipToRuble   float64

	// OpenTelemetry configuration
	OTelEnabled              bool
	OTelServiceName          string
	OTelExporterType         string // "console", "otlp" or "none"
	OTelOTLPEndpoint         string
	OTelExportIntervalMillis int

	// Environment
	Environment string // "development" or "production"
}

var (
	instance *Config
	once     sync.Once
	mu       sync.Mutex // Protects instance for test setup
)

// Get returns the global configuration instance
func Get() *Config {
	mu.Lock()
	defer mu.Unlock()

	// If instance is already set (e.g., by tests), return it
	if instance != nil {
		return instance
	}

	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			if os.Getenv("GO_TEST") == "1" || os.Getenv("ENVIRONMENT") == "test" {
				instance = NewTestConfig()
			} else {
				panic(fmt.Sprintf("failed to load config: %v", err))
			}
		}
	})
	return instance
}

// GetDatabaseURL constructs the full database URL by combining base URL and database name
func (c *Config) GetDatabaseURL() string {
	return database.ConstructDatabaseURL(c.DatabaseURL, c.DatabaseName)
}

// DefaultGameSettings returns the settings applied to games created without explicit ones
func (c *Config) DefaultGameSettings() entities.GameSettings {
	return entities.GameSettings{
		StartingStack: c.DefaultStartingStack,
		SmallBlind:    c.DefaultSmallBlind,
		BigBlind:      c.DefaultBigBlind,
		ChipToRuble:   c.DefaultChipToRuble,
	}
}

// load loads configuration from environment variables
func load() (*Config, error) {
	defaults := entities.DefaultGameSettings()

	config := &Config{
		// Discord
		DiscordToken:      os.Getenv("DISCORD_TOKEN"),
		GuildID:           os.Getenv("GUILD_ID"),
		AnnounceChannelID: os.Getenv("ANNOUNCE_CHANNEL_ID"),

		// Database
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),

		// NATS
		NATSServers: getEnvWithDefault("NATS_SERVERS", "nats://nats:4222"),

		// Game defaults
		DefaultStartingStack: getInt64WithDefault("DEFAULT_STARTING_STACK", defaults.StartingStack),
		DefaultSmallBlind:    getInt64WithDefault("DEFAULT_SMALL_BLIND", defaults.SmallBlind),
		DefaultBigBlind:      getInt64WithDefault("DEFAULT_BIG_BLIND", defaults.BigBlind),
		DefaultChipToRuble:   defaults.ChipToRuble,

		// OpenTelemetry
		OTelEnabled:              getEnvWithDefault("OTEL_ENABLED", "false") == "true",
		OTelServiceName:          getEnvWithDefault("OTEL_SERVICE_NAME", "pokerledger"),
		OTelExporterType:         getEnvWithDefault("OTEL_EXPORTER_TYPE", "console"),
		OTelOTLPEndpoint:         getEnvWithDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "otel-collector:4317"),
		OTelExportIntervalMillis: 60000,

		// Environment
		Environment: os.Getenv("ENVIRONMENT"),
	}

	if rate := os.Getenv("DEFAULT_CHIP_TO_RUBLE"); rate != "" {
		if parsed, err := strconv.ParseFloat(rate, 64); err == nil {
			config.DefaultChipToRuble = parsed
		}
	}
	if interval := os.Getenv("OTEL_EXPORT_INTERVAL_MILLIS"); interval != "" {
		if parsed, err := strconv.Atoi(interval); err == nil {
			config.OTelExportIntervalMillis = parsed
		}
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
		// If DatabaseName is provided, ensure it's not empty
		if config.DatabaseName != "" && strings.TrimSpace(config.DatabaseName) == "" {
			return nil, fmt.Errorf("DATABASE_NAME cannot be empty when provided")
		}
		if config.DefaultStartingStack <= 0 || config.DefaultSmallBlind <= 0 ||
			config.DefaultBigBlind <= 0 || config.DefaultChipToRuble <= 0 {
			return nil, fmt.Errorf("game defaults must be positive")
		}
	}

	return config, nil
}

// getEnvWithDefault returns the environment variable value or a default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt64WithDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// Test helpers - only use in tests

// SetTestConfig overrides the global config instance for testing
// This should only be called from test files
func SetTestConfig(testConfig *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = testConfig
}

// ResetConfig resets the global config instance and sync.Once for testing
// This should only be called from test files
func ResetConfig() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
	once = sync.Once{}
}

// NewTestConfig creates a minimal config suitable for unit tests
func NewTestConfig() *Config {
	defaults := entities.DefaultGameSettings()
	return &Config{
		Environment:          "test",
		DiscordToken:         "test-token",
		NATSServers:          "nats://localhost:4222",
		DefaultStartingStack: defaults.StartingStack,
		DefaultSmallBlind:    defaults.SmallBlind,
		DefaultBigBlind:      defaults.BigBlind,
		DefaultChipToRuble:   defaults.ChipToRuble,
		OTelServiceName:      "pokerledger-test",
		OTelExporterType:     "none",
	}
}
