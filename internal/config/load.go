package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// LoadConfigWithName loads configuration using the specified name, auto-detecting the file type
// This is useful when the configuration file extension is unknown or variable
func LoadConfigWithName(configName string) (*Config, error) {
	return loadConfig(configName, "")
}

// LoadConfigWithNameAndType loads configuration with explicit name and type specification
// Use this when you need to force a specific configuration format (e.g., "yaml", "json")
func LoadConfigWithNameAndType(configName, configType string) (*Config, error) {
	return loadConfig(configName, configType)
}

// LoadConfig loads configuration from a .env file using the provided base name
// This is the preferred method for loading environment-specific configurations
func LoadConfig(configName string) (*Config, error) {
	configFileName := fmt.Sprintf("%s.env", configName)
	return loadConfig(configFileName, "env")
}

// loadConfig handles configuration loading from files and environment variables.
// It implements a layered approach to configuration:
// 1. Load defaults
// 2. Override with config file values (if found)
// 3. Override with environment variables
// 4. Validate the final configuration
func loadConfig(configName, configType string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(configName)
	if configType != "" {
		v.SetConfigType(configType)
	}

	// Add config paths in order of priority
	v.AddConfigPath("./configs") // First check in configs directory
	v.AddConfigPath(".")         // Then check in root directory

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			fmt.Printf("INFO: No config file '%s' found, relying on environment variables and defaults.\n", configName)
		} else {
			fmt.Printf("WARNING: Error reading config file (%s): %v\n", v.ConfigFileUsed(), err)
		}
	} else {
		fmt.Printf("INFO: Config loaded from file: %s\n", v.ConfigFileUsed())
	}

	v.AutomaticEnv() // Automatically read matching environment variables

	// Build the config struct
	config := &Config{
		Application: ApplicationConfig{
			Env:  v.GetString("APP_ENV"),
			Name: v.GetString("APP_NAME"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Server: ServerConfig{
			Port:            v.GetInt("SERVER_PORT"),
			ShutdownTimeout: v.GetDuration("SERVER_SHUTDOWN_TIMEOUT"),
			ReadTimeout:     v.GetDuration("SERVER_READ_TIMEOUT"),
			WriteTimeout:    v.GetDuration("SERVER_WRITE_TIMEOUT"),
			IdleTimeout:     v.GetDuration("SERVER_IDLE_TIMEOUT"),
		},
		Storage: StorageConfig{
			Backend:  v.GetString("STORAGE_BACKEND"),
			FilePath: v.GetString("STORAGE_FILE_PATH"),
			Seed:     v.GetBool("STORAGE_SEED"),
		},
		MongoDB: MongoDBConfig{
			URI:             v.GetString("MONGO_URI"),
			Database:        v.GetString("MONGO_DATABASE"),
			Collection:      v.GetString("MONGO_COLLECTION"),
			Timeout:         v.GetDuration("MONGO_TIMEOUT"),
			MaxPoolSize:     uint64(v.GetInt("MONGO_MAX_POOL_SIZE")),
			MinPoolSize:     uint64(v.GetInt("MONGO_MIN_POOL_SIZE")),
			MaxConnIdleTime: v.GetDuration("MONGO_MAX_CONN_IDLE_TIME"),
		},
		Resolver: ResolverConfig{
			BaseURL: v.GetString("RESOLVER_BASE_URL"),
			Token:   v.GetString("RESOLVER_TOKEN"),
			Timeout: v.GetDuration("RESOLVER_TIMEOUT"),
		},
		Directory: DirectoryConfig{
			Country: v.GetString("DIRECTORY_COUNTRY"),
			Timeout: v.GetDuration("DIRECTORY_TIMEOUT"),
		},
		Transfer: TransferConfig{
			MinimumAmount:       v.GetInt64("TRANSFER_MINIMUM_AMOUNT"),
			AccountNumberLength: v.GetInt("TRANSFER_ACCOUNT_NUMBER_LENGTH"),
		},
	}

	// Validate the configuration
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults initializes configuration with sensible default values.
// These values are used when no configuration file or environment variables are present.
func setDefaults(v *viper.Viper) {
	// HTTP Server defaults - tuned for typical web application workloads
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second)
	v.SetDefault("SERVER_READ_TIMEOUT", 30*time.Second)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 30*time.Second)
	v.SetDefault("SERVER_IDLE_TIMEOUT", 120*time.Second)

	// Storage defaults - single-user local JSON document, seeded on first run
	v.SetDefault("STORAGE_BACKEND", StorageBackendFile)
	v.SetDefault("STORAGE_FILE_PATH", "wallet.json")
	v.SetDefault("STORAGE_SEED", true)

	// MongoDB defaults - only consulted when STORAGE_BACKEND=mongo
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "wallet")
	v.SetDefault("MONGO_COLLECTION", "documents")
	v.SetDefault("MONGO_TIMEOUT", 10*time.Second)
	v.SetDefault("MONGO_MAX_POOL_SIZE", 100)
	v.SetDefault("MONGO_MIN_POOL_SIZE", 10)
	v.SetDefault("MONGO_MAX_CONN_IDLE_TIME", 30*time.Minute)

	// Resolver defaults - the token must come from the environment
	v.SetDefault("RESOLVER_BASE_URL", "https://api.flutterwave.com/v3")
	v.SetDefault("RESOLVER_TOKEN", "")
	v.SetDefault("RESOLVER_TIMEOUT", 10*time.Second)

	// Bank directory defaults
	v.SetDefault("DIRECTORY_COUNTRY", "NG")
	v.SetDefault("DIRECTORY_TIMEOUT", 10*time.Second)

	// Transfer policy defaults - 5000 kobo (₦50) floor, NUBAN account numbers
	v.SetDefault("TRANSFER_MINIMUM_AMOUNT", 5000)
	v.SetDefault("TRANSFER_ACCOUNT_NUMBER_LENGTH", 10)

	// Logging defaults - 'info' provides good balance of information vs noise
	v.SetDefault("LOG_LEVEL", "info")

	// Application defaults - development-friendly baseline configuration
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "wallet")
}
