// Package config provides configuration structures and validation for the
// wallet server. It handles environment-based configuration for the HTTP
// server, the persistence substrate, the bank identity-resolution service,
// and the transfer policy constants.
package config

import (
	"errors"
	"strings"
	"time"
)

// Storage backend selectors.
const (
	StorageBackendFile  = "file"
	StorageBackendMongo = "mongo"
)

// Config holds the complete application configuration. Each field represents
// a subsystem's configuration and is validated during startup.
type Config struct {
	Application ApplicationConfig
	Logging     LoggingConfig
	Server      ServerConfig
	Storage     StorageConfig
	MongoDB     MongoDBConfig
	Resolver    ResolverConfig
	Directory   DirectoryConfig
	Transfer    TransferConfig
}

// ApplicationConfig contains general application configuration
type ApplicationConfig struct {
	Env  string
	Name string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string
}

// ServerConfig contains HTTP server configuration settings
type ServerConfig struct {
	Port            int           // Port to listen on
	ShutdownTimeout time.Duration // Grace period for server shutdown
	ReadTimeout     time.Duration // Maximum duration for reading entire request
	WriteTimeout    time.Duration // Maximum duration for writing response
	IdleTimeout     time.Duration // Maximum duration to wait for next request
}

// StorageConfig selects and configures the persistence substrate backing the
// account document.
type StorageConfig struct {
	Backend  string // "file" or "mongo"
	FilePath string // Path of the JSON document when Backend is "file"
	Seed     bool   // Seed sample data when no document exists yet
}

// MongoDBConfig contains MongoDB configuration for the mongo storage backend
type MongoDBConfig struct {
	URI             string
	Database        string
	Collection      string
	Timeout         time.Duration
	MaxPoolSize     uint64
	MinPoolSize     uint64
	MaxConnIdleTime time.Duration
}

// ResolverConfig configures the external bank identity-resolution service
type ResolverConfig struct {
	BaseURL string        // Service base URL, e.g. https://api.flutterwave.com/v3
	Token   string        // Bearer token for the service
	Timeout time.Duration // Per-request timeout; expiry maps to reason "unreachable"
}

// DirectoryConfig configures the remote bank directory source
type DirectoryConfig struct {
	Country string        // Country segment of the banks endpoint, e.g. "NG"
	Timeout time.Duration // Per-request timeout for directory fetches
}

// TransferConfig contains the transfer policy constants
type TransferConfig struct {
	MinimumAmount       int64 // Minimum transfer amount in minor units
	AccountNumberLength int   // Required digit length of recipient account numbers
}

// validate performs validation of all configuration values, ensuring they
// meet minimum requirements and logical constraints
func (c *Config) validate() error {
	var validationErrors []string

	// Validate Server config
	if c.Server.Port <= 0 {
		validationErrors = append(validationErrors, "SERVER_PORT must be greater than 0")
	}
	if c.Server.ShutdownTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_SHUTDOWN_TIMEOUT must be greater than 0")
	}
	if c.Server.ReadTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_READ_TIMEOUT must be greater than 0")
	}
	if c.Server.WriteTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_WRITE_TIMEOUT must be greater than 0")
	}
	if c.Server.IdleTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_IDLE_TIMEOUT must be greater than 0")
	}

	// Validate Storage config
	switch c.Storage.Backend {
	case StorageBackendFile:
		if c.Storage.FilePath == "" {
			validationErrors = append(validationErrors, "STORAGE_FILE_PATH is required for the file backend")
		}
	case StorageBackendMongo:
		if c.MongoDB.URI == "" {
			validationErrors = append(validationErrors, "MONGO_URI is required for the mongo backend")
		}
		if c.MongoDB.Database == "" {
			validationErrors = append(validationErrors, "MONGO_DATABASE is required for the mongo backend")
		}
		if c.MongoDB.Collection == "" {
			validationErrors = append(validationErrors, "MONGO_COLLECTION is required for the mongo backend")
		}
		if c.MongoDB.Timeout <= 0 {
			validationErrors = append(validationErrors, "MONGO_TIMEOUT must be greater than 0")
		}
		if c.MongoDB.MaxPoolSize <= 0 {
			validationErrors = append(validationErrors, "MONGO_MAX_POOL_SIZE must be greater than 0")
		}
	default:
		validationErrors = append(validationErrors, "STORAGE_BACKEND must be either 'file' or 'mongo'")
	}

	// Validate Resolver config
	if c.Resolver.BaseURL == "" {
		validationErrors = append(validationErrors, "RESOLVER_BASE_URL is required")
	}
	if c.Resolver.Timeout <= 0 {
		validationErrors = append(validationErrors, "RESOLVER_TIMEOUT must be greater than 0")
	}

	// Validate Directory config
	if c.Directory.Country == "" {
		validationErrors = append(validationErrors, "DIRECTORY_COUNTRY is required")
	}
	if c.Directory.Timeout <= 0 {
		validationErrors = append(validationErrors, "DIRECTORY_TIMEOUT must be greater than 0")
	}

	// Validate Transfer policy
	if c.Transfer.MinimumAmount <= 0 {
		validationErrors = append(validationErrors, "TRANSFER_MINIMUM_AMOUNT must be greater than 0")
	}
	if c.Transfer.AccountNumberLength <= 0 {
		validationErrors = append(validationErrors, "TRANSFER_ACCOUNT_NUMBER_LENGTH must be greater than 0")
	}

	if len(validationErrors) > 0 {
		return errors.New(strings.Join(validationErrors, ", "))
	}

	return nil
}
