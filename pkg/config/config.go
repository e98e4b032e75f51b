// Package config loads oaiembed configuration from the environment, .env
// files, JSON or TOML.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/oceanbase/oaiembed-go/pkg/embedder"
	"github.com/oceanbase/oaiembed-go/pkg/embedder/oaicompat"
)

// DefaultBaseURL is used when EMBEDDING_BASE_URL is not set.
const DefaultBaseURL = "https://api.openai.com/v1"

// Config contains the complete configuration.
//
// Example:
//
//	config := &config.Config{
//	    Embedder: config.EmbedderConfig{
//	        Model:      "BAAI/bge-small-en",
//	        BaseURL:    "http://localhost:8000/v1",
//	        APIKey:     "sk-...",
//	        VectorSize: 384,
//	    },
//	    Catalog: &config.CatalogConfig{
//	        Provider: "sqlite",
//	        DBPath:   "./oaiembed.db",
//	    },
//	}
type Config struct {
	// Embedder contains the embedding endpoint configuration.
	Embedder EmbedderConfig `json:"embedder" toml:"embedder"`

	// Catalog contains vector-space catalog configuration (optional).
	Catalog *CatalogConfig `json:"catalog,omitempty" toml:"catalog"`
}

// EmbedderConfig contains configuration for the OpenAI-compatible endpoint.
type EmbedderConfig struct {
	// Model is the embedding model name (e.g., "text-embedding-3-small", "BAAI/bge-small-en").
	Model string `json:"model" toml:"model"`

	// BaseURL is the endpoint base URL; requests go to {BaseURL}/embeddings.
	BaseURL string `json:"base_url" toml:"base_url"`

	// APIKey is the bearer token for the endpoint.
	APIKey string `json:"api_key" toml:"api_key"`

	// VectorSize is the embedding dimension. Zero means probe the endpoint.
	VectorSize int `json:"vector_size,omitempty" toml:"vector_size"`
}

// AdapterConfig converts the embedder settings into an adapter configuration.
func (e *EmbedderConfig) AdapterConfig() *oaicompat.Config {
	return &oaicompat.Config{
		Model:      e.Model,
		BaseURL:    e.BaseURL,
		APIKey:     e.APIKey,
		VectorSize: e.VectorSize,
	}
}

// LoadConfigFromEnv loads configuration from environment variables.
//
// The function:
//  1. Searches for .env or .env.example files (up to 5 directory levels up)
//  2. Loads environment variables from the found file
//  3. Parses environment variables into a Config struct
//
// Supported environment variables:
//   - EMBEDDING_MODEL, EMBEDDING_BASE_URL, EMBEDDING_API_KEY, EMBEDDING_VECTOR_SIZE
//   - CATALOG_PROVIDER (sqlite, postgres, oceanbase; unset disables the catalog)
//   - SQLITE_PATH, SQLITE_TABLE
//   - POSTGRES_HOST, POSTGRES_PORT, POSTGRES_USER, POSTGRES_PASSWORD, POSTGRES_DATABASE, POSTGRES_TABLE, POSTGRES_SSLMODE
//   - OCEANBASE_HOST, OCEANBASE_PORT, OCEANBASE_USER, OCEANBASE_PASSWORD, OCEANBASE_DATABASE, OCEANBASE_TABLE
//
// Variables already set in the process environment take precedence over the file.
func LoadConfigFromEnv() (*Config, error) {
	if envPath, found := FindEnvFile(); found {
		_ = godotenv.Load(envPath)
	} else {
		_ = godotenv.Load()
	}

	vectorSize, err := getEnvInt("EMBEDDING_VECTOR_SIZE", 0)
	if err != nil {
		return nil, err
	}

	config := &Config{
		Embedder: EmbedderConfig{
			Model:      os.Getenv("EMBEDDING_MODEL"),
			BaseURL:    getEnvOrDefault("EMBEDDING_BASE_URL", DefaultBaseURL),
			APIKey:     os.Getenv("EMBEDDING_API_KEY"),
			VectorSize: vectorSize,
		},
	}

	catalogConfig, err := loadCatalogFromEnv()
	if err != nil {
		return nil, err
	}
	config.Catalog = catalogConfig

	return config, nil
}

// LoadConfigFromEnvFile loads configuration from a specific .env file.
func LoadConfigFromEnvFile(envPath string) (*Config, error) {
	if err := godotenv.Load(envPath); err != nil {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}
	return LoadConfigFromEnv()
}

// LoadConfigFromJSON loads configuration from a JSON file.
func LoadConfigFromJSON(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadConfigFromJSON: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("LoadConfigFromJSON: %w", err)
	}

	return &config, nil
}

// LoadConfigFromTOML loads configuration from a TOML file.
//
// Example file:
//
//	[embedder]
//	model = "BAAI/bge-small-en"
//	base_url = "http://localhost:8000/v1"
//	api_key = "sk-local"
//	vector_size = 384
//
//	[catalog]
//	provider = "sqlite"
//	db_path = "./oaiembed.db"
func LoadConfigFromTOML(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("LoadConfigFromTOML: %w", err)
	}
	return &config, nil
}

// LoadConfigFromFile picks the loader from the file extension
// (.json, .toml or .env).
func LoadConfigFromFile(path string) (*Config, error) {
	switch filepath.Ext(path) {
	case ".json":
		return LoadConfigFromJSON(path)
	case ".toml":
		return LoadConfigFromTOML(path)
	case ".env", ".example":
		return LoadConfigFromEnvFile(path)
	default:
		return nil, fmt.Errorf("LoadConfigFromFile: unsupported config file %q: %w", path, embedder.ErrInvalidConfig)
	}
}

// Validate validates the configuration.
//
// Checks that model, base URL and API key are set, that the vector size is
// not negative and, if a catalog is configured, that its provider is known.
func (c *Config) Validate() error {
	if err := c.Embedder.AdapterConfig().Validate(); err != nil {
		return fmt.Errorf("Validate: %w", err)
	}
	if c.Catalog != nil {
		if err := c.Catalog.Validate(); err != nil {
			return fmt.Errorf("Validate: %w", err)
		}
	}
	return nil
}

// getEnvOrDefault gets an environment variable or returns the default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt parses an integer environment variable.
func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s=%q is not an integer: %w", key, value, embedder.ErrInvalidConfig)
	}
	return n, nil
}

// FindEnvFile searches for .env or .env.example files.
//
// The search:
//  1. Checks the current directory
//  2. Searches up to 5 directory levels up
//  3. Returns the first .env or .env.example file found
func FindEnvFile() (string, bool) {
	if _, err := os.Stat(".env"); err == nil {
		return ".env", true
	}
	if _, err := os.Stat(".env.example"); err == nil {
		return ".env.example", true
	}

	dir, _ := os.Getwd()
	for i := 0; i < 5; i++ {
		envPath := filepath.Join(dir, ".env")
		envExamplePath := filepath.Join(dir, ".env.example")

		if _, err := os.Stat(envPath); err == nil {
			return envPath, true
		}
		if _, err := os.Stat(envExamplePath); err == nil {
			return envExamplePath, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", false
}
