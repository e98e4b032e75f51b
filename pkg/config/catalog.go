package config

import (
	"fmt"
	"os"

	"github.com/oceanbase/oaiembed-go/pkg/catalog"
	"github.com/oceanbase/oaiembed-go/pkg/catalog/oceanbase"
	"github.com/oceanbase/oaiembed-go/pkg/catalog/postgres"
	"github.com/oceanbase/oaiembed-go/pkg/catalog/sqlite"
	"github.com/oceanbase/oaiembed-go/pkg/catalog/sqlstore"
	"github.com/oceanbase/oaiembed-go/pkg/embedder"
)

// Catalog providers.
const (
	CatalogSQLite    = "sqlite"
	CatalogPostgres  = "postgres"
	CatalogOceanBase = "oceanbase"
)

// CatalogConfig contains configuration for the vector-space catalog.
//
// DBPath is used by SQLite; the connection fields by PostgreSQL and OceanBase.
type CatalogConfig struct {
	// Provider is the catalog backend (sqlite, postgres, oceanbase).
	Provider string `json:"provider" toml:"provider"`

	DBPath   string `json:"db_path,omitempty" toml:"db_path"`
	Host     string `json:"host,omitempty" toml:"host"`
	Port     int    `json:"port,omitempty" toml:"port"`
	User     string `json:"user,omitempty" toml:"user"`
	Password string `json:"password,omitempty" toml:"password"`
	DBName   string `json:"db_name,omitempty" toml:"db_name"`
	SSLMode  string `json:"ssl_mode,omitempty" toml:"ssl_mode"`

	// TableName defaults to "vector_spaces".
	TableName string `json:"table_name,omitempty" toml:"table_name"`

	// NodeID is the snowflake node for space IDs (default: 1).
	NodeID int64 `json:"node_id,omitempty" toml:"node_id"`
}

// Validate checks the provider and its required settings.
func (c *CatalogConfig) Validate() error {
	switch c.Provider {
	case CatalogSQLite:
		if c.DBPath == "" {
			return fmt.Errorf("catalog: sqlite db_path is required: %w", embedder.ErrInvalidConfig)
		}
	case CatalogPostgres, CatalogOceanBase:
		if c.Host == "" || c.DBName == "" {
			return fmt.Errorf("catalog: %s host and db_name are required: %w", c.Provider, embedder.ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("catalog: unknown provider %q: %w", c.Provider, embedder.ErrInvalidConfig)
	}
	return nil
}

// Open connects to the configured catalog backend.
func (c *CatalogConfig) Open() (catalog.Store, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var (
		store *sqlstore.Store
		err   error
	)
	switch c.Provider {
	case CatalogPostgres:
		store, err = postgres.NewClient(&postgres.Config{
			Host:      c.Host,
			Port:      c.Port,
			User:      c.User,
			Password:  c.Password,
			DBName:    c.DBName,
			TableName: c.TableName,
			SSLMode:   c.SSLMode,
			NodeID:    c.NodeID,
		})
	case CatalogOceanBase:
		store, err = oceanbase.NewClient(&oceanbase.Config{
			Host:      c.Host,
			Port:      c.Port,
			User:      c.User,
			Password:  c.Password,
			DBName:    c.DBName,
			TableName: c.TableName,
			NodeID:    c.NodeID,
		})
	default:
		store, err = sqlite.NewClient(&sqlite.Config{
			DBPath:    c.DBPath,
			TableName: c.TableName,
			NodeID:    c.NodeID,
		})
	}
	if err != nil {
		return nil, err
	}

	return store, nil
}

// loadCatalogFromEnv builds the catalog configuration from CATALOG_PROVIDER
// and the provider-specific variables. It returns nil when no provider is set.
func loadCatalogFromEnv() (*CatalogConfig, error) {
	provider := os.Getenv("CATALOG_PROVIDER")

	switch provider {
	case "":
		return nil, nil
	case CatalogSQLite:
		return &CatalogConfig{
			Provider:  provider,
			DBPath:    getEnvOrDefault("SQLITE_PATH", "./oaiembed.db"),
			TableName: os.Getenv("SQLITE_TABLE"),
		}, nil
	case CatalogPostgres:
		port, err := getEnvInt("POSTGRES_PORT", 5432)
		if err != nil {
			return nil, err
		}
		return &CatalogConfig{
			Provider:  provider,
			Host:      getEnvOrDefault("POSTGRES_HOST", "localhost"),
			Port:      port,
			User:      getEnvOrDefault("POSTGRES_USER", "postgres"),
			Password:  os.Getenv("POSTGRES_PASSWORD"),
			DBName:    getEnvOrDefault("POSTGRES_DATABASE", "oaiembed"),
			TableName: os.Getenv("POSTGRES_TABLE"),
			SSLMode:   getEnvOrDefault("POSTGRES_SSLMODE", "disable"),
		}, nil
	case CatalogOceanBase:
		port, err := getEnvInt("OCEANBASE_PORT", 2881)
		if err != nil {
			return nil, err
		}
		return &CatalogConfig{
			Provider:  provider,
			Host:      getEnvOrDefault("OCEANBASE_HOST", "127.0.0.1"),
			Port:      port,
			User:      getEnvOrDefault("OCEANBASE_USER", "root@sys"),
			Password:  os.Getenv("OCEANBASE_PASSWORD"),
			DBName:    getEnvOrDefault("OCEANBASE_DATABASE", "oaiembed"),
			TableName: os.Getenv("OCEANBASE_TABLE"),
		}, nil
	default:
		return nil, fmt.Errorf("CATALOG_PROVIDER=%q is not supported: %w", provider, embedder.ErrInvalidConfig)
	}
}
