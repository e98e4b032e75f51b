// Package postgres provides the PostgreSQL catalog backend.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"strconv"

	_ "github.com/lib/pq"

	"github.com/oceanbase/oaiembed-go/pkg/catalog/sqlstore"
)

// Config contains PostgreSQL configuration.
type Config struct {
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	TableName string
	SSLMode   string
	NodeID    int64
}

// Dialect is the PostgreSQL SQL dialect.
var Dialect = sqlstore.Dialect{
	Name:        "postgres",
	Placeholder: sqlstore.DollarPlaceholder,
	CreateTable: func(table string) string {
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id BIGINT PRIMARY KEY,
				name VARCHAR(255) NOT NULL UNIQUE,
				model VARCHAR(255) NOT NULL,
				base_url TEXT NOT NULL,
				size INTEGER NOT NULL,
				created_at BIGINT NOT NULL
			)
		`, table)
	},
}

// DSN returns the lib/pq connection URL for cfg. Credentials and the
// database name are escaped, so they may contain any characters.
func (cfg *Config) DSN() string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	host := cfg.Host
	if cfg.Port > 0 {
		host = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	}

	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     host,
		Path:     "/" + cfg.DBName,
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}
	return u.String()
}

// NewClient creates a new PostgreSQL catalog store.
func NewClient(cfg *Config) (*sqlstore.Store, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("NewPostgresClient: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("NewPostgresClient: %w", err)
	}

	nodeID := cfg.NodeID
	if nodeID == 0 {
		nodeID = 1
	}

	store, err := sqlstore.New(context.Background(), db, Dialect, cfg.TableName, nodeID)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}
