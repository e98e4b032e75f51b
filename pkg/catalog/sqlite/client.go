// Package sqlite provides the SQLite catalog backend.
//
// SQLite is a lightweight, file-based database suitable for local development
// and single-process deployments.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/oceanbase/oaiembed-go/pkg/catalog/sqlstore"
)

// Config contains configuration for creating a SQLite catalog.
type Config struct {
	// DBPath is the path to the SQLite database file.
	DBPath string

	// TableName is the name of the catalog table (default: "vector_spaces").
	TableName string

	// NodeID is the snowflake node used for space IDs (default: 1).
	NodeID int64
}

// Dialect is the SQLite SQL dialect.
var Dialect = sqlstore.Dialect{
	Name:        "sqlite",
	Placeholder: sqlstore.QuestionPlaceholder,
	CreateTable: func(table string) string {
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id INTEGER PRIMARY KEY,
				name TEXT NOT NULL UNIQUE,
				model TEXT NOT NULL,
				base_url TEXT NOT NULL,
				size INTEGER NOT NULL,
				created_at INTEGER NOT NULL
			)
		`, table)
	},
}

// NewClient opens the SQLite database and returns a catalog store.
//
// Parameters:
//   - cfg: Configuration containing database path and table name
//
// Returns:
//   - *sqlstore.Store: The catalog store
//   - error: Error if database connection or table creation fails
func NewClient(cfg *Config) (*sqlstore.Store, error) {
	// Create parent directory if it doesn't exist
	dbDir := filepath.Dir(cfg.DBPath)
	if dbDir != "" && dbDir != "." {
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			return nil, fmt.Errorf("NewSQLiteClient: failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_foreign_keys=1&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("NewSQLiteClient: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("NewSQLiteClient: %w", err)
	}

	store, err := sqlstore.New(context.Background(), db, Dialect, cfg.TableName, nodeID(cfg.NodeID))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func nodeID(id int64) int64 {
	if id == 0 {
		return 1
	}
	return id
}
