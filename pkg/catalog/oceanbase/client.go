// Package oceanbase provides the OceanBase catalog backend over the MySQL protocol.
package oceanbase

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/oceanbase/oaiembed-go/pkg/catalog/sqlstore"
)

// Config contains OceanBase configuration.
type Config struct {
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	TableName string
	NodeID    int64
}

// Dialect is the OceanBase (MySQL mode) SQL dialect.
var Dialect = sqlstore.Dialect{
	Name:        "oceanbase",
	Placeholder: sqlstore.QuestionPlaceholder,
	CreateTable: func(table string) string {
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id BIGINT PRIMARY KEY,
				name VARCHAR(255) NOT NULL,
				model VARCHAR(255) NOT NULL,
				base_url VARCHAR(1024) NOT NULL,
				size INT NOT NULL,
				created_at BIGINT NOT NULL,
				UNIQUE KEY uk_name (name)
			)
		`, table)
	},
}

// DSN returns the go-sql-driver/mysql connection string for cfg.
func (cfg *Config) DSN() string {
	mc := mysql.NewConfig()
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	mc.DBName = cfg.DBName
	mc.ParseTime = true
	return mc.FormatDSN()
}

// NewClient creates a new OceanBase catalog store.
func NewClient(cfg *Config) (*sqlstore.Store, error) {
	db, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("NewOceanBaseClient: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("NewOceanBaseClient: %w", err)
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
