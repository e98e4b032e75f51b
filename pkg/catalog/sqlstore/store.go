// Package sqlstore implements catalog.Store on database/sql.
//
// The SQLite, PostgreSQL and OceanBase backends open their own driver and
// hand the connection here together with a Dialect describing their SQL.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/bwmarrin/snowflake"

	"github.com/oceanbase/oaiembed-go/pkg/catalog"
)

// DefaultTableName is used when no table name is configured.
const DefaultTableName = "vector_spaces"

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Dialect captures the SQL differences between backends.
type Dialect struct {
	// Name is used in error messages.
	Name string

	// Placeholder returns the bind parameter for the n-th (1-based) argument.
	Placeholder func(n int) string

	// CreateTable returns the DDL for the catalog table.
	CreateTable func(table string) string
}

// QuestionPlaceholder is used by SQLite and MySQL-compatible databases.
func QuestionPlaceholder(int) string { return "?" }

// DollarPlaceholder is used by PostgreSQL.
func DollarPlaceholder(n int) string { return fmt.Sprintf("$%d", n) }

// Store implements catalog.Store.
type Store struct {
	db      *sql.DB
	dialect Dialect
	table   string
	node    *snowflake.Node
}

var _ catalog.Store = (*Store)(nil)

// New creates a Store on db and ensures the catalog table exists.
//
// Parameters:
//   - db: Open connection; the Store closes it on Close
//   - dialect: Backend SQL dialect
//   - table: Table name (DefaultTableName if empty)
//   - nodeID: Snowflake node ID used to assign space IDs
func New(ctx context.Context, db *sql.DB, dialect Dialect, table string, nodeID int64) (*Store, error) {
	if table == "" {
		table = DefaultTableName
	}
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("%s: invalid table name %q", dialect.Name, table)
	}

	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", dialect.Name, err)
	}

	s := &Store{
		db:      db,
		dialect: dialect,
		table:   table,
		node:    node,
	}

	if _, err := db.ExecContext(ctx, dialect.CreateTable(table)); err != nil {
		return nil, fmt.Errorf("%s: initTables: %w", dialect.Name, err)
	}

	return s, nil
}

// Register implements catalog.Store.
func (s *Store) Register(ctx context.Context, space *catalog.Space) (*catalog.Space, error) {
	if err := space.Validate(); err != nil {
		return nil, fmt.Errorf("Register: %w", err)
	}

	existing, err := s.Get(ctx, space.Name)
	switch {
	case err == nil:
		return checkSize(existing, space)
	case !errors.Is(err, catalog.ErrNotFound):
		return nil, err
	}

	record := *space
	record.ID = s.node.Generate().Int64()
	record.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)

	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, model, base_url, size, created_at)
		VALUES (%s, %s, %s, %s, %s, %s)
	`, s.table, s.ph(1), s.ph(2), s.ph(3), s.ph(4), s.ph(5), s.ph(6))

	_, insertErr := s.db.ExecContext(ctx, query,
		record.ID,
		record.Name,
		record.Model,
		record.BaseURL,
		record.Size,
		record.CreatedAt.UnixMilli(),
	)
	if insertErr != nil {
		// Another writer may have registered the name between Get and INSERT.
		if existing, err := s.Get(ctx, space.Name); err == nil {
			return checkSize(existing, space)
		}
		return nil, fmt.Errorf("Register: %w", insertErr)
	}

	return &record, nil
}

func checkSize(existing, space *catalog.Space) (*catalog.Space, error) {
	if existing.Size != space.Size {
		return nil, fmt.Errorf("Register: %q registered with size %d, got %d: %w",
			space.Name, existing.Size, space.Size, catalog.ErrSizeMismatch)
	}
	return existing, nil
}

// Get implements catalog.Store.
func (s *Store) Get(ctx context.Context, name string) (*catalog.Space, error) {
	query := fmt.Sprintf(`
		SELECT id, name, model, base_url, size, created_at
		FROM %s
		WHERE name = %s
	`, s.table, s.ph(1))

	space, err := scanSpace(s.db.QueryRowContext(ctx, query, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("Get: %q: %w", name, catalog.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}

	return space, nil
}

// List implements catalog.Store.
func (s *Store) List(ctx context.Context) ([]*catalog.Space, error) {
	query := fmt.Sprintf(`
		SELECT id, name, model, base_url, size, created_at
		FROM %s
		ORDER BY name
	`, s.table)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	spaces := []*catalog.Space{}
	for rows.Next() {
		space, err := scanSpace(rows)
		if err != nil {
			return nil, fmt.Errorf("List: %w", err)
		}
		spaces = append(spaces, space)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}

	return spaces, nil
}

// Delete implements catalog.Store.
func (s *Store) Delete(ctx context.Context, name string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE name = %s`, s.table, s.ph(1))

	result, err := s.db.ExecContext(ctx, query, name)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("Delete: %q: %w", name, catalog.ErrNotFound)
	}

	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ph(n int) string {
	return s.dialect.Placeholder(n)
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSpace(row scanner) (*catalog.Space, error) {
	var (
		space     catalog.Space
		createdAt int64
	)
	if err := row.Scan(&space.ID, &space.Name, &space.Model, &space.BaseURL, &space.Size, &createdAt); err != nil {
		return nil, err
	}
	space.CreatedAt = time.UnixMilli(createdAt).UTC()
	return &space, nil
}
