package sqlstore_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oceanbase/oaiembed-go/pkg/catalog/oceanbase"
	"github.com/oceanbase/oaiembed-go/pkg/catalog/postgres"
	"github.com/oceanbase/oaiembed-go/pkg/catalog/sqlite"
	"github.com/oceanbase/oaiembed-go/pkg/catalog/sqlstore"
)

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "?", sqlstore.QuestionPlaceholder(3))
	assert.Equal(t, "$1", sqlstore.DollarPlaceholder(1))
	assert.Equal(t, "$6", sqlstore.DollarPlaceholder(6))
}

func TestDialects(t *testing.T) {
	dialects := []sqlstore.Dialect{sqlite.Dialect, postgres.Dialect, oceanbase.Dialect}

	for _, d := range dialects {
		t.Run(d.Name, func(t *testing.T) {
			ddl := d.CreateTable("vector_spaces")
			assert.Contains(t, ddl, "CREATE TABLE IF NOT EXISTS vector_spaces")
			for _, column := range []string{"id", "name", "model", "base_url", "size", "created_at"} {
				assert.Contains(t, ddl, column)
			}
			assert.True(t, strings.Contains(ddl, "UNIQUE"))
		})
	}
}

func TestDSN(t *testing.T) {
	pg := &postgres.Config{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "embed"}
	assert.Equal(t, "postgres://u:p@db:5432/embed?sslmode=disable", pg.DSN())

	// Passwords with spaces, quotes or URL delimiters survive the round trip.
	pg = &postgres.Config{Host: "db", Port: 5432, User: "svc user", Password: "p@ss w'rd/#?", DBName: "embed", SSLMode: "require"}
	parsed, err := url.Parse(pg.DSN())
	assert.NoError(t, err)
	assert.Equal(t, "svc user", parsed.User.Username())
	password, ok := parsed.User.Password()
	assert.True(t, ok)
	assert.Equal(t, "p@ss w'rd/#?", password)
	assert.Equal(t, "db:5432", parsed.Host)
	assert.Equal(t, "/embed", parsed.Path)
	assert.Equal(t, "require", parsed.Query().Get("sslmode"))

	ob := &oceanbase.Config{Host: "127.0.0.1", Port: 2881, User: "root@sys", Password: "pw", DBName: "embed"}
	dsn := ob.DSN()
	assert.True(t, strings.HasPrefix(dsn, "root@sys:pw@tcp(127.0.0.1:2881)/embed"))
	assert.Contains(t, dsn, "parseTime=true")
}
