package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "sql")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		default:
			t.Errorf("unexpected file in migrations: %s", name)
		}
	}
	assert.Equal(t, ups, downs)
}

func TestInitMigrationCreatesTables(t *testing.T) {
	body, err := fs.ReadFile(migrationsFS, "sql/000001_init.up.sql")
	require.NoError(t, err)

	sql := string(body)
	assert.Contains(t, sql, "CREATE TABLE IF NOT EXISTS categories")
	assert.Contains(t, sql, "CREATE TABLE IF NOT EXISTS transactions")
	assert.Contains(t, sql, "CHECK (value >= 0)")
}
