package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runMigrate(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute(), out.String())
	return out.String()
}

func TestMigrateCommands_SQLite(t *testing.T) {
	color.NoColor = true
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "migrate.db"))

	out := runMigrate(t, "status")
	assert.Contains(t, out, "00001_create_items_tags.sql")
	assert.Contains(t, out, "pending")

	out = runMigrate(t, "up")
	assert.Contains(t, out, "UP")
	assert.Contains(t, out, "00001_create_items_tags.sql")

	out = runMigrate(t, "status")
	assert.Contains(t, out, "VERSION")
	assert.Contains(t, out, "applied")
	assert.NotContains(t, out, "pending")

	out = runMigrate(t, "up")
	assert.Contains(t, out, "Database already up to date")

	out = runMigrate(t, "down")
	assert.Contains(t, out, "DOWN")

	out = runMigrate(t, "status")
	assert.Contains(t, out, "pending")
}

func TestMigrateCommands_InvalidDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")

	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"status"})
	assert.Error(t, cmd.Execute())
}
