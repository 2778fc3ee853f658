package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMigratedSQLite(t *testing.T, path string) *SQLiteDB {
	t.Helper()
	ctx := context.Background()

	db, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	m, err := NewMigrator(DriverSQLite, db.DB)
	require.NoError(t, err)
	_, err = m.Up(ctx)
	require.NoError(t, err)
	return db
}

func TestOpenSQLite_MemoryKeepsSchemaPastConnLifetime(t *testing.T) {
	old := sqliteConnMaxLifetime
	sqliteConnMaxLifetime = 10 * time.Millisecond
	t.Cleanup(func() { sqliteConnMaxLifetime = old })

	ctx := context.Background()
	db := openMigratedSQLite(t, ":memory:")

	_, err := db.DB.ExecContext(ctx, `INSERT INTO items (name) VALUES (?)`, "Box")
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)

	var count int
	require.NoError(t, db.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`).Scan(&count))
	assert.Equal(t, 1, count)
	assert.Zero(t, db.DB.Stats().MaxLifetimeClosed)
}

func TestOpenSQLite_FileRecyclesConnections(t *testing.T) {
	old := sqliteConnMaxLifetime
	sqliteConnMaxLifetime = 10 * time.Millisecond
	t.Cleanup(func() { sqliteConnMaxLifetime = old })

	ctx := context.Background()
	db := openMigratedSQLite(t, t.TempDir()+"/itemtag.db")

	_, err := db.DB.ExecContext(ctx, `INSERT INTO items (name) VALUES (?)`, "Box")
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)

	var count int
	require.NoError(t, db.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestOpenSQLite_UniqueViolation(t *testing.T) {
	ctx := context.Background()
	db := openMigratedSQLite(t, ":memory:")

	_, err := db.DB.ExecContext(ctx, `INSERT INTO tags (name, color) VALUES (?, ?)`, "Red", "#FF0000")
	require.NoError(t, err)
	_, err = db.DB.ExecContext(ctx, `INSERT INTO tags (name, color) VALUES (?, ?)`, "Red", "#00FF00")
	require.Error(t, err)
	assert.True(t, IsSQLiteUniqueViolation(err))
	assert.False(t, IsSQLiteUniqueViolation(nil))
}

func TestInPlaceholders(t *testing.T) {
	marks, args := InPlaceholders([]int64{3, 1, 2})
	assert.Equal(t, "?, ?, ?", marks)
	assert.Equal(t, []any{int64(3), int64(1), int64(2)}, args)

	marks, args = InPlaceholders(nil)
	assert.Empty(t, marks)
	assert.Empty(t, args)
}
