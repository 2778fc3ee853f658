package database

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	_ "github.com/lib/pq" // database/sql driver "postgres" cho goose
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog/log"

	"itemtag-backend/migrations"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Migrator chạy goose migrations embed trong package migrations
type Migrator struct {
	provider *goose.Provider
}

// NewMigrator tạo goose provider cho driver tương ứng (postgres | sqlite)
func NewMigrator(driver string, db *sql.DB) (*Migrator, error) {
	var dialect goose.Dialect
	switch driver {
	case DriverPostgres:
		dialect = goose.DialectPostgres
	case DriverSQLite:
		dialect = goose.DialectSQLite3
	default:
		return nil, fmt.Errorf("unsupported migration driver %q", driver)
	}

	fsys, err := fs.Sub(migrations.FS, driver)
	if err != nil {
		return nil, fmt.Errorf("migrations for %s: %w", driver, err)
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("create goose provider: %w", err)
	}
	return &Migrator{provider: provider}, nil
}

// OpenPostgresSQL mở *sql.DB qua lib/pq; goose cần database/sql chứ không dùng pgxpool
func OpenPostgresSQL(cfg *DBConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open postgres for migrations: %w", err)
	}
	return db, nil
}

func (m *Migrator) Up(ctx context.Context) ([]*goose.MigrationResult, error) {
	results, err := m.provider.Up(ctx)
	if err != nil {
		return results, fmt.Errorf("migrate up: %w", err)
	}
	for _, r := range results {
		log.Info().
			Int64("version", r.Source.Version).
			Dur("duration", r.Duration).
			Msg("[MIGRATE] applied")
	}
	return results, nil
}

func (m *Migrator) Down(ctx context.Context) (*goose.MigrationResult, error) {
	result, err := m.provider.Down(ctx)
	if err != nil {
		return result, fmt.Errorf("migrate down: %w", err)
	}
	return result, nil
}

// Reset rolls back every applied migration.
func (m *Migrator) Reset(ctx context.Context) ([]*goose.MigrationResult, error) {
	results, err := m.provider.DownTo(ctx, 0)
	if err != nil {
		return results, fmt.Errorf("migrate reset: %w", err)
	}
	return results, nil
}

func (m *Migrator) Status(ctx context.Context) ([]*goose.MigrationStatus, error) {
	status, err := m.provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("migrate status: %w", err)
	}
	return status, nil
}

func (m *Migrator) Version(ctx context.Context) (int64, error) {
	return m.provider.GetDBVersion(ctx)
}
