package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// sqliteConnMaxLifetime áp dụng cho database file; ":memory:" không dùng
var sqliteConnMaxLifetime = time.Hour

// SQLiteDB wraps a database/sql handle opened with the go-sqlite3 driver.
type SQLiteDB struct {
	DB   *sql.DB
	Path string
}

// OpenSQLite opens (or creates) the database file at path with foreign keys
// enforced. ":memory:" is pinned to a single connection so every query sees
// the same in-memory database.
func OpenSQLite(ctx context.Context, path string) (*SQLiteDB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	if path == ":memory:" {
		dsn = "file::memory:?_foreign_keys=on"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if path == ":memory:" {
		// connection mới là một database rỗng: không bao giờ recycle
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
		db.SetConnMaxIdleTime(0)
	} else {
		db.SetConnMaxLifetime(sqliteConnMaxLifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", path, err)
	}

	log.Info().Str("path", path).Msg("[DATABASE] SQLite database opened")
	return &SQLiteDB{DB: db, Path: path}, nil
}

func (s *SQLiteDB) Ping(ctx context.Context) error {
	if s.DB == nil {
		return fmt.Errorf("sqlite database is not initialized")
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.DB.PingContext(ctx)
}

func (s *SQLiteDB) Close() error {
	if s.DB == nil {
		return nil
	}
	err := s.DB.Close()
	s.DB = nil
	return err
}

// IsSQLiteUniqueViolation reports whether err is a UNIQUE constraint failure.
func IsSQLiteUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}

// SQLQuerier is satisfied by both *sql.DB and *sql.Tx.
type SQLQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// InPlaceholders returns "?, ?, ?" for n arguments and the ids as []any.
func InPlaceholders(ids []int64) (string, []any) {
	args := make([]any, len(ids))
	marks := make([]byte, 0, len(ids)*3)
	for i, id := range ids {
		if i > 0 {
			marks = append(marks, ", "...)
		}
		marks = append(marks, '?')
		args[i] = id
	}
	return string(marks), args
}
