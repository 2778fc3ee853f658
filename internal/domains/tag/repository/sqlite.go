package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"itemtag-backend/internal/domains/tag/model"
	"itemtag-backend/internal/infrastructure/database"
	txutil "itemtag-backend/pkg/database"
	"itemtag-backend/pkg/logger"
)

// sqliteRepository implements Repository với database/sql + go-sqlite3
type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) Repository {
	return &sqliteRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteTag(row rowScanner) (*model.Tag, error) {
	var t model.Tag
	if err := row.Scan(&t.ID, &t.Name, &t.Color, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func getTagByID(ctx context.Context, q database.SQLQuerier, id int64) (*model.Tag, error) {
	query := `SELECT ` + tagColumns + ` FROM tags WHERE id = ?`

	tag, err := scanSQLiteTag(q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get tag by id: %w", err)
	}
	return tag, nil
}

func (r *sqliteRepository) GetByID(ctx context.Context, id int64) (*model.Tag, error) {
	tag, err := getTagByID(ctx, r.db, id)
	if err != nil {
		logger.Error("GetByID: database error", err)
	}
	return tag, err
}

func (r *sqliteRepository) GetByName(ctx context.Context, name string) (*model.Tag, error) {
	query := `SELECT ` + tagColumns + ` FROM tags WHERE name = ?`

	tag, err := scanSQLiteTag(r.db.QueryRowContext(ctx, query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("GetByName: database error", err)
		return nil, fmt.Errorf("failed to get tag by name: %w", err)
	}
	return tag, nil
}

func (r *sqliteRepository) GetByIDs(ctx context.Context, ids []int64) ([]*model.Tag, error) {
	if len(ids) == 0 {
		return []*model.Tag{}, nil
	}
	marks, args := database.InPlaceholders(ids)
	query := `SELECT ` + tagColumns + ` FROM tags WHERE id IN (` + marks + `) ORDER BY id`
	return r.queryTags(ctx, query, args...)
}

func (r *sqliteRepository) GetAll(ctx context.Context, skip, limit int) ([]*model.Tag, error) {
	query := `SELECT ` + tagColumns + ` FROM tags ORDER BY id LIMIT ? OFFSET ?`
	return r.queryTags(ctx, query, limit, skip)
}

func (r *sqliteRepository) queryTags(ctx context.Context, query string, args ...any) ([]*model.Tag, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error("queryTags: database error", err)
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer rows.Close()

	tags := make([]*model.Tag, 0)
	for rows.Next() {
		tag, err := scanSQLiteTag(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tag row: %w", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tag rows: %w", err)
	}
	return tags, nil
}

func (r *sqliteRepository) Create(ctx context.Context, tag *model.Tag) (*model.Tag, error) {
	created, err := txutil.WithSQLTransactionResult(ctx, r.db, func(tx *sql.Tx) (*model.Tag, error) {
		res, err := tx.ExecContext(ctx, `INSERT INTO tags (name, color) VALUES (?, ?)`, tag.Name, tag.Color)
		if err != nil {
			return nil, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, err
		}
		return getTagByID(ctx, tx, id)
	})
	if err != nil {
		if database.IsSQLiteUniqueViolation(err) {
			return nil, model.NewDuplicateTagName(tag.Name)
		}
		logger.Error("Create: database error", err)
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}
	return created, nil
}

func (r *sqliteRepository) Update(ctx context.Context, id int64, tag *model.Tag) (*model.Tag, error) {
	updated, err := txutil.WithSQLTransactionResult(ctx, r.db, func(tx *sql.Tx) (*model.Tag, error) {
		res, err := tx.ExecContext(ctx, `
			UPDATE tags
			SET name = COALESCE(NULLIF(?, ''), name),
			    color = COALESCE(NULLIF(?, ''), color),
			    updated_at = CURRENT_TIMESTAMP
			WHERE id = ?`,
			tag.Name, tag.Color, id,
		)
		if err != nil {
			return nil, err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return nil, nil
		}
		return getTagByID(ctx, tx, id)
	})
	if err != nil {
		if database.IsSQLiteUniqueViolation(err) {
			return nil, model.NewDuplicateTagName(tag.Name)
		}
		logger.Error("Update: database error", err)
		return nil, fmt.Errorf("failed to update tag: %w", err)
	}
	return updated, nil
}

func (r *sqliteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := txutil.WithSQLTransactionResult(ctx, r.db, func(tx *sql.Tx) (bool, error) {
		if _, err := tx.ExecContext(ctx, `DELETE FROM item_tags WHERE tag_id = ?`, id); err != nil {
			return false, err
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM tags WHERE id = ?`, id)
		if err != nil {
			return false, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return false, err
		}
		return n > 0, nil
	})
	if err != nil {
		logger.Error("Delete: database error", err)
		return false, fmt.Errorf("failed to delete tag: %w", err)
	}
	return deleted, nil
}
