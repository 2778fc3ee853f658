package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"itemtag-backend/internal/domains/tag/model"
	"itemtag-backend/internal/infrastructure/database"
	txutil "itemtag-backend/pkg/database"
	"itemtag-backend/pkg/logger"
)

const tagColumns = `id, name, color, created_at, updated_at`

// postgresRepository implements Repository trên pgx pool
type postgresRepository struct {
	pool database.PgxPool
}

// NewPostgresRepository nhận pool từ container (hoặc pgxmock trong test)
func NewPostgresRepository(pool database.PgxPool) Repository {
	return &postgresRepository{pool: pool}
}

func scanTag(row pgx.Row) (*model.Tag, error) {
	var t model.Tag
	if err := row.Scan(&t.ID, &t.Name, &t.Color, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Tag, error) {
	query := `SELECT ` + tagColumns + ` FROM tags WHERE id = $1`

	tag, err := scanTag(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error("GetByID: database error", err)
		return nil, fmt.Errorf("failed to get tag by id: %w", err)
	}
	return tag, nil
}

func (r *postgresRepository) GetByName(ctx context.Context, name string) (*model.Tag, error) {
	query := `SELECT ` + tagColumns + ` FROM tags WHERE name = $1`

	tag, err := scanTag(r.pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error("GetByName: database error", err)
		return nil, fmt.Errorf("failed to get tag by name: %w", err)
	}
	return tag, nil
}

func (r *postgresRepository) GetByIDs(ctx context.Context, ids []int64) ([]*model.Tag, error) {
	if len(ids) == 0 {
		return []*model.Tag{}, nil
	}
	query := `SELECT ` + tagColumns + ` FROM tags WHERE id = ANY($1) ORDER BY id`
	return r.queryTags(ctx, query, ids)
}

func (r *postgresRepository) GetAll(ctx context.Context, skip, limit int) ([]*model.Tag, error) {
	query := `SELECT ` + tagColumns + ` FROM tags ORDER BY id LIMIT $1 OFFSET $2`
	return r.queryTags(ctx, query, limit, skip)
}

func (r *postgresRepository) queryTags(ctx context.Context, query string, args ...any) ([]*model.Tag, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		logger.Error("queryTags: database error", err)
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer rows.Close()

	tags := make([]*model.Tag, 0)
	for rows.Next() {
		tag, err := scanTag(rows)
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

func (r *postgresRepository) Create(ctx context.Context, tag *model.Tag) (*model.Tag, error) {
	query := `
		INSERT INTO tags (name, color)
		VALUES ($1, $2)
		RETURNING ` + tagColumns

	created, err := scanTag(r.pool.QueryRow(ctx, query, tag.Name, tag.Color))
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, model.NewDuplicateTagName(tag.Name)
		}
		logger.Error("Create: database error", err)
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}
	return created, nil
}

// Update: chuỗi rỗng giữ nguyên cột hiện tại
func (r *postgresRepository) Update(ctx context.Context, id int64, tag *model.Tag) (*model.Tag, error) {
	query := `
		UPDATE tags
		SET name = COALESCE(NULLIF($1, ''), name),
		    color = COALESCE(NULLIF($2, ''), color),
		    updated_at = NOW()
		WHERE id = $3
		RETURNING ` + tagColumns

	updated, err := scanTag(r.pool.QueryRow(ctx, query, tag.Name, tag.Color, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if database.IsUniqueViolation(err) {
			return nil, model.NewDuplicateTagName(tag.Name)
		}
		logger.Error("Update: database error", err)
		return nil, fmt.Errorf("failed to update tag: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return txutil.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (bool, error) {
		if _, err := tx.Exec(ctx, `DELETE FROM item_tags WHERE tag_id = $1`, id); err != nil {
			logger.Error("Delete: unlink items failed", err)
			return false, fmt.Errorf("failed to unlink tag from items: %w", err)
		}

		result, err := tx.Exec(ctx, `DELETE FROM tags WHERE id = $1`, id)
		if err != nil {
			logger.Error("Delete: database error", err)
			return false, fmt.Errorf("failed to delete tag: %w", err)
		}
		return result.RowsAffected() > 0, nil
	})
}
