package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"itemtag-backend/internal/domains/item/model"
	"itemtag-backend/internal/infrastructure/database"
	txutil "itemtag-backend/pkg/database"
	"itemtag-backend/pkg/logger"
)

const itemColumns = `id, name, description, created_at, updated_at`

type postgresRepository struct {
	pool database.PgxPool
}

func NewPostgresRepository(pool database.PgxPool) Repository {
	return &postgresRepository{pool: pool}
}

func scanItem(row pgx.Row) (*model.Item, error) {
	var i model.Item
	if err := row.Scan(&i.ID, &i.Name, &i.Description, &i.CreatedAt, &i.UpdatedAt); err != nil {
		return nil, err
	}
	return &i, nil
}

// loadTags gắn Tags cho từng item bằng một query duy nhất
func loadTags(ctx context.Context, q database.Querier, items ...*model.Item) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(items))
	byID := make(map[int64]*model.Item, len(items))
	for _, it := range items {
		it.Tags = []model.TagSummary{}
		ids = append(ids, it.ID)
		byID[it.ID] = it
	}

	rows, err := q.Query(ctx, `
		SELECT it.item_id, t.id, t.name, t.color
		FROM item_tags it
		JOIN tags t ON t.id = it.tag_id
		WHERE it.item_id = ANY($1)
		ORDER BY it.item_id, t.id`, ids)
	if err != nil {
		return fmt.Errorf("failed to load item tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var itemID int64
		var tag model.TagSummary
		if err := rows.Scan(&itemID, &tag.ID, &tag.Name, &tag.Color); err != nil {
			return fmt.Errorf("failed to scan item tag: %w", err)
		}
		if it, ok := byID[itemID]; ok {
			it.Tags = append(it.Tags, tag)
		}
	}
	return rows.Err()
}

// linkTags gắn các tag tồn tại trong tagIDs, id không tồn tại bị bỏ qua
func linkTags(ctx context.Context, tx pgx.Tx, itemID int64, tagIDs []int64) error {
	if len(tagIDs) == 0 {
		return nil
	}
	_, err := tx.Exec(ctx, `
		INSERT INTO item_tags (item_id, tag_id)
		SELECT $1, id FROM tags WHERE id = ANY($2)
		ON CONFLICT DO NOTHING`, itemID, tagIDs)
	if err != nil {
		return fmt.Errorf("failed to link tags: %w", err)
	}
	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`

	item, err := scanItem(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error("GetByID: database error", err)
		return nil, fmt.Errorf("failed to get item by id: %w", err)
	}

	if err := loadTags(ctx, r.pool, item); err != nil {
		logger.Error("GetByID: load tags failed", err)
		return nil, err
	}
	return item, nil
}

func (r *postgresRepository) GetAll(ctx context.Context, skip, limit int) ([]*model.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, skip)
	if err != nil {
		logger.Error("GetAll: database error", err)
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	items := make([]*model.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating item rows: %w", err)
	}
	rows.Close()

	if err := loadTags(ctx, r.pool, items...); err != nil {
		logger.Error("GetAll: load tags failed", err)
		return nil, err
	}
	return items, nil
}

func (r *postgresRepository) Create(ctx context.Context, item *model.Item, tagIDs []int64) (*model.Item, error) {
	created, err := txutil.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.Item, error) {
		created, err := scanItem(tx.QueryRow(ctx, `
			INSERT INTO items (name, description)
			VALUES ($1, $2)
			RETURNING `+itemColumns, item.Name, item.Description))
		if err != nil {
			return nil, fmt.Errorf("failed to insert item: %w", err)
		}

		if err := linkTags(ctx, tx, created.ID, tagIDs); err != nil {
			return nil, err
		}
		if err := loadTags(ctx, tx, created); err != nil {
			return nil, err
		}
		return created, nil
	})
	if err != nil {
		logger.Error("Create: database error", err)
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int64, item *model.Item, tagIDs *[]int64) (*model.Item, error) {
	updated, err := txutil.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.Item, error) {
		updated, err := scanItem(tx.QueryRow(ctx, `
			UPDATE items
			SET name = $1, description = $2, updated_at = NOW()
			WHERE id = $3
			RETURNING `+itemColumns, item.Name, item.Description, id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, nil
			}
			return nil, fmt.Errorf("failed to update item row: %w", err)
		}

		if tagIDs != nil {
			if _, err := tx.Exec(ctx, `DELETE FROM item_tags WHERE item_id = $1`, id); err != nil {
				return nil, fmt.Errorf("failed to clear item tags: %w", err)
			}
			if err := linkTags(ctx, tx, id, *tagIDs); err != nil {
				return nil, err
			}
		}

		if err := loadTags(ctx, tx, updated); err != nil {
			return nil, err
		}
		return updated, nil
	})
	if err != nil {
		logger.Error("Update: database error", err)
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return txutil.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (bool, error) {
		if _, err := tx.Exec(ctx, `DELETE FROM item_tags WHERE item_id = $1`, id); err != nil {
			logger.Error("Delete: unlink tags failed", err)
			return false, fmt.Errorf("failed to unlink item tags: %w", err)
		}

		result, err := tx.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
		if err != nil {
			logger.Error("Delete: database error", err)
			return false, fmt.Errorf("failed to delete item: %w", err)
		}
		return result.RowsAffected() > 0, nil
	})
}
