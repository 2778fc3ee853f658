package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"itemtag-backend/internal/domains/item/model"
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

func scanSQLiteItem(row rowScanner) (*model.Item, error) {
	var i model.Item
	if err := row.Scan(&i.ID, &i.Name, &i.Description, &i.CreatedAt, &i.UpdatedAt); err != nil {
		return nil, err
	}
	return &i, nil
}

func loadSQLiteTags(ctx context.Context, q database.SQLQuerier, items ...*model.Item) error {
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

	marks, args := database.InPlaceholders(ids)
	rows, err := q.QueryContext(ctx, `
		SELECT it.item_id, t.id, t.name, t.color
		FROM item_tags it
		JOIN tags t ON t.id = it.tag_id
		WHERE it.item_id IN (`+marks+`)
		ORDER BY it.item_id, t.id`, args...)
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

func linkSQLiteTags(ctx context.Context, tx *sql.Tx, itemID int64, tagIDs []int64) error {
	if len(tagIDs) == 0 {
		return nil
	}
	marks, args := database.InPlaceholders(tagIDs)
	args = append([]any{itemID}, args...)
	_, err := tx.ExecContext(ctx, `
		INSERT OR IGNORE INTO item_tags (item_id, tag_id)
		SELECT ?, id FROM tags WHERE id IN (`+marks+`)`, args...)
	if err != nil {
		return fmt.Errorf("failed to link tags: %w", err)
	}
	return nil
}

func getItemByID(ctx context.Context, q database.SQLQuerier, id int64) (*model.Item, error) {
	item, err := scanSQLiteItem(q.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM items WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get item by id: %w", err)
	}
	if err := loadSQLiteTags(ctx, q, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (r *sqliteRepository) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	item, err := getItemByID(ctx, r.db, id)
	if err != nil {
		logger.Error("GetByID: database error", err)
	}
	return item, err
}

func (r *sqliteRepository) GetAll(ctx context.Context, skip, limit int) ([]*model.Item, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+itemColumns+` FROM items ORDER BY id LIMIT ? OFFSET ?`, limit, skip)
	if err != nil {
		logger.Error("GetAll: database error", err)
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	items := make([]*model.Item, 0)
	for rows.Next() {
		item, err := scanSQLiteItem(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan item row: %w", err)
		}
		items = append(items, item)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, fmt.Errorf("error iterating item rows: %w", err)
	}

	if err := loadSQLiteTags(ctx, r.db, items...); err != nil {
		logger.Error("GetAll: load tags failed", err)
		return nil, err
	}
	return items, nil
}

func (r *sqliteRepository) Create(ctx context.Context, item *model.Item, tagIDs []int64) (*model.Item, error) {
	created, err := txutil.WithSQLTransactionResult(ctx, r.db, func(tx *sql.Tx) (*model.Item, error) {
		res, err := tx.ExecContext(ctx, `INSERT INTO items (name, description) VALUES (?, ?)`, item.Name, item.Description)
		if err != nil {
			return nil, fmt.Errorf("failed to insert item: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, err
		}
		if err := linkSQLiteTags(ctx, tx, id, tagIDs); err != nil {
			return nil, err
		}
		return getItemByID(ctx, tx, id)
	})
	if err != nil {
		logger.Error("Create: database error", err)
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	return created, nil
}

func (r *sqliteRepository) Update(ctx context.Context, id int64, item *model.Item, tagIDs *[]int64) (*model.Item, error) {
	updated, err := txutil.WithSQLTransactionResult(ctx, r.db, func(tx *sql.Tx) (*model.Item, error) {
		res, err := tx.ExecContext(ctx, `
			UPDATE items
			SET name = ?, description = ?, updated_at = CURRENT_TIMESTAMP
			WHERE id = ?`,
			item.Name, item.Description, id,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to update item: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return nil, nil
		}

		if tagIDs != nil {
			if _, err := tx.ExecContext(ctx, `DELETE FROM item_tags WHERE item_id = ?`, id); err != nil {
				return nil, fmt.Errorf("failed to clear item tags: %w", err)
			}
			if err := linkSQLiteTags(ctx, tx, id, *tagIDs); err != nil {
				return nil, err
			}
		}
		return getItemByID(ctx, tx, id)
	})
	if err != nil {
		logger.Error("Update: database error", err)
		return nil, err
	}
	return updated, nil
}

func (r *sqliteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := txutil.WithSQLTransactionResult(ctx, r.db, func(tx *sql.Tx) (bool, error) {
		if _, err := tx.ExecContext(ctx, `DELETE FROM item_tags WHERE item_id = ?`, id); err != nil {
			return false, err
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
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
		return false, fmt.Errorf("failed to delete item: %w", err)
	}
	return deleted, nil
}
