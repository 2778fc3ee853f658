package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itemtag-backend/internal/domains/item/model"
	tagModel "itemtag-backend/internal/domains/tag/model"
	tagRepo "itemtag-backend/internal/domains/tag/repository"
	"itemtag-backend/internal/infrastructure/database"
)

func newTestSQLite(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	db, err := database.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	migrator, err := database.NewMigrator(database.DriverSQLite, db.DB)
	require.NoError(t, err)
	_, err = migrator.Up(ctx)
	require.NoError(t, err)

	return db.DB
}

func tagIDs(item *model.Item) []int64 {
	ids := make([]int64, 0, len(item.Tags))
	for _, t := range item.Tags {
		ids = append(ids, t.ID)
	}
	return ids
}

func TestSQLiteRepository_CreateResolvesTags(t *testing.T) {
	ctx := context.Background()
	db := newTestSQLite(t)
	items := NewSQLiteRepository(db)
	tags := tagRepo.NewSQLiteRepository(db)

	red, err := tags.Create(ctx, &tagModel.Tag{Name: "Red", Color: "#FF0000"})
	require.NoError(t, err)

	desc := "cardboard"
	box, err := items.Create(ctx, &model.Item{Name: "Box", Description: &desc}, []int64{red.ID, 999})
	require.NoError(t, err)
	assert.Equal(t, int64(1), box.ID)
	assert.Equal(t, "cardboard", *box.Description)
	require.Len(t, box.Tags, 1)
	assert.Equal(t, model.TagSummary{ID: red.ID, Name: "Red", Color: "#FF0000"}, box.Tags[0])

	plain, err := items.Create(ctx, &model.Item{Name: "Plain"}, nil)
	require.NoError(t, err)
	assert.Nil(t, plain.Description)
	assert.NotNil(t, plain.Tags)
	assert.Empty(t, plain.Tags)

	got, err := items.GetByID(ctx, box.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{red.ID}, tagIDs(got))

	// deleting the tag empties the item's tags but keeps the item
	deleted, err := tags.Delete(ctx, red.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err = items.GetByID(ctx, box.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got.Tags)
}

func TestSQLiteRepository_UpdateTagSet(t *testing.T) {
	ctx := context.Background()
	db := newTestSQLite(t)
	items := NewSQLiteRepository(db)
	tags := tagRepo.NewSQLiteRepository(db)

	a, err := tags.Create(ctx, &tagModel.Tag{Name: "A", Color: "#000001"})
	require.NoError(t, err)
	b, err := tags.Create(ctx, &tagModel.Tag{Name: "B", Color: "#000002"})
	require.NoError(t, err)

	box, err := items.Create(ctx, &model.Item{Name: "Box"}, []int64{a.ID})
	require.NoError(t, err)

	// nil keeps tags
	updated, err := items.Update(ctx, box.ID, &model.Item{Name: "Crate"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Crate", updated.Name)
	assert.NotNil(t, updated.UpdatedAt)
	assert.Equal(t, []int64{a.ID}, tagIDs(updated))

	// replacement
	replace := []int64{b.ID, 999}
	updated, err = items.Update(ctx, box.ID, &model.Item{Name: "Crate"}, &replace)
	require.NoError(t, err)
	assert.Equal(t, []int64{b.ID}, tagIDs(updated))

	// empty clears
	empty := []int64{}
	updated, err = items.Update(ctx, box.ID, &model.Item{Name: "Crate"}, &empty)
	require.NoError(t, err)
	assert.Empty(t, updated.Tags)

	absent, err := items.Update(ctx, 404, &model.Item{Name: "x"}, &replace)
	require.NoError(t, err)
	assert.Nil(t, absent)

	var links int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM item_tags`).Scan(&links))
	assert.Equal(t, 0, links)
}

func TestSQLiteRepository_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	db := newTestSQLite(t)
	items := NewSQLiteRepository(db)
	tags := tagRepo.NewSQLiteRepository(db)

	red, err := tags.Create(ctx, &tagModel.Tag{Name: "Red", Color: "#FF0000"})
	require.NoError(t, err)

	for _, name := range []string{"a", "b", "c", "d", "e"} {
		_, err := items.Create(ctx, &model.Item{Name: name}, []int64{red.ID})
		require.NoError(t, err)
	}

	page, err := items.GetAll(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, int64(2), page[0].ID)
	assert.Equal(t, int64(3), page[1].ID)
	assert.Equal(t, []int64{red.ID}, tagIDs(page[1]))

	empty, err := items.GetAll(ctx, 100, 10)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	deleted, err := items.Delete(ctx, 2)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = items.Delete(ctx, 2)
	require.NoError(t, err)
	assert.False(t, deleted)

	// the tag survives item deletion
	tag, err := tags.GetByID(ctx, red.ID)
	require.NoError(t, err)
	assert.NotNil(t, tag)

	var links int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM item_tags WHERE item_id = 2`).Scan(&links))
	assert.Equal(t, 0, links)
}
