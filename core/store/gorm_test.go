package store

import (
	"context"
	"testing"

	"config-manager/core/database"
	"config-manager/feature/snapshot/models"

	"github.com/stretchr/testify/assert"
)

func TestGormStore(t *testing.T) {
	ctx := context.Background()

	// Setup In-Memory DB with the live table shape
	dbCfg := database.Config{Driver: "sqlite", Name: ":memory:"}
	db, err := database.Connect(dbCfg)
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(models.LiveTables()...))

	s := NewGormStore(db)

	t.Run("Create And Find", func(t *testing.T) {
		_, err := s.Create(ctx, models.CollectionParameters, Fields{"key": "web.base.url", "value": "http://a"})
		assert.NoError(t, err)
		_, err = s.Create(ctx, models.CollectionParameters, Fields{"key": "mail.server", "value": "smtp"})
		assert.NoError(t, err)

		records, err := s.Find(ctx, models.CollectionParameters, Fields{"key": "web.base.url"})
		assert.NoError(t, err)
		assert.Len(t, records, 1)
		assert.Equal(t, "http://a", records[0].Fields["value"])
		assert.NotZero(t, records[0].ID)
	})

	t.Run("Find All", func(t *testing.T) {
		records, err := s.Find(ctx, models.CollectionParameters, nil)
		assert.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("Update By ID", func(t *testing.T) {
		records, err := s.Find(ctx, models.CollectionParameters, Fields{"key": "web.base.url"})
		assert.NoError(t, err)

		err = s.Update(ctx, models.CollectionParameters, records[0].ID, Fields{"value": "http://b"})
		assert.NoError(t, err)

		records, err = s.Find(ctx, models.CollectionParameters, Fields{"key": "web.base.url"})
		assert.NoError(t, err)
		assert.Equal(t, "http://b", records[0].Fields["value"])
	})

	t.Run("Composite Filter", func(t *testing.T) {
		_, err := s.Create(ctx, models.CollectionModelData, Fields{
			"module": "base", "name": "group_user", "model": "res.groups", "res_id": 1, "noupdate": false,
		})
		assert.NoError(t, err)
		_, err = s.Create(ctx, models.CollectionModelData, Fields{
			"module": "sales", "name": "group_user", "model": "res.groups", "res_id": 2, "noupdate": false,
		})
		assert.NoError(t, err)

		records, err := s.Find(ctx, models.CollectionModelData, Fields{"module": "base", "name": "group_user"})
		assert.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("Unknown Table Errors", func(t *testing.T) {
		_, err := s.Find(ctx, "no_such_table", nil)
		assert.Error(t, err)
	})
}
