package snapshot

import (
	"context"
	"testing"

	"config-manager/core/store"
	"config-manager/feature/snapshot/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// TestServiceRoundTrip exports a seeded instance and imports the snapshot into
// an empty one, then re-imports after the live counter moved on.
func TestServiceRoundTrip(t *testing.T) {
	ctx := context.Background()

	source := NewService(newSeededStore(t), zap.NewNop())
	dir := t.TempDir()

	exported, err := source.Export(ctx, dir)
	assert.NoError(t, err)
	assert.Equal(t, 7, exported.TotalRecords)

	target := store.NewInMemoryStore()
	svc := NewService(target, zap.NewNop())

	imported, err := svc.ImportAll(ctx, dir)
	assert.NoError(t, err)
	assert.Equal(t, 5, imported.ImportedTypes)
	// Module states are observational and the target has no modules, so the
	// two module records from the source do not count here.
	assert.Equal(t, 6, imported.TotalRecords)

	assert.Equal(t, 2, target.Count(models.CollectionParameters))
	assert.Equal(t, 1, target.Count(models.CollectionSequences))
	assert.Equal(t, 2, target.Count(models.CollectionGroups))
	assert.Equal(t, 1, target.Count(models.CollectionModelData))
	assert.Equal(t, 0, target.Count(models.CollectionModules))

	// Advance the live counter, then re-import the same snapshot.
	sequences, err := target.Find(ctx, models.CollectionSequences, store.Fields{"code": "sale.order"})
	assert.NoError(t, err)
	err = target.Update(ctx, models.CollectionSequences, sequences[0].ID, store.Fields{"number_next": 25})
	assert.NoError(t, err)

	_, err = svc.ImportAll(ctx, dir)
	assert.NoError(t, err)

	sequences, err = target.Find(ctx, models.CollectionSequences, store.Fields{"code": "sale.order"})
	assert.NoError(t, err)
	assert.EqualValues(t, 25, sequences[0].Fields["number_next"])

	// No duplicates after the second pass.
	assert.Equal(t, 2, target.Count(models.CollectionParameters))
	assert.Equal(t, 2, target.Count(models.CollectionGroups))
}

func TestServiceValidate(t *testing.T) {
	svc := NewService(store.NewInMemoryStore(), zap.NewNop())

	result := svc.Validate(t.TempDir())
	assert.False(t, result.Valid)
}

func TestServiceImportFailurePassesResultThrough(t *testing.T) {
	ctx := context.Background()
	svc := NewService(store.NewInMemoryStore(), zap.NewNop())

	result, err := svc.ImportAll(ctx, t.TempDir())
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingManifest)
	assert.Nil(t, result)
}
