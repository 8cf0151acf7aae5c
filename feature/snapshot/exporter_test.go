package snapshot

import (
	"context"
	"path/filepath"
	"testing"

	"config-manager/core/store"
	"config-manager/core/yamldoc"
	"config-manager/feature/snapshot/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// newSeededStore builds an in-memory store resembling a small live instance:
// two parameters, one sequence, two groups wired through the relation tables,
// one external id per group, and two modules (one uninstalled).
func newSeededStore(t *testing.T) *store.InMemoryStore {
	t.Helper()
	ctx := context.Background()
	s := store.NewInMemoryStore()

	mustCreate := func(collection string, fields store.Fields) store.Record {
		rec, err := s.Create(ctx, collection, fields)
		assert.NoError(t, err)
		return rec
	}

	mustCreate(models.CollectionParameters, store.Fields{"key": "web.base.url", "value": "http://erp.local"})
	mustCreate(models.CollectionParameters, store.Fields{"key": "mail.catchall.domain", "value": "erp.local"})

	mustCreate(models.CollectionSequences, store.Fields{
		"name": "Sale Order", "code": "sale.order", "prefix": "SO", "suffix": "",
		"padding": 5, "number_next": 10, "number_increment": 1, "active": true,
	})

	category := mustCreate(models.CollectionCategories, store.Fields{"complete_name": "Sales"})
	admin := mustCreate(models.CollectionUsers, store.Fields{"login": "admin"})

	base := mustCreate(models.CollectionGroups, store.Fields{"name": "Internal User"})
	manager := mustCreate(models.CollectionGroups, store.Fields{"name": "Sales Manager", "category_id": category.ID})

	mustCreate(models.CollectionGroupUsers, store.Fields{"gid": manager.ID, "uid": admin.ID})
	mustCreate(models.CollectionGroupImplied, store.Fields{"gid": manager.ID, "hid": base.ID})

	mustCreate(models.CollectionModelData, store.Fields{
		"module": "base", "name": "group_user", "model": "res.groups", "res_id": base.ID, "noupdate": true,
	})

	mustCreate(models.CollectionModules, store.Fields{
		"name": "sale", "state": "installed", "auto_install": false, "sequence": 100,
	})
	mustCreate(models.CollectionModules, store.Fields{
		"name": "stock", "state": "uninstalled", "auto_install": false, "sequence": 100,
	})

	return s
}

func findGroup(t *testing.T, doc map[string]any, name string) map[string]any {
	t.Helper()
	records, ok := doc[models.TypeUserGroups].([]any)
	assert.True(t, ok)
	for _, raw := range records {
		fields, ok := raw.(map[string]any)
		assert.True(t, ok)
		if fields["name"] == name {
			return fields
		}
	}
	t.Fatalf("group %q not found in document", name)
	return nil
}

func TestExporter(t *testing.T) {
	ctx := context.Background()

	t.Run("Writes All Documents And Manifest", func(t *testing.T) {
		s := newSeededStore(t)
		dir := t.TempDir()

		result, err := NewExporter(s, zap.NewNop()).Export(ctx, dir)
		assert.NoError(t, err)
		assert.Equal(t, 5, result.ExportedTypes)
		// 2 params + 1 sequence + 2 groups + 1 external id + 1 replayable module
		assert.Equal(t, 7, result.TotalRecords)
		assert.Equal(t, dir, result.OutputPath)

		for _, configType := range models.ImportOrder {
			assert.True(t, yamldoc.Exists(filepath.Join(dir, models.DocumentFile(configType))))
		}
		assert.True(t, yamldoc.Exists(filepath.Join(dir, models.ManifestFile)))
	})

	t.Run("Manifest Content", func(t *testing.T) {
		s := newSeededStore(t)
		dir := t.TempDir()

		_, err := NewExporter(s, zap.NewNop()).Export(ctx, dir)
		assert.NoError(t, err)

		manifest, err := yamldoc.Read(filepath.Join(dir, models.ManifestFile))
		assert.NoError(t, err)
		assert.NotEmpty(t, manifest["export_date"])
		assert.Equal(t, DefaultVersion, manifest["odoo_version"])
		assert.NotEmpty(t, manifest["database_uuid"])
		assert.EqualValues(t, 7, manifest["total_records"])

		types, ok := manifest["config_types"].([]any)
		assert.True(t, ok)
		assert.Len(t, types, 5)
	})

	t.Run("Version From Parameter", func(t *testing.T) {
		s := newSeededStore(t)
		_, err := s.Create(ctx, models.CollectionParameters, store.Fields{"key": "system.version", "value": "17.0"})
		assert.NoError(t, err)
		dir := t.TempDir()

		_, err = NewExporter(s, zap.NewNop()).Export(ctx, dir)
		assert.NoError(t, err)

		manifest, err := yamldoc.Read(filepath.Join(dir, models.ManifestFile))
		assert.NoError(t, err)
		assert.Equal(t, "17.0", manifest["odoo_version"])
	})

	t.Run("Seeds Database UUID Once", func(t *testing.T) {
		s := newSeededStore(t)
		exporter := NewExporter(s, zap.NewNop())

		first := t.TempDir()
		_, err := exporter.Export(ctx, first)
		assert.NoError(t, err)

		params, err := s.Find(ctx, models.CollectionParameters, store.Fields{"key": "database.uuid"})
		assert.NoError(t, err)
		assert.Len(t, params, 1)
		seeded := params[0].Fields["value"]
		assert.NotEmpty(t, seeded)

		// A second export reuses the persisted uuid instead of generating again.
		second := t.TempDir()
		_, err = exporter.Export(ctx, second)
		assert.NoError(t, err)

		manifest, err := yamldoc.Read(filepath.Join(second, models.ManifestFile))
		assert.NoError(t, err)
		assert.Equal(t, seeded, manifest["database_uuid"])
	})

	t.Run("Group Projection", func(t *testing.T) {
		s := newSeededStore(t)
		dir := t.TempDir()

		_, err := NewExporter(s, zap.NewNop()).Export(ctx, dir)
		assert.NoError(t, err)

		doc, err := yamldoc.Read(filepath.Join(dir, models.DocumentFile(models.TypeUserGroups)))
		assert.NoError(t, err)

		manager := findGroup(t, doc, "Sales Manager")
		assert.Equal(t, "Sales", manager["category_id"])
		assert.Equal(t, []any{"admin"}, manager["users"])
		// The implied group resolves through its external id mapping.
		assert.Equal(t, []any{"base.group_user"}, manager["implied_ids"])

		base := findGroup(t, doc, "Internal User")
		assert.Nil(t, base["category_id"])
		assert.Empty(t, base["users"])
		assert.Empty(t, base["implied_ids"])
	})

	t.Run("Implied Group Without Mapping Is Omitted", func(t *testing.T) {
		s := newSeededStore(t)
		orphan, err := s.Create(ctx, models.CollectionGroups, store.Fields{"name": "Orphan"})
		assert.NoError(t, err)
		groups, err := s.Find(ctx, models.CollectionGroups, store.Fields{"name": "Sales Manager"})
		assert.NoError(t, err)
		_, err = s.Create(ctx, models.CollectionGroupImplied, store.Fields{"gid": groups[0].ID, "hid": orphan.ID})
		assert.NoError(t, err)

		dir := t.TempDir()
		_, err = NewExporter(s, zap.NewNop()).Export(ctx, dir)
		assert.NoError(t, err)

		doc, err := yamldoc.Read(filepath.Join(dir, models.DocumentFile(models.TypeUserGroups)))
		assert.NoError(t, err)
		manager := findGroup(t, doc, "Sales Manager")
		assert.Equal(t, []any{"base.group_user"}, manager["implied_ids"])
	})

	t.Run("Filters Uninstalled Modules", func(t *testing.T) {
		s := newSeededStore(t)
		dir := t.TempDir()

		_, err := NewExporter(s, zap.NewNop()).Export(ctx, dir)
		assert.NoError(t, err)

		doc, err := yamldoc.Read(filepath.Join(dir, models.DocumentFile(models.TypeModuleStates)))
		assert.NoError(t, err)
		records, ok := doc[models.TypeModuleStates].([]any)
		assert.True(t, ok)
		assert.Len(t, records, 1)

		fields, ok := records[0].(map[string]any)
		assert.True(t, ok)
		assert.Equal(t, "sale", fields["name"])
		assert.Equal(t, "installed", fields["state"])
	})

	t.Run("Unwritable Output Path", func(t *testing.T) {
		s := newSeededStore(t)

		// A file where the directory should be
		dir := t.TempDir()
		blocked := filepath.Join(dir, "occupied")
		assert.NoError(t, yamldoc.Write(blocked+".yml", map[string]any{"x": 1}))

		_, err := NewExporter(s, zap.NewNop()).Export(ctx, blocked+".yml")
		assert.Error(t, err)
	})
}
