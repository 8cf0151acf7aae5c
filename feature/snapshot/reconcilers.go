package snapshot

import (
	"context"

	"config-manager/core/store"
	"config-manager/core/utils"
	"config-manager/feature/snapshot/models"

	"go.uber.org/zap"
)

// typeReconciler applies one entity type's records to the record store.
// The importer iterates a fixed ordered list of these; adding a type means
// one new implementation and one position in that list.
type typeReconciler interface {
	// ConfigType returns the entity type name this reconciler handles.
	ConfigType() string
	// Reconcile applies records and returns how many were applied.
	// A failing record is logged and skipped; a returned error aborts the
	// whole import at this type.
	Reconcile(ctx context.Context, records []any) (int, error)
}

// recordFields coerces one raw document entry into a field mapping.
func recordFields(raw any) (map[string]any, bool) {
	fields, ok := raw.(map[string]any)
	return fields, ok
}

// parameterReconciler upserts config parameters by key. Fully idempotent.
type parameterReconciler struct {
	store  store.Store
	logger *zap.Logger
}

func (r *parameterReconciler) ConfigType() string { return models.TypeConfigParameters }

func (r *parameterReconciler) Reconcile(ctx context.Context, records []any) (int, error) {
	applied := 0
	for _, raw := range records {
		fields, ok := recordFields(raw)
		if !ok {
			r.logger.Warn("Skipping malformed config parameter record")
			continue
		}
		key := utils.ToString(fields["key"])
		if key == "" {
			r.logger.Warn("Skipping config parameter without key")
			continue
		}
		value := utils.ToString(fields["value"])

		existing, err := r.store.Find(ctx, models.CollectionParameters, store.Fields{"key": key})
		if err != nil {
			r.logger.Warn("Failed to import config parameter", zap.String("key", key), zap.Error(err))
			continue
		}

		if len(existing) > 0 {
			err = r.store.Update(ctx, models.CollectionParameters, existing[0].ID, store.Fields{"value": value})
		} else {
			_, err = r.store.Create(ctx, models.CollectionParameters, store.Fields{"key": key, "value": value})
		}
		if err != nil {
			r.logger.Warn("Failed to import config parameter", zap.String("key", key), zap.Error(err))
			continue
		}
		applied++
	}
	return applied, nil
}

// groupReconciler creates missing groups with only the name populated.
// Existing groups are never mutated: membership and implication wiring on a
// live instance must not be clobbered by a snapshot, so import trades group
// relationships for guaranteed forward progress.
type groupReconciler struct {
	store  store.Store
	logger *zap.Logger
}

func (r *groupReconciler) ConfigType() string { return models.TypeUserGroups }

func (r *groupReconciler) Reconcile(ctx context.Context, records []any) (int, error) {
	applied := 0
	for _, raw := range records {
		fields, ok := recordFields(raw)
		if !ok {
			r.logger.Warn("Skipping malformed user group record")
			continue
		}
		name := utils.ToString(fields["name"])
		if name == "" {
			r.logger.Warn("Skipping user group without name")
			continue
		}

		existing, err := r.store.Find(ctx, models.CollectionGroups, store.Fields{"name": name})
		if err != nil {
			r.logger.Warn("Failed to import user group", zap.String("name", name), zap.Error(err))
			continue
		}
		if len(existing) > 0 {
			continue
		}

		if _, err := r.store.Create(ctx, models.CollectionGroups, store.Fields{"name": name}); err != nil {
			r.logger.Warn("Failed to import user group", zap.String("name", name), zap.Error(err))
			continue
		}
		applied++
	}
	return applied, nil
}

// sequenceReconciler upserts sequences by code. Updates deliberately leave
// number_next alone: the live counter is authoritative and re-importing an
// old snapshot must never roll it back. Creates seed the counter as given.
type sequenceReconciler struct {
	store  store.Store
	logger *zap.Logger
}

func (r *sequenceReconciler) ConfigType() string { return models.TypeSequences }

func (r *sequenceReconciler) Reconcile(ctx context.Context, records []any) (int, error) {
	applied := 0
	for _, raw := range records {
		fields, ok := recordFields(raw)
		if !ok {
			r.logger.Warn("Skipping malformed sequence record")
			continue
		}
		code := utils.ToString(fields["code"])
		if code == "" {
			r.logger.Warn("Skipping sequence without code")
			continue
		}

		seqFields := store.Fields{
			"name":             utils.ToString(fields["name"]),
			"code":             code,
			"prefix":           utils.ToString(fields["prefix"]),
			"suffix":           utils.ToString(fields["suffix"]),
			"padding":          utils.ToInt(fields["padding"]),
			"number_next":      utils.ToInt(fields["number_next"]),
			"number_increment": utils.ToInt(fields["number_increment"]),
			"active":           utils.ToBool(fields["active"]),
		}

		existing, err := r.store.Find(ctx, models.CollectionSequences, store.Fields{"code": code})
		if err != nil {
			r.logger.Warn("Failed to import sequence", zap.String("code", code), zap.Error(err))
			continue
		}

		if len(existing) > 0 {
			delete(seqFields, "number_next")
			err = r.store.Update(ctx, models.CollectionSequences, existing[0].ID, seqFields)
		} else {
			_, err = r.store.Create(ctx, models.CollectionSequences, seqFields)
		}
		if err != nil {
			r.logger.Warn("Failed to import sequence", zap.String("code", code), zap.Error(err))
			continue
		}
		applied++
	}
	return applied, nil
}

// moduleStateReconciler is observational only: it compares snapshot states
// against the live instance and logs drift, but never creates or writes.
// Changing installation state requires dependency management far beyond a
// configuration import.
type moduleStateReconciler struct {
	store  store.Store
	logger *zap.Logger
}

func (r *moduleStateReconciler) ConfigType() string { return models.TypeModuleStates }

func (r *moduleStateReconciler) Reconcile(ctx context.Context, records []any) (int, error) {
	compared := 0
	for _, raw := range records {
		fields, ok := recordFields(raw)
		if !ok {
			r.logger.Warn("Skipping malformed module state record")
			continue
		}
		name := utils.ToString(fields["name"])
		if name == "" {
			r.logger.Warn("Skipping module state without name")
			continue
		}

		existing, err := r.store.Find(ctx, models.CollectionModules, store.Fields{"name": name})
		if err != nil {
			r.logger.Warn("Failed to check module", zap.String("module", name), zap.Error(err))
			continue
		}
		if len(existing) == 0 {
			r.logger.Warn("Module not present in target", zap.String("module", name))
			continue
		}

		current := utils.ToString(existing[0].Fields["state"])
		target := utils.ToString(fields["state"])
		if current != target {
			r.logger.Info("Module state drift",
				zap.String("module", name),
				zap.String("current", current),
				zap.String("target", target),
			)
		}
		compared++
	}
	return compared, nil
}

// externalIDReconciler upserts identifier bindings by (module, name),
// overwriting every field. Bindings have no protected fields; they are
// expected to be fully snapshot-controlled.
type externalIDReconciler struct {
	store  store.Store
	logger *zap.Logger
}

func (r *externalIDReconciler) ConfigType() string { return models.TypeExternalIDs }

func (r *externalIDReconciler) Reconcile(ctx context.Context, records []any) (int, error) {
	applied := 0
	for _, raw := range records {
		fields, ok := recordFields(raw)
		if !ok {
			r.logger.Warn("Skipping malformed external id record")
			continue
		}
		module := utils.ToString(fields["module"])
		name := utils.ToString(fields["name"])
		if module == "" || name == "" {
			r.logger.Warn("Skipping external id without module or name")
			continue
		}

		idFields := store.Fields{
			"module":   module,
			"name":     name,
			"model":    utils.ToString(fields["model"]),
			"res_id":   utils.ToInt(fields["res_id"]),
			"noupdate": utils.ToBool(fields["noupdate"]),
		}

		existing, err := r.store.Find(ctx, models.CollectionModelData, store.Fields{"module": module, "name": name})
		if err != nil {
			r.logger.Warn("Failed to import external id",
				zap.String("external_id", module+"."+name), zap.Error(err))
			continue
		}

		if len(existing) > 0 {
			err = r.store.Update(ctx, models.CollectionModelData, existing[0].ID, idFields)
		} else {
			_, err = r.store.Create(ctx, models.CollectionModelData, idFields)
		}
		if err != nil {
			r.logger.Warn("Failed to import external id",
				zap.String("external_id", module+"."+name), zap.Error(err))
			continue
		}
		applied++
	}
	return applied, nil
}
