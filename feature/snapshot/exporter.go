package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"config-manager/core/store"
	"config-manager/core/utils"
	"config-manager/core/yamldoc"
	"config-manager/feature/snapshot/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultVersion is reported in the manifest when the instance records no
// version parameter.
const DefaultVersion = "18.0"

// Exporter projects live records into snapshot documents.
// Each projection is a pure read; the only write an export ever performs is
// seeding the database.uuid parameter when the instance has none.
type Exporter struct {
	store  store.Store
	logger *zap.Logger
}

// NewExporter creates an exporter bound to a record store.
func NewExporter(s store.Store, l *zap.Logger) *Exporter {
	return &Exporter{store: s, logger: l}
}

// ExportResult summarizes a successful export run.
type ExportResult struct {
	ExportedTypes int    `json:"exported_types"`
	TotalRecords  int    `json:"total_records"`
	OutputPath    string `json:"output_path"`
}

// Export writes one document per entity type plus a manifest into outputPath.
// A failure in any single projection or file write aborts the whole export.
func (e *Exporter) Export(ctx context.Context, outputPath string) (*ExportResult, error) {
	if err := ensureWritable(outputPath); err != nil {
		return nil, fmt.Errorf("output path not writable: %w", err)
	}

	params, err := e.exportParameters(ctx)
	if err != nil {
		return nil, fmt.Errorf("export config parameters: %w", err)
	}
	sequences, err := e.exportSequences(ctx)
	if err != nil {
		return nil, fmt.Errorf("export sequences: %w", err)
	}
	groups, err := e.exportGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("export user groups: %w", err)
	}
	externalIDs, err := e.exportExternalIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("export external ids: %w", err)
	}
	moduleStates, err := e.exportModuleStates(ctx)
	if err != nil {
		return nil, fmt.Errorf("export module states: %w", err)
	}

	documents := []struct {
		configType string
		records    any
		count      int
	}{
		{models.TypeConfigParameters, params, len(params)},
		{models.TypeSequences, sequences, len(sequences)},
		{models.TypeUserGroups, groups, len(groups)},
		{models.TypeExternalIDs, externalIDs, len(externalIDs)},
		{models.TypeModuleStates, moduleStates, len(moduleStates)},
	}

	total := 0
	types := make([]string, 0, len(documents))
	for _, doc := range documents {
		path := filepath.Join(outputPath, models.DocumentFile(doc.configType))
		if err := yamldoc.Write(path, map[string]any{doc.configType: doc.records}); err != nil {
			return nil, fmt.Errorf("write %s: %w", doc.configType, err)
		}
		e.logger.Info("Exported config type",
			zap.String("config_type", doc.configType),
			zap.Int("records", doc.count),
		)
		total += doc.count
		types = append(types, doc.configType)
	}

	manifest := models.Manifest{
		ExportDate:   time.Now().Format(time.RFC3339),
		Version:      e.instanceVersion(ctx),
		DatabaseUUID: e.databaseUUID(ctx),
		ConfigTypes:  types,
		TotalRecords: total,
	}
	manifestDoc := map[string]any{
		"export_date":   manifest.ExportDate,
		"odoo_version":  manifest.Version,
		"database_uuid": manifest.DatabaseUUID,
		"config_types":  manifest.ConfigTypes,
		"total_records": manifest.TotalRecords,
	}
	if err := yamldoc.Write(filepath.Join(outputPath, models.ManifestFile), manifestDoc); err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}

	e.logger.Info("Export completed",
		zap.Int("config_types", len(documents)),
		zap.Int("total_records", total),
		zap.String("output_path", outputPath),
	)

	return &ExportResult{
		ExportedTypes: len(documents),
		TotalRecords:  total,
		OutputPath:    outputPath,
	}, nil
}

func (e *Exporter) exportParameters(ctx context.Context) ([]models.ConfigParameter, error) {
	records, err := e.store.Find(ctx, models.CollectionParameters, nil)
	if err != nil {
		return nil, err
	}
	out := make([]models.ConfigParameter, 0, len(records))
	for _, rec := range records {
		out = append(out, models.ConfigParameter{
			Key:   utils.ToString(rec.Fields["key"]),
			Value: utils.ToString(rec.Fields["value"]),
		})
	}
	return out, nil
}

func (e *Exporter) exportSequences(ctx context.Context) ([]models.Sequence, error) {
	records, err := e.store.Find(ctx, models.CollectionSequences, nil)
	if err != nil {
		return nil, err
	}
	out := make([]models.Sequence, 0, len(records))
	for _, rec := range records {
		out = append(out, models.Sequence{
			Name:            utils.ToString(rec.Fields["name"]),
			Code:            utils.ToString(rec.Fields["code"]),
			Prefix:          utils.ToString(rec.Fields["prefix"]),
			Suffix:          utils.ToString(rec.Fields["suffix"]),
			Padding:         utils.ToInt(rec.Fields["padding"]),
			NumberNext:      utils.ToInt(rec.Fields["number_next"]),
			NumberIncrement: utils.ToInt(rec.Fields["number_increment"]),
			Active:          utils.ToBool(rec.Fields["active"]),
		})
	}
	return out, nil
}

// exportGroups projects groups with their category name, member logins, and
// implied groups resolved to qualified external identifiers. An implied group
// without a mapping is silently omitted; that reference is simply not
// portable.
func (e *Exporter) exportGroups(ctx context.Context) ([]models.UserGroup, error) {
	records, err := e.store.Find(ctx, models.CollectionGroups, nil)
	if err != nil {
		return nil, err
	}

	out := make([]models.UserGroup, 0, len(records))
	for _, rec := range records {
		group := models.UserGroup{
			Name:       utils.ToString(rec.Fields["name"]),
			ImpliedIDs: []string{},
			Users:      []string{},
		}

		if catID := utils.ToInt64(rec.Fields["category_id"]); catID != 0 {
			categories, err := e.store.Find(ctx, models.CollectionCategories, store.Fields{"id": catID})
			if err != nil {
				return nil, err
			}
			if len(categories) > 0 {
				name := utils.ToString(categories[0].Fields["complete_name"])
				group.CategoryID = &name
			}
		}

		memberships, err := e.store.Find(ctx, models.CollectionGroupUsers, store.Fields{"gid": rec.ID})
		if err != nil {
			return nil, err
		}
		for _, m := range memberships {
			users, err := e.store.Find(ctx, models.CollectionUsers, store.Fields{"id": utils.ToInt64(m.Fields["uid"])})
			if err != nil {
				return nil, err
			}
			if len(users) > 0 {
				group.Users = append(group.Users, utils.ToString(users[0].Fields["login"]))
			}
		}

		implied, err := e.store.Find(ctx, models.CollectionGroupImplied, store.Fields{"gid": rec.ID})
		if err != nil {
			return nil, err
		}
		for _, imp := range implied {
			qualified, err := e.qualifiedID(ctx, "res.groups", utils.ToInt64(imp.Fields["hid"]))
			if err != nil {
				return nil, err
			}
			if qualified != "" {
				group.ImpliedIDs = append(group.ImpliedIDs, qualified)
			}
		}

		out = append(out, group)
	}
	return out, nil
}

func (e *Exporter) exportExternalIDs(ctx context.Context) ([]models.ExternalID, error) {
	records, err := e.store.Find(ctx, models.CollectionModelData, nil)
	if err != nil {
		return nil, err
	}
	out := make([]models.ExternalID, 0, len(records))
	for _, rec := range records {
		out = append(out, models.ExternalID{
			Module:   utils.ToString(rec.Fields["module"]),
			Name:     utils.ToString(rec.Fields["name"]),
			Model:    utils.ToString(rec.Fields["model"]),
			ResID:    utils.ToInt(rec.Fields["res_id"]),
			NoUpdate: utils.ToBool(rec.Fields["noupdate"]),
		})
	}
	return out, nil
}

func (e *Exporter) exportModuleStates(ctx context.Context) ([]models.ModuleState, error) {
	records, err := e.store.Find(ctx, models.CollectionModules, nil)
	if err != nil {
		return nil, err
	}
	out := make([]models.ModuleState, 0, len(records))
	for _, rec := range records {
		state := utils.ToString(rec.Fields["state"])
		if !models.ReplayableStates[state] {
			continue
		}
		out = append(out, models.ModuleState{
			Name:        utils.ToString(rec.Fields["name"]),
			State:       state,
			AutoInstall: utils.ToBool(rec.Fields["auto_install"]),
			Sequence:    utils.ToInt(rec.Fields["sequence"]),
		})
	}
	return out, nil
}

// qualifiedID resolves a live record to its portable module.name identifier.
// An empty result means no mapping exists; that is a normal outcome.
func (e *Exporter) qualifiedID(ctx context.Context, model string, resID int64) (string, error) {
	mappings, err := e.store.Find(ctx, models.CollectionModelData, store.Fields{
		"model":  model,
		"res_id": resID,
	})
	if err != nil {
		return "", err
	}
	if len(mappings) == 0 {
		return "", nil
	}
	return utils.ToString(mappings[0].Fields["module"]) + "." + utils.ToString(mappings[0].Fields["name"]), nil
}

// instanceVersion reads the recorded version parameter, falling back to the
// default when the instance has none.
func (e *Exporter) instanceVersion(ctx context.Context) string {
	records, err := e.store.Find(ctx, models.CollectionParameters, store.Fields{"key": "system.version"})
	if err != nil || len(records) == 0 {
		return DefaultVersion
	}
	if v := utils.ToString(records[0].Fields["value"]); v != "" {
		return v
	}
	return DefaultVersion
}

// databaseUUID reads the instance uuid parameter, generating and persisting
// one when absent so subsequent exports are stable.
func (e *Exporter) databaseUUID(ctx context.Context) string {
	records, err := e.store.Find(ctx, models.CollectionParameters, store.Fields{"key": "database.uuid"})
	if err != nil {
		return ""
	}
	if len(records) > 0 {
		return utils.ToString(records[0].Fields["value"])
	}

	id := uuid.NewString()
	if _, err := e.store.Create(ctx, models.CollectionParameters, store.Fields{
		"key":   "database.uuid",
		"value": id,
	}); err != nil {
		e.logger.Warn("Failed to persist generated database uuid", zap.Error(err))
	}
	return id
}

// ensureWritable verifies the directory exists (creating it if needed) and
// accepts a probe file.
func ensureWritable(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return err
	}
	probe := filepath.Join(path, ".write_probe")
	if err := os.WriteFile(probe, []byte("probe"), 0o644); err != nil {
		return err
	}
	return os.Remove(probe)
}
