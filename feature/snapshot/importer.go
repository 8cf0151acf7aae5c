package snapshot

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"config-manager/core/store"
	"config-manager/core/yamldoc"
	"config-manager/feature/snapshot/models"

	"go.uber.org/zap"
)

// ErrMissingManifest is returned when the source directory has no parseable
// manifest. Nothing is read from the record store in that case.
var ErrMissingManifest = errors.New("missing or invalid manifest")

// Importer reads a snapshot directory and reconciles it into the record store.
//
// Entity types are processed in models.ImportOrder. Failures are handled on
// two levels: a failing record is logged and skipped without stopping its
// type, while a failing type (unreadable document, malformed structure)
// aborts the remaining import.
type Importer struct {
	store  store.Store
	logger *zap.Logger
}

// NewImporter creates an importer bound to a record store.
func NewImporter(s store.Store, l *zap.Logger) *Importer {
	return &Importer{store: s, logger: l}
}

// ImportResult summarizes an import run. On failure, FailedType names the
// entity type that aborted the run and the counts cover the types fully
// applied before it.
type ImportResult struct {
	ImportedTypes int    `json:"imported_types"`
	TotalRecords  int    `json:"total_records"`
	FailedType    string `json:"failed_type,omitempty"`
}

// ImportAll applies every entity document found in sourcePath.
// The manifest must exist and parse to a non-empty mapping; missing entity
// documents count as zero records, which allows partial snapshots.
func (i *Importer) ImportAll(ctx context.Context, sourcePath string) (*ImportResult, error) {
	manifest, err := yamldoc.Read(filepath.Join(sourcePath, models.ManifestFile))
	if err != nil || len(manifest) == 0 {
		if err != nil {
			i.logger.Error("Manifest unreadable", zap.Error(err))
		}
		return nil, ErrMissingManifest
	}

	order := []typeReconciler{
		&parameterReconciler{store: i.store, logger: i.logger},
		&groupReconciler{store: i.store, logger: i.logger},
		&sequenceReconciler{store: i.store, logger: i.logger},
		&moduleStateReconciler{store: i.store, logger: i.logger},
		&externalIDReconciler{store: i.store, logger: i.logger},
	}

	result := &ImportResult{}
	for _, rec := range order {
		applied, err := i.importType(ctx, rec, sourcePath)
		if err != nil {
			result.FailedType = rec.ConfigType()
			i.logger.Error("Import aborted",
				zap.String("config_type", rec.ConfigType()),
				zap.Int("applied_before_failure", result.TotalRecords),
				zap.Error(err),
			)
			return result, fmt.Errorf("import %s: %w", rec.ConfigType(), err)
		}
		result.ImportedTypes++
		result.TotalRecords += applied
	}

	i.logger.Info("Imported all config types",
		zap.Int("config_types", result.ImportedTypes),
		zap.Int("total_records", result.TotalRecords),
	)
	return result, nil
}

// importType applies one entity type's document. A missing document is zero
// records, not an error.
func (i *Importer) importType(ctx context.Context, rec typeReconciler, sourcePath string) (int, error) {
	path := filepath.Join(sourcePath, models.DocumentFile(rec.ConfigType()))
	if !yamldoc.Exists(path) {
		i.logger.Info("Document absent, skipping",
			zap.String("config_type", rec.ConfigType()),
		)
		return 0, nil
	}

	doc, err := yamldoc.Read(path)
	if err != nil {
		return 0, err
	}

	records, _ := doc[rec.ConfigType()].([]any)
	applied, err := rec.Reconcile(ctx, records)
	if err != nil {
		return 0, err
	}

	i.logger.Info("Reconciled config type",
		zap.String("config_type", rec.ConfigType()),
		zap.Int("applied", applied),
	)
	return applied, nil
}
