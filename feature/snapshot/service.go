package snapshot

import (
	"context"
	"fmt"

	"config-manager/core/store"

	"go.uber.org/zap"
)

// Service is the single entry point for snapshot operations. The CLI and the
// HTTP handler both go through it. It owns no reconciliation logic of its
// own; it wires the exporter, importer, and validator to one record store and
// normalizes their failures.
type Service struct {
	store  store.Store
	logger *zap.Logger
}

// NewService creates a service bound to a record store.
func NewService(s store.Store, l *zap.Logger) *Service {
	return &Service{store: s, logger: l}
}

// Export snapshots the live configuration into targetPath.
func (s *Service) Export(ctx context.Context, targetPath string) (*ExportResult, error) {
	s.logger.Info("Starting configuration export", zap.String("target_path", targetPath))
	result, err := NewExporter(s.store, s.logger).Export(ctx, targetPath)
	if err != nil {
		return nil, fmt.Errorf("configuration export failed: %w", err)
	}
	return result, nil
}

// ImportAll reconciles the snapshot at sourcePath into the live instance.
// On a type-level failure the returned result still carries the counts
// applied before the failing type.
func (s *Service) ImportAll(ctx context.Context, sourcePath string) (*ImportResult, error) {
	s.logger.Info("Starting configuration import", zap.String("source_path", sourcePath))
	result, err := NewImporter(s.store, s.logger).ImportAll(ctx, sourcePath)
	if err != nil {
		return result, fmt.Errorf("configuration import failed: %w", err)
	}
	return result, nil
}

// Validate checks snapshot directory importability without touching the
// record store.
func (s *Service) Validate(sourcePath string) *ValidationResult {
	return NewValidator(s.logger).Validate(sourcePath)
}
