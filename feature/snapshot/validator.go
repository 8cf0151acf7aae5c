package snapshot

import (
	"fmt"
	"path/filepath"

	"config-manager/core/yamldoc"
	"config-manager/feature/snapshot/models"

	"go.uber.org/zap"
)

// Validator checks whether a snapshot directory is importable.
// The check is deliberately shallow: it verifies file presence only, never
// document structure, and it never touches the record store. Structural
// problems surface during import, where a malformed document degrades to zero
// records or a per-record skip.
type Validator struct {
	logger *zap.Logger
}

// NewValidator creates a validator.
func NewValidator(l *zap.Logger) *Validator {
	return &Validator{logger: l}
}

// ValidationResult reports importability. MissingOptional is informational;
// absent entity documents are legal partial snapshots.
type ValidationResult struct {
	Valid           bool     `json:"valid"`
	Message         string   `json:"message"`
	MissingOptional []string `json:"missing_optional,omitempty"`
}

// Validate inspects sourcePath. Exactly one document is mandatory: the
// manifest. All five entity documents are optional.
func (v *Validator) Validate(sourcePath string) *ValidationResult {
	if !yamldoc.Exists(filepath.Join(sourcePath, models.ManifestFile)) {
		v.logger.Warn("Snapshot directory not importable",
			zap.String("source_path", sourcePath),
			zap.String("missing", models.ManifestFile),
		)
		return &ValidationResult{
			Valid:   false,
			Message: fmt.Sprintf("required file missing: %s", models.ManifestFile),
		}
	}

	var missing []string
	for _, configType := range models.ImportOrder {
		file := models.DocumentFile(configType)
		if !yamldoc.Exists(filepath.Join(sourcePath, file)) {
			missing = append(missing, file)
		}
	}

	return &ValidationResult{
		Valid:           true,
		Message:         "import path is valid",
		MissingOptional: missing,
	}
}
