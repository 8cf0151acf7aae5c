package cmd

import (
	"config-manager/feature/snapshot"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	validateDatabase string
	validateSource   string
)

// validateCmd checks snapshot directory importability without importing.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration files without importing",
	Long: `Check that a snapshot directory is importable. Only the manifest is
mandatory; absent entity documents are reported as informational.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateDatabase, "database", "d", "", "Database name")
	validateCmd.Flags().StringVarP(&validateSource, "source", "s", "", "Source directory path")
	_ = validateCmd.MarkFlagRequired("database")
	_ = validateCmd.MarkFlagRequired("source")

	RootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	return runValidation(validateSource)
}

// validationResult builds the validator and runs the shallow presence check.
// The validator never touches the record store, so no database connection is
// opened even though the command accepts --database for interface parity.
func validationResult(source string, l *zap.Logger) *snapshot.ValidationResult {
	return snapshot.NewValidator(l).Validate(source)
}
