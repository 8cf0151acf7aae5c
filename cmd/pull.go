package cmd

import (
	"context"
	"fmt"

	"config-manager/core/storage"
	"config-manager/feature/snapshot"

	"github.com/spf13/cobra"
)

var (
	pullOutput string
	pullPrefix string
)

// pullCmd downloads a snapshot from object storage into a local directory.
var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Download a snapshot from object storage",
	Long: `Download every document under a prefix of the configured bucket into
a local directory, ready for validate or import.

Examples:
  config-manager pull --prefix releases/2026-08 --output ./snapshot`,
	RunE: runPull,
}

func init() {
	pullCmd.Flags().StringVarP(&pullOutput, "output", "o", "", "Target directory")
	pullCmd.Flags().StringVarP(&pullPrefix, "prefix", "p", "", "Object key prefix")
	_ = pullCmd.MarkFlagRequired("output")
	_ = pullCmd.MarkFlagRequired("prefix")

	RootCmd.AddCommand(pullCmd)
}

func runPull(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	l, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer l.Sync()

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	transfer := snapshot.NewTransfer(client, cfg.Storage.Bucket, l)
	count, err := transfer.Pull(context.Background(), pullPrefix, pullOutput)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Pulled %d documents into %s\n", count, pullOutput)
	return nil
}
