package cmd

import (
	"context"
	"fmt"

	"config-manager/core/storage"
	"config-manager/feature/snapshot"

	"github.com/spf13/cobra"
)

var (
	pushSource string
	pushPrefix string
)

// pushCmd uploads a snapshot directory to object storage.
var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Upload a snapshot directory to object storage",
	Long: `Upload every YAML document of a snapshot directory to the configured
bucket under a prefix, so another environment can pull and import it.

Examples:
  config-manager push --source ./snapshot --prefix releases/2026-08`,
	RunE: runPush,
}

func init() {
	pushCmd.Flags().StringVarP(&pushSource, "source", "s", "", "Snapshot directory to upload")
	pushCmd.Flags().StringVarP(&pushPrefix, "prefix", "p", "", "Object key prefix")
	_ = pushCmd.MarkFlagRequired("source")
	_ = pushCmd.MarkFlagRequired("prefix")

	RootCmd.AddCommand(pushCmd)
}

func runPush(cmd *cobra.Command, args []string) error {
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
	count, err := transfer.Push(context.Background(), pushSource, pushPrefix)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Pushed %d documents to %s/%s\n", count, cfg.Storage.Bucket, pushPrefix)
	return nil
}
