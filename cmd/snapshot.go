package cmd

import (
	"errors"
	"fmt"

	"progress-tracker/core/output"
	"progress-tracker/core/storage"
	"progress-tracker/feature/hostcache"

	"github.com/spf13/cobra"
)

// snapshotCmd represents the snapshot command
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Work with captured host cache snapshots",
}

var snapshotInspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Show what a snapshot file contains",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := hostcache.LoadFile(args[0])
		if err != nil {
			return err
		}
		stats := snap.Stats()
		if jsonOutput {
			return output.JSON(stats)
		}

		fmt.Println(output.Title("Snapshot " + args[0]))
		if !stats.CapturedAt.IsZero() {
			fmt.Printf("  Captured:     %s\n", stats.CapturedAt.Local().Format("2006-01-02 15:04:05"))
		}
		fmt.Printf("  Apps:         %d\n", stats.Apps)
		fmt.Printf("  Collections:  %d\n", stats.Collections)
		fmt.Printf("  App map keys: %d\n", stats.AppMapKeys)
		fmt.Printf("  Overviews:    %d\n", stats.Overviews)
		fmt.Printf("  Achievements: %d\n", stats.Achievements)
		return nil
	},
}

var snapshotPushCmd = &cobra.Command{
	Use:   "push <file>",
	Short: "Upload a snapshot file to object storage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadCLI()
		if err != nil {
			return err
		}
		defer logg.Sync()

		if !cfg.Storage.Enabled {
			return errors.New("object storage is disabled (storage.enabled=false)")
		}
		snap, err := hostcache.LoadFile(args[0])
		if err != nil {
			return err
		}

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return err
		}
		if err := storage.EnsureBucket(cmd.Context(), client, cfg.Storage.Bucket); err != nil {
			return err
		}

		store := hostcache.NewStore(logg).WithObjectStore(client, cfg.Storage.Bucket, cfg.Storage.SnapshotObject)
		store.Replace(snap)
		if err := store.Persist(cmd.Context()); err != nil {
			return err
		}
		output.Success("Uploaded %d apps to %s/%s", snap.Stats().Apps, cfg.Storage.Bucket, cfg.Storage.SnapshotObject)
		return nil
	},
}

func init() {
	snapshotCmd.AddCommand(snapshotInspectCmd, snapshotPushCmd)
	RootCmd.AddCommand(snapshotCmd)
}
