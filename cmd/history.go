package cmd

import (
	"errors"
	"fmt"
	"time"

	"progress-tracker/core/database"
	"progress-tracker/core/output"
	"progress-tracker/feature/history"

	"github.com/spf13/cobra"
)

var historyLimit int

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent sync runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadCLI()
		if err != nil {
			return err
		}
		defer logg.Sync()

		if !cfg.Database.Enabled {
			return errors.New("run history is disabled (database.enabled=false)")
		}
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return err
		}

		store := history.NewStore(db)
		if err := store.Migrate(cmd.Context()); err != nil {
			return err
		}
		runs, err := store.List(cmd.Context(), historyLimit)
		if err != nil {
			return err
		}

		if jsonOutput {
			return output.JSON(runs)
		}
		if len(runs) == 0 {
			output.Info(output.Subtle("No sync runs recorded"))
			return nil
		}
		for _, r := range runs {
			fmt.Printf("%s  %-13s %8s  %s\n",
				r.StartedAt.Local().Format("2006-01-02 15:04:05"),
				r.Trigger,
				r.Duration().Round(100*time.Millisecond),
				output.FormatSummary(r.Summary),
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", history.DefaultLimit, "Maximum number of runs to show")
	RootCmd.AddCommand(historyCmd)
}
