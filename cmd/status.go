package cmd

import (
	"fmt"
	"time"

	"progress-tracker/core/output"
	"progress-tracker/core/rpc"
	"progress-tracker/feature/libsync"

	"github.com/spf13/cobra"
)

var watchStatus bool

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the backend sync status",
	Long: `Polls the backend for sync progress. With --watch it keeps polling,
fast while a sync is running and slowly otherwise, until interrupted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadCLI()
		if err != nil {
			return err
		}
		defer logg.Sync()

		ctx := cmd.Context()
		reconciler := libsync.NewReconciler(rpc.NewBackend(rpc.NewHTTPCaller(cfg.RPC)), libsync.ReconcilerConfig{
			ActiveInterval: cfg.Sync.PollActive(),
			IdleInterval:   cfg.Sync.PollIdle(),
			MessageTTL:     cfg.Sync.MessageTTL(),
		}, logg)
		width := output.TerminalWidth(80)
		tty := output.IsTerminal() && !jsonOutput

		for {
			if err := reconciler.Poll(ctx); err != nil && !watchStatus {
				return fmt.Errorf("failed to get sync progress: %w", err)
			}
			st := reconciler.Status()

			switch {
			case jsonOutput:
				if err := output.JSON(st); err != nil {
					return err
				}
			case tty && watchStatus:
				fmt.Print("\r\033[K" + renderStatus(st, width))
			default:
				fmt.Println(renderStatus(st, width))
			}

			if !watchStatus {
				return nil
			}

			t := time.NewTimer(reconciler.Interval())
			select {
			case <-ctx.Done():
				t.Stop()
				if tty {
					fmt.Println()
				}
				return nil
			case <-t.C:
			}
		}
	},
}

func renderStatus(st libsync.Status, width int) string {
	if st.LastError != "" && !st.Syncing {
		return output.Subtle("Backend unreachable: " + st.LastError)
	}
	if st.Syncing {
		return output.ProgressLine(st.Current, st.Total, st.Message, width)
	}
	if st.Message != "" {
		return st.Message
	}
	return output.Subtle("Idle")
}

func init() {
	statusCmd.Flags().BoolVarP(&watchStatus, "watch", "w", false, "Keep polling until interrupted")
	RootCmd.AddCommand(statusCmd)
}
