package cmd

import (
	"errors"
	"fmt"

	"progress-tracker/core/library"
	"progress-tracker/core/output"
	"progress-tracker/feature/libsync"

	"github.com/spf13/cobra"
)

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync the whole library",
	Long: `Discovers every owned game and submits playtime and achievement progress
to the backend one game at a time, printing progress as it goes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadCLI()
		if err != nil {
			return err
		}
		defer logg.Sync()

		c := buildComponents(cmd.Context(), cfg, logg)

		tty := output.IsTerminal() && !jsonOutput
		width := output.TerminalWidth(80)
		onProgress := func(current, total int, name string) {
			if jsonOutput {
				return
			}
			line := output.ProgressLine(current, total, name, width)
			if tty {
				fmt.Print("\r\033[K" + line)
			} else {
				fmt.Println(line)
			}
		}

		summary := c.service.Sync(cmd.Context(), libsync.TriggerCLI, onProgress)
		if tty && summary.Total > 0 {
			fmt.Println()
		}

		if jsonOutput {
			if err := output.JSON(summary); err != nil {
				return err
			}
		} else {
			fmt.Println(output.FormatSummary(summary))
		}

		if !summary.Success {
			return errors.New(summary.Error)
		}
		return nil
	},
}

// syncGameCmd represents the sync game command
var syncGameCmd = &cobra.Command{
	Use:   "game <appid>",
	Short: "Sync a single game",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appid, ok := library.ParseAppID(args[0])
		if !ok {
			return fmt.Errorf("invalid appid %q", args[0])
		}

		cfg, logg, err := loadCLI()
		if err != nil {
			return err
		}
		defer logg.Sync()

		c := buildComponents(cmd.Context(), cfg, logg)
		res := c.service.SyncGame(cmd.Context(), appid, libsync.TriggerCLI)

		if jsonOutput {
			if err := output.JSON(res); err != nil {
				return err
			}
		} else if res.Success {
			output.Success("Synced game %s", appid)
		}

		if !res.Success {
			return fmt.Errorf("failed to sync game %s: %s", appid, res.Error)
		}
		return nil
	},
}

func init() {
	syncCmd.AddCommand(syncGameCmd)
	RootCmd.AddCommand(syncCmd)
}
