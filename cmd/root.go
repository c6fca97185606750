package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"progress-tracker/core/config"
	"progress-tracker/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configDir  string
	jsonOutput bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "progress-tracker",
	Short: "Game progress tracker bridge",
	Long: `Progress Tracker keeps the backend's view of your game library in sync.
It collects playtime and achievement progress for every owned game and
submits it one game at a time, reporting progress as it goes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := RootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		// Console format with ISO8601 timestamps reads best on a terminal
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

// loadCLI loads configuration and a logger for one-shot commands.
// Only warnings and errors are logged unless the configured level is debug.
func loadCLI() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logCfg := cfg.Log
	if logCfg.Level != "debug" {
		logCfg.Level = "warn"
	}
	logCfg.Format = "console"

	logg, err := logger.New(&logCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, logg, nil
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config", ".", "Directory containing the .env file")
	RootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print results as JSON")
}
