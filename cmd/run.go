package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/gctb/internal/app"
	"github.com/abhisek/gctb/internal/logging"
)

// runApp loads config, opens the log and launches the TUI. slug, when set,
// opens that test directly.
func runApp(cmd *cobra.Command, slug string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.Open(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	tests, err := cfg.Tests()
	if err != nil {
		return err
	}

	logger.Info("starting", "version", version, "config", cfg.Path, "test", slug)
	if err := app.Run(app.Options{
		Logger:      logger,
		Tests:       tests,
		InitialTest: slug,
		Splash:      true,
	}); err != nil {
		logger.Error("program exited with error", "error", err)
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
