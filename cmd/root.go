package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/gctb/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "gctb",
	Short: "Practice timed cognitive tests in the terminal",
	Long: "gctb runs timed practice versions of five aptitude tests: numerical comparison, " +
		"spatial recall, word recall, reasoning and error spotting.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		slug, _ := cmd.Flags().GetString("test")
		return runApp(cmd, slug)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides GCTB_CONFIG env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides GCTB_LOG_LEVEL)")
	rootCmd.PersistentFlags().String("log-file", "", `Log file path, or "default" for the XDG state dir (overrides GCTB_LOG_FILE)`)
	rootCmd.Flags().String("test", "", "Open this test's intro on launch (e.g. arith)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(testsCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves the config file using --config (highest priority),
// then GCTB_CONFIG, then the default XDG path, and applies the log flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.ResolvePath(path))
	if err != nil {
		return config.Config{}, err
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v, _ := cmd.Flags().GetString("log-file"); v != "" {
		cfg.LogFile = v
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
