package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/gctb/internal/registry"
)

var testsCmd = &cobra.Command{
	Use:   "tests",
	Short: "List the available tests and their timing",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		tests, err := cfg.Tests()
		if err != nil {
			return err
		}
		printTests(cmd, tests)
		return nil
	},
}

func printTests(cmd *cobra.Command, tests []registry.TestConfig) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%-8s  %-18s  %8s  %4s  %6s  %s\n",
		"ID", "Title", "Practice", "Exam", "Limit", "Phases")
	fmt.Fprintln(out, strings.Repeat("─", 80))

	for _, t := range tests {
		phases := make([]string, len(t.Phases))
		for i, p := range t.Phases {
			phases[i] = fmt.Sprintf("%s %s", p.Name, p.Duration.Round(100*time.Millisecond))
		}
		fmt.Fprintf(out, "%-8s  %-18s  %8d  %4d  %6s  %s\n",
			t.ID, t.Title, t.PracticeCount, t.ExamCount, t.TimeLimit, strings.Join(phases, ", "))
	}

	fmt.Fprintf(out, "\n%d tests\n", len(tests))
}
