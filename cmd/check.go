package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/gctb/internal/itemgen"
	"github.com/abhisek/gctb/internal/registry"
)

// maxReported caps the violations printed per test.
const maxReported = 5

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Sweep seeds through every test generator and validate the answer keys",
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("test", "", "Only check this test ID")
	checkCmd.Flags().Uint32("start", 1, "First seed")
	checkCmd.Flags().Int("seeds", 500, "Number of consecutive seeds")
}

func runCheck(cmd *cobra.Command, args []string) error {
	slug, _ := cmd.Flags().GetString("test")
	start, _ := cmd.Flags().GetUint32("start")
	seeds, _ := cmd.Flags().GetInt("seeds")
	if seeds < 1 {
		return fmt.Errorf("--seeds must be at least 1, got %d", seeds)
	}

	tests := registry.All()
	if slug != "" {
		cfg, err := registry.Get(slug)
		if err != nil {
			return err
		}
		tests = []registry.TestConfig{cfg}
	}

	out := cmd.OutOrStdout()
	validators := itemgen.DefaultValidators()
	failed := 0

	for _, cfg := range tests {
		checked, bad := 0, 0
		for i := range seeds {
			seed := start + uint32(i)
			for j, item := range cfg.Generate(seed, checkCount(cfg)) {
				checked++
				err := itemgen.Validate(item, validators...)
				if err == nil {
					continue
				}
				bad++
				if bad <= maxReported {
					var ve *itemgen.ValidationError
					if errors.As(err, &ve) {
						fmt.Fprintf(out, "  %s seed %d item %d: [%s] %s\n", cfg.ID, seed, j, ve.Validator, ve.Message)
					} else {
						fmt.Fprintf(out, "  %s seed %d item %d: %v\n", cfg.ID, seed, j, err)
					}
				}
			}
		}
		status := "ok"
		if bad > 0 {
			status = "FAIL"
			failed++
		}
		fmt.Fprintf(out, "%-8s %-4s %d items, %d violations\n", cfg.ID, status, checked, bad)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d tests produced invalid items", failed, len(tests))
	}
	return nil
}

// checkCount is the number of items validated per seed: the longest
// session, or the whole stream for tests that draw every item from one seed.
func checkCount(cfg registry.TestConfig) int {
	if cfg.ID == registry.Arith {
		return itemgen.ArithStreamLen
	}
	return max(cfg.Count(false), cfg.Count(true))
}
