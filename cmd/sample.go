package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/gctb/internal/itemgen"
	"github.com/abhisek/gctb/internal/registry"
	"github.com/abhisek/gctb/internal/rng"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print generated items for a test without starting the TUI",
	Long: `Generate items for one test and print them with their answers.

Generation is deterministic: the same --seed always prints the same items.
Useful for checking item quality and reproducing a session.`,
	RunE: runSample,
}

func init() {
	sampleCmd.Flags().String("test", "", "Test ID (required)")
	sampleCmd.Flags().Uint32("seed", 0, "Seed (default: derived from the clock)")
	sampleCmd.Flags().Int("count", 5, "Number of items to generate")
	sampleCmd.Flags().String("format", "text", "Output format: text, json or yaml")
	_ = sampleCmd.MarkFlagRequired("test")
}

// sampleItem is the serialized form of one generated item.
type sampleItem struct {
	Index   int              `json:"index" yaml:"index"`
	Kind    itemgen.Kind     `json:"kind" yaml:"kind"`
	Stimuli []itemgen.Screen `json:"stimuli" yaml:"stimuli"`
	Prompt  itemgen.Screen   `json:"prompt" yaml:"prompt"`
	Choices []itemgen.Choice `json:"choices" yaml:"choices"`
	Answer  string           `json:"answer" yaml:"answer"`
	Detail  itemgen.Item     `json:"detail" yaml:"detail"`
}

// sampleOutput is the document printed for --format json|yaml.
type sampleOutput struct {
	Test  string       `json:"test" yaml:"test"`
	Seed  uint32       `json:"seed" yaml:"seed"`
	Items []sampleItem `json:"items" yaml:"items"`
}

func runSample(cmd *cobra.Command, args []string) error {
	slug, _ := cmd.Flags().GetString("test")
	count, _ := cmd.Flags().GetInt("count")
	format, _ := cmd.Flags().GetString("format")

	seed, _ := cmd.Flags().GetUint32("seed")
	if !cmd.Flags().Changed("seed") {
		seed = rng.SeedFromTime(time.Now())
	}
	if count < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", count)
	}

	cfg, err := registry.Get(slug)
	if err != nil {
		return err
	}

	doc := buildSample(cfg, seed, count)
	out := cmd.OutOrStdout()

	switch strings.ToLower(format) {
	case "text":
		writeSampleText(out, cfg, doc)
		return nil
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("invalid format %q: must be text, json or yaml", format)
	}
}

func buildSample(cfg registry.TestConfig, seed uint32, count int) sampleOutput {
	items := cfg.Generate(seed, count)
	doc := sampleOutput{Test: cfg.ID.String(), Seed: seed, Items: make([]sampleItem, len(items))}
	for i, item := range items {
		doc.Items[i] = sampleItem{
			Index:   i + 1,
			Kind:    item.Kind(),
			Stimuli: item.Stimuli(),
			Prompt:  item.Prompt(),
			Choices: item.Choices(),
			Answer:  item.Answer(),
			Detail:  item,
		}
	}
	return doc
}

func writeSampleText(out io.Writer, cfg registry.TestConfig, doc sampleOutput) {
	fmt.Fprintf(out, "%s (%s), seed %d\n\n", cfg.Title, cfg.ID, doc.Seed)

	for _, it := range doc.Items {
		fmt.Fprintf(out, "── Item %d/%d ──\n", it.Index, len(doc.Items))
		for _, sc := range it.Stimuli {
			if sc.Title != "" {
				fmt.Fprintf(out, "[%s]\n", sc.Title)
			}
			for _, line := range sc.Lines {
				fmt.Fprintf(out, "  %s\n", line)
			}
		}
		for _, line := range it.Prompt.Lines {
			fmt.Fprintln(out, line)
		}
		for _, c := range it.Choices {
			text := strings.ReplaceAll(c.Text, "\n", " / ")
			marker := " "
			if c.Label == it.Answer {
				marker = "*"
			}
			fmt.Fprintf(out, " %s %s) %s\n", marker, c.Label, text)
		}
		fmt.Fprintln(out)
	}
}
