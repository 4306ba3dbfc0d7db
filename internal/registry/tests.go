package registry

import (
	"time"

	"github.com/abhisek/gctb/internal/itemgen"
)

const defaultTimeLimit = 600 * time.Second

func seconds(n float64) time.Duration {
	return time.Duration(n * float64(time.Second))
}

// table is indexed by TestID.
var table = [numTests]TestConfig{
	Arith: {
		ID:    Arith,
		Title: "Numerical Skills",
		Instructions: "Two sums appear one after the other, each for a few seconds. " +
			"Then decide which one had the larger result, or whether they were equal.\n" +
			"Keys: 1 or B = screen 1, 2 or O = screen 2, 3 or G = equal.",
		PracticeCount: 9,
		ExamCount:     25,
		TimeLimit:     defaultTimeLimit,
		Phases: []Phase{
			{Name: "view1", Duration: seconds(3)},
			{Name: "view2", Duration: seconds(3)},
			{Name: "choice", Duration: seconds(5), Terminal: true},
		},
		Keymap: map[string]string{
			"1": itemgen.FirstLarger, "2": itemgen.SecondLarger, "3": itemgen.BothEqual,
			"b": itemgen.FirstLarger, "o": itemgen.SecondLarger, "g": itemgen.BothEqual,
		},
		Generate:     itemgen.ArithSet(itemgen.DefaultArithParams()),
		RecapHeaders: []string{"Screen 1", "Screen 2"},
	},
	Arrows: {
		ID:    Arrows,
		Title: "Spatial Recall",
		Instructions: "You see a color rule and an arrow rule for a tile with two arrows. " +
			"Remember both, then pick the only tile that satisfies them.\n" +
			"Keys: 1-6 select a tile.",
		PracticeCount: 12,
		ExamCount:     24,
		TimeLimit:     defaultTimeLimit,
		Phases: []Phase{
			{Name: "rules", Duration: seconds(8)},
			{Name: "choice", Duration: seconds(10), Terminal: true},
		},
		Keymap:       digitKeymap(1, itemgen.TileCount),
		Generate:     itemgen.PerSeed(itemgen.NewArrows),
		RecapHeaders: []string{"Color rule", "Arrow rule"},
	},
	Words: {
		ID:    Words,
		Title: "Word Recall",
		Instructions: "Three categories are shown. Then three words appear. " +
			"Count how many words belong to the category that stood in the same position.\n" +
			"Keys: 0-3.",
		PracticeCount: 12,
		ExamCount:     24,
		TimeLimit:     defaultTimeLimit,
		Phases: []Phase{
			{Name: "rules", Duration: seconds(6)},
			{Name: "choice", Duration: seconds(8), Terminal: true},
		},
		Keymap:       digitKeymap(0, itemgen.WordSlots),
		Generate:     itemgen.PerSeed(itemgen.NewWords),
		RecapHeaders: []string{"Rules", "Words"},
	},
	Reasoning: {
		ID:    Reasoning,
		Title: "Reasoning",
		Instructions: "Two statements compare three things. " +
			"Work out the order and answer the question.\n" +
			"Keys: 1-3 select an option.",
		PracticeCount: 12,
		ExamCount:     24,
		TimeLimit:     defaultTimeLimit,
		Phases: []Phase{
			{Name: "statements", Duration: seconds(8)},
			{Name: "choice", Duration: seconds(10), Terminal: true},
		},
		Keymap:       digitKeymap(1, 3),
		Generate:     itemgen.PerSeed(itemgen.NewReasoning),
		RecapHeaders: []string{"Statement 1", "Statement 2", "Question"},
	},
	Diff: {
		ID:    Diff,
		Title: "Error Spotting",
		Instructions: "Two lines of text are shown. " +
			"Count the characters in which the second line differs from the first.\n" +
			"Keys: 0-4.",
		PracticeCount: 12,
		ExamCount:     24,
		TimeLimit:     defaultTimeLimit,
		Phases: []Phase{
			{Name: "view", Duration: seconds(7)},
			{Name: "choice", Duration: seconds(10), Terminal: true},
		},
		Keymap:       digitKeymap(0, itemgen.MaxDiffs),
		Generate:     itemgen.PerSeed(itemgen.NewDiff),
		RecapHeaders: []string{"First line", "Second line"},
	},
}

// digitKeymap maps each digit key in [lo, hi] to the same label.
func digitKeymap(lo, hi int) map[string]string {
	m := make(map[string]string, hi-lo+1)
	for d := lo; d <= hi; d++ {
		k := string(rune('0' + d))
		m[k] = k
	}
	return m
}
