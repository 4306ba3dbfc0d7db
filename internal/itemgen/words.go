package itemgen

import (
	"strconv"
	"strings"

	"github.com/abhisek/gctb/internal/rng"
)

// WordSlots is the number of rules and words per item.
const WordSlots = 3

const swapChance = 0.35

// WordItem shows three category rules, then three words, and asks how many
// words belong to the category of the rule in the same position.
type WordItem struct {
	Rules []Category `json:"rules" yaml:"rules"`
	Words []string   `json:"words" yaml:"words"`

	// Planned is the match count chosen before the optional swap. It is
	// kept for inspection only; the answer comes from Matches.
	Planned int  `json:"planned" yaml:"planned"`
	Swapped bool `json:"swapped" yaml:"swapped"`

	// Matches is recomputed from the final Rules and Words.
	Matches int `json:"matches" yaml:"matches"`
}

var _ Item = WordItem{}

func (w WordItem) Kind() Kind { return KindWords }

func (w WordItem) Stimuli() []Screen {
	return []Screen{{Title: "Remember the rules", Lines: []string{w.rulesLine()}}}
}

func (w WordItem) Prompt() Screen {
	return Screen{Lines: []string{
		strings.Join(w.Words, "   "),
		"How many words belong to the category of their rule?",
	}}
}

func (w WordItem) Choices() []Choice {
	return numericChoices(0, WordSlots)
}

func (w WordItem) Answer() string {
	return strconv.Itoa(CountMatches(w.Rules, w.Words))
}

func (w WordItem) Recap() []string {
	return []string{w.rulesLine(), strings.Join(w.Words, " · ")}
}

func (w WordItem) rulesLine() string {
	parts := make([]string, len(w.Rules))
	for i, r := range w.Rules {
		parts[i] = string(r)
	}
	return strings.Join(parts, " · ")
}

// CountMatches counts the positions whose word belongs to the rule at the
// same position.
func CountMatches(rules []Category, words []string) int {
	n := 0
	for i := range min(len(rules), len(words)) {
		if c, ok := CategoryOf(words[i]); ok && c == rules[i] {
			n++
		}
	}
	return n
}

// NewWords builds the word item for seed.
func NewWords(seed uint32) WordItem {
	src := rng.New(seed)

	rules := make([]Category, WordSlots)
	for i := range rules {
		rules[i] = rng.PickOne(src, Categories)
	}
	planned := src.Intn(WordSlots + 1)

	slots := []int{0, 1, 2}
	rng.Shuffle(src, slots)
	match := make(map[int]bool, planned)
	for _, idx := range slots[:planned] {
		match[idx] = true
	}

	words := make([]string, WordSlots)
	for i, cat := range rules {
		if match[i] {
			words[i] = rng.PickOne(src, Words(cat))
			continue
		}
		other := rng.PickExcluding(src, Categories, cat)
		words[i] = rng.PickOne(src, Words(other))
	}

	swapped := src.Chance(swapChance)
	if swapped {
		a := src.Intn(WordSlots)
		b := src.Intn(WordSlots)
		if a == b {
			b = (b + 1) % WordSlots
		}
		words[a], words[b] = words[b], words[a]
	}

	return WordItem{
		Rules:   rules,
		Words:   words,
		Planned: planned,
		Swapped: swapped,
		Matches: CountMatches(rules, words),
	}
}
