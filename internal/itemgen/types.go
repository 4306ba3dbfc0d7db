// Package itemgen builds the seeded test items for every test kind. All
// generators are pure: the same seed always yields the same item.
package itemgen

import "strconv"

// Kind identifies which generator produced an item.
type Kind string

const (
	KindArith     Kind = "arith"
	KindArrows    Kind = "arrows"
	KindWords     Kind = "words"
	KindReasoning Kind = "reasoning"
	KindDiff      Kind = "diff"
)

// Screen is the content of one presentation phase.
type Screen struct {
	Title string   `json:"title,omitempty" yaml:"title,omitempty"`
	Lines []string `json:"lines" yaml:"lines"`
}

// Choice is one selectable response. Label is what gets recorded in the
// session log; Text is what the user sees and may span several lines.
type Choice struct {
	Label string `json:"label" yaml:"label"`
	Text  string `json:"text" yaml:"text"`
}

// Item is a generated question with its embedded answer key.
//
// Answer is always derived from the item's final displayed content, never
// from an intermediate generation step.
type Item interface {
	Kind() Kind

	// Stimuli returns one Screen per presentation phase before the choice.
	Stimuli() []Screen

	// Prompt is shown alongside the choices in the response phase.
	Prompt() Screen

	Choices() []Choice

	// Answer returns the Label of the correct choice.
	Answer() string

	// Recap returns short descriptions of the stimulus for result tables.
	Recap() []string
}

// ChoiceLabels returns the labels of item's choices in display order.
func ChoiceLabels(item Item) []string {
	choices := item.Choices()
	labels := make([]string, len(choices))
	for i, c := range choices {
		labels[i] = c.Label
	}
	return labels
}

// ChoiceText returns the display text for label, or label itself when the
// item has no such choice.
func ChoiceText(item Item, label string) string {
	for _, c := range item.Choices() {
		if c.Label == label {
			return c.Text
		}
	}
	return label
}

// numericChoices returns choices labelled lo..hi with the number as text.
func numericChoices(lo, hi int) []Choice {
	out := make([]Choice, 0, hi-lo+1)
	for n := lo; n <= hi; n++ {
		s := strconv.Itoa(n)
		out = append(out, Choice{Label: s, Text: s})
	}
	return out
}
