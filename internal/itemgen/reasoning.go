package itemgen

import (
	"fmt"
	"strconv"

	"github.com/abhisek/gctb/internal/rng"
)

// Theme is a comparison dimension with its vocabulary.
type Theme struct {
	Name    string
	Pool    []string
	Greater string // e.g. "faster than"
	Lesser  string // e.g. "slower than"
	AskMax  string
	AskMin  string
}

// Themes lists the reasoning themes in a fixed order.
var Themes = []Theme{
	{
		Name: "speed", Pool: []string{"Helicopter", "Ferry", "Tram", "Truck"},
		Greater: "faster than", Lesser: "slower than",
		AskMax: "Which is fastest?", AskMin: "Which is slowest?",
	},
	{
		Name: "distance", Pool: []string{"Mountain", "Forest", "Lake", "River"},
		Greater: "farther away than", Lesser: "closer than",
		AskMax: "Which is farthest away?", AskMin: "Which is closest?",
	},
	{
		Name: "height", Pool: []string{"Bridge", "Church", "Tree"},
		Greater: "higher than", Lesser: "lower than",
		AskMax: "Which is highest?", AskMin: "Which is lowest?",
	},
	{
		Name: "weight", Pool: []string{"Helmet", "Bayonet", "Rifle"},
		Greater: "heavier than", Lesser: "lighter than",
		AskMax: "Which is heaviest?", AskMin: "Which is lightest?",
	},
	{
		Name: "size", Pool: []string{"Policeman", "Firefighter", "Pilot"},
		Greater: "taller than", Lesser: "shorter than",
		AskMax: "Who is tallest?", AskMin: "Who is shortest?",
	},
	{
		Name: "leftright", Pool: []string{"Patrol", "Regiment", "Company"},
		Greater: "to the right of", Lesser: "to the left of",
		AskMax: "Which is farthest to the right?", AskMin: "Which is farthest to the left?",
	},
}

// ThemeByName looks up a theme.
func ThemeByName(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// Relation states that Subject ranks above (Greater) or below Object.
type Relation struct {
	Subject string `json:"subject" yaml:"subject"`
	Greater bool   `json:"greater" yaml:"greater"`
	Object  string `json:"object" yaml:"object"`
}

// ReasonItem gives two comparisons between three things and asks for the
// extreme one.
type ReasonItem struct {
	Theme      string     `json:"theme" yaml:"theme"`
	Order      [3]string  `json:"order" yaml:"order"` // low, mid, high
	Statements []Relation `json:"statements" yaml:"statements"`
	AskMax     bool       `json:"ask_max" yaml:"ask_max"`
	Options    []string   `json:"options" yaml:"options"`
}

var _ Item = ReasonItem{}

func (r ReasonItem) Kind() Kind { return KindReasoning }

func (r ReasonItem) theme() Theme {
	t, _ := ThemeByName(r.Theme)
	return t
}

// Sentence renders rel with the item's theme phrasing.
func (r ReasonItem) Sentence(rel Relation) string {
	t := r.theme()
	phrase := t.Lesser
	if rel.Greater {
		phrase = t.Greater
	}
	return fmt.Sprintf("%s is %s %s.", rel.Subject, phrase, rel.Object)
}

// Question returns the question asked for this item.
func (r ReasonItem) Question() string {
	t := r.theme()
	if r.AskMax {
		return t.AskMax
	}
	return t.AskMin
}

// Correct returns the thing the question asks for.
func (r ReasonItem) Correct() string {
	if r.AskMax {
		return r.Order[2]
	}
	return r.Order[0]
}

func (r ReasonItem) Stimuli() []Screen {
	lines := make([]string, 0, len(r.Statements)+2)
	for _, s := range r.Statements {
		lines = append(lines, r.Sentence(s))
	}
	lines = append(lines, "", r.Question())
	return []Screen{{Title: "Read carefully", Lines: lines}}
}

func (r ReasonItem) Prompt() Screen {
	return Screen{Lines: []string{r.Question()}}
}

func (r ReasonItem) Choices() []Choice {
	out := make([]Choice, len(r.Options))
	for i, o := range r.Options {
		out[i] = Choice{Label: strconv.Itoa(i + 1), Text: o}
	}
	return out
}

func (r ReasonItem) Answer() string {
	want := r.Correct()
	for i, o := range r.Options {
		if o == want {
			return strconv.Itoa(i + 1)
		}
	}
	return ""
}

func (r ReasonItem) Recap() []string {
	out := make([]string, 0, len(r.Statements)+1)
	for _, s := range r.Statements {
		out = append(out, r.Sentence(s))
	}
	return append(out, r.Question())
}

// NewReasoning builds the reasoning item for seed.
func NewReasoning(seed uint32) ReasonItem {
	src := rng.New(seed)

	theme := rng.PickOne(src, Themes)
	picked := rng.Sample(src, theme.Pool, 3)
	order := rng.Sample(src, picked, 3)
	low, mid, high := order[0], order[1], order[2]
	askMax := src.Chance(0.5)

	first := Relation{Subject: mid, Greater: true, Object: low}
	if src.Chance(0.5) {
		first = Relation{Subject: low, Greater: false, Object: mid}
	}
	second := Relation{Subject: high, Greater: true, Object: mid}
	if src.Chance(0.5) {
		second = Relation{Subject: mid, Greater: false, Object: high}
	}

	return ReasonItem{
		Theme:      theme.Name,
		Order:      [3]string{low, mid, high},
		Statements: []Relation{first, second},
		AskMax:     askMax,
		Options:    rng.Sample(src, picked, 3),
	}
}

// DeriveOrder recovers the low-to-high order implied by statements. It
// reports false unless the statements pin down a single total order over
// exactly three things.
func DeriveOrder(statements []Relation) ([3]string, bool) {
	above := map[string]map[string]bool{}
	names := []string{}
	add := func(n string) {
		if _, ok := above[n]; !ok {
			above[n] = map[string]bool{}
			names = append(names, n)
		}
	}
	for _, s := range statements {
		add(s.Subject)
		add(s.Object)
		hi, lo := s.Subject, s.Object
		if !s.Greater {
			hi, lo = lo, hi
		}
		above[hi][lo] = true
	}
	if len(names) != 3 {
		return [3]string{}, false
	}

	// Transitive closure over three nodes.
	for _, k := range names {
		for _, i := range names {
			for _, j := range names {
				if above[i][k] && above[k][j] {
					above[i][j] = true
				}
			}
		}
	}

	var order [3]string
	for _, n := range names {
		if above[n][n] {
			return [3]string{}, false
		}
		rank := len(above[n])
		if rank > 2 || order[rank] != "" {
			return [3]string{}, false
		}
		order[rank] = n
	}
	return order, true
}
