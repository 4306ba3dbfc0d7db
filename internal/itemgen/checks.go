package itemgen

// ChoiceValidator checks that choices are non-empty, uniquely labelled and
// contain the answer.
type ChoiceValidator struct{}

func (v *ChoiceValidator) Name() string { return "choices" }

func (v *ChoiceValidator) Validate(item Item) *ValidationError {
	labels := ChoiceLabels(item)
	if len(labels) == 0 {
		return fail(v, "item has no choices")
	}
	seen := make(map[string]bool, len(labels))
	for _, l := range labels {
		if seen[l] {
			return fail(v, "duplicate choice label %q", l)
		}
		seen[l] = true
	}
	if ans := item.Answer(); !seen[ans] {
		return fail(v, "answer %q is not among the choices %v", ans, labels)
	}
	return nil
}

// ArithValidator recomputes both expressions and checks the stored verdict.
type ArithValidator struct {
	ProductCap int
}

func (v *ArithValidator) Name() string { return "arith" }

func (v *ArithValidator) Validate(item Item) *ValidationError {
	a, ok := item.(ArithItem)
	if !ok {
		return nil
	}
	for _, e := range []Expr{a.First, a.Second} {
		switch e.Op {
		case OpSub:
			if e.Value() < 0 {
				return fail(v, "%s is negative", e)
			}
		case OpMul:
			if e.Value() > v.ProductCap {
				return fail(v, "%s exceeds cap %d", e, v.ProductCap)
			}
		case OpDiv:
			if e.B == 0 || e.A%e.B != 0 {
				return fail(v, "%s is not an exact division", e)
			}
		}
	}
	if want := compareResults(a.First.Value(), a.Second.Value()); a.Correct != want {
		return fail(v, "stored %q but %s vs %s gives %q", a.Correct, a.First, a.Second, want)
	}
	return nil
}

// TileValidator checks that arrow tiles are distinct and that exactly one
// of them is the target.
type TileValidator struct{}

func (v *TileValidator) Name() string { return "tiles" }

func (v *TileValidator) Validate(item Item) *ValidationError {
	a, ok := item.(ArrowItem)
	if !ok {
		return nil
	}
	if len(a.Tiles) != TileCount {
		return fail(v, "got %d tiles, want %d", len(a.Tiles), TileCount)
	}
	seen := make(map[string]bool, len(a.Tiles))
	targets := 0
	for _, t := range a.Tiles {
		if seen[t.Key()] {
			return fail(v, "duplicate tile %s", t.Key())
		}
		seen[t.Key()] = true
		if t == a.Target {
			targets++
		}
	}
	if targets != 1 {
		return fail(v, "%d tiles equal the target, want 1", targets)
	}
	if a.AnswerIndex < 0 || a.AnswerIndex >= len(a.Tiles) || a.Tiles[a.AnswerIndex] != a.Target {
		return fail(v, "answer index %d does not point at the target", a.AnswerIndex)
	}
	return nil
}

// WordValidator recounts matches from the final word list.
type WordValidator struct{}

func (v *WordValidator) Name() string { return "words" }

func (v *WordValidator) Validate(item Item) *ValidationError {
	w, ok := item.(WordItem)
	if !ok {
		return nil
	}
	if len(w.Rules) != WordSlots || len(w.Words) != WordSlots {
		return fail(v, "want %d rules and words, got %d and %d", WordSlots, len(w.Rules), len(w.Words))
	}
	for _, word := range w.Words {
		if _, ok := CategoryOf(word); !ok {
			return fail(v, "word %q is not in the bank", word)
		}
	}
	if n := CountMatches(w.Rules, w.Words); n != w.Matches {
		return fail(v, "stored %d matches but final words give %d", w.Matches, n)
	}
	return nil
}

// ReasoningValidator checks that the statements alone determine the hidden
// order and that the options cover the three things.
type ReasoningValidator struct{}

func (v *ReasoningValidator) Name() string { return "reasoning" }

func (v *ReasoningValidator) Validate(item Item) *ValidationError {
	r, ok := item.(ReasonItem)
	if !ok {
		return nil
	}
	if _, ok := ThemeByName(r.Theme); !ok {
		return fail(v, "unknown theme %q", r.Theme)
	}
	order, ok := DeriveOrder(r.Statements)
	if !ok {
		return fail(v, "statements do not determine a single order")
	}
	if order != r.Order {
		return fail(v, "statements imply %v but hidden order is %v", order, r.Order)
	}
	if len(r.Options) != 3 {
		return fail(v, "got %d options, want 3", len(r.Options))
	}
	for _, name := range r.Order {
		found := false
		for _, o := range r.Options {
			if o == name {
				found = true
				break
			}
		}
		if !found {
			return fail(v, "option list %v is missing %q", r.Options, name)
		}
	}
	return nil
}

// DiffValidator checks length preservation and the stored diff count.
type DiffValidator struct{}

func (v *DiffValidator) Name() string { return "diff" }

func (v *DiffValidator) Validate(item Item) *ValidationError {
	d, ok := item.(DiffItem)
	if !ok {
		return nil
	}
	if len(d.Base) != len(d.Mutated) {
		return fail(v, "mutation changed length from %d to %d", len(d.Base), len(d.Mutated))
	}
	n := CountDiffs(d.Base, d.Mutated)
	if n != d.Differences {
		return fail(v, "stored %d differences but strings differ in %d", d.Differences, n)
	}
	if n > MaxDiffs {
		return fail(v, "%d differences exceeds the largest choice %d", n, MaxDiffs)
	}
	return nil
}
