package itemgen

import (
	"fmt"
	"math"

	"github.com/abhisek/gctb/internal/rng"
)

// Op is an arithmetic operator as displayed.
type Op string

const (
	OpAdd Op = "+"
	OpSub Op = "-"
	OpMul Op = "×"
	OpDiv Op = "÷"
)

var arithOps = []Op{OpAdd, OpSub, OpMul, OpDiv}

var divisors = []int{2, 3, 4, 5, 6, 8, 10, 12}

// Comparison labels for the arithmetic test.
const (
	FirstLarger  = "S1"
	SecondLarger = "S2"
	BothEqual    = "G"
)

// ArithParams tunes the arithmetic generator.
type ArithParams struct {
	// EqualFraction is the share of items whose second expression is built
	// to evaluate to exactly the first result.
	EqualFraction float64

	// NearFraction is the share of the remaining items that get pulled
	// toward the first result when the random pair is too far apart.
	NearFraction float64

	// NearThreshold is the relative difference above which a pair counts
	// as far apart.
	NearThreshold float64

	// NearSpread is the total width of the relative jitter used for near
	// targets (0.25 gives roughly ±12.5%).
	NearSpread float64

	// ProductCap bounds products and quotients.
	ProductCap int
}

// DefaultArithParams returns the standard tuning.
func DefaultArithParams() ArithParams {
	return ArithParams{
		EqualFraction: 0.12,
		NearFraction:  0.40,
		NearThreshold: 0.15,
		NearSpread:    0.25,
		ProductCap:    150,
	}
}

// ArithStreamLen is the length of the full arithmetic sweep drawn from one
// seed. Sessions use a prefix of it.
const ArithStreamLen = 250

// maxExprAttempts bounds regeneration of an expression that breaks a
// constraint. The operand ranges make a second attempt rare.
const maxExprAttempts = 32

// Expr is a binary expression over non-negative integers.
type Expr struct {
	A  int `json:"a" yaml:"a"`
	Op Op  `json:"op" yaml:"op"`
	B  int `json:"b" yaml:"b"`
}

// Value evaluates the expression. Division is integer division; generated
// expressions always divide exactly.
func (e Expr) Value() int {
	switch e.Op {
	case OpAdd:
		return e.A + e.B
	case OpSub:
		return e.A - e.B
	case OpMul:
		return e.A * e.B
	case OpDiv:
		if e.B == 0 {
			return 0
		}
		return e.A / e.B
	}
	return 0
}

func (e Expr) String() string {
	return fmt.Sprintf("%d %s %d", e.A, e.Op, e.B)
}

// ArithItem asks which of two briefly shown expressions has the larger
// result.
type ArithItem struct {
	First   Expr   `json:"first" yaml:"first"`
	Second  Expr   `json:"second" yaml:"second"`
	Correct string `json:"correct" yaml:"correct"`
}

var _ Item = ArithItem{}

func (a ArithItem) Kind() Kind { return KindArith }

func (a ArithItem) Stimuli() []Screen {
	return []Screen{
		{Title: "Screen 1", Lines: []string{a.First.String()}},
		{Title: "Screen 2", Lines: []string{a.Second.String()}},
	}
}

func (a ArithItem) Prompt() Screen {
	return Screen{Lines: []string{"Which screen had the larger result?"}}
}

func (a ArithItem) Choices() []Choice {
	return []Choice{
		{Label: FirstLarger, Text: "Screen 1"},
		{Label: SecondLarger, Text: "Screen 2"},
		{Label: BothEqual, Text: "Equal"},
	}
}

func (a ArithItem) Answer() string {
	return compareResults(a.First.Value(), a.Second.Value())
}

func (a ArithItem) Recap() []string {
	return []string{a.First.String(), a.Second.String()}
}

// NewArith returns the first item of the arithmetic sequence for seed.
func NewArith(seed uint32) ArithItem {
	return ArithSequence(seed, 1, DefaultArithParams())[0]
}

// ArithSequence draws n items from a single stream seeded with seed, so the
// first k items of a longer sequence equal the k items of a shorter one.
func ArithSequence(seed uint32, n int, p ArithParams) []ArithItem {
	src := rng.New(seed)
	items := make([]ArithItem, n)
	for i := range items {
		items[i] = makeArithItem(src, p)
	}
	return items
}

func makeArithItem(src *rng.Source, p ArithParams) ArithItem {
	first := makeExpr(src, p)
	r1 := first.Value()

	var second Expr
	if src.Chance(p.EqualFraction) {
		second = exprForTarget(src, r1)
	} else {
		second = makeExpr(src, p)
		r2 := second.Value()
		rel := math.Abs(float64(r1-r2)) / math.Max(float64(r1), 1)
		if rel > p.NearThreshold && src.Chance(p.NearFraction) {
			factor := 1 + (src.Float64()-0.5)*p.NearSpread
			target := max(1, int(math.Round(float64(r1)*factor)))
			second = exprForTarget(src, target)
		}
	}

	return ArithItem{
		First:   first,
		Second:  second,
		Correct: compareResults(r1, second.Value()),
	}
}

func makeExpr(src *rng.Source, p ArithParams) Expr {
	var e Expr
	for attempt := 0; attempt < maxExprAttempts; attempt++ {
		e = drawExpr(src)
		if exprAllowed(e, p.ProductCap) {
			return e
		}
	}
	// Unreachable with the current ranges; keep the result total anyway.
	return Expr{A: 10, Op: OpAdd, B: 5}
}

func drawExpr(src *rng.Source) Expr {
	switch op := rng.PickOne(src, arithOps); op {
	case OpAdd:
		return Expr{A: src.IntRange(10, 90), Op: op, B: src.IntRange(5, 50)}
	case OpSub:
		a := src.IntRange(20, 120)
		return Expr{A: a, Op: op, B: src.IntRange(5, min(60, a-5))}
	case OpMul:
		return Expr{A: src.IntRange(3, 12), Op: op, B: src.IntRange(3, 12)}
	default:
		b := rng.PickOne(src, divisors)
		q := src.IntRange(2, 15)
		return Expr{A: b * q, Op: OpDiv, B: b}
	}
}

// exprAllowed reports whether e respects the generator's constraints.
func exprAllowed(e Expr, productCap int) bool {
	switch e.Op {
	case OpSub:
		return e.A >= e.B
	case OpMul:
		return e.A*e.B <= productCap
	case OpDiv:
		return e.B != 0 && e.A%e.B == 0 && e.A/e.B <= productCap
	}
	return e.A >= 0 && e.B >= 0
}

// exprForTarget builds an expression that evaluates to exactly target.
func exprForTarget(src *rng.Source, target int) Expr {
	if target < 5 {
		return Expr{A: target, Op: OpAdd, B: 0}
	}
	switch src.IntRange(0, 2) {
	case 0:
		x := src.IntRange(2, min(target-2, 60))
		return Expr{A: x, Op: OpAdd, B: target - x}
	case 1:
		if target%2 == 0 && target <= 140 {
			return Expr{A: target / 2, Op: OpMul, B: 2}
		}
	}
	a := target + src.IntRange(3, 8)
	return Expr{A: a, Op: OpSub, B: a - target}
}

func compareResults(r1, r2 int) string {
	switch {
	case r1 > r2:
		return FirstLarger
	case r2 > r1:
		return SecondLarger
	default:
		return BothEqual
	}
}
