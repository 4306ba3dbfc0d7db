package itemgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/gctb/internal/rng"
)

// Pattern is the family a base string is drawn from.
type Pattern string

const (
	PatternEmail   Pattern = "email"
	PatternURL     Pattern = "url"
	PatternPlate   Pattern = "plate"
	PatternCode    Pattern = "code"
	PatternAddress Pattern = "address"
)

const (
	upperLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerLetters = "abcdefghijklmnopqrstuvwxyz"
	digitChars   = "0123456789"

	// structuralChars are separators that are only mutated when a string
	// has too few other positions.
	structuralChars = " -/.@:"

	// punctuationSwaps are the replacements for a mutated separator.
	punctuationSwaps = ".-/_:"

	// MaxDiffs is the largest number of differences an item can carry.
	MaxDiffs = 4

	maxMutationAttempts = 5
)

// diffWheel weights the target number of differences toward 1-3.
var diffWheel = []int{0, 1, 1, 2, 2, 2, 3, 3, 4}

var (
	tlds       = []string{"com", "net", "org", "be", "nl", "de", "fr", "eu"}
	subdomains = []string{"mail", "app", "news", "portal", "secure", "office", "intra"}
	urlPrefix  = []string{"www", "static", "portal", "app"}
	addrSuffix = []string{"", " bus A", " /1", " B"}
)

// DiffItem shows two strings and asks how many positions differ.
type DiffItem struct {
	Pattern Pattern `json:"pattern" yaml:"pattern"`
	Base    string  `json:"base" yaml:"base"`
	Mutated string  `json:"mutated" yaml:"mutated"`

	// Target is the number of differences the generator aimed for.
	Target int `json:"target" yaml:"target"`

	// Differences is the positional difference count of the final pair.
	Differences int `json:"differences" yaml:"differences"`
}

var _ Item = DiffItem{}

func (d DiffItem) Kind() Kind { return KindDiff }

func (d DiffItem) Stimuli() []Screen {
	return []Screen{{Title: "Compare the two lines", Lines: []string{d.Base, d.Mutated}}}
}

func (d DiffItem) Prompt() Screen {
	return Screen{Lines: []string{"How many characters differ?"}}
}

func (d DiffItem) Choices() []Choice {
	return numericChoices(0, MaxDiffs)
}

func (d DiffItem) Answer() string {
	return strconv.Itoa(CountDiffs(d.Base, d.Mutated))
}

func (d DiffItem) Recap() []string {
	return []string{d.Base, d.Mutated}
}

// CountDiffs counts differing byte positions, plus any length difference.
func CountDiffs(a, b string) int {
	n := 0
	for i := range min(len(a), len(b)) {
		if a[i] != b[i] {
			n++
		}
	}
	if len(a) > len(b) {
		n += len(a) - len(b)
	} else {
		n += len(b) - len(a)
	}
	return n
}

// NewDiff builds the error-spotting item for seed.
func NewDiff(seed uint32) DiffItem {
	src := rng.New(seed)

	pattern := rng.PickOne(src, []Pattern{PatternEmail, PatternURL, PatternPlate, PatternCode, PatternAddress})
	base := makeBase(src, pattern)
	k := rng.PickOne(src, diffWheel)

	mutated := mutate(src, base, k)
	for attempt := 1; attempt < maxMutationAttempts && CountDiffs(base, mutated) != k; attempt++ {
		mutated = mutate(src, base, k)
	}

	return DiffItem{
		Pattern:     pattern,
		Base:        base,
		Mutated:     mutated,
		Target:      k,
		Differences: CountDiffs(base, mutated),
	}
}

func makeBase(src *rng.Source, p Pattern) string {
	switch p {
	case PatternEmail:
		userLen := 3 + src.Intn(4)
		user := randString(src, lowerLetters, userLen)
		user += randString(src, digitChars, 1+src.Intn(3))
		host := randString(src, lowerLetters, 4+src.Intn(3))
		return fmt.Sprintf("%s@%s.%s.%s", user, host, rng.PickOne(src, subdomains), rng.PickOne(src, tlds))
	case PatternURL:
		sub := rng.PickOne(src, urlPrefix)
		host := randString(src, lowerLetters, 5+src.Intn(3))
		tld := rng.PickOne(src, tlds)
		path := "/" + randString(src, lowerLetters, 3) + strconv.Itoa(src.Intn(10)) + randString(src, lowerLetters, 2)
		return fmt.Sprintf("http://%s.%s.%s%s", sub, host, tld, path)
	case PatternPlate:
		if src.Chance(0.5) {
			return randString(src, upperLetters, 2) + " " + randString(src, digitChars, 5)
		}
		return randString(src, upperLetters, 1) + " " + randString(src, digitChars, 3) + " " + randString(src, upperLetters, 3)
	case PatternCode:
		return fmt.Sprintf("%s-%s/%s%s",
			randString(src, upperLetters, 2), randString(src, digitChars, 3),
			randString(src, upperLetters, 2), randString(src, digitChars, 2))
	default:
		street := strings.ToUpper(randString(src, lowerLetters, 1)) + randString(src, lowerLetters, 5)
		nr := fmt.Sprintf("%2d", src.IntRange(1, 99))
		return fmt.Sprintf("%-15s", street+" "+nr+rng.PickOne(src, addrSuffix))
	}
}

func randString(src *rng.Source, alphabet string, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[src.Intn(len(alphabet))]
	}
	return string(b)
}

// mutate changes exactly k distinct positions of s, keeping each changed
// character in its class and never writing back the original character.
// The result always has the same length as s.
func mutate(src *rng.Source, s string, k int) string {
	out := []byte(s)

	var pool []int
	for i := range out {
		if !strings.ContainsRune(structuralChars, rune(out[i])) {
			pool = append(pool, i)
		}
	}
	if len(pool) < k {
		pool = pool[:0]
		for i := range out {
			pool = append(pool, i)
		}
	}
	rng.Shuffle(src, pool)

	for _, pos := range pool[:min(k, len(pool))] {
		out[pos] = replacement(src, out[pos])
	}
	return string(out)
}

func replacement(src *rng.Source, c byte) byte {
	var alphabet string
	switch {
	case c >= '0' && c <= '9':
		alphabet = digitChars
	case c >= 'a' && c <= 'z':
		alphabet = lowerLetters
	case c >= 'A' && c <= 'Z':
		alphabet = upperLetters
	default:
		alphabet = punctuationSwaps
	}
	return rng.PickExcluding(src, []byte(alphabet), c)
}
