package itemgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/gctb/internal/rng"
)

// Color is the fill of one half of an arrow tile.
type Color string

const (
	Black Color = "black"
	White Color = "white"
)

var colors = []Color{Black, White}

func (c Color) opposite() Color {
	if c == Black {
		return White
	}
	return Black
}

// Label returns the upper-case display name.
func (c Color) Label() string {
	return strings.ToUpper(string(c))
}

func (c Color) glyph() string {
	if c == Black {
		return "●"
	}
	return "○"
}

// Direction is where an arrow points.
type Direction string

const (
	LeftUp    Direction = "left_up"
	LeftDown  Direction = "left_down"
	RightUp   Direction = "right_up"
	RightDown Direction = "right_down"
)

var directions = []Direction{LeftUp, LeftDown, RightUp, RightDown}

// Label returns the upper-case display name, e.g. "RIGHT UP".
func (d Direction) Label() string {
	return strings.ToUpper(strings.ReplaceAll(string(d), "_", " "))
}

func (d Direction) glyph() string {
	switch d {
	case LeftUp:
		return "↖"
	case LeftDown:
		return "↙"
	case RightUp:
		return "↗"
	default:
		return "↘"
	}
}

// Half is one arrow of a tile.
type Half struct {
	Color Color     `json:"color" yaml:"color"`
	Dir   Direction `json:"dir" yaml:"dir"`
}

// Tile is a pair of arrows stacked vertically.
type Tile struct {
	Top    Half `json:"top" yaml:"top"`
	Bottom Half `json:"bottom" yaml:"bottom"`
}

// Key is the canonical identity used to keep tiles distinct.
func (t Tile) Key() string {
	return fmt.Sprintf("%s-%s-%s-%s", t.Top.Color, t.Bottom.Color, t.Top.Dir, t.Bottom.Dir)
}

func (t Tile) render() string {
	return t.Top.Color.glyph() + " " + t.Top.Dir.glyph() + "\n" +
		t.Bottom.Color.glyph() + " " + t.Bottom.Dir.glyph()
}

// TileCount is the number of tiles offered per arrow item.
const TileCount = 6

const (
	// diffColorBias is the chance that the target's halves differ in color.
	diffColorBias = 0.9

	colorFlipChance = 0.3
	dirFlipChance   = 0.5

	// maxDistractorDraws bounds the random distractor loop before the
	// remaining slots are filled from the enumeration of all tiles.
	maxDistractorDraws = 500
)

// ArrowItem shows a color rule and a direction rule, then asks which of six
// tiles satisfies both.
type ArrowItem struct {
	Target       Tile   `json:"target" yaml:"target"`
	RulesSwapped bool   `json:"rules_swapped" yaml:"rules_swapped"`
	Tiles        []Tile `json:"tiles" yaml:"tiles"`
	AnswerIndex  int    `json:"answer_index" yaml:"answer_index"`
}

var _ Item = ArrowItem{}

func (a ArrowItem) Kind() Kind { return KindArrows }

// ColorRule describes the colors of the target tile.
func (a ArrowItem) ColorRule() string {
	return fmt.Sprintf("TOP %s, BOTTOM %s", a.Target.Top.Color.Label(), a.Target.Bottom.Color.Label())
}

// DirectionRule describes the arrow directions of the target tile.
func (a ArrowItem) DirectionRule() string {
	return fmt.Sprintf("TOP %s, BOTTOM %s", a.Target.Top.Dir.Label(), a.Target.Bottom.Dir.Label())
}

func (a ArrowItem) Stimuli() []Screen {
	lines := []string{"Colors: " + a.ColorRule(), "Arrows: " + a.DirectionRule()}
	if a.RulesSwapped {
		lines[0], lines[1] = lines[1], lines[0]
	}
	return []Screen{{Title: "Remember both rules", Lines: lines}}
}

func (a ArrowItem) Prompt() Screen {
	return Screen{Lines: []string{"Which tile matches both rules?"}}
}

func (a ArrowItem) Choices() []Choice {
	out := make([]Choice, len(a.Tiles))
	for i, t := range a.Tiles {
		out[i] = Choice{Label: strconv.Itoa(i + 1), Text: t.render()}
	}
	return out
}

// Answer is the 1-based position of the tile equal to the target.
func (a ArrowItem) Answer() string {
	for i, t := range a.Tiles {
		if t == a.Target {
			return strconv.Itoa(i + 1)
		}
	}
	return ""
}

func (a ArrowItem) Recap() []string {
	return []string{a.ColorRule(), a.DirectionRule()}
}

// NewArrows builds the arrow item for seed.
func NewArrows(seed uint32) ArrowItem {
	src := rng.New(seed)

	diffColor := src.Chance(diffColorBias)
	topColor := rng.PickOne(src, colors)
	botColor := topColor
	if diffColor {
		botColor = topColor.opposite()
	}
	target := Tile{
		Top:    Half{Color: topColor, Dir: rng.PickOne(src, directions)},
		Bottom: Half{Color: botColor, Dir: rng.PickOne(src, directions)},
	}
	swapped := src.Chance(0.5)

	tiles := []Tile{target}
	seen := map[string]bool{target.Key(): true}
	for draws := 0; len(tiles) < TileCount && draws < maxDistractorDraws; draws++ {
		t := perturb(src, target)
		if seen[t.Key()] {
			continue
		}
		seen[t.Key()] = true
		tiles = append(tiles, t)
	}
	tiles = fillTiles(tiles, seen)

	rng.Shuffle(src, tiles)
	answer := 0
	for i, t := range tiles {
		if t == target {
			answer = i
			break
		}
	}

	return ArrowItem{
		Target:       target,
		RulesSwapped: swapped,
		Tiles:        tiles,
		AnswerIndex:  answer,
	}
}

// perturb flips each attribute of target independently.
func perturb(src *rng.Source, target Tile) Tile {
	t := target
	if src.Chance(colorFlipChance) {
		t.Top.Color = t.Top.Color.opposite()
	}
	if src.Chance(colorFlipChance) {
		t.Bottom.Color = t.Bottom.Color.opposite()
	}
	if src.Chance(dirFlipChance) {
		t.Top.Dir = rng.PickExcluding(src, directions, target.Top.Dir)
	}
	if src.Chance(dirFlipChance) {
		t.Bottom.Dir = rng.PickExcluding(src, directions, target.Bottom.Dir)
	}
	return t
}

// fillTiles tops tiles up to TileCount from the fixed enumeration of every
// possible tile.
func fillTiles(tiles []Tile, seen map[string]bool) []Tile {
	for _, tc := range colors {
		for _, bc := range colors {
			for _, td := range directions {
				for _, bd := range directions {
					if len(tiles) >= TileCount {
						return tiles
					}
					t := Tile{Top: Half{Color: tc, Dir: td}, Bottom: Half{Color: bc, Dir: bd}}
					if seen[t.Key()] {
						continue
					}
					seen[t.Key()] = true
					tiles = append(tiles, t)
				}
			}
		}
	}
	return tiles
}
