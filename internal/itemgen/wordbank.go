package itemgen

// Category is a word-bank category shown as a rule.
type Category string

const (
	CatAnimal     Category = "ANIMAL"
	CatFruit      Category = "FRUIT"
	CatColor      Category = "COLOR"
	CatTool       Category = "TOOL"
	CatCountry    Category = "COUNTRY"
	CatProfession Category = "PROFESSION"
	CatVehicle    Category = "VEHICLE"
	CatInstrument Category = "INSTRUMENT"
	CatBodyPart   Category = "BODY PART"
	CatSport      Category = "SPORT"
)

// Categories lists every category in a fixed order.
var Categories = []Category{
	CatAnimal, CatFruit, CatColor, CatTool, CatCountry,
	CatProfession, CatVehicle, CatInstrument, CatBodyPart, CatSport,
}

// wordBank holds the words per category. No word appears in two categories,
// so a word's category is unambiguous.
var wordBank = map[Category][]string{
	CatAnimal:     {"horse", "tiger", "rabbit", "eagle", "wolf", "otter", "camel", "goat"},
	CatFruit:      {"apple", "pear", "cherry", "lemon", "mango", "grape", "plum", "melon"},
	CatColor:      {"red", "green", "purple", "yellow", "brown", "orange", "grey", "pink"},
	CatTool:       {"hammer", "saw", "wrench", "drill", "chisel", "pliers", "shovel", "rake"},
	CatCountry:    {"France", "Spain", "Norway", "Chile", "Japan", "Egypt", "Peru", "Kenya"},
	CatProfession: {"baker", "nurse", "pilot", "judge", "farmer", "tailor", "plumber", "lawyer"},
	CatVehicle:    {"truck", "tram", "bicycle", "van", "scooter", "tractor", "bus", "ferry"},
	CatInstrument: {"violin", "drum", "flute", "piano", "guitar", "trumpet", "harp", "cello"},
	CatBodyPart:   {"elbow", "knee", "ankle", "wrist", "shoulder", "thumb", "chin", "heel"},
	CatSport:      {"tennis", "rugby", "hockey", "golf", "rowing", "judo", "boxing", "cricket"},
}

var wordCategory = indexWordBank()

func indexWordBank() map[string]Category {
	idx := make(map[string]Category)
	for cat, words := range wordBank {
		for _, w := range words {
			idx[w] = cat
		}
	}
	return idx
}

// Words returns the bank for cat.
func Words(cat Category) []string {
	return wordBank[cat]
}

// CategoryOf returns the category w was drawn from.
func CategoryOf(w string) (Category, bool) {
	c, ok := wordCategory[w]
	return c, ok
}
