package content

import "strconv"

// Category identifiers. These are fixed; there is no way to register a
// category at runtime.
const (
	CategoryAlphabets = "alphabets"
	CategoryNumbers   = "numbers"
	CategoryShapes    = "shapes"
)

// Catalog holds the static learning content: the ordered item list per
// category and the auxiliary data (example words, counting targets,
// real-life examples) used by lessons and quiz generation. A Catalog is
// immutable after construction.
type Catalog struct {
	items            map[string][]string
	letterExamples   map[string][]string
	countTargets     map[string]int
	realLifeExamples map[string][]string
}

var letters = []string{
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
}

var numbers = []string{
	"1", "2", "3", "4", "5",
	"6", "7", "8", "9", "10",
	"11", "12", "13", "14", "15",
	"16", "17", "18", "19", "20",
}

var shapes = []string{
	"circle", "square", "triangle", "rectangle",
	"oval", "star", "heart", "diamond",
	"pentagon", "hexagon",
}

var letterExamples = map[string][]string{
	"A": {"Apple", "Ant", "Airplane"},
	"B": {"Ball", "Bear", "Balloon"},
	"C": {"Cat", "Car", "Cookie"},
	"D": {"Dog", "Duck", "Dinosaur"},
	"E": {"Elephant", "Egg", "Eagle"},
	"F": {"Fish", "Flower", "Frog"},
	"G": {"Goat", "Grape", "Giraffe"},
	"H": {"Hat", "Horse", "House"},
	"I": {"Ice Cream", "Igloo", "Insect"},
	"J": {"Jellyfish", "Jam", "Jacket"},
	"K": {"Kite", "Key", "Kangaroo"},
	"L": {"Lion", "Lemon", "Leaf"},
	"M": {"Monkey", "Moon", "Mouse"},
	"N": {"Nest", "Nut", "Nose"},
	"O": {"Octopus", "Orange", "Owl"},
	"P": {"Penguin", "Pizza", "Panda"},
	"Q": {"Queen", "Quilt", "Question"},
	"R": {"Rabbit", "Rainbow", "Robot"},
	"S": {"Sun", "Snake", "Star"},
	"T": {"Tree", "Tiger", "Train"},
	"U": {"Umbrella", "Unicorn", "Up"},
	"V": {"Violin", "Volcano", "Vegetable"},
	"W": {"Whale", "Water", "Window"},
	"X": {"Xylophone", "X-ray", "Box"},
	"Y": {"Yo-yo", "Yellow", "Yogurt"},
	"Z": {"Zebra", "Zoo", "Zipper"},
}

var realLifeExamples = map[string][]string{
	"circle":    {"Clock", "Wheel", "Ball"},
	"square":    {"Window", "Box", "Tile"},
	"triangle":  {"Pizza Slice", "Roof", "Road Sign"},
	"rectangle": {"Door", "Book", "TV"},
	"oval":      {"Egg", "Mirror", "Football"},
	"star":      {"Star in Sky", "Starfish", "Star Badge"},
	"heart":     {"Heart Symbol", "Valentine Card", "Candy"},
	"diamond":   {"Playing Card", "Kite", "Jewel"},
	"pentagon":  {"Soccer Ball Patch", "House Drawing", "Pentagon Building"},
	"hexagon":   {"Honeycomb", "Nut Bolt", "Floor Tile"},
}

var defaultCatalog = newCatalog()

func newCatalog() *Catalog {
	counts := make(map[string]int, len(numbers))
	for i, n := range numbers {
		counts[n] = i + 1
	}

	return &Catalog{
		items: map[string][]string{
			CategoryAlphabets: letters,
			CategoryNumbers:   numbers,
			CategoryShapes:    shapes,
		},
		letterExamples:   letterExamples,
		countTargets:     counts,
		realLifeExamples: realLifeExamples,
	}
}

// Default returns the built-in catalog shared by the whole process.
func Default() *Catalog {
	return defaultCatalog
}

// Categories returns all known category identifiers in display order.
func (c *Catalog) Categories() []string {
	return []string{CategoryAlphabets, CategoryNumbers, CategoryShapes}
}

// Exists reports whether the category is recognized.
func (c *Catalog) Exists(category string) bool {
	_, ok := c.items[category]
	return ok
}

// Items returns the ordered item list for a category, or nil for an
// unknown category.
func (c *Catalog) Items(category string) []string {
	return c.items[category]
}

// Count returns the number of items in a category.
func (c *Catalog) Count(category string) int {
	return len(c.items[category])
}

// Contains reports whether item belongs to category.
func (c *Catalog) Contains(category, item string) bool {
	for _, it := range c.items[category] {
		if it == item {
			return true
		}
	}
	return false
}

// Auxiliary returns the curated auxiliary data for an item: example
// words for letters, counting labels for numbers, real-life examples
// for shapes. It returns an empty slice, never an error, when nothing
// is curated for the item.
func (c *Catalog) Auxiliary(category, item string) []string {
	switch category {
	case CategoryAlphabets:
		if ex, ok := c.letterExamples[item]; ok {
			return ex
		}
	case CategoryNumbers:
		if n, ok := c.countTargets[item]; ok {
			return []string{countLabel(n)}
		}
	case CategoryShapes:
		if ex, ok := c.realLifeExamples[item]; ok {
			return ex
		}
	}
	return []string{}
}

// CountTarget returns the counting target for a number item and whether
// the item is a known number.
func (c *Catalog) CountTarget(item string) (int, bool) {
	n, ok := c.countTargets[item]
	return n, ok
}

func countLabel(n int) string {
	if n == 1 {
		return "1 object"
	}
	return strconv.Itoa(n) + " objects"
}
