package content

import (
	"fmt"
	"strings"
)

// LessonContent is the material shown on a lesson page for one item.
type LessonContent struct {
	Category    string   `json:"category"`
	Item        string   `json:"item"`
	Examples    []string `json:"examples"`
	Description string   `json:"description"`
	FunFact     string   `json:"funFact,omitempty"`
}

// Fun facts are curated for a subset of items; the rest get a lesson
// without one.
var funFacts = map[string]string{
	CategoryAlphabets + "/A": "A is the most common letter in the English language!",
	CategoryAlphabets + "/B": "The letter B started out as a pictograph of a house!",
	CategoryNumbers + "/1":   "The number 1 is neither prime nor composite!",
	CategoryNumbers + "/2":   "Two is the only even prime number!",
	CategoryShapes + "/circle": "A circle has no corners at all!",
	CategoryShapes + "/square": "A square is a rectangle whose sides are all equal!",
}

// Lesson returns the lesson content for an item, or false when the item
// is not part of the category.
func (c *Catalog) Lesson(category, item string) (LessonContent, bool) {
	if !c.Contains(category, item) {
		return LessonContent{}, false
	}

	return LessonContent{
		Category:    category,
		Item:        item,
		Examples:    c.Auxiliary(category, item),
		Description: c.describe(category, item),
		FunFact:     funFacts[category+"/"+item],
	}, true
}

func (c *Catalog) describe(category, item string) string {
	switch category {
	case CategoryAlphabets:
		return fmt.Sprintf("%s is letter %d of the alphabet", item, c.position(category, item))
	case CategoryNumbers:
		n, _ := c.CountTarget(item)
		return fmt.Sprintf("The number %d comes %s", n, ordinalPhrase(n))
	case CategoryShapes:
		return fmt.Sprintf("A %s is a shape you can spot all around you", item)
	}
	return ""
}

func (c *Catalog) position(category, item string) int {
	for i, it := range c.items[category] {
		if it == item {
			return i + 1
		}
	}
	return 0
}

func ordinalPhrase(n int) string {
	switch n {
	case 1:
		return "first when you count"
	case 2:
		return "second when you count"
	case 3:
		return "third when you count"
	default:
		return fmt.Sprintf("in position %d when you count", n)
	}
}

// Capitalize upper-cases the first letter of an item name, used for
// shape display labels.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
