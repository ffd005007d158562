package quiz

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"

	"kidlearn/internal/content"
	"kidlearn/internal/models"
)

var (
	ErrInvalidCategory = errors.New("invalid category")
	ErrUnknownItem     = errors.New("unknown item")
)

// How many questions a quiz session gets.
const (
	questionsPerItem     = 3
	itemsPerCategoryQuiz = 5
)

// Generator produces multiple-choice quiz questions from the content
// catalog. The random source is injected so tests can seed it; access
// to it is serialized because handlers call the generator concurrently.
type Generator struct {
	catalog *content.Catalog

	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator creates a generator backed by the given catalog and
// random source.
func NewGenerator(catalog *content.Catalog, rng *rand.Rand) *Generator {
	return &Generator{catalog: catalog, rng: rng}
}

// ForItem generates the question set for a single item. Question order
// and option order are shuffled on every call; the correct answer is
// always exactly one of the options.
func (g *Generator) ForItem(category, item string) ([]models.QuizQuestion, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.forItem(category, item)
}

// ForCategory generates a category-wide quiz: up to five random items
// without replacement, one question each.
func (g *Generator) ForCategory(category string) ([]models.QuizQuestion, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	items := g.catalog.Items(category)
	if items == nil {
		return nil, ErrInvalidCategory
	}

	picked := make([]string, len(items))
	copy(picked, items)
	g.rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	if len(picked) > itemsPerCategoryQuiz {
		picked = picked[:itemsPerCategoryQuiz]
	}

	questions := make([]models.QuizQuestion, 0, len(picked))
	for _, item := range picked {
		qs, err := g.forItem(category, item)
		if err != nil {
			return nil, err
		}
		if len(qs) > 0 {
			questions = append(questions, qs[0])
		}
	}

	return questions, nil
}

func (g *Generator) forItem(category, item string) ([]models.QuizQuestion, error) {
	if !g.catalog.Exists(category) {
		return nil, ErrInvalidCategory
	}
	if !g.catalog.Contains(category, item) {
		return nil, ErrUnknownItem
	}

	switch category {
	case content.CategoryAlphabets:
		return g.alphabetQuestions(item), nil
	case content.CategoryNumbers:
		return g.numberQuestions(item), nil
	case content.CategoryShapes:
		return g.shapeQuestions(item), nil
	}
	return nil, ErrInvalidCategory
}

// alphabetQuestions builds the three letter templates: word recognition,
// uppercase identification and lowercase identification.
func (g *Generator) alphabetQuestions(letter string) []models.QuizQuestion {
	correctWord := g.firstExampleWord(letter)

	wordOptions := []string{correctWord}
	for _, other := range g.randomLetters(letter, 3) {
		wordOptions = append(wordOptions, g.firstExampleWord(other))
	}
	g.shuffleStrings(wordOptions)

	upper := letter
	lower := strings.ToLower(letter)

	upperOptions := []string{upper, lower}
	for _, other := range g.randomLetters(letter, 2) {
		upperOptions = append(upperOptions, other)
	}
	g.shuffleStrings(upperOptions)

	lowerOptions := []string{lower, upper}
	for _, other := range g.randomLetters(letter, 2) {
		lowerOptions = append(lowerOptions, strings.ToLower(other))
	}
	g.shuffleStrings(lowerOptions)

	questions := []models.QuizQuestion{
		{
			Question:      fmt.Sprintf("Which word starts with the letter %s?", letter),
			Options:       wordOptions,
			CorrectAnswer: correctWord,
		},
		{
			Question:      fmt.Sprintf("Find the uppercase letter %s", letter),
			Options:       upperOptions,
			CorrectAnswer: upper,
		},
		{
			Question:      fmt.Sprintf("Find the lowercase letter %s", lower),
			Options:       lowerOptions,
			CorrectAnswer: lower,
		},
	}

	g.shuffleQuestions(questions)
	return questions
}

// numberQuestions builds the numeric templates: counting, successor and
// predecessor, plus an addition/subtraction pair for numbers above five.
// Three questions are selected from the pool after shuffling.
func (g *Generator) numberQuestions(item string) []models.QuizQuestion {
	n, ok := g.catalog.CountTarget(item)
	if !ok {
		// Contains already passed, so the item is a number string.
		n, _ = strconv.Atoi(item)
	}

	pool := []models.QuizQuestion{
		{
			Question:      "How many objects are there?",
			Options:       g.numberOptions(n, n+1, n-1, n+2),
			CorrectAnswer: strconv.Itoa(n),
			Image:         "counting",
		},
		{
			Question:      fmt.Sprintf("Which number comes after %d?", n-1),
			Options:       g.numberOptions(n, n+1, n-1, n+2),
			CorrectAnswer: strconv.Itoa(n),
		},
		{
			Question:      fmt.Sprintf("Which number comes before %d?", n+1),
			Options:       g.numberOptions(n, n+1, n-1, n+2),
			CorrectAnswer: strconv.Itoa(n),
		},
	}

	if n > 5 {
		a := n / 2
		b := n - a

		pool = append(pool,
			models.QuizQuestion{
				Question:      fmt.Sprintf("What is %d + %d?", a, b),
				Options:       g.numberOptions(n, n+1, n-1, a),
				CorrectAnswer: strconv.Itoa(n),
			},
			models.QuizQuestion{
				Question:      fmt.Sprintf("What is %d - %d?", n, b),
				Options:       g.numberOptions(a, a+1, a-1, b),
				CorrectAnswer: strconv.Itoa(a),
			},
		)
	}

	g.shuffleQuestions(pool)
	return pool[:questionsPerItem]
}

// shapeQuestions builds the two shape templates: name recognition and
// real-world object matching.
func (g *Generator) shapeQuestions(shape string) []models.QuizQuestion {
	allShapes := g.catalog.Items(content.CategoryShapes)

	nameOptions := []string{content.Capitalize(shape)}
	for _, other := range g.randomShapes(shape, allShapes, 3) {
		nameOptions = append(nameOptions, content.Capitalize(other))
	}
	g.shuffleStrings(nameOptions)

	correctObject := g.firstRealLifeExample(shape)
	objectOptions := []string{correctObject}
	seen := map[string]bool{correctObject: true}
	for len(objectOptions) < 4 {
		candidate := g.randomRealLifeExample(shape, allShapes)
		if seen[candidate] {
			continue
		}
		seen[candidate] = true
		objectOptions = append(objectOptions, candidate)
	}
	g.shuffleStrings(objectOptions)

	questions := []models.QuizQuestion{
		{
			Question:      "What shape is this?",
			Options:       nameOptions,
			CorrectAnswer: content.Capitalize(shape),
			Image:         shape,
		},
		{
			Question:      fmt.Sprintf("Which object is shaped like a %s?", shape),
			Options:       objectOptions,
			CorrectAnswer: correctObject,
		},
	}

	g.shuffleQuestions(questions)
	return questions
}

// numberOptions builds a shuffled option set around the correct value.
// Candidates are deduplicated and filtered to positive values, then
// padded with synthetic distractors above the largest candidate so every
// question offers exactly four distinct options.
func (g *Generator) numberOptions(correct int, candidates ...int) []string {
	values := []int{correct}
	seen := map[int]bool{correct: true}
	highest := correct

	for _, c := range candidates {
		if c > highest {
			highest = c
		}
		if c <= 0 || seen[c] {
			continue
		}
		seen[c] = true
		values = append(values, c)
	}

	for len(values) < 4 {
		highest++
		if seen[highest] {
			continue
		}
		seen[highest] = true
		values = append(values, highest)
	}

	options := make([]string, len(values))
	for i, v := range values {
		options[i] = strconv.Itoa(v)
	}
	g.shuffleStrings(options)
	return options
}

// firstExampleWord returns the first curated example word for a letter,
// or a synthetic filler word when nothing is curated.
func (g *Generator) firstExampleWord(letter string) string {
	if ex := g.catalog.Auxiliary(content.CategoryAlphabets, letter); len(ex) > 0 {
		return ex[0]
	}
	return letter + "ord"
}

// firstRealLifeExample returns the first curated real-world example for
// a shape, or a synthetic placeholder.
func (g *Generator) firstRealLifeExample(shape string) string {
	if ex := g.catalog.Auxiliary(content.CategoryShapes, shape); len(ex) > 0 {
		return ex[0]
	}
	return content.Capitalize(shape) + " Toy"
}

// randomRealLifeExample draws one example from a random shape other than
// exclude. Repetition across calls is allowed; the pools are small.
func (g *Generator) randomRealLifeExample(exclude string, allShapes []string) string {
	others := g.randomShapes(exclude, allShapes, 1)
	if len(others) == 0 {
		return content.Capitalize(exclude) + " Toy"
	}
	ex := g.catalog.Auxiliary(content.CategoryShapes, others[0])
	if len(ex) == 0 {
		return content.Capitalize(others[0]) + " Toy"
	}
	return ex[g.rng.Intn(len(ex))]
}

// randomLetters picks n distinct letters different from exclude.
func (g *Generator) randomLetters(exclude string, n int) []string {
	return g.sample(g.catalog.Items(content.CategoryAlphabets), exclude, n)
}

// randomShapes picks n distinct shapes different from exclude.
func (g *Generator) randomShapes(exclude string, all []string, n int) []string {
	return g.sample(all, exclude, n)
}

func (g *Generator) sample(items []string, exclude string, n int) []string {
	others := make([]string, 0, len(items))
	for _, it := range items {
		if it != exclude {
			others = append(others, it)
		}
	}
	g.rng.Shuffle(len(others), func(i, j int) {
		others[i], others[j] = others[j], others[i]
	})
	if len(others) > n {
		others = others[:n]
	}
	return others
}

func (g *Generator) shuffleStrings(s []string) {
	g.rng.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}

func (g *Generator) shuffleQuestions(qs []models.QuizQuestion) {
	g.rng.Shuffle(len(qs), func(i, j int) {
		qs[i], qs[j] = qs[j], qs[i]
	})
}
