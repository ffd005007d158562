package content

import "testing"

func TestCatalogItemCounts(t *testing.T) {
	c := Default()

	tests := []struct {
		category string
		want     int
	}{
		{CategoryAlphabets, 26},
		{CategoryNumbers, 20},
		{CategoryShapes, 10},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			items := c.Items(tt.category)
			if len(items) != tt.want {
				t.Errorf("Items(%s) returned %d items, want %d", tt.category, len(items), tt.want)
			}

			seen := make(map[string]bool, len(items))
			for _, item := range items {
				if seen[item] {
					t.Errorf("duplicate item %q in category %s", item, tt.category)
				}
				seen[item] = true
			}
		})
	}
}

func TestCatalogExists(t *testing.T) {
	c := Default()

	for _, category := range c.Categories() {
		if !c.Exists(category) {
			t.Errorf("Exists(%s) = false, want true", category)
		}
	}

	if c.Exists("colors") {
		t.Error("Exists(colors) = true, want false")
	}
}

func TestAuxiliaryNeverNil(t *testing.T) {
	c := Default()

	for _, category := range c.Categories() {
		for _, item := range c.Items(category) {
			aux := c.Auxiliary(category, item)
			if aux == nil {
				t.Errorf("Auxiliary(%s, %s) returned nil", category, item)
			}
			if len(aux) == 0 {
				t.Errorf("Auxiliary(%s, %s) has no curated data", category, item)
			}
		}
	}

	// Unknown items fall back to an empty slice rather than failing.
	if aux := c.Auxiliary(CategoryAlphabets, "AA"); len(aux) != 0 {
		t.Errorf("Auxiliary for unknown item = %v, want empty", aux)
	}
}

func TestCountTargets(t *testing.T) {
	c := Default()

	for i, item := range c.Items(CategoryNumbers) {
		n, ok := c.CountTarget(item)
		if !ok {
			t.Fatalf("CountTarget(%s) not found", item)
		}
		if n != i+1 {
			t.Errorf("CountTarget(%s) = %d, want %d", item, n, i+1)
		}
	}
}

func TestLesson(t *testing.T) {
	c := Default()

	lesson, ok := c.Lesson(CategoryAlphabets, "A")
	if !ok {
		t.Fatal("Lesson(alphabets, A) not found")
	}
	if len(lesson.Examples) != 3 {
		t.Errorf("expected 3 examples for A, got %d", len(lesson.Examples))
	}
	if lesson.Examples[0] != "Apple" {
		t.Errorf("first example for A = %q, want Apple", lesson.Examples[0])
	}
	if lesson.FunFact == "" {
		t.Error("expected a fun fact for A")
	}

	if _, ok := c.Lesson(CategoryShapes, "cube"); ok {
		t.Error("Lesson(shapes, cube) should not exist")
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"circle", "Circle"},
		{"Star", "Star"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Capitalize(tt.in); got != tt.want {
			t.Errorf("Capitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
