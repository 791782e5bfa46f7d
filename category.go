package hrid

import "strconv"

type categoryKind int

const (
	kindWords categoryKind = iota
	kindRange
)

// Category is one named pool of interchangeable candidates usable as a
// segment of a generated identifier. It is either a fixed word list or a
// procedural integer range rendered as decimal strings.
type Category struct {
	kind  categoryKind
	words []string
	min   int
	max   int
}

// Words builds a Category from a fixed candidate list.
func Words(words ...string) Category {
	return Category{kind: kindWords, words: words}
}

// NumberRange builds a Category whose candidates are the integers from min
// to max inclusive, rendered as decimal strings.
func NumberRange(min, max int) Category {
	return Category{kind: kindRange, min: min, max: max}
}

func (c Category) valid() bool {
	if c.kind == kindRange {
		return c.min <= c.max
	}
	return len(c.words) > 0
}

// Size returns the number of candidates.
func (c Category) Size() int {
	if c.kind == kindRange {
		return c.max - c.min + 1
	}
	return len(c.words)
}

// Contains reports whether word is one of the category's candidates.
func (c Category) Contains(word string) bool {
	_, ok := c.index(word)
	return ok
}

// pick returns the candidate at position i, 0 <= i < size.
func (c Category) pick(i int) string {
	if c.kind == kindRange {
		return strconv.Itoa(c.min + i)
	}
	return c.words[i]
}

// index returns the position of a candidate, or false if the word is not a
// candidate of this category.
func (c Category) index(word string) (int, bool) {
	if c.kind == kindRange {
		n, err := strconv.Atoi(word)
		if err != nil || n < c.min || n > c.max {
			return 0, false
		}
		// Reject forms like "042" that Atoi accepts but pick never emits.
		if word != strconv.Itoa(n) {
			return 0, false
		}
		return n - c.min, true
	}
	for i, w := range c.words {
		if w == word {
			return i, true
		}
	}
	return 0, false
}
