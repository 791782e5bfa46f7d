package hrid

// Catalog maps category names to their candidate pools. The built-in
// StandardWordLists and NiceWordLists are initialized once and never mutated;
// they may be shared freely across goroutines and Generator instances.
type Catalog map[string]Category

// WordLists adapts a plain name-to-words map into a Catalog. No filtering of
// word content is performed; structural validation (every referenced category
// non-empty) happens when the catalog is handed to New.
func WordLists(lists map[string][]string) Catalog {
	c := make(Catalog, len(lists))
	for name, words := range lists {
		c[name] = Words(words...)
	}
	return c
}
