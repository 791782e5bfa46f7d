package hrid_test

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/hrid"
)

func Example() {
	gen := hrid.MustNew(hrid.WithSeed(42))

	id := gen.Generate()
	fmt.Println(len(strings.Split(id, "-")))
	// Output: 4
}

func ExampleWithWordLists() {
	gen := hrid.MustNew(
		hrid.WithElements("color", "size", "animal"),
		hrid.WithWordLists(hrid.WordLists(map[string][]string{
			"color":  {"red", "blue", "green"},
			"size":   {"big", "small", "tiny"},
			"animal": {"cat", "dog", "bird"},
		})),
		hrid.WithSeed(7),
	)

	id := gen.Generate()
	fmt.Println(len(strings.Split(id, "-")))
	// Output: 3
}

func ExampleGenerator_Encode() {
	gen := hrid.MustNew(
		hrid.WithElements("color", "size", "animal"),
		hrid.WithWordLists(hrid.WordLists(map[string][]string{
			"color":  {"red", "blue", "green"},
			"size":   {"big", "small", "tiny"},
			"animal": {"cat", "dog", "bird"},
		})),
		hrid.WithScramble(false),
	)

	id, _ := gen.Encode(9)
	fmt.Println(id)
	// Output: blue-big-cat
}

func ExampleGenerator_Decode() {
	gen := hrid.MustNew(
		hrid.WithElements("color", "size", "animal"),
		hrid.WithWordLists(hrid.WordLists(map[string][]string{
			"color":  {"red", "blue", "green"},
			"size":   {"big", "small", "tiny"},
			"animal": {"cat", "dog", "bird"},
		})),
		hrid.WithScramble(false),
	)

	n, _ := gen.Decode("blue-big-cat")
	fmt.Println(n)
	// Output: 9
}
