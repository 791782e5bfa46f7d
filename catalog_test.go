package hrid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hrid"
)

func TestWordListsAdapter(t *testing.T) {
	t.Parallel()

	catalog := hrid.WordLists(map[string][]string{
		"greeting": {"hello", "hi", "hey"},
		"target":   {"world", "universe", "everyone"},
	})

	require.Len(t, catalog, 2)
	assert.Equal(t, 3, catalog["greeting"].Size())
	assert.True(t, catalog["greeting"].Contains("hello"))
	assert.False(t, catalog["greeting"].Contains("world"))

	gen, err := hrid.New(
		hrid.WithElements("greeting", "target"),
		hrid.WithWordLists(catalog),
	)
	require.NoError(t, err)
	assert.NotEmpty(t, gen.Generate())
}

func TestCategoryWords(t *testing.T) {
	t.Parallel()

	c := hrid.Words("alpha", "beta", "gamma")
	assert.Equal(t, 3, c.Size())
	assert.True(t, c.Contains("beta"))
	assert.False(t, c.Contains("delta"))
	assert.False(t, c.Contains(""))
}

func TestCategoryNumberRange(t *testing.T) {
	t.Parallel()

	c := hrid.NumberRange(10, 99)
	assert.Equal(t, 90, c.Size())

	tests := []struct {
		word string
		want bool
	}{
		{"10", true},
		{"42", true},
		{"99", true},
		{"9", false},
		{"100", false},
		{"042", false}, // zero-padded forms are never emitted
		{"-5", false},
		{"ten", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Contains(tt.word))
		})
	}
}

func TestNumberRangeSingleValue(t *testing.T) {
	t.Parallel()

	gen, err := hrid.New(
		hrid.WithElements("one"),
		hrid.WithWordLists(hrid.Catalog{"one": hrid.NumberRange(7, 7)}),
	)
	require.NoError(t, err)
	assert.Equal(t, "7", gen.Generate())
}

func TestCustomNumberRangeDraws(t *testing.T) {
	t.Parallel()

	gen, err := hrid.New(
		hrid.WithElements("digit"),
		hrid.WithWordLists(hrid.Catalog{"digit": hrid.NumberRange(1, 3)}),
	)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		id := gen.Generate()
		assert.Contains(t, []string{"1", "2", "3"}, id)
		seen[id] = true
	}
	assert.Len(t, seen, 3, "all range values should appear in 200 draws")
}
