// Package hrid generates human-readable identifiers by joining randomly
// chosen words from categorized word lists, e.g. "calm-apple-hop-quietly".
// Such identifiers are a friendlier alternative to opaque IDs (UUIDs) for
// resources that humans read, type, or say out loud: environments, preview
// deployments, test fixtures, support tickets.
//
// The package maintains word-list data, selects one random word per
// configured category, and joins the results with a delimiter. It makes no
// uniqueness guarantee: draws are independent and with replacement, so
// repeated identifiers are possible. Callers that need a collision-free
// mapping can use Encode/Decode, which bijectively map integers onto the
// identifier space.
//
// # Architecture
//
//   - A Catalog maps category names to Category values. A Category is either
//     a fixed word list (Words) or a procedural integer range (NumberRange);
//     the built-in "number" category renders a random integer between 10 and
//     99. Two catalogs ship with the package: StandardWordLists and
//     NiceWordLists (curated to avoid awkward combinations, with extra
//     categories such as place, tree, weather, fabric, and mood). Both are
//     read-only after init and safe to share.
//   - A Generator holds an immutable configuration (element sequence,
//     delimiter, catalog) and its own random source. All configuration is
//     validated eagerly by New, so Generate never fails.
//   - When a seed is supplied, the source is seeded once at construction and
//     the full output sequence is reproducible. Without a seed the source is
//     time-seeded. Either way the source is guarded by a mutex, so a single
//     Generator may be shared across goroutines.
//
// # Usage
//
// Generate an identifier with the default adjective-noun-verb-adverb shape:
//
//	gen, err := hrid.New()
//	if err != nil {
//	    // configuration error
//	}
//	id := gen.Generate() // e.g. "calm-apple-hop-quietly"
//
// Customize the shape, delimiter, and word lists:
//
//	gen, err := hrid.New(
//	    hrid.WithElements("adjective", "animal", "number"),
//	    hrid.WithDelimiter("_"),
//	    hrid.WithWordLists(hrid.NiceWordLists),
//	)
//
// Supply a custom catalog from plain word lists:
//
//	gen, err := hrid.New(
//	    hrid.WithElements("color", "size", "animal"),
//	    hrid.WithWordLists(hrid.WordLists(map[string][]string{
//	        "color":  {"red", "blue", "green"},
//	        "size":   {"big", "small", "tiny"},
//	        "animal": {"cat", "dog", "bird"},
//	    })),
//	)
//
// Encode sequential database IDs as readable, visually distinct strings:
//
//	id, err := gen.Encode(42)
//	n, err := gen.Decode(id) // n == 42
//
// # Options
//
//   - WithElements sets the ordered category sequence
//     (default: adjective, noun, verb, adverb).
//   - WithDelimiter sets the join string (default "-"; empty is allowed).
//   - WithWordLists sets the active catalog (default StandardWordLists).
//   - WithSeed makes the output sequence deterministic.
//   - WithScramble and WithScrambleSeed control how Encode spreads
//     consecutive integers across the identifier space.
package hrid
