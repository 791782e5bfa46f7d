package hrid

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

// DefaultElements is the category sequence used when WithElements is not
// supplied.
var DefaultElements = []string{"adjective", "noun", "verb", "adverb"}

// Option configures a Generator.
type Option func(*config)

// config holds the configuration collected by New before validation.
type config struct {
	elements     []string
	delimiter    string
	catalog      Catalog
	seed         int64
	seeded       bool
	scramble     bool
	scrambleSeed string
}

func defaultConfig() *config {
	return &config{
		elements:  DefaultElements,
		delimiter: "-",
		catalog:   StandardWordLists,
		scramble:  true,
	}
}

// WithElements sets the ordered sequence of category names to draw from.
// Every name must exist in the active catalog.
func WithElements(elements ...string) Option {
	return func(c *config) {
		c.elements = elements
	}
}

// WithDelimiter sets the string placed between segments. Empty is allowed,
// though identifiers joined by an empty delimiter cannot be decoded.
func WithDelimiter(delimiter string) Option {
	return func(c *config) {
		c.delimiter = delimiter
	}
}

// WithWordLists sets the active catalog. Default is StandardWordLists.
func WithWordLists(catalog Catalog) Option {
	return func(c *config) {
		c.catalog = catalog
	}
}

// WithSeed seeds the generator's random source so the full sequence of
// Generate outputs is reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

// WithScramble controls whether Encode spreads consecutive integers across
// the identifier space. Default is true.
func WithScramble(enabled bool) Option {
	return func(c *config) {
		c.scramble = enabled
	}
}

// WithScrambleSeed selects the scramble multiplier deterministically from the
// given seed, so different namespaces (e.g. per-model names) scramble
// differently while each stays stable.
func WithScrambleSeed(seed string) Option {
	return func(c *config) {
		c.scrambleSeed = seed
	}
}

// Generator produces human-readable identifiers from an immutable
// configuration. All validation happens in New; Generate never fails.
//
// A Generator owns its random source and guards it with a mutex, so a single
// instance may be shared across goroutines. The catalog is read-only and
// shared without synchronization.
type Generator struct {
	elements  []string
	pools     []Category
	delimiter string

	mu  sync.Mutex
	rnd *rand.Rand

	space      uint64
	spaceOK    bool
	scramble   bool
	multiplier uint64
	inverse    uint64
}

// New builds a Generator from the given options. It validates eagerly: every
// configured element must name a category in the active catalog (else
// *ErrUnknownElement for the first missing one), and every catalog category
// must be structurally valid (else *ErrInvalidCatalog).
func New(opts ...Option) (*Generator, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	pools := make([]Category, len(cfg.elements))
	for i, name := range cfg.elements {
		cat, ok := cfg.catalog[name]
		if !ok {
			return nil, NewErrUnknownElement(name)
		}
		if !cat.valid() {
			return nil, NewErrInvalidCatalog(name)
		}
		pools[i] = cat
	}
	for name, cat := range cfg.catalog {
		if !cat.valid() {
			return nil, NewErrInvalidCatalog(name)
		}
	}

	seed := cfg.seed
	if !cfg.seeded {
		seed = time.Now().UnixNano()
	}

	g := &Generator{
		elements:  append([]string(nil), cfg.elements...),
		pools:     pools,
		delimiter: cfg.delimiter,
		rnd:       rand.New(rand.NewSource(seed)),
		scramble:  cfg.scramble,
	}
	g.initCodec(cfg.scrambleSeed)
	return g, nil
}

// MustNew is like New but panics on configuration errors. Useful for
// package-level generators with static configuration.
func MustNew(opts ...Option) *Generator {
	g, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// Generate returns a new identifier: one uniform independent draw per
// configured element, joined by the delimiter. Draws are with replacement,
// so repeated identifiers are possible.
func (g *Generator) Generate() string {
	segments := make([]string, len(g.pools))
	g.mu.Lock()
	for i, pool := range g.pools {
		segments[i] = pool.pick(g.rnd.Intn(pool.Size()))
	}
	g.mu.Unlock()
	return strings.Join(segments, g.delimiter)
}
