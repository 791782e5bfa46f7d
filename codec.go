package hrid

import (
	"hash/fnv"
	"math"
	"math/big"
	"math/bits"
	"math/rand"
	"strings"
)

// Golden-ratio-derived multipliers tried first when no scramble seed is set.
var scrambleMultipliers = [...]uint64{2654435769, 1640531527, 2166136261, 16777619}

// initCodec computes the identifier space size and, when scrambling is on,
// the multiplier and its modular inverse. Called once from New.
func (g *Generator) initCodec(scrambleSeed string) {
	space := uint64(1)
	for _, pool := range g.pools {
		hi, lo := bits.Mul64(space, uint64(pool.Size()))
		if hi != 0 {
			return
		}
		space = lo
	}
	g.space, g.spaceOK = space, true
	if !g.scramble {
		return
	}
	g.multiplier = findCoprime(space, scrambleSeed) % space
	g.inverse = modInverse(g.multiplier, space)
}

// MaxValue returns the largest integer Encode accepts: the identifier space
// size minus one. When the space exceeds the uint64 range it returns
// math.MaxUint64 and Encode/Decode return ErrSpaceOverflow.
func (g *Generator) MaxValue() uint64 {
	if !g.spaceOK {
		return math.MaxUint64
	}
	return g.space - 1
}

// Encode maps an integer in [0, MaxValue] to an identifier using a
// mixed-radix number system over the configured element sequences. The
// mapping is bijective, so distinct integers always yield distinct
// identifiers. With scrambling on (the default) consecutive integers encode
// to visually unrelated identifiers.
func (g *Generator) Encode(n uint64) (string, error) {
	if !g.spaceOK {
		return "", ErrSpaceOverflow
	}
	if n >= g.space {
		return "", NewErrValueOutOfRange(n, g.space-1)
	}
	if g.scramble {
		n = mulMod(n, g.multiplier, g.space)
	}
	parts := make([]string, len(g.pools))
	for i := len(g.pools) - 1; i >= 0; i-- {
		base := uint64(g.pools[i].Size())
		parts[i] = g.pools[i].pick(int(n % base))
		n /= base
	}
	return strings.Join(parts, g.delimiter), nil
}

// Decode inverts Encode, returning the integer an identifier encodes.
// Requires a non-empty delimiter.
func (g *Generator) Decode(id string) (uint64, error) {
	if !g.spaceOK {
		return 0, ErrSpaceOverflow
	}
	parts := strings.Split(id, g.delimiter)
	if len(parts) != len(g.pools) {
		return 0, NewErrSegmentCount(len(g.pools), len(parts))
	}
	var n uint64
	for i, part := range parts {
		idx, ok := g.pools[i].index(part)
		if !ok {
			return 0, NewErrUnknownWord(part, g.elements[i])
		}
		n = n*uint64(g.pools[i].Size()) + uint64(idx)
	}
	if g.scramble {
		n = mulMod(n, g.inverse, g.space)
	}
	return n, nil
}

// findCoprime picks a multiplier coprime to n. A non-empty seed selects the
// multiplier deterministically from the upper two thirds of the space;
// otherwise the well-known constants are tried before a linear scan.
func findCoprime(n uint64, seed string) uint64 {
	if n < 2 {
		return 1
	}
	if seed != "" {
		h := fnv.New64a()
		h.Write([]byte(seed))
		rng := rand.New(rand.NewSource(int64(h.Sum64())))
		lo := n / 3
		span := n - lo
		if span > math.MaxInt64 {
			span = math.MaxInt64
		}
		for i := 0; i < 1000; i++ {
			candidate := lo + uint64(rng.Int63n(int64(span)))
			if gcd(candidate, n) == 1 {
				return candidate
			}
		}
	}
	for _, c := range scrambleMultipliers {
		if gcd(c, n) == 1 {
			return c
		}
	}
	for c := n / 2; c < n; c++ {
		if gcd(c, n) == 1 {
			return c
		}
	}
	return 1
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// modInverse returns a^-1 mod m. findCoprime guarantees gcd(a, m) == 1.
func modInverse(a, m uint64) uint64 {
	if m == 1 {
		return 0
	}
	inv := new(big.Int).ModInverse(new(big.Int).SetUint64(a), new(big.Int).SetUint64(m))
	if inv == nil {
		return 0
	}
	return inv.Uint64()
}

// mulMod computes (a * b) mod m without overflowing uint64.
func mulMod(a, b, m uint64) uint64 {
	if m == 1 {
		return 0
	}
	hi, lo := bits.Mul64(a%m, b%m)
	_, rem := bits.Div64(hi, lo, m)
	return rem
}
