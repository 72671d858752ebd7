// Package generator provides the game's random source.
package generator

import (
	"math/rand"
	"time"
)

// Generator wraps a seeded random source shared by the factory and the
// challenges it builds. It is not safe for concurrent use.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Intn returns a uniform int in [0, n). n must be > 0.
func (g *Generator) Intn(n int) int {
	return g.rnd.Intn(n)
}

// Float64 returns a uniform float in [0, 1).
func (g *Generator) Float64() float64 {
	return g.rnd.Float64()
}

// Range returns a uniform int in [lo, hi], both inclusive.
func (g *Generator) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rnd.Intn(hi-lo+1)
}

// Chance returns true with probability p.
func (g *Generator) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	return g.rnd.Float64() < p
}

// Sign returns -1 or 1 with equal probability.
func (g *Generator) Sign() int {
	if g.rnd.Intn(2) == 0 {
		return -1
	}
	return 1
}

// Sample returns k distinct indices from [0, n) in random order.
func (g *Generator) Sample(n, k int) []int {
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}
	perm := g.rnd.Perm(n)
	return perm[:k]
}

// Weighted returns an index chosen with probability proportional to its
// weight. Non-positive weights never win. Returns -1 when no weight is
// positive.
func (g *Generator) Weighted(weights []int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return -1
	}
	r := g.rnd.Intn(total)
	acc := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		acc += w
		if r < acc {
			return i
		}
	}
	return len(weights) - 1
}
