// Package factory dispenses challenge instances for each round.
package factory

import (
	"fmt"

	"github.com/verte-zerg/captcharun/internal/challenge"
	"github.com/verte-zerg/captcharun/internal/generator"
)

// Factory draws challenges from a registry by weight, never handing out
// the same type twice in a row while an alternative is unlocked.
type Factory struct {
	reg    *challenge.Registry
	gen    *generator.Generator
	lastID string
}

// New returns a Factory over reg.
func New(reg *challenge.Registry, gen *generator.Generator) *Factory {
	return &Factory{reg: reg, gen: gen}
}

// Next builds a fresh challenge for round. It fails only when the
// registry has nothing unlocked for round.
func (f *Factory) Next(round int) (challenge.Challenge, error) {
	eligible := f.reg.Eligible(round)
	if len(eligible) == 0 {
		return nil, fmt.Errorf("failed to pick challenge for round %d: %w", round, challenge.ErrNoEligible)
	}
	pool := make([]challenge.Entry, 0, len(eligible))
	for _, e := range eligible {
		if e.ID != f.lastID {
			pool = append(pool, e)
		}
	}
	if len(pool) == 0 {
		pool = eligible
	}
	weights := make([]int, len(pool))
	for i, e := range pool {
		weights[i] = e.Weight
	}
	idx := f.gen.Weighted(weights)
	if idx < 0 {
		return nil, fmt.Errorf("failed to pick challenge for round %d: %w", round, challenge.ErrNoEligible)
	}
	entry := pool[idx]
	f.lastID = entry.ID
	return entry.New(f.gen), nil
}

// LastID returns the id of the most recent challenge, or "".
func (f *Factory) LastID() string {
	return f.lastID
}

// ResetHistory forgets the last challenge so a new game starts
// unconstrained.
func (f *Factory) ResetHistory() {
	f.lastID = ""
}
