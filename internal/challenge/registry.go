package challenge

import (
	"errors"
	"fmt"
	"sort"

	"github.com/verte-zerg/captcharun/internal/generator"
	"github.com/verte-zerg/captcharun/internal/model"
)

// Registry validation errors.
var (
	ErrEmptyRegistry = errors.New("challenge registry is empty")
	ErrInvalidEntry  = errors.New("invalid challenge entry")
	ErrNoEligible    = errors.New("no challenge is eligible")
)

// Constructor builds a fresh, already randomized challenge.
type Constructor func(gen *generator.Generator) Challenge

// Definition describes a challenge type before registration.
type Definition struct {
	ID         string
	New        Constructor
	Weight     int
	Difficulty model.Difficulty
}

// Entry is a registered challenge type with its unlock round resolved.
type Entry struct {
	ID         string
	New        Constructor
	Weight     int
	Difficulty model.Difficulty
	MinRound   int
}

// Eligible reports whether the entry may be dispensed in round.
func (e Entry) Eligible(round int) bool {
	return e.MinRound <= round
}

// Registry is the immutable catalogue of challenge types.
type Registry struct {
	entries []Entry
}

// NewRegistry validates defs and resolves each entry's unlock round from
// thresholds. At least one entry must be available in round 1.
func NewRegistry(thresholds model.Thresholds, defs ...Definition) (*Registry, error) {
	if len(defs) == 0 {
		return nil, ErrEmptyRegistry
	}
	seen := make(map[string]struct{}, len(defs))
	entries := make([]Entry, 0, len(defs))
	for _, def := range defs {
		if def.ID == "" {
			return nil, fmt.Errorf("%w: empty id", ErrInvalidEntry)
		}
		if _, ok := seen[def.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidEntry, def.ID)
		}
		seen[def.ID] = struct{}{}
		if def.New == nil {
			return nil, fmt.Errorf("%w: %q has no constructor", ErrInvalidEntry, def.ID)
		}
		if def.Weight <= 0 {
			return nil, fmt.Errorf("%w: %q has weight %d", ErrInvalidEntry, def.ID, def.Weight)
		}
		minRound, ok := thresholds[def.Difficulty]
		if !ok {
			return nil, fmt.Errorf("%w: %q has unknown difficulty %q", ErrInvalidEntry, def.ID, def.Difficulty)
		}
		entries = append(entries, Entry{
			ID:         def.ID,
			New:        def.New,
			Weight:     def.Weight,
			Difficulty: def.Difficulty,
			MinRound:   minRound,
		})
	}
	reg := &Registry{entries: entries}
	if len(reg.Eligible(1)) == 0 {
		return nil, fmt.Errorf("%w in round 1", ErrNoEligible)
	}
	return reg, nil
}

// Entries returns the entries in registration order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Lookup finds an entry by id.
func (r *Registry) Lookup(id string) (Entry, bool) {
	for _, e := range r.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Eligible returns the entries unlocked in round, in registration order.
func (r *Registry) Eligible(round int) []Entry {
	var out []Entry
	for _, e := range r.entries {
		if e.Eligible(round) {
			out = append(out, e)
		}
	}
	return out
}

// DefaultDefinitions returns the builtin challenge types. words feeds the
// typed-text challenge; nil uses the builtin bank.
func DefaultDefinitions(words []string) []Definition {
	return []Definition{
		{ID: TrafficLightID, New: NewTrafficLight, Weight: 10, Difficulty: model.Easy},
		{ID: BusID, New: NewBus, Weight: 10, Difficulty: model.Easy},
		{ID: CheckboxID, New: NewCheckbox, Weight: 10, Difficulty: model.Easy},
		{ID: CrosswalkID, New: NewCrosswalk, Weight: 7, Difficulty: model.Medium},
		{
			ID: ShuffleID,
			New: func(gen *generator.Generator) Challenge {
				return NewShuffleText(gen, words)
			},
			Weight:     5,
			Difficulty: model.Hard,
		},
	}
}

// WithWeights returns a copy of defs with weights replaced from overrides.
// Unknown ids are an error so typos in config do not pass silently.
func WithWeights(defs []Definition, overrides map[string]int) ([]Definition, error) {
	out := make([]Definition, len(defs))
	copy(out, defs)
	index := make(map[string]int, len(out))
	for i, def := range out {
		index[def.ID] = i
	}
	ids := make([]string, 0, len(overrides))
	for id := range overrides {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		i, ok := index[id]
		if !ok {
			return nil, fmt.Errorf("%w: weight override for unknown id %q", ErrInvalidEntry, id)
		}
		out[i].Weight = overrides[id]
	}
	return out, nil
}
