package registry

import (
	"fmt"
	"strings"
	"sync"

	"github.com/ross1116/critterbattlecli/internal/typechart"
)

// Registry holds the read-only species, move and item catalogs. It is built
// once at startup and passed to the battle manager and AI by reference, so
// tests can load fixture catalogs instead of the built-in one. After a
// successful Load it is safe for concurrent reads: nothing mutates it.
type Registry struct {
	once    sync.Once
	loadErr error

	species map[string]*Species
	moves   map[string]*Move
	items   map[string]*Item

	speciesByName map[string]*Species
	movesByName   map[string]*Move
	itemsByName   map[string]*Item
}

func New() *Registry {
	return &Registry{
		species:       make(map[string]*Species),
		moves:         make(map[string]*Move),
		items:         make(map[string]*Item),
		speciesByName: make(map[string]*Species),
		movesByName:   make(map[string]*Move),
		itemsByName:   make(map[string]*Item),
	}
}

// Load populates the registry from the given catalog. The first call wins;
// repeated calls are no-ops returning the first call's result. A malformed
// catalog (duplicate ids, unknown types, dangling references) is a
// data-integrity bug and fails the load outright.
func (r *Registry) Load(species []Species, moves []Move, items []Item) error {
	r.once.Do(func() {
		r.loadErr = r.populate(species, moves, items)
	})
	return r.loadErr
}

// LoadBuiltin loads the built-in catalog.
func (r *Registry) LoadBuiltin() error {
	return r.Load(builtinSpecies, builtinMoves, builtinItems)
}

func (r *Registry) populate(species []Species, moves []Move, items []Item) error {
	for i := range moves {
		m := moves[i]
		if m.ID == "" {
			return fmt.Errorf("move %q has empty id", m.Name)
		}
		if _, dup := r.moves[m.ID]; dup {
			return fmt.Errorf("duplicate move id %q", m.ID)
		}
		if _, err := typechart.ParseType(string(m.Type)); err != nil {
			return fmt.Errorf("move %q: %w", m.ID, err)
		}
		if m.Accuracy < 0 || m.Accuracy > 100 {
			return fmt.Errorf("move %q has accuracy %d outside [0,100]", m.ID, m.Accuracy)
		}
		r.moves[m.ID] = &m
		r.movesByName[strings.ToLower(m.Name)] = &m
	}

	for i := range species {
		s := species[i]
		if s.ID == "" {
			return fmt.Errorf("species %q has empty id", s.Name)
		}
		if _, dup := r.species[s.ID]; dup {
			return fmt.Errorf("duplicate species id %q", s.ID)
		}
		if len(s.Types) == 0 || len(s.Types) > 2 {
			return fmt.Errorf("species %q must have 1 or 2 types, has %d", s.ID, len(s.Types))
		}
		for _, t := range s.Types {
			if _, err := typechart.ParseType(string(t)); err != nil {
				return fmt.Errorf("species %q: %w", s.ID, err)
			}
		}
		if s.CatchRate < 0 || s.CatchRate > 255 {
			return fmt.Errorf("species %q has catch rate %d outside [0,255]", s.ID, s.CatchRate)
		}
		for _, lm := range s.Learnset {
			if _, ok := r.moves[lm.MoveID]; !ok {
				return fmt.Errorf("species %q learnset references unknown move %q", s.ID, lm.MoveID)
			}
		}
		r.species[s.ID] = &s
		r.speciesByName[strings.ToLower(s.Name)] = &s
	}

	// Evolution targets can only be checked once every species is indexed.
	for _, s := range r.species {
		if s.EvolvesInto == "" {
			continue
		}
		if _, ok := r.species[s.EvolvesInto]; !ok {
			return fmt.Errorf("species %q evolves into unknown species %q", s.ID, s.EvolvesInto)
		}
		if s.EvolveLevel <= 0 {
			return fmt.Errorf("species %q has an evolution target but no evolve level", s.ID)
		}
	}

	for i := range items {
		it := items[i]
		if it.ID == "" {
			return fmt.Errorf("item %q has empty id", it.Name)
		}
		if _, dup := r.items[it.ID]; dup {
			return fmt.Errorf("duplicate item id %q", it.ID)
		}
		r.items[it.ID] = &it
		r.itemsByName[strings.ToLower(it.Name)] = &it
	}

	return nil
}

// SpeciesByID returns the species for id, or ok=false when absent. Absence is
// a normal condition callers must handle, never a panic.
func (r *Registry) SpeciesByID(id string) (*Species, bool) {
	s, ok := r.species[id]
	return s, ok
}

func (r *Registry) MoveByID(id string) (*Move, bool) {
	m, ok := r.moves[id]
	return m, ok
}

func (r *Registry) ItemByID(id string) (*Item, bool) {
	it, ok := r.items[id]
	return it, ok
}

// SpeciesByName looks a species up by display name, case-insensitively.
func (r *Registry) SpeciesByName(name string) (*Species, bool) {
	s, ok := r.speciesByName[strings.ToLower(name)]
	return s, ok
}

func (r *Registry) MoveByName(name string) (*Move, bool) {
	m, ok := r.movesByName[strings.ToLower(name)]
	return m, ok
}

func (r *Registry) ItemByName(name string) (*Item, bool) {
	it, ok := r.itemsByName[strings.ToLower(name)]
	return it, ok
}

func (r *Registry) AllSpecies() []*Species {
	out := make([]*Species, 0, len(r.species))
	for _, s := range r.species {
		out = append(out, s)
	}
	return out
}

func (r *Registry) AllMoves() []*Move {
	out := make([]*Move, 0, len(r.moves))
	for _, m := range r.moves {
		out = append(out, m)
	}
	return out
}

func (r *Registry) AllItems() []*Item {
	out := make([]*Item, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, it)
	}
	return out
}
