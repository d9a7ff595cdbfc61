package questdata

import (
	"errors"
	"fmt"

	"github.com/tkhalil/sealquest/internal/quest"
)

// Registry holds loaded fragment definitions and provides lookup by region.
type Registry struct {
	byRegion  map[string]*FragmentDef
	fragments []FragmentDef
}

// NewRegistry creates a registry from loaded fragment definitions.
// Catalog order is preserved; a duplicate region keeps its first definition
// for lookup, matching the first-match recovery rule in the core.
func NewRegistry(fragments []FragmentDef) *Registry {
	registry := &Registry{
		byRegion:  make(map[string]*FragmentDef),
		fragments: fragments,
	}
	for i := range fragments {
		if _, exists := registry.byRegion[fragments[i].Region]; !exists {
			registry.byRegion[fragments[i].Region] = &fragments[i]
		}
	}
	return registry
}

// LoadRegistry loads and creates a registry from the embedded fragments.json.
func LoadRegistry() (*Registry, error) {
	fragments, err := LoadFragments()
	if err != nil {
		return nil, err
	}
	if len(fragments) == 0 {
		return nil, errors.New("no fragments loaded from fragments.json")
	}
	return NewRegistry(fragments), nil
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByRegion returns the definition for a region, or nil if not found.
func (r *Registry) GetByRegion(region quest.Region) *FragmentDef {
	return r.byRegion[region.ID()]
}

// All returns all fragment definitions in catalog order.
func (r *Registry) All() []FragmentDef {
	return r.fragments
}

// Count returns the number of fragment definitions in the registry.
func (r *Registry) Count() int {
	return len(r.fragments)
}

// BuildCatalog converts the loaded definitions into the core fragment
// sequence, preserving catalog order. Definitions naming an unknown
// region are rejected rather than silently skipped: the data file is
// authoritative and a typo there should fail loudly at startup.
func (r *Registry) BuildCatalog() ([]quest.SealFragment, error) {
	catalog := make([]quest.SealFragment, 0, len(r.fragments))
	for i := range r.fragments {
		region, ok := quest.RegionFromID(r.fragments[i].Region)
		if !ok {
			return nil, fmt.Errorf("fragments.json entry %d names unknown region %q", i, r.fragments[i].Region)
		}
		catalog = append(catalog, quest.NewSealFragment(region, r.fragments[i].Description))
	}
	return catalog, nil
}
