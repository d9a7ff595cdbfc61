package quest

// GameState owns the hero identity and the fragment catalog, and
// tracks recovery progress. It is not safe for concurrent use; the
// intended model is a single owner driving it from one goroutine.
type GameState struct {
	hero      Character
	fragments []SealFragment
}

// NewGameState creates a game state for the given hero and initial
// fragment catalog. The catalog is copied, so the caller's slice
// cannot alias the owned sequence. Its length is fixed thereafter.
func NewGameState(hero Character, fragments []SealFragment) *GameState {
	owned := make([]SealFragment, len(fragments))
	copy(owned, fragments)
	return &GameState{hero: hero, fragments: owned}
}

// Hero returns the hero identity.
func (g *GameState) Hero() Character { return g.hero }

// Fragments returns a copy of the fragment catalog in order.
func (g *GameState) Fragments() []SealFragment {
	out := make([]SealFragment, len(g.fragments))
	copy(out, g.fragments)
	return out
}

// RecoverFragment marks the first fragment bound to the given region
// as recovered. It returns true only when a flag actually flipped:
// re-recovering a fragment is a no-op, and a region with no fragment
// in the catalog is silently tolerated. It never fails.
//
// The scan stops at the first matching region, so if the catalog
// holds duplicate regions only the first is ever recoverable here.
func (g *GameState) RecoverFragment(region Region) bool {
	for i := range g.fragments {
		if g.fragments[i].region == region {
			if g.fragments[i].recovered {
				return false
			}
			g.fragments[i].recovered = true
			return true
		}
	}
	return false
}

// Recovered returns the number of recovered fragments.
func (g *GameState) Recovered() int {
	count := 0
	for i := range g.fragments {
		if g.fragments[i].recovered {
			count++
		}
	}
	return count
}

// Total returns the catalog size.
func (g *GameState) Total() int { return len(g.fragments) }

// Progress returns the recovered fraction in [0, 1]. An empty
// catalog reports 0.
func (g *GameState) Progress() float64 {
	if len(g.fragments) == 0 {
		return 0
	}
	return float64(g.Recovered()) / float64(len(g.fragments))
}

// Complete reports whether every fragment has been recovered. An
// empty catalog is never complete.
func (g *GameState) Complete() bool {
	return len(g.fragments) > 0 && g.Recovered() == len(g.fragments)
}
