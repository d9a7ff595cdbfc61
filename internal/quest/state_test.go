package quest

import "testing"

func newTestState() *GameState {
	hero := NewCharacter("Amir ibn Khalid", "Wayfarer")
	return NewGameState(hero, []SealFragment{
		NewSealFragment(EmptyQuarter, "A shard half-buried in the dunes"),
		NewSealFragment(HijazMountains, "A shard wedged in a granite pass"),
		NewSealFragment(RedSeaCoast, "A shard washed up among the reefs"),
		NewSealFragment(OasisVillages, "A shard kept by the village elders"),
	})
}

func TestNewGameStateCopiesCatalog(t *testing.T) {
	hero := NewCharacter("Amir ibn Khalid", "Wayfarer")
	catalog := []SealFragment{
		NewSealFragment(EmptyQuarter, "dune shard"),
	}

	gs := NewGameState(hero, catalog)

	// Mutating the caller's slice must not reach the owned sequence.
	catalog[0] = NewSealFragment(RedSeaCoast, "swapped")

	if !gs.RecoverFragment(EmptyQuarter) {
		t.Error("owned catalog should still hold the EmptyQuarter fragment")
	}
}

func TestRecoverFragment(t *testing.T) {
	gs := newTestState()

	if !gs.RecoverFragment(EmptyQuarter) {
		t.Error("first recovery should report a change")
	}
	if !gs.RecoverFragment(OasisVillages) {
		t.Error("first recovery should report a change")
	}

	var recovered, untouched int
	for _, f := range gs.Fragments() {
		switch f.Region() {
		case EmptyQuarter, OasisVillages:
			if f.Recovered() {
				recovered++
			}
		default:
			if !f.Recovered() {
				untouched++
			}
		}
	}
	if recovered != 2 {
		t.Errorf("recovered fragment count = %d, want 2", recovered)
	}
	if untouched != 2 {
		t.Errorf("untouched fragment count = %d, want 2", untouched)
	}

	if got := gs.Progress(); got != 0.5 {
		t.Errorf("Progress() = %v, want 0.5", got)
	}
}

func TestRecoverFragmentIdempotent(t *testing.T) {
	gs := newTestState()

	if !gs.RecoverFragment(HijazMountains) {
		t.Error("first call should flip the flag")
	}
	if gs.RecoverFragment(HijazMountains) {
		t.Error("second call should be a no-op")
	}
	if gs.RecoverFragment(HijazMountains) {
		t.Error("third call should be a no-op")
	}

	if got := gs.Progress(); got != 0.25 {
		t.Errorf("Progress() after repeated recovery = %v, want 0.25", got)
	}
}

func TestRecoverFragmentUnknownRegion(t *testing.T) {
	hero := NewCharacter("Amir ibn Khalid", "Wayfarer")
	gs := NewGameState(hero, []SealFragment{
		NewSealFragment(RedSeaCoast, "reef shard"),
	})

	if gs.RecoverFragment(EmptyQuarter) {
		t.Error("recovery of an absent region should be a no-op")
	}
	if got := gs.Progress(); got != 0 {
		t.Errorf("Progress() = %v, want 0", got)
	}
	for _, f := range gs.Fragments() {
		if f.Recovered() {
			t.Errorf("fragment for %v should be untouched", f.Region())
		}
	}
}

func TestRecoveryIsMonotonic(t *testing.T) {
	gs := newTestState()

	gs.RecoverFragment(RedSeaCoast)

	// No sequence of in-scope operations may revert a recovered flag.
	gs.RecoverFragment(RedSeaCoast)
	gs.RecoverFragment(EmptyQuarter)
	gs.RecoverFragment(Region(99))

	for _, f := range gs.Fragments() {
		if f.Region() == RedSeaCoast && !f.Recovered() {
			t.Error("recovered flag must never revert")
		}
	}
}

func TestProgressBounds(t *testing.T) {
	gs := newTestState()

	if got := gs.Progress(); got != 0 {
		t.Errorf("initial Progress() = %v, want 0", got)
	}

	for _, r := range Regions() {
		gs.RecoverFragment(r)
		p := gs.Progress()
		if p < 0 || p > 1 {
			t.Errorf("Progress() = %v, out of [0, 1]", p)
		}
	}

	if got := gs.Progress(); got != 1 {
		t.Errorf("final Progress() = %v, want 1", got)
	}
	if !gs.Complete() {
		t.Error("Complete() should be true once every fragment is recovered")
	}
}

func TestProgressEmptyCatalog(t *testing.T) {
	hero := NewCharacter("Amir ibn Khalid", "Wayfarer")
	gs := NewGameState(hero, nil)

	if got := gs.Progress(); got != 0 {
		t.Errorf("Progress() with empty catalog = %v, want 0", got)
	}
	if gs.Complete() {
		t.Error("an empty catalog is never complete")
	}
	if gs.RecoverFragment(EmptyQuarter) {
		t.Error("recovery against an empty catalog should be a no-op")
	}
}

func TestRecoverFragmentDuplicateRegions(t *testing.T) {
	// Duplicate regions are representable; only the first matching
	// fragment is reachable through a region-keyed call.
	hero := NewCharacter("Amir ibn Khalid", "Wayfarer")
	gs := NewGameState(hero, []SealFragment{
		NewSealFragment(EmptyQuarter, "first dune shard"),
		NewSealFragment(EmptyQuarter, "second dune shard"),
	})

	if !gs.RecoverFragment(EmptyQuarter) {
		t.Error("first call should recover the first duplicate")
	}
	if gs.RecoverFragment(EmptyQuarter) {
		t.Error("second call should not reach the second duplicate")
	}

	fragments := gs.Fragments()
	if !fragments[0].Recovered() {
		t.Error("first duplicate should be recovered")
	}
	if fragments[1].Recovered() {
		t.Error("second duplicate should stay unrecovered")
	}
	if got := gs.Progress(); got != 0.5 {
		t.Errorf("Progress() = %v, want 0.5", got)
	}
}

func TestFragmentsReturnsCopy(t *testing.T) {
	gs := newTestState()

	view := gs.Fragments()
	view[0] = NewSealFragment(OasisVillages, "forged shard")

	if gs.Fragments()[0].Region() != EmptyQuarter {
		t.Error("mutating the returned slice must not affect the owned catalog")
	}
}

func TestHero(t *testing.T) {
	gs := newTestState()

	hero := gs.Hero()
	if hero.Name() != "Amir ibn Khalid" {
		t.Errorf("Hero().Name() = %q, want %q", hero.Name(), "Amir ibn Khalid")
	}
	if hero.Role() != "Wayfarer" {
		t.Errorf("Hero().Role() = %q, want %q", hero.Role(), "Wayfarer")
	}
}
