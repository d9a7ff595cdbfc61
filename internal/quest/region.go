// Package quest provides the core fragment-recovery model: regions,
// the hero, seal fragments, and the game state that tracks progress.
package quest

// Region represents one of the fixed world areas a seal fragment can
// be bound to. The set is closed; regions are not added at runtime.
type Region int

const (
	EmptyQuarter Region = iota
	HijazMountains
	RedSeaCoast
	OasisVillages
)

// String returns the region's display name.
func (r Region) String() string {
	switch r {
	case EmptyQuarter:
		return "Empty Quarter"
	case HijazMountains:
		return "Hijaz Mountains"
	case RedSeaCoast:
		return "Red Sea Coast"
	case OasisVillages:
		return "Oasis Villages"
	default:
		return "Unknown"
	}
}

// ID returns the region identifier for data lookup.
func (r Region) ID() string {
	switch r {
	case EmptyQuarter:
		return "empty_quarter"
	case HijazMountains:
		return "hijaz_mountains"
	case RedSeaCoast:
		return "red_sea_coast"
	case OasisVillages:
		return "oasis_villages"
	default:
		return "unknown"
	}
}

// Regions returns every region in catalog order.
func Regions() []Region {
	return []Region{EmptyQuarter, HijazMountains, RedSeaCoast, OasisVillages}
}

// RegionFromID returns the region matching a data-file identifier.
// The second return value is false if the ID names no known region.
func RegionFromID(id string) (Region, bool) {
	for _, r := range Regions() {
		if r.ID() == id {
			return r, true
		}
	}
	return EmptyQuarter, false
}
