package world

import "github.com/tkhalil/sealquest/internal/quest"

// Zone is the rectangular area of the map belonging to one region.
// Each zone holds exactly one shrine tile.
type Zone struct {
	Region        quest.Region
	X, Y          int
	Width, Height int

	// Shrine position, set during generation.
	ShrineX, ShrineY int
}

// Contains returns true if the position falls inside the zone.
func (z Zone) Contains(x, y int) bool {
	return x >= z.X && x < z.X+z.Width && y >= z.Y && y < z.Y+z.Height
}

// Center returns the zone's center coordinates.
func (z Zone) Center() (int, int) {
	return z.X + z.Width/2, z.Y + z.Height/2
}
