// Package world provides the desert overworld map and region layout.
package world

// Tile represents a single map tile.
type Tile rune

const (
	// TileSand represents open, passable desert.
	TileSand Tile = '.'
	// TileDune represents an impassable sand dune.
	TileDune Tile = '#'
	// TileMountain represents an impassable peak.
	TileMountain Tile = '^'
	// TileWater represents the sea; impassable.
	TileWater Tile = '~'
	// TilePalm represents an oasis palm; impassable.
	TilePalm Tile = 'T'
	// TileShrine marks a shrine holding a seal fragment; passable.
	TileShrine Tile = '*'
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileSand || t == TileShrine
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
