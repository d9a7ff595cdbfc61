package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/tkhalil/sealquest/internal/quest"
	"github.com/tkhalil/sealquest/internal/telemetry"
)

const (
	// Default map dimensions
	DefaultWidth  = 80
	DefaultHeight = 24

	// Decoration densities per zone
	duneCount     = 10
	mountainCount = 12
	palmCount     = 8

	// Width of the sea band along the coast zone's western edge
	coastWidth = 2
)

// Desert represents the overworld map. The four region zones occupy
// fixed quadrants; only decoration and shrine placement are random.
type Desert struct {
	Width  int
	Height int
	Tiles  [][]Tile
	Zones  []Zone
	rng    *rand.Rand
}

// NewDesert creates a new desert filled with open sand.
func NewDesert(width, height int, rng *rand.Rand) *Desert {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = TileSand
		}
	}

	return &Desert{
		Width:  width,
		Height: height,
		Tiles:  tiles,
		Zones:  make([]Zone, 0, 4),
		rng:    rng,
	}
}

// Generate lays out the region zones, terrain, and shrines.
func (d *Desert) Generate(ctx context.Context) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "desert.generate")
	defer span.End()

	startTime := time.Now()

	d.drawBorder()
	d.layoutZones()

	for i := range d.Zones {
		d.decorateZone(&d.Zones[i])
	}

	// The hero starts at the map center; keep it walkable.
	startX, startY := d.StartPosition()
	d.Tiles[startY][startX] = TileSand

	for i := range d.Zones {
		d.placeShrine(&d.Zones[i], startX, startY)
	}

	span.SetAttributes(
		attribute.Int("desert.width", d.Width),
		attribute.Int("desert.height", d.Height),
		attribute.Int("desert.zone_count", len(d.Zones)),
		attribute.Int64("desert.generation_ms", time.Since(startTime).Milliseconds()),
	)
}

// IsPassable returns true if the given position can be walked on.
func (d *Desert) IsPassable(x, y int) bool {
	if x < 0 || x >= d.Width || y < 0 || y >= d.Height {
		return false
	}
	return d.Tiles[y][x].IsPassable()
}

// GetTile returns the tile at the given position.
func (d *Desert) GetTile(x, y int) Tile {
	if x < 0 || x >= d.Width || y < 0 || y >= d.Height {
		return TileDune
	}
	return d.Tiles[y][x]
}

// RegionAt returns the region whose zone contains the position.
// The second return value is false outside every zone.
func (d *Desert) RegionAt(x, y int) (quest.Region, bool) {
	for _, zone := range d.Zones {
		if zone.Contains(x, y) {
			return zone.Region, true
		}
	}
	return quest.EmptyQuarter, false
}

// ShrineAt returns the region of the shrine at the position, if any.
func (d *Desert) ShrineAt(x, y int) (quest.Region, bool) {
	for _, zone := range d.Zones {
		if zone.ShrineX == x && zone.ShrineY == y {
			return zone.Region, true
		}
	}
	return quest.EmptyQuarter, false
}

// StartPosition returns the hero's starting coordinates, at the
// center of the map where the four zones meet.
func (d *Desert) StartPosition() (int, int) {
	return d.Width / 2, d.Height / 2
}

// drawBorder rings the map with impassable dunes.
func (d *Desert) drawBorder() {
	for x := 0; x < d.Width; x++ {
		d.Tiles[0][x] = TileDune
		d.Tiles[d.Height-1][x] = TileDune
	}
	for y := 0; y < d.Height; y++ {
		d.Tiles[y][0] = TileDune
		d.Tiles[y][d.Width-1] = TileDune
	}
}

// layoutZones assigns one region per quadrant of the interior.
// The geography is fixed: mountains northwest, villages northeast,
// the coast southwest, the great desert southeast.
func (d *Desert) layoutZones() {
	innerW := d.Width - 2
	innerH := d.Height - 2
	halfW := innerW / 2
	halfH := innerH / 2

	d.Zones = append(d.Zones,
		Zone{Region: quest.HijazMountains, X: 1, Y: 1, Width: halfW, Height: halfH},
		Zone{Region: quest.OasisVillages, X: 1 + halfW, Y: 1, Width: innerW - halfW, Height: halfH},
		Zone{Region: quest.RedSeaCoast, X: 1, Y: 1 + halfH, Width: halfW, Height: innerH - halfH},
		Zone{Region: quest.EmptyQuarter, X: 1 + halfW, Y: 1 + halfH, Width: innerW - halfW, Height: innerH - halfH},
	)
}

// decorateZone scatters region-appropriate terrain within a zone.
func (d *Desert) decorateZone(zone *Zone) {
	switch zone.Region {
	case quest.EmptyQuarter:
		d.scatter(zone, TileDune, duneCount)
	case quest.HijazMountains:
		d.scatter(zone, TileMountain, mountainCount)
	case quest.RedSeaCoast:
		// Sea band along the zone's western edge
		for y := zone.Y; y < zone.Y+zone.Height; y++ {
			for x := zone.X; x < zone.X+coastWidth && x < zone.X+zone.Width; x++ {
				d.Tiles[y][x] = TileWater
			}
		}
	case quest.OasisVillages:
		d.scatter(zone, TilePalm, palmCount)
	}
}

// scatter places count single tiles at random open positions in the zone.
// Single tiles on open sand cannot wall off a zone, so passability
// between quadrants is preserved.
func (d *Desert) scatter(zone *Zone, tile Tile, count int) {
	for i := 0; i < count; i++ {
		x := zone.X + d.rng.Intn(zone.Width)
		y := zone.Y + d.rng.Intn(zone.Height)
		if d.Tiles[y][x] == TileSand {
			d.Tiles[y][x] = tile
		}
	}
}

// placeShrine puts the zone's shrine on a random open tile, avoiding
// the hero's start position.
func (d *Desert) placeShrine(zone *Zone, startX, startY int) {
	// Try random points until we find an open one (max 100 attempts)
	for i := 0; i < 100; i++ {
		x := zone.X + d.rng.Intn(zone.Width)
		y := zone.Y + d.rng.Intn(zone.Height)
		if d.Tiles[y][x] == TileSand && !(x == startX && y == startY) {
			d.Tiles[y][x] = TileShrine
			zone.ShrineX = x
			zone.ShrineY = y
			return
		}
	}

	// Fallback to the zone center, carved open if needed
	x, y := zone.Center()
	d.Tiles[y][x] = TileShrine
	zone.ShrineX = x
	zone.ShrineY = y
}
