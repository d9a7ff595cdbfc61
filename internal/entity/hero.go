// Package entity provides the hero avatar that moves across the map.
package entity

import "github.com/tkhalil/sealquest/internal/quest"

// Hero is the on-map avatar for the player character. The identity
// record is read-only; only the position changes.
type Hero struct {
	Identity quest.Character
	X, Y     int  // Current position in the desert
	Symbol   rune // Display symbol ('@')
}

// NewHero creates a hero avatar at the given position.
func NewHero(identity quest.Character, x, y int) *Hero {
	return &Hero{
		Identity: identity,
		X:        x,
		Y:        y,
		Symbol:   '@',
	}
}

// Move updates the hero position by the given delta.
func (h *Hero) Move(dx, dy int) {
	h.X += dx
	h.Y += dy
}

// Position returns the current x, y coordinates.
func (h *Hero) Position() (int, int) {
	return h.X, h.Y
}
