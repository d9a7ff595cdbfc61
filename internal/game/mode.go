// Package game provides the main game loop and journey state.
package game

// Mode represents the current driver mode.
type Mode int

const (
	// ModeJourney is the default mode: the hero roams the desert
	// seeking shrines.
	ModeJourney Mode = iota
	// ModeComplete is entered once every fragment is recovered. This
	// is driver policy; the core state machine has no terminal state.
	ModeComplete
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeJourney:
		return "journey"
	case ModeComplete:
		return "complete"
	default:
		return "unknown"
	}
}
