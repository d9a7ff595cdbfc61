package quest

// Character is the identity record for the player character.
// It is immutable once constructed; no operation in the package
// mutates it.
type Character struct {
	name string
	role string
}

// NewCharacter creates a character with the given name and role.
func NewCharacter(name, role string) Character {
	return Character{name: name, role: role}
}

// Name returns the character's name.
func (c Character) Name() string { return c.name }

// Role returns the character's role (e.g. "Wayfarer").
func (c Character) Role() string { return c.role }
