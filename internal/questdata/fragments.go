package questdata

import "github.com/gdamore/tcell/v2"

// FragmentDef defines a seal fragment loaded from JSON.
type FragmentDef struct {
	Region      string `json:"region"`      // Region identifier matching quest.Region.ID (e.g., "empty_quarter")
	Name        string `json:"name"`        // Display name of the shrine holding the fragment
	Description string `json:"description"` // Flavor text carried into the core catalog
	Glyph       string `json:"glyph"`       // Single character for the shrine marker
	Color       string `json:"color"`       // Hex color code for the region's terrain (e.g., "#C2A878")
	Hint        string `json:"hint"`        // Message shown when the fragment is recovered
}

// GlyphRune returns the glyph as a rune for rendering.
func (f *FragmentDef) GlyphRune() rune {
	if len(f.Glyph) == 0 {
		return '*'
	}
	return rune(f.Glyph[0])
}

// TCellColor returns the region color as a tcell.Color.
func (f *FragmentDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(f.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// FragmentsFile represents the structure of fragments.json.
type FragmentsFile struct {
	Fragments []FragmentDef `json:"fragments"`
}

// LoadFragments loads fragment definitions from the embedded fragments.json file.
func LoadFragments() ([]FragmentDef, error) {
	file, err := Load[FragmentsFile]("fragments.json")
	if err != nil {
		return nil, err
	}
	return file.Fragments, nil
}

// MustLoadFragments loads fragment definitions, panicking on error.
func MustLoadFragments() []FragmentDef {
	fragments, err := LoadFragments()
	if err != nil {
		panic(err)
	}
	return fragments
}
