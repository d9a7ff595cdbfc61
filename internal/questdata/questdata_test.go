package questdata

import (
	"testing"

	"github.com/tkhalil/sealquest/internal/quest"
)

func TestLoadFragments(t *testing.T) {
	fragments, err := LoadFragments()
	if err != nil {
		t.Fatalf("Failed to load fragments: %v", err)
	}

	if len(fragments) != 4 {
		t.Errorf("Expected 4 fragments, got %d", len(fragments))
	}

	// Verify one definition per region
	expectedRegions := map[string]bool{
		"empty_quarter":   false,
		"hijaz_mountains": false,
		"red_sea_coast":   false,
		"oasis_villages":  false,
	}
	for _, f := range fragments {
		if _, ok := expectedRegions[f.Region]; ok {
			expectedRegions[f.Region] = true
		}
	}

	for region, found := range expectedRegions {
		if !found {
			t.Errorf("Expected fragment for region %q not found", region)
		}
	}
}

func TestRegistry(t *testing.T) {
	registry, err := LoadRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 4 {
		t.Errorf("Expected 4 fragment definitions, got %d", registry.Count())
	}

	def := registry.GetByRegion(quest.RedSeaCoast)
	if def == nil {
		t.Fatal("Red Sea Coast fragment not found by region")
	}
	if def.Name != "Shrine of the Coral Landing" {
		t.Errorf("Expected name 'Shrine of the Coral Landing', got %q", def.Name)
	}
	if def.Hint == "" {
		t.Error("Fragment definitions should carry a recovery hint")
	}
}

func TestRegistryDuplicateRegionKeepsFirst(t *testing.T) {
	registry := NewRegistry([]FragmentDef{
		{Region: "empty_quarter", Name: "First Shrine"},
		{Region: "empty_quarter", Name: "Second Shrine"},
	})

	def := registry.GetByRegion(quest.EmptyQuarter)
	if def == nil {
		t.Fatal("Empty Quarter fragment not found by region")
	}
	if def.Name != "First Shrine" {
		t.Errorf("Duplicate region should keep first definition, got %q", def.Name)
	}
}

func TestBuildCatalog(t *testing.T) {
	registry := MustLoadRegistry()

	catalog, err := registry.BuildCatalog()
	if err != nil {
		t.Fatalf("BuildCatalog failed: %v", err)
	}

	if len(catalog) != registry.Count() {
		t.Fatalf("Catalog length = %d, want %d", len(catalog), registry.Count())
	}

	// Catalog order mirrors file order
	expected := []quest.Region{
		quest.EmptyQuarter,
		quest.HijazMountains,
		quest.RedSeaCoast,
		quest.OasisVillages,
	}
	for i, f := range catalog {
		if f.Region() != expected[i] {
			t.Errorf("catalog[%d].Region() = %v, want %v", i, f.Region(), expected[i])
		}
		if f.Recovered() {
			t.Errorf("catalog[%d] should start unrecovered", i)
		}
	}
}

func TestBuildCatalogRejectsUnknownRegion(t *testing.T) {
	registry := NewRegistry([]FragmentDef{
		{Region: "atlantis", Description: "a shard beneath the waves"},
	})

	if _, err := registry.BuildCatalog(); err == nil {
		t.Error("BuildCatalog should reject unknown region IDs")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#D9B36C", true},
		{"D9B36C", true},
		{"#00FF00", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestFragmentDefMethods(t *testing.T) {
	def := FragmentDef{
		Region:      "empty_quarter",
		Name:        "Test Shrine",
		Glyph:       "*",
		Color:       "#D9B36C",
		Description: "a test shard",
	}

	if def.GlyphRune() != '*' {
		t.Errorf("Expected glyph '*', got %c", def.GlyphRune())
	}

	color := def.TCellColor()
	if color == 0 {
		t.Error("TCellColor returned zero color")
	}

	empty := FragmentDef{}
	if empty.GlyphRune() != '*' {
		t.Errorf("Empty glyph should fall back to '*', got %c", empty.GlyphRune())
	}
}
