package gbase

import "testing"

func TestPaletteFromString(t *testing.T) {
	cases := []struct {
		in   string
		want Palette
	}{
		{"light", LightPalette},
		{"dark", DarkPalette},
		{"", LightPalette},
		{"neon", LightPalette},
	}
	for _, c := range cases {
		if got := PaletteFromString(c.in); got != c.want {
			t.Fatalf("PaletteFromString(%q) = %v", c.in, got)
		}
	}
	if DarkPalette.String() != "dark" || LightPalette.String() != "light" {
		t.Fatalf("palette names: %q %q", DarkPalette.String(), LightPalette.String())
	}
}
