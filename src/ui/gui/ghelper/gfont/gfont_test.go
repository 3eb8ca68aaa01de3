package gfont

import "testing"

func TestLoadFonts(t *testing.T) {
	f, err := LoadFonts()
	if err != nil {
		t.Fatalf("LoadFonts: %v", err)
	}
	for name, face := range map[string]interface{ Close() error }{"normal": f.Normal, "bold": f.Bold, "mono": f.Mono} {
		if face == nil {
			t.Fatalf("%s face is nil", name)
		}
	}
	if f.Bold.Metrics().Height <= f.Mono.Metrics().Height {
		t.Fatalf("bold face should be taller than mono")
	}
}
