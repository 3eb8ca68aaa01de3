package ghelper

import (
	"testing"

	"slicepuzzle/src/ui/gui/gbase"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestToastFade(t *testing.T) {
	var ts Toast
	if ts.Visible() {
		t.Fatalf("zero toast is visible")
	}
	ts.Show("done", 0.5)
	for i := 0; i < 10; i++ {
		ts.Update(1.0 / 60)
	}
	if !ts.Visible() || ts.alpha <= 0 {
		t.Fatalf("toast not fading in, alpha %v", ts.alpha)
	}
	for i := 0; i < 300; i++ {
		ts.Update(1.0 / 60)
	}
	if ts.Visible() {
		t.Fatalf("toast still visible after its duration, alpha %v", ts.alpha)
	}
	ts.Show("again", 3)
	ts.Hide()
	if ts.Visible() {
		t.Fatalf("toast visible after Hide")
	}
}

func TestToastBackgroundCache(t *testing.T) {
	ts := &Toast{}
	ts.Show("solved", 3)
	if !ts.stale(gbase.LightPalette) {
		t.Fatalf("fresh toast must render its background")
	}

	// as left by Draw
	ts.img = new(ebiten.Image)
	ts.imgText, ts.imgTheme = ts.Text, gbase.LightPalette

	cases := []struct {
		name  string
		text  string
		theme gbase.Palette
		want  bool
	}{
		{"same_message", "solved", gbase.LightPalette, false},
		{"new_message", "sound off", gbase.LightPalette, true},
		{"new_theme", "solved", gbase.DarkPalette, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ts.Text = c.text
			if got := ts.stale(c.theme); got != c.want {
				t.Fatalf("stale = %v, want %v", got, c.want)
			}
		})
	}
}
