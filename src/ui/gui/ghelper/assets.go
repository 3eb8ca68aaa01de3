package ghelper

import (
	"image"

	"slicepuzzle/src/ui/gui/gbase/gconf"
	"slicepuzzle/src/ui/gui/ghelper/gfont"
	"slicepuzzle/src/ui/gui/ghelper/glang"

	"github.com/fogleman/gg"
)

var iconSizes = []int{16, 32, 48, 64}

type GUIAssetsWorker struct {
	fonts *gfont.Fonts
	icons []image.Image
	lang  *glang.GUILangWorker
}

func NewGUIAssetsWorker(cfg *gconf.Config) (*GUIAssetsWorker, error) {
	l, err := glang.NewGUILangWorker("assets/lang", cfg.Lang)
	if err != nil {
		return nil, err
	}
	f, err := gfont.LoadFonts()
	if err != nil {
		return nil, err
	}
	icons := make([]image.Image, 0, len(iconSizes))
	for _, s := range iconSizes {
		icons = append(icons, renderIcon(s))
	}
	return &GUIAssetsWorker{fonts: f, icons: icons, lang: l}, nil
}

func (aw *GUIAssetsWorker) Lang() *glang.GUILangWorker {
	return aw.lang
}

func (aw *GUIAssetsWorker) Fonts() *gfont.Fonts {
	return aw.fonts
}

func (aw *GUIAssetsWorker) Icons() []image.Image {
	return aw.icons
}

// renderIcon draws a 2x2 block of tiles with one tile lifted out of place.
func renderIcon(size int) image.Image {
	s := float64(size)
	cell := s / 2
	gap := s / 16
	dc := gg.NewContext(size, size)
	colors := [4][3]float64{{0.13, 0.53, 0.80}, {0.95, 0.76, 0.31}, {0.25, 0.56, 0.61}, {0.85, 0.35, 0.30}}
	for i, c := range colors {
		x := float64(i%2)*cell + gap/2
		y := float64(i/2)*cell + gap/2
		if i == 3 {
			x -= gap
			y -= gap
		}
		dc.SetRGB(c[0], c[1], c[2])
		dc.DrawRoundedRectangle(x, y, cell-gap, cell-gap, gap)
		dc.Fill()
	}
	return dc.Image()
}
