package gfont

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type Fonts struct {
	Normal font.Face
	Bold   font.Face
	Mono   font.Face
}

func newFace(ttf []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// LoadFonts builds the faces from the Go fonts bundled with x/image, so no
// font files have to ship next to the binary.
func LoadFonts() (*Fonts, error) {
	var err error
	fonts := &Fonts{}
	if fonts.Normal, err = newFace(goregular.TTF, 15); err != nil {
		return nil, err
	}
	if fonts.Bold, err = newFace(gobold.TTF, 22); err != nil {
		return nil, err
	}
	if fonts.Mono, err = newFace(gomono.TTF, 12); err != nil {
		return nil, err
	}
	return fonts, nil
}
