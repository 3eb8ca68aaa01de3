package loader

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/fogleman/gg"
)

const (
	GeneratedW = 1000
	GeneratedH = 625

	// MaxGeneratedSide bounds each side of a generated picture.
	MaxGeneratedSide = 8192
)

var ErrGeneratedSize = errors.New("generated image size out of range")

// ParseGeneratedSize reads "generated:WxH". Anything unparsable, non-positive
// or above MaxGeneratedSide gives the default size.
func ParseGeneratedSize(locator string) (w, h int) {
	size := strings.TrimPrefix(strings.TrimSpace(locator), GeneratedLocator)
	if _, err := fmt.Sscanf(size, "%dx%d", &w, &h); err != nil || !validGeneratedSize(w, h) {
		return GeneratedW, GeneratedH
	}
	return w, h
}

func validGeneratedSize(w, h int) bool {
	return w > 0 && h > 0 && w <= MaxGeneratedSide && h <= MaxGeneratedSide
}

// Generate paints a placeholder picture with enough structure that every
// tile looks different: a diagonal gradient, concentric rings and a grid of dots.
func Generate(w, h int) (image.Image, error) {
	if !validGeneratedSize(w, h) {
		return nil, fmt.Errorf("%w: %dx%d (max side %d)", ErrGeneratedSize, w, h, MaxGeneratedSide)
	}
	dc := gg.NewContext(w, h)
	fw, fh := float64(w), float64(h)

	grad := gg.NewLinearGradient(0, 0, fw, fh)
	grad.AddColorStop(0, rgb(0x1b, 0x3a, 0x5c))
	grad.AddColorStop(0.5, rgb(0x3f, 0x8e, 0x9b))
	grad.AddColorStop(1, rgb(0xf2, 0xc1, 0x4e))
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, fw, fh)
	dc.Fill()

	cx, cy := fw*0.62, fh*0.45
	maxR := math.Hypot(fw, fh) / 2
	for i, r := 0, maxR; r > 8; i, r = i+1, r*0.86 {
		dc.SetRGBA(1, 1, 1, 0.08+0.04*float64(i%3))
		dc.SetLineWidth(6)
		dc.DrawCircle(cx, cy, r)
		dc.Stroke()
	}

	step := math.Max(fw, fh) / 24
	for y := step / 2; y < fh; y += step {
		for x := step / 2; x < fw; x += step {
			t := (x/fw + y/fh) / 2
			dc.SetRGBA(1-t, 0.3+0.5*t, t, 0.55)
			dc.DrawCircle(x, y, step*0.16)
			dc.Fill()
		}
	}

	dc.SetRGBA(0.1, 0.1, 0.12, 0.7)
	dc.SetLineWidth(10)
	dc.MoveTo(0, fh*0.8)
	dc.CubicTo(fw*0.3, fh*0.55, fw*0.6, fh*1.05, fw, fh*0.7)
	dc.Stroke()

	return dc.Image(), nil
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
