package gdraw

import (
	"image"
	"math"

	"slicepuzzle/src/puzzle"

	"github.com/hajimehoshi/ebiten/v2"
)

// ebitenSurface copies regions of src onto dst for puzzle.Board.Render.
type ebitenSurface struct {
	dst *ebiten.Image
	src *ebiten.Image
}

func (s ebitenSurface) Clear() {
	s.dst.Clear()
}

func (s ebitenSurface) CopyRegion(src, dst puzzle.Rect) {
	if src.W <= 0 || src.H <= 0 {
		return
	}
	// SubImage needs whole pixels: take the covering rect and shift it so
	// the fractional source origin still lands on dst.X/Y
	r := image.Rect(
		int(math.Floor(src.X)), int(math.Floor(src.Y)),
		int(math.Ceil(src.X+src.W)), int(math.Ceil(src.Y+src.H)),
	).Intersect(s.src.Bounds())
	if r.Empty() {
		return
	}
	kx, ky := dst.W/src.W, dst.H/src.H

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(kx, ky)
	op.GeoM.Translate(dst.X+(float64(r.Min.X)-src.X)*kx, dst.Y+(float64(r.Min.Y)-src.Y)*ky)
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(s.src.SubImage(r).(*ebiten.Image), op)
}
