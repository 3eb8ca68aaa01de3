package puzzle

import (
	"math"
	"math/rand/v2"
)

// ---- Geometry ----

type Point struct {
	X, Y float64
}

type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// ---- Grid ----

const (
	DefaultRows = 25
	DefaultCols = 40
)

type Grid struct {
	Rows, Cols int
}

var DefaultGrid = Grid{Rows: DefaultRows, Cols: DefaultCols}

func (g Grid) Count() int {
	return g.Rows * g.Cols
}

func (g Grid) Valid() bool {
	return g.Rows > 0 && g.Cols > 0
}

// TileSize returns the cut size of one cell for an image of imgW x imgH.
func (g Grid) TileSize(imgW, imgH float64) (w, h float64) {
	return imgW / float64(g.Cols), imgH / float64(g.Rows)
}

// ---- Tile ----

// Tile is one cell of the sliced image. Source* and Width/Height are the
// cut region in image pixels, Pos* is the current top-left in logical space.
type Tile struct {
	Row, Col int

	SourceX, SourceY float64
	Width, Height    float64

	PosX, PosY float64
}

func (t Tile) Source() Rect {
	return Rect{X: t.SourceX, Y: t.SourceY, W: t.Width, H: t.Height}
}

// Bounds is the tile rectangle on a surface drawn at the given scale.
func (t Tile) Bounds(scale float64) Rect {
	return Rect{X: t.PosX * scale, Y: t.PosY * scale, W: t.Width * scale, H: t.Height * scale}
}

// SolvedPos is the position the tile snaps to.
func (t Tile) SolvedPos() Point {
	return Point{X: t.SourceX, Y: t.SourceY}
}

func (t Tile) InPlace() bool {
	return t.PosX == t.SourceX && t.PosY == t.SourceY
}

// SnapDistance is the logical-space distance between the tile and its solved position.
func SnapDistance(t Tile) float64 {
	return math.Hypot(t.PosX-t.SourceX, t.PosY-t.SourceY)
}

// ---- Builders ----

func cut(g Grid, imgW, imgH float64, place func(t *Tile)) []Tile {
	if !g.Valid() {
		return nil
	}
	w, h := g.TileSize(imgW, imgH)
	tiles := make([]Tile, 0, g.Count())
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			t := Tile{
				Row: row, Col: col,
				SourceX: float64(col) * w,
				SourceY: float64(row) * h,
				Width:   w,
				Height:  h,
			}
			place(&t)
			tiles = append(tiles, t)
		}
	}
	return tiles
}

// BuildSolved cuts the image row-major with every tile at its source location.
func BuildSolved(g Grid, imgW, imgH float64) []Tile {
	return cut(g, imgW, imgH, func(t *Tile) {
		t.PosX = float64(t.Col) * t.Width
		t.PosY = float64(t.Row) * t.Height
	})
}

// BuildScrambled cuts the image row-major and drops every tile at an
// independent uniform position in [0, imgW-w) x [0, imgH-h). Tiles may overlap.
func BuildScrambled(g Grid, imgW, imgH float64, rnd *rand.Rand) []Tile {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return cut(g, imgW, imgH, func(t *Tile) {
		t.PosX = rnd.Float64() * (imgW - t.Width)
		t.PosY = rnd.Float64() * (imgH - t.Height)
	})
}

// HitTest returns the index of the topmost tile whose scaled bounds contain p,
// scanning from the end of the sequence, or -1.
func HitTest(tiles []Tile, scale float64, p Point) int {
	for i := len(tiles) - 1; i >= 0; i-- {
		if tiles[i].Bounds(scale).Contains(p) {
			return i
		}
	}
	return -1
}
