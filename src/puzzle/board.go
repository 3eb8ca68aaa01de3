package puzzle

import (
	"math"
	"math/rand/v2"
)

const (
	MinScale  = 0.5
	MaxScale  = 2.0
	ScaleStep = 0.1

	// DefaultSnapThreshold is measured in screen pixels.
	DefaultSnapThreshold = 20.0

	DefaultWindowWidth = 1000
)

const noTile = -1

// Board holds the whole state of one puzzle widget. It is driven from a
// single goroutine (the game loop) and does no locking.
type Board struct {
	grid      Grid
	threshold float64
	windowW   float64
	rnd       *rand.Rand

	// set by SetImage
	ready      bool
	imgW, imgH float64
	tiles      []Tile

	scale            float64
	canvasW, canvasH float64

	dragged    int
	dragOffset Point

	moves int
}

type Option func(b *Board)

func WithGrid(g Grid) Option {
	return func(b *Board) {
		if g.Valid() {
			b.grid = g
		}
	}
}

func WithSnapThreshold(px float64) Option {
	return func(b *Board) {
		if px > 0 {
			b.threshold = px
		}
	}
}

func WithWindowWidth(w int) Option {
	return func(b *Board) {
		if w > 0 {
			b.windowW = float64(w)
		}
	}
}

func WithRand(rnd *rand.Rand) Option {
	return func(b *Board) {
		if rnd != nil {
			b.rnd = rnd
		}
	}
}

func NewBoard(opts ...Option) *Board {
	b := &Board{
		grid:      DefaultGrid,
		threshold: DefaultSnapThreshold,
		windowW:   DefaultWindowWidth,
		scale:     1,
		dragged:   noTile,
	}
	for _, o := range opts {
		o(b)
	}
	if b.rnd == nil {
		b.rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return b
}

// ---- Lifecycle ----

// SetImage is the image-ready transition: it derives the scale from the
// window width and lays out a fresh scrambled sequence. The initial scale is
// clamped to [MinScale, MaxScale] like wheel zoom, so a tiny or huge image
// still starts inside the zoom range.
func (b *Board) SetImage(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	b.ready = true
	b.imgW, b.imgH = float64(w), float64(h)
	b.scale = clampScale(b.windowW / b.imgW)
	b.moves = 0
	b.resize()
	b.rebuild(BuildScrambled(b.grid, b.imgW, b.imgH, b.rnd))
}

// SetWindowWidth changes the width used to derive the scale on the next SetImage.
func (b *Board) SetWindowWidth(w int) {
	if w > 0 {
		b.windowW = float64(w)
	}
}

func (b *Board) Scramble() {
	if !b.ready {
		return
	}
	b.moves = 0
	b.rebuild(BuildScrambled(b.grid, b.imgW, b.imgH, b.rnd))
}

func (b *Board) Solve() {
	if !b.ready {
		return
	}
	b.rebuild(BuildSolved(b.grid, b.imgW, b.imgH))
}

func (b *Board) rebuild(tiles []Tile) {
	b.tiles = tiles
	b.dragged = noTile
	b.dragOffset = Point{}
}

func (b *Board) resize() {
	b.canvasW = b.imgW * b.scale
	b.canvasH = b.imgH * b.scale
}

// ---- Pointer ----

// PointerDown picks up the topmost tile under p (screen space) and reports
// whether a drag started.
func (b *Board) PointerDown(p Point) bool {
	if !b.ready || b.dragged != noTile {
		return false
	}
	idx := HitTest(b.tiles, b.scale, p)
	if idx == noTile {
		return false
	}
	t := b.tiles[idx]
	b.dragged = idx
	b.dragOffset = Point{X: p.X/b.scale - t.PosX, Y: p.Y/b.scale - t.PosY}
	return true
}

func (b *Board) PointerMove(p Point) {
	if !b.ready || b.dragged == noTile {
		return
	}
	t := &b.tiles[b.dragged]
	t.PosX = p.X/b.scale - b.dragOffset.X
	t.PosY = p.Y/b.scale - b.dragOffset.Y
}

// PointerUp drops the held tile. The tile snaps to its solved position when
// it is closer than the threshold in screen pixels at the current scale.
func (b *Board) PointerUp() (snapped bool) {
	if !b.ready || b.dragged == noTile {
		return false
	}
	t := &b.tiles[b.dragged]
	if SnapDistance(*t)*b.scale < b.threshold {
		sp := t.SolvedPos()
		t.PosX, t.PosY = sp.X, sp.Y
		snapped = true
	}
	b.dragged = noTile
	b.dragOffset = Point{}
	b.moves++
	return snapped
}

// ---- Zoom ----

// Wheel zooms in for dy > 0 and out for dy < 0 by one ScaleStep.
func (b *Board) Wheel(dy float64) {
	if !b.ready || dy == 0 {
		return
	}
	step := ScaleStep
	if dy < 0 {
		step = -step
	}
	b.scale = clampScale(b.scale + step)
	b.resize()
}

func clampScale(s float64) float64 {
	// drop float drift from repeated steps
	s = math.Round(s*1e9) / 1e9
	return math.Max(MinScale, math.Min(MaxScale, s))
}

// ---- Render ----

// Surface is the drawing target for Render. Rectangles are in surface pixels
// for dst and image pixels for src.
type Surface interface {
	Clear()
	CopyRegion(src, dst Rect)
}

// Render clears s and draws every tile in sequence order.
func (b *Board) Render(s Surface) {
	if !b.ready || s == nil {
		return
	}
	s.Clear()
	for _, t := range b.tiles {
		s.CopyRegion(t.Source(), t.Bounds(b.scale))
	}
}

// ---- Accessors ----

func (b *Board) Ready() bool { return b.ready }

func (b *Board) Grid() Grid { return b.grid }

func (b *Board) Scale() float64 { return b.scale }

func (b *Board) SnapThreshold() float64 { return b.threshold }

func (b *Board) Moves() int { return b.moves }

func (b *Board) ImageSize() (w, h float64) { return b.imgW, b.imgH }

func (b *Board) CanvasSize() (w, h float64) { return b.canvasW, b.canvasH }

func (b *Board) TileSize() (w, h float64) {
	if !b.ready {
		return 0, 0
	}
	return b.grid.TileSize(b.imgW, b.imgH)
}

// Dragging returns the index of the held tile.
func (b *Board) Dragging() (int, bool) {
	return b.dragged, b.dragged != noTile
}

func (b *Board) Tile(i int) (Tile, bool) {
	if i < 0 || i >= len(b.tiles) {
		return Tile{}, false
	}
	return b.tiles[i], true
}

// Tiles returns a copy of the current sequence.
func (b *Board) Tiles() []Tile {
	out := make([]Tile, len(b.tiles))
	copy(out, b.tiles)
	return out
}

func (b *Board) Placed() int {
	n := 0
	for _, t := range b.tiles {
		if t.InPlace() {
			n++
		}
	}
	return n
}

func (b *Board) Solved() bool {
	return b.ready && len(b.tiles) > 0 && b.Placed() == len(b.tiles)
}
