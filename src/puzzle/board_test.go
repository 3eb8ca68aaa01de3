package puzzle

import (
	"math"
	"testing"
)

func newSolvedBoard(t *testing.T, windowW int) *Board {
	t.Helper()
	b := NewBoard(WithRand(testRand()), WithWindowWidth(windowW))
	b.SetImage(1000, 625)
	b.Solve()
	return b
}

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

type recordSurface struct {
	clears int
	src    []Rect
	dst    []Rect
}

func (s *recordSurface) Clear() {
	s.clears++
	s.src = s.src[:0]
	s.dst = s.dst[:0]
}

func (s *recordSurface) CopyRegion(src, dst Rect) {
	s.src = append(s.src, src)
	s.dst = append(s.dst, dst)
}

func TestBoardNotReadyIsNoop(t *testing.T) {
	b := NewBoard()
	b.Solve()
	b.Scramble()
	b.Wheel(1)
	if b.PointerDown(Point{1, 1}) {
		t.Fatalf("PointerDown should not start a drag before the image is ready")
	}
	b.PointerMove(Point{5, 5})
	if b.PointerUp() {
		t.Fatalf("PointerUp should not snap before the image is ready")
	}
	s := &recordSurface{}
	b.Render(s)
	if s.clears != 0 || len(s.dst) != 0 {
		t.Fatalf("Render drew %d regions with %d clears before ready", len(s.dst), s.clears)
	}
	if b.Ready() || len(b.Tiles()) != 0 || b.Scale() != 1 {
		t.Fatalf("unexpected state before ready: ready=%v tiles=%d scale=%v", b.Ready(), len(b.Tiles()), b.Scale())
	}
}

func TestBoardSetImage(t *testing.T) {
	cases := []struct {
		name      string
		windowW   int
		wantScale float64
	}{
		{"same_width", 1000, 1},
		{"wider_window", 1500, 1.5},
		{"clamped_low", 200, MinScale},
		{"clamped_high", 5000, MaxScale},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := NewBoard(WithRand(testRand()), WithWindowWidth(c.windowW))
			b.SetImage(1000, 625)
			if !b.Ready() {
				t.Fatalf("board not ready after SetImage")
			}
			if !almost(b.Scale(), c.wantScale) {
				t.Fatalf("scale = %v, want %v", b.Scale(), c.wantScale)
			}
			cw, ch := b.CanvasSize()
			if !almost(cw, 1000*c.wantScale) || !almost(ch, 625*c.wantScale) {
				t.Fatalf("canvas %vx%v, want %vx%v", cw, ch, 1000*c.wantScale, 625*c.wantScale)
			}
			if len(b.Tiles()) != DefaultGrid.Count() {
				t.Fatalf("got %d tiles, want %d", len(b.Tiles()), DefaultGrid.Count())
			}
		})
	}
}

func TestBoardSetImageRejectsEmpty(t *testing.T) {
	b := NewBoard()
	b.SetImage(0, 100)
	if b.Ready() {
		t.Fatalf("board should stay unready for a zero-width image")
	}
}

func TestBoardSolveIdempotent(t *testing.T) {
	b := newSolvedBoard(t, 1000)
	first := b.Tiles()
	b.Solve()
	second := b.Tiles()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("tile %d changed between solves: %+v vs %+v", i, first[i], second[i])
		}
	}
	if !b.Solved() || b.Placed() != DefaultGrid.Count() {
		t.Fatalf("placed = %d, solved = %v", b.Placed(), b.Solved())
	}
}

func TestBoardDragSnap(t *testing.T) {
	cases := []struct {
		name        string
		windowW     int
		move        Point // pointer delta in screen pixels
		wantSnapped bool
	}{
		{"within_threshold", 1000, Point{10, 10}, true},
		{"just_inside", 1000, Point{19.9, 0}, true},
		{"at_threshold", 1000, Point{20, 0}, false},
		{"beyond_threshold", 1000, Point{30, 0}, false},
		{"scaled_screen_units_snap", 2000, Point{15, 0}, true},
		{"scaled_screen_units_miss", 2000, Point{30, 0}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := newSolvedBoard(t, c.windowW)
			s := b.Scale()
			start := Point{X: 5 * s, Y: 5 * s}
			if !b.PointerDown(start) {
				t.Fatalf("PointerDown at %+v did not hit a tile", start)
			}
			idx, ok := b.Dragging()
			if !ok || idx != 0 {
				t.Fatalf("dragging %d (%v), want tile 0", idx, ok)
			}
			b.PointerMove(Point{X: start.X + c.move.X, Y: start.Y + c.move.Y})
			moved := b.Tiles()[0]
			wantX, wantY := c.move.X/s, c.move.Y/s
			if !almost(moved.PosX, wantX) || !almost(moved.PosY, wantY) {
				t.Fatalf("dragged pos (%v,%v), want (%v,%v)", moved.PosX, moved.PosY, wantX, wantY)
			}

			snapped := b.PointerUp()
			if snapped != c.wantSnapped {
				t.Fatalf("snapped = %v, want %v", snapped, c.wantSnapped)
			}
			got := b.Tiles()[0]
			if c.wantSnapped {
				if got.PosX != 0 || got.PosY != 0 {
					t.Fatalf("snapped tile at (%v,%v), want (0,0)", got.PosX, got.PosY)
				}
			} else if !almost(got.PosX, wantX) || !almost(got.PosY, wantY) {
				t.Fatalf("released tile at (%v,%v), want (%v,%v)", got.PosX, got.PosY, wantX, wantY)
			}
			if _, ok := b.Dragging(); ok {
				t.Fatalf("still dragging after PointerUp")
			}
			if b.Moves() != 1 {
				t.Fatalf("moves = %d, want 1", b.Moves())
			}
		})
	}
}

func TestBoardDragKeepsOffset(t *testing.T) {
	b := newSolvedBoard(t, 1000)
	// tile 41 spans [25,50]x[25,50]
	if !b.PointerDown(Point{40, 30}) {
		t.Fatalf("PointerDown missed")
	}
	b.PointerMove(Point{140, 230})
	b.PointerMove(Point{340, 430})
	b.PointerUp()
	got := b.Tiles()[41]
	if got.PosX != 325 || got.PosY != 425 {
		t.Fatalf("tile 41 at (%v,%v), want (325,425)", got.PosX, got.PosY)
	}
}

func TestBoardDragSnapsToOwnCell(t *testing.T) {
	b := newSolvedBoard(t, 1000)
	// row 24 col 39, solved at (975,600)
	if !b.PointerDown(Point{990, 610}) {
		t.Fatalf("PointerDown missed")
	}
	idx, _ := b.Dragging()
	if idx != DefaultGrid.Count()-1 {
		t.Fatalf("dragging %d, want last tile", idx)
	}
	b.PointerMove(Point{500, 300})
	b.PointerMove(Point{982, 604})
	if !b.PointerUp() {
		t.Fatalf("expected snap near (975,600)")
	}
	got := b.Tiles()[idx]
	if got.PosX != 975 || got.PosY != 600 {
		t.Fatalf("last tile at (%v,%v), want (975,600)", got.PosX, got.PosY)
	}
}

func TestBoardPointerDownMiss(t *testing.T) {
	b := newSolvedBoard(t, 1000)
	if b.PointerDown(Point{-10, -10}) {
		t.Fatalf("PointerDown outside every tile started a drag")
	}
	if _, ok := b.Dragging(); ok {
		t.Fatalf("dragging after a miss")
	}
	if b.PointerUp() {
		t.Fatalf("PointerUp while idle reported a snap")
	}
	if b.Moves() != 0 {
		t.Fatalf("moves = %d after idle release, want 0", b.Moves())
	}
}

func TestBoardOffSurfaceDrag(t *testing.T) {
	b := newSolvedBoard(t, 1000)
	b.PointerDown(Point{5, 5})
	b.PointerMove(Point{-495, -995})
	b.PointerUp()
	got := b.Tiles()[0]
	if got.PosX != -500 || got.PosY != -1000 {
		t.Fatalf("tile at (%v,%v), want (-500,-1000)", got.PosX, got.PosY)
	}
}

func TestBoardRebuildClearsDrag(t *testing.T) {
	rebuilds := []struct {
		name string
		fn   func(b *Board)
	}{
		{"scramble", (*Board).Scramble},
		{"solve", (*Board).Solve},
		{"set_image", func(b *Board) { b.SetImage(800, 500) }},
	}

	for _, r := range rebuilds {
		t.Run(r.name, func(t *testing.T) {
			b := newSolvedBoard(t, 1000)
			if !b.PointerDown(Point{5, 5}) {
				t.Fatalf("PointerDown missed")
			}
			r.fn(b)
			if _, ok := b.Dragging(); ok {
				t.Fatalf("drag survived %s", r.name)
			}
			before := b.Tiles()
			b.PointerMove(Point{300, 300})
			after := b.Tiles()
			for i := range before {
				if before[i] != after[i] {
					t.Fatalf("tile %d moved after %s", i, r.name)
				}
			}
		})
	}
}

func TestBoardScrambleReplacesSequence(t *testing.T) {
	b := newSolvedBoard(t, 1000)
	b.Scramble()
	tiles := b.Tiles()
	if len(tiles) != DefaultGrid.Count() {
		t.Fatalf("got %d tiles, want %d", len(tiles), DefaultGrid.Count())
	}
	if b.Solved() {
		t.Fatalf("board still solved after scramble")
	}
	for i, tl := range tiles {
		if tl.PosX < 0 || tl.PosX >= 1000-tl.Width || tl.PosY < 0 || tl.PosY >= 625-tl.Height {
			t.Fatalf("tile %d at (%v,%v) out of bounds", i, tl.PosX, tl.PosY)
		}
	}
}

func TestBoardWheel(t *testing.T) {
	b := newSolvedBoard(t, 1000)
	want := 1.0
	for i := 0; i < 15; i++ {
		b.Wheel(1)
		want = math.Min(MaxScale, want+ScaleStep)
		if !almost(b.Scale(), want) {
			t.Fatalf("after %d wheel-ups scale = %v, want %v", i+1, b.Scale(), want)
		}
	}
	if b.Scale() != MaxScale {
		t.Fatalf("scale = %v, want clamp at %v", b.Scale(), MaxScale)
	}
	for i := 0; i < 30; i++ {
		b.Wheel(-3)
	}
	if b.Scale() != MinScale {
		t.Fatalf("scale = %v, want clamp at %v", b.Scale(), MinScale)
	}
	cw, ch := b.CanvasSize()
	if cw != 500 || ch != 312.5 {
		t.Fatalf("canvas %vx%v, want 500x312.5", cw, ch)
	}
	tl := b.Tiles()[DefaultGrid.Count()-1]
	if tl.PosX != 975 || tl.Width != 25 {
		t.Fatalf("zoom changed logical tile values: %+v", tl)
	}
	b.Wheel(0)
	if b.Scale() != MinScale {
		t.Fatalf("zero wheel delta changed scale to %v", b.Scale())
	}
}

func TestBoardRender(t *testing.T) {
	b := newSolvedBoard(t, 2000)
	s := &recordSurface{}
	b.Render(s)
	if s.clears != 1 {
		t.Fatalf("clears = %d, want 1", s.clears)
	}
	if len(s.dst) != DefaultGrid.Count() {
		t.Fatalf("drew %d regions, want %d", len(s.dst), DefaultGrid.Count())
	}
	tiles := b.Tiles()
	for i, tl := range tiles {
		if s.src[i] != tl.Source() {
			t.Fatalf("region %d src %+v, want %+v", i, s.src[i], tl.Source())
		}
		want := Rect{X: tl.PosX * 2, Y: tl.PosY * 2, W: tl.Width * 2, H: tl.Height * 2}
		if s.dst[i] != want {
			t.Fatalf("region %d dst %+v, want %+v", i, s.dst[i], want)
		}
	}
	b.Render(nil)
}

func TestBoardTileAccessor(t *testing.T) {
	b := newSolvedBoard(t, 1000)
	if _, ok := b.Tile(-1); ok {
		t.Fatalf("Tile(-1) reported ok")
	}
	if _, ok := b.Tile(DefaultGrid.Count()); ok {
		t.Fatalf("Tile(len) reported ok")
	}
	tl, ok := b.Tile(41)
	if !ok || tl.Row != 1 || tl.Col != 1 {
		t.Fatalf("Tile(41) = %+v, %v", tl, ok)
	}
}

func TestBoardCustomSnapThreshold(t *testing.T) {
	cases := []struct {
		name        string
		threshold   float64
		want        float64
		move        float64
		wantSnapped bool
	}{
		{"default_on_zero", 0, DefaultSnapThreshold, 25, false},
		{"wider", 40, 40, 25, true},
		{"narrower", 5, 5, 10, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := NewBoard(WithRand(testRand()), WithSnapThreshold(c.threshold))
			if b.SnapThreshold() != c.want {
				t.Fatalf("SnapThreshold = %v, want %v", b.SnapThreshold(), c.want)
			}
			b.SetImage(1000, 625)
			b.Solve()
			if !b.PointerDown(Point{5, 5}) {
				t.Fatalf("PointerDown missed")
			}
			b.PointerMove(Point{5 + c.move, 5})
			if got := b.PointerUp(); got != c.wantSnapped {
				t.Fatalf("snapped = %v, want %v", got, c.wantSnapped)
			}
		})
	}
}
