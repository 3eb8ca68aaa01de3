package ghelper

import (
	"math"

	"slicepuzzle/src/ui/gui/gbase"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// ---- Button ----

type Button struct {
	Label      string
	X, Y, W, H int
	Image      *ebiten.Image // pre-rendered rounded rect with stroke
	OnClick    func()

	// animation state
	Hover   bool
	Pressed bool

	Scale         float64
	TargetScale   float64
	OffsetY       float64
	TargetOffsetY float64
	AnimSpeed     float64 // per second
}

func NewButton(label string, x, y, w, h int, theme gbase.Palette, onClick func()) *Button {
	return &Button{
		Label: label,
		X:     x, Y: y, W: w, H: h,
		Image:   RenderRoundedRect(w, h, 12, theme.ButtonFill, theme.ButtonStroke, 3),
		OnClick: onClick,
		Scale:   1.0, TargetScale: 1.0, AnimSpeed: 10.0,
	}
}

func (b *Button) Contains(px, py int) bool {
	return PointInRect(px, py, b.X, b.Y, b.W, b.H)
}

// HandleInput returns true when a press that started on the button is
// released on it; OnClick runs at that moment.
func (b *Button) HandleInput(px, py int, justPressed, justReleased bool) bool {
	inside := b.Contains(px, py)
	b.Hover = inside

	if justPressed && inside {
		b.Pressed = true
		b.TargetScale = 0.96
		b.TargetOffsetY = 3.0
	}
	if justReleased {
		clicked := b.Pressed && inside
		b.Pressed = false
		b.TargetOffsetY = 0
		if clicked {
			b.TargetScale = 1.03
			if b.OnClick != nil {
				b.OnClick()
			}
			return true
		}
		b.TargetScale = 1.0
	}
	if !b.Pressed {
		b.TargetOffsetY = 0
		if inside {
			b.TargetScale = 1.02
		} else {
			b.TargetScale = 1.0
		}
	}
	return false
}

func (b *Button) UpdateAnim(dt float64) {
	if b.AnimSpeed <= 0 {
		b.AnimSpeed = 8.0
	}
	t := 1.0 - math.Exp(-b.AnimSpeed*dt)
	b.Scale += (b.TargetScale - b.Scale) * t
	b.OffsetY += (b.TargetOffsetY - b.OffsetY) * t

	// click bounce settles back
	if !b.Pressed && math.Abs(b.Scale-1.03) < 0.005 {
		b.TargetScale = 1.0
	}
}

func (b *Button) DrawAnimated(screen *ebiten.Image, face font.Face, theme gbase.Palette) {
	if b.Image == nil {
		return
	}
	cx := float64(b.X + b.W/2)
	cy := float64(b.Y+b.H/2) + b.OffsetY

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Image.Bounds().Dx())/2, -float64(b.Image.Bounds().Dy())/2)
	op.GeoM.Scale(b.Scale, b.Scale)
	op.GeoM.Translate(cx, cy)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(b.Image, op)

	bounds := text.BoundString(face, b.Label)
	tx := int(cx) - bounds.Dx()/2
	ty := int(cy) + bounds.Dy()/2
	text.Draw(screen, b.Label, face, tx, ty, theme.ButtonText)
}

// ---- Toast ----

// Toast is a centered, non-modal message that fades out after Duration seconds.
type Toast struct {
	Text     string
	Duration float64

	left  float64
	alpha float64

	// background rendered for imgText in imgTheme
	img      *ebiten.Image
	imgText  string
	imgTheme gbase.Palette
}

func (t *Toast) Show(msg string, seconds float64) {
	t.Text = msg
	t.Duration = seconds
	t.left = seconds
	t.alpha = 0
}

func (t *Toast) Hide() {
	t.left = 0
	t.alpha = 0
}

func (t *Toast) Visible() bool {
	return t.left > 0 || t.alpha > 0.01
}

func (t *Toast) Update(dt float64) {
	target := 0.0
	if t.left > 0 {
		t.left -= dt
		target = 1.0
	}
	t.alpha += (target - t.alpha) * (1.0 - math.Exp(-8*dt))
	if t.left <= 0 && t.alpha < 0.01 {
		t.alpha = 0
	}
}

// stale reports whether the cached background no longer fits the message.
func (t *Toast) stale(theme gbase.Palette) bool {
	return t.img == nil || t.imgText != t.Text || t.imgTheme != theme
}

func (t *Toast) Draw(screen *ebiten.Image, face font.Face, theme gbase.Palette) {
	if !t.Visible() {
		return
	}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	bounds := text.BoundString(face, t.Text)
	w, h := bounds.Dx()+64, bounds.Dy()+40
	x, y := (sw-w)/2, (sh-h)/2

	if t.stale(theme) {
		if t.img != nil {
			t.img.Deallocate()
		}
		t.img = RenderRoundedRect(w, h, 16, theme.ButtonFill, theme.Accent, 3)
		t.imgText, t.imgTheme = t.Text, theme
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleAlpha(float32(t.alpha))
	screen.DrawImage(t.img, op)

	topts := &ebiten.DrawImageOptions{}
	topts.GeoM.Translate(float64(x+32), float64(y+20+bounds.Dy()))
	topts.ColorScale.ScaleWithColor(theme.MenuText)
	topts.ColorScale.ScaleAlpha(float32(t.alpha))
	text.DrawWithOptions(screen, t.Text, face, topts)
}
