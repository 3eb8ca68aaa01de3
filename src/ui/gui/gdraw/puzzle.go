package gdraw

import (
	"errors"
	"fmt"
	"math"
	"time"

	"slicepuzzle/src/loader"
	"slicepuzzle/src/puzzle"
	"slicepuzzle/src/ui/gui/gbase"
	"slicepuzzle/src/ui/gui/gbase/gos"
	"slicepuzzle/src/ui/gui/gbase/gwatch"
	"slicepuzzle/src/ui/gui/ghelper"
	"slicepuzzle/src/ui/gui/ghelper/gdialog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

type dialogResult struct {
	res gdialog.Result
	err error
}

// GUIPuzzleDrawer implements Scene
type GUIPuzzleDrawer struct {
	// canvas origin in window pixels
	canvasX, canvasY int

	source *ebiten.Image // decoded picture, nil until image-ready
	canvas *ebiten.Image // offscreen surface sized to Board.CanvasSize

	// loading
	load     *loader.Session
	loadErr  error
	watcher  *gwatch.Watcher
	dialogCh chan dialogResult
	inDialog bool

	// ui
	buttons []*ghelper.Button
	toast   *ghelper.Toast

	wasSolved     bool
	prevMouseDown bool
	lastTick      time.Time
}

func NewGUIPuzzleDrawer(ctx *ghelper.GUIGameContext) *GUIPuzzleDrawer {
	pd := &GUIPuzzleDrawer{
		canvasX:  gbase.PaddingX,
		canvasY:  gbase.ToolbarH + gbase.StatusH,
		load:     ctx.Loader.NewSession(),
		dialogCh: make(chan dialogResult, 1),
		toast:    &ghelper.Toast{},
		lastTick: time.Now(),
	}
	pd.makeButtons(ctx)
	pd.startLoad(ctx, ctx.Config.Image)
	return pd
}

func (pd *GUIPuzzleDrawer) makeButtons(ctx *ghelper.GUIGameContext) {
	lang := ctx.AssetsWorker.Lang()
	x := gbase.PaddingX
	y := (gbase.ToolbarH - gbase.ButtonH) / 2
	add := func(key string, onClick func()) {
		b := ghelper.NewButton(lang.T(key), x, y, gbase.ButtonW, gbase.ButtonH, ctx.Theme, onClick)
		pd.buttons = append(pd.buttons, b)
		x += gbase.ButtonW + gbase.ButtonGap
	}

	add("button.solve", func() { pd.solve(ctx) })
	add("button.scramble", func() { pd.scramble(ctx) })
	add("button.open", func() { pd.openDialog(ctx) })
}

// ---- Loading ----

// startLoad begins the asynchronous load. A puzzle already on screen stays
// playable until the new picture is ready; a fresh board stays unready.
// Restarting cancels a load still in flight.
func (pd *GUIPuzzleDrawer) startLoad(ctx *ghelper.GUIGameContext, locator string) {
	pd.loadErr = nil
	pd.load.Start(locator)
	ctx.Logx.Infof("loading image %q", locator)
}

func (pd *GUIPuzzleDrawer) pollLoad(ctx *ghelper.GUIGameContext) {
	res, ok := pd.load.Poll()
	if !ok {
		return
	}
	if res.Err != nil {
		pd.loadErr = res.Err
		pd.toast.Show(ctx.AssetsWorker.Lang().T("status.load_failed"), 3)
		return
	}

	if pd.source != nil {
		pd.source.Deallocate()
	}
	pd.source = ebiten.NewImageFromImage(res.Image)
	b := res.Image.Bounds()
	ctx.Board.SetWindowWidth(ctx.ScreenW - 2*gbase.PaddingX)
	ctx.Board.SetImage(b.Dx(), b.Dy())
	pd.wasSolved = false
	tw, th := ctx.Board.TileSize()
	ctx.Logx.Infof("image ready %dx%d, grid %dx%d, tile %.2fx%.2f, scale %.2f",
		b.Dx(), b.Dy(), ctx.Board.Grid().Rows, ctx.Board.Grid().Cols, tw, th, ctx.Board.Scale())
	pd.watch(ctx, res.Locator)
}

// watch follows local image files so edits show up as a fresh puzzle.
func (pd *GUIPuzzleDrawer) watch(ctx *ghelper.GUIGameContext, locator string) {
	if pd.watcher != nil {
		_ = pd.watcher.Close()
		pd.watcher = nil
	}
	if !ctx.Config.Watch || !gos.Watchable() || loader.KindOf(locator) != loader.KindFile {
		return
	}
	w, err := gwatch.NewWatcher(locator)
	if err != nil {
		ctx.Logx.Warnf("error watch %q: %v", locator, err)
		return
	}
	pd.watcher = w
}

func (pd *GUIPuzzleDrawer) pollWatch(ctx *ghelper.GUIGameContext) {
	if pd.watcher == nil {
		return
	}
	select {
	case name, ok := <-pd.watcher.Events:
		if ok {
			ctx.Logx.Infof("image %q changed on disk, reloading", name)
			pd.startLoad(ctx, pd.load.Locator())
		}
	case err, ok := <-pd.watcher.Errors:
		if ok {
			ctx.Logx.Warnf("error watch: %v", err)
		}
	default:
	}
}

func (pd *GUIPuzzleDrawer) openDialog(ctx *ghelper.GUIGameContext) {
	if pd.inDialog {
		return
	}
	pd.inDialog = true
	title := ctx.AssetsWorker.Lang().T("dialog.open_title")
	go func() {
		res, err := gdialog.OpenImage(title)
		pd.dialogCh <- dialogResult{res: res, err: err}
	}()
}

func (pd *GUIPuzzleDrawer) pollDialog(ctx *ghelper.GUIGameContext) {
	var dr dialogResult
	select {
	case dr = <-pd.dialogCh:
	default:
		return
	}
	pd.inDialog = false
	switch {
	case errors.Is(dr.err, gdialog.ErrCanceled):
		return
	case errors.Is(dr.err, gdialog.ErrUnsupported):
		pd.toast.Show(ctx.AssetsWorker.Lang().T("dialog.unsupported"), 2.5)
		return
	case dr.err != nil:
		ctx.Logx.Errorf("error open dialog: %v", dr.err)
		return
	}
	ctx.Config.Image = dr.res.Path
	if err := ctx.Config.Save(); err != nil {
		ctx.Logx.Warnf("error save config: %v", err)
	}
	pd.startLoad(ctx, dr.res.Path)
}

// ---- Actions ----

func (pd *GUIPuzzleDrawer) solve(ctx *ghelper.GUIGameContext) {
	if !ctx.Board.Ready() {
		return
	}
	ctx.Board.Solve()
	pd.toast.Hide()
	pd.wasSolved = true
	ctx.Logx.Info("solve")
}

func (pd *GUIPuzzleDrawer) scramble(ctx *ghelper.GUIGameContext) {
	if !ctx.Board.Ready() {
		return
	}
	ctx.Board.Scramble()
	pd.toast.Hide()
	pd.wasSolved = false
	ctx.Logx.Info("scramble")
}

func (pd *GUIPuzzleDrawer) toggleSound(ctx *ghelper.GUIGameContext) {
	on := !ctx.Sound.Enabled()
	ctx.Sound.SetEnabled(on)
	ctx.Config.Sound = on
	if err := ctx.Config.Save(); err != nil {
		ctx.Logx.Warnf("error save config: %v", err)
	}
	key := "toast.sound_off"
	if on {
		key = "toast.sound_on"
	}
	pd.toast.Show(ctx.AssetsWorker.Lang().T(key), 1.5)
	ctx.Logx.Infof("sound %v", on)
}

func (pd *GUIPuzzleDrawer) zoom(ctx *ghelper.GUIGameContext, dy float64) {
	before := ctx.Board.Scale()
	ctx.Board.Wheel(dy)
	if s := ctx.Board.Scale(); s != before {
		ctx.Logx.Debugf("zoom %.1f -> %.1f", before, s)
	}
}

// ---- Update ----

func (pd *GUIPuzzleDrawer) Update(ctx *ghelper.GUIGameContext) (SceneType, error) {
	now := time.Now()
	dt := now.Sub(pd.lastTick).Seconds()
	pd.lastTick = now

	pd.pollLoad(ctx)
	pd.pollWatch(ctx)
	pd.pollDialog(ctx)
	pd.toast.Update(dt)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return SceneExit, nil
	}

	mx, my := ebiten.CursorPosition()
	mouseDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justPressed := mouseDown && !pd.prevMouseDown
	justReleased := !mouseDown && pd.prevMouseDown
	pd.prevMouseDown = mouseDown

	_, dragging := ctx.Board.Dragging()
	onToolbar := my < gbase.ToolbarH
	for _, b := range pd.buttons {
		// a drag that ends over the toolbar must not click a button
		b.HandleInput(mx, my, justPressed && !dragging, justReleased && !dragging)
		b.UpdateAnim(dt)
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		pd.solve(ctx)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		pd.scramble(ctx)
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		pd.toggleSound(ctx)
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		pd.zoom(ctx, 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		pd.zoom(ctx, -1)
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		pd.zoom(ctx, dy)
	}

	// pointer in canvas space
	p := puzzle.Point{X: float64(mx - pd.canvasX), Y: float64(my - pd.canvasY)}
	switch {
	case justPressed && !onToolbar:
		if ctx.Board.PointerDown(p) {
			idx, _ := ctx.Board.Dragging()
			ctx.Logx.Debugf("pick tile %d at (%.0f,%.0f)", idx, p.X, p.Y)
		}
	case mouseDown:
		ctx.Board.PointerMove(p)
	case justReleased:
		idx, held := ctx.Board.Dragging()
		if held && ctx.Board.PointerUp() {
			ctx.Sound.Click()
			ctx.Logx.Debugf("tile %d snapped", idx)
		}
	}

	solved := ctx.Board.Solved()
	if solved && !pd.wasSolved {
		pd.toast.Show(ctx.AssetsWorker.Lang().T("toast.solved"), 3)
		ctx.Logx.Infof("puzzle complete in %d moves", ctx.Board.Moves())
	}
	pd.wasSolved = solved

	return SceneNotChanged, nil
}

// ---- Draw ----

func (pd *GUIPuzzleDrawer) ensureCanvas(ctx *ghelper.GUIGameContext) {
	cw, ch := ctx.Board.CanvasSize()
	w, h := int(math.Ceil(cw)), int(math.Ceil(ch))
	if w <= 0 || h <= 0 {
		return
	}
	if pd.canvas != nil {
		if b := pd.canvas.Bounds(); b.Dx() == w && b.Dy() == h {
			return
		}
		pd.canvas.Deallocate()
	}
	pd.canvas = ebiten.NewImage(w, h)
}

func (pd *GUIPuzzleDrawer) Draw(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)
	fonts := ctx.AssetsWorker.Fonts()
	lang := ctx.AssetsWorker.Lang()

	for _, b := range pd.buttons {
		b.DrawAnimated(screen, fonts.Normal, ctx.Theme)
	}

	statusY := gbase.ToolbarH + gbase.StatusH - 8
	if !ctx.Board.Ready() {
		msg := lang.T("status.loading")
		if pd.loadErr != nil {
			msg = fmt.Sprintf("%s: %v", lang.T("status.load_failed"), pd.loadErr)
		}
		text.Draw(screen, msg, fonts.Normal, gbase.PaddingX, statusY, ctx.Theme.MenuText)
		pd.toast.Draw(screen, fonts.Bold, ctx.Theme)
		return
	}

	status := fmt.Sprintf("%s: %d / %d    %s: %d    %s: %.0f%%",
		lang.T("status.placed"), ctx.Board.Placed(), ctx.Board.Grid().Count(),
		lang.T("status.moves"), ctx.Board.Moves(),
		lang.T("status.zoom"), ctx.Board.Scale()*100)
	text.Draw(screen, status, fonts.Normal, gbase.PaddingX, statusY, ctx.Theme.MenuText)

	pd.ensureCanvas(ctx)
	if pd.canvas == nil || pd.source == nil {
		return
	}

	cb := pd.canvas.Bounds()
	inset := float64(gbase.BoardInset)
	ghelper.DrawRect(screen, float64(pd.canvasX)-inset, float64(pd.canvasY)-inset,
		float64(cb.Dx())+2*inset, float64(cb.Dy())+2*inset, ctx.Theme.CanvasBg)

	ctx.Board.Render(ebitenSurface{dst: pd.canvas, src: pd.source})
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(pd.canvasX), float64(pd.canvasY))
	screen.DrawImage(pd.canvas, op)

	if idx, ok := ctx.Board.Dragging(); ok {
		t, _ := ctx.Board.Tile(idx)
		r := t.Bounds(ctx.Board.Scale())
		ghelper.DrawRectStroke(screen, float64(pd.canvasX)+r.X, float64(pd.canvasY)+r.Y, r.W, r.H, 2, ctx.Theme.Highlight)
	}

	pd.toast.Draw(screen, fonts.Bold, ctx.Theme)

	if ctx.Config.Debug {
		dbg := fmt.Sprintf("TPS: %0.2f  snap: %.0fpx", ebiten.ActualTPS(), ctx.Board.SnapThreshold())
		text.Draw(screen, dbg, fonts.Mono, gbase.PaddingX, screen.Bounds().Dy()-8, ctx.Theme.MenuText)
	}
}

func (pd *GUIPuzzleDrawer) Close() error {
	pd.load.Close()
	if pd.watcher != nil {
		return pd.watcher.Close()
	}
	return nil
}
