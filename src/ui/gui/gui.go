package gui

import (
	"slicepuzzle/src/loader"
	"slicepuzzle/src/logx"
	"slicepuzzle/src/puzzle"
	"slicepuzzle/src/ui/gui/gbase/gconf"
	"slicepuzzle/src/ui/gui/gdraw"
	"slicepuzzle/src/ui/gui/ghelper"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIProcessing struct {
	mgr *gdraw.SceneManager
	ctx *ghelper.GUIGameContext
}

func NewGUI(cfg *gconf.Config, logx logx.Logger) (*GUIProcessing, error) {
	as, err := ghelper.NewGUIAssetsWorker(cfg)
	if err != nil {
		return nil, err
	}
	board := puzzle.NewBoard(
		puzzle.WithGrid(puzzle.Grid{Rows: cfg.Rows, Cols: cfg.Cols}),
		puzzle.WithSnapThreshold(cfg.SnapThreshold),
		puzzle.WithWindowWidth(cfg.WindowW),
	)
	ctx := ghelper.NewGUIGameContext(board, loader.NewLoader(logx, nil), as, cfg, logx)
	mgr := gdraw.NewSceneManager(ctx)
	return &GUIProcessing{mgr: mgr, ctx: ctx}, nil
}

func (gp *GUIProcessing) Run() error {
	ebiten.SetWindowIcon(gp.ctx.AssetsWorker.Icons())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(gp.ctx.Config.WindowW, gp.ctx.Config.WindowH)
	ebiten.SetWindowTitle(gp.ctx.AssetsWorker.Lang().T("window.title"))
	defer gp.mgr.Close()
	return ebiten.RunGame(gp)
}

func (gp *GUIProcessing) Update() error {
	return gp.mgr.Update()
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.mgr.Draw(screen)
}

func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	gp.ctx.ScreenW = outsideWidth
	gp.ctx.ScreenH = outsideHeight
	return outsideWidth, outsideHeight
}
