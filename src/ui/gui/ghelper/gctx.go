package ghelper

import (
	"slicepuzzle/src/loader"
	"slicepuzzle/src/logx"
	"slicepuzzle/src/puzzle"
	"slicepuzzle/src/ui/gui/gbase"
	"slicepuzzle/src/ui/gui/gbase/gconf"
	"slicepuzzle/src/ui/gui/ghelper/gsound"
)

// ---- GUI Context ----

type GUIGameContext struct {
	Board        *puzzle.Board
	Loader       *loader.Loader
	AssetsWorker *GUIAssetsWorker
	Config       *gconf.Config
	Sound        *gsound.Player
	Theme        gbase.Palette
	Logx         logx.Logger

	// last size reported by Layout
	ScreenW, ScreenH int
}

func NewGUIGameContext(b *puzzle.Board, ld *loader.Loader, a *GUIAssetsWorker, c *gconf.Config, l logx.Logger) *GUIGameContext {
	return &GUIGameContext{
		Board:        b,
		Loader:       ld,
		AssetsWorker: a,
		Config:       c,
		Sound:        gsound.NewPlayer(c.Sound),
		Theme:        gbase.PaletteFromString(c.Theme),
		Logx:         l,
		ScreenW:      c.WindowW,
		ScreenH:      c.WindowH,
	}
}
