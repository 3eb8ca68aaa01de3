package gdraw

import (
	"slicepuzzle/src/ui/gui/gbase"
	"slicepuzzle/src/ui/gui/ghelper"

	"github.com/hajimehoshi/ebiten/v2"
)

// ---- Scene ----

type Scene interface {
	Update(ctx *ghelper.GUIGameContext) (SceneType, error)
	Draw(ctx *ghelper.GUIGameContext, screen *ebiten.Image)
	Close() error
}

type SceneType int

const (
	ScenePuzzle SceneType = iota
	SceneExit
	SceneNotChanged
)

func (t SceneType) ToScene(s Scene, ctx *ghelper.GUIGameContext) Scene {
	switch t {
	case ScenePuzzle:
		if s != nil {
			_ = s.Close()
		}
		s = NewGUIPuzzleDrawer(ctx)
	case SceneNotChanged, SceneExit:
	default:
	}
	return s
}

type SceneManager struct {
	ctx     *ghelper.GUIGameContext
	current Scene
}

func NewSceneManager(ctx *ghelper.GUIGameContext) *SceneManager {
	return &SceneManager{ctx: ctx, current: ScenePuzzle.ToScene(nil, ctx)}
}

// Update returns gbase.ErrExit when the scene asks to quit.
func (m *SceneManager) Update() error {
	t, err := m.current.Update(m.ctx)
	if err != nil {
		return err
	}
	if t == SceneExit {
		return gbase.ErrExit
	}
	m.current = t.ToScene(m.current, m.ctx)
	return nil
}

func (m *SceneManager) Draw(screen *ebiten.Image) {
	m.current.Draw(m.ctx, screen)
}

func (m *SceneManager) Close() error {
	return m.current.Close()
}
