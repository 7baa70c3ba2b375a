package dnd

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ClearColor fills the screen before the scene is drawn.
	ClearColor Color
	// ShowFPS prints FPS and TPS in the top-left corner.
	ShowFPS bool
	// ShowSession prints the drag session state under the FPS line.
	ShowSession bool
}

type runGame struct {
	scene *Scene
	cfg   RunConfig
}

func (g *runGame) Update() error {
	g.scene.Update()
	return nil
}

func (g *runGame) Draw(screen *ebiten.Image) {
	if c := g.cfg.ClearColor; c.A > 0 {
		screen.Fill(c.toRGBA())
	}
	g.scene.Draw(screen)

	var msg string
	if g.cfg.ShowFPS {
		msg += fmt.Sprintf("FPS: %.1f\nTPS: %.1f\n", ebiten.ActualFPS(), ebiten.ActualTPS())
	}
	if g.cfg.ShowSession {
		ss := g.scene.Session()
		msg += fmt.Sprintf("session: %s top: %s mode: %s", ss.State(), zoneName(ss.Top()), g.scene.CurrentDropMode())
	}
	if msg != "" {
		ebitenutil.DebugPrint(screen, msg)
	}
}

func (g *runGame) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and drives scene until the window is closed. For full
// control, implement ebiten.Game and call Scene.Update and Scene.Draw
// directly.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("dnd: run: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&runGame{scene: scene, cfg: cfg})
}
