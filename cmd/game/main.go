// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	game "go-shooting-gallery/internal/app"
	"go-shooting-gallery/internal/config"
	"go-shooting-gallery/internal/state"
	"go-shooting-gallery/internal/ui"
	"go-shooting-gallery/internal/utils"
)

// screenViewport reports the logical screen size chosen in Layout.
type screenViewport struct {
	w, h float64
}

func (v *screenViewport) Size() (float64, float64) {
	return v.w, v.h
}

type AppGame struct {
	stateMachine   *state.StateMachine
	game           *game.Game
	viewport       *screenViewport
	renderer       *ui.RenderSystem
	indicator      *ui.RoundIndicator
	menu           *ui.MenuText
	tuning         *config.Tuning
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > a.tuning.Session.MaxDeltaTime {
		deltaTime = a.tuning.Session.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	switch a.stateMachine.Current().(type) {
	case *state.PlayState:
		a.renderer.Draw(screen)
		a.indicator.X = screen.Bounds().Dx() / 2
		a.indicator.Draw(screen, a.game.Round())
	default:
		a.menu.Draw(screen, menuBody(a.game))
	}
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.viewport.w, a.viewport.h = float64(outsideWidth), float64(outsideHeight)
	return outsideWidth, outsideHeight
}

func menuBody(g *game.Game) string {
	if g.SessionID() == "" {
		return state.MenuPrompt
	}
	s := g.Stats()
	return fmt.Sprintf("%s\n\nLast session: round %d, %d destroyed\n(%s)", state.MenuPrompt, s.Round, s.EnemiesDestroyed, s.EndReason)
}

func main() {
	configPath := flag.String("config", "", "path to a TOML tuning file")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	flag.Parse()

	tuning := config.DefaultTuning()
	if *configPath != "" {
		var err error
		if tuning, err = config.LoadTuning(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	if *seed != 0 {
		tuning.Session.Seed = *seed
	}

	viewport := &screenViewport{w: float64(tuning.Window.Width), h: float64(tuning.Window.Height)}
	gameLogic := game.NewGame(tuning, viewport, keyboard{}, utils.NewPRNGService(tuning.Session.Seed))

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, gameLogic, keyboard{}))

	app := &AppGame{
		stateMachine:   sm,
		game:           gameLogic,
		viewport:       viewport,
		renderer:       ui.NewRenderSystem(gameLogic.ECS),
		indicator:      ui.NewRoundIndicator(tuning.Window.Width/2, 30, ui.DefaultFace, config.TextLightColor),
		menu:           ui.NewMenuText(config.TextLightColor),
		tuning:         tuning,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(tuning.Window.Width, tuning.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Shooting Gallery")
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	sm.SetState(nil)
}
