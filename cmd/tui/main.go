// cmd/tui/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	game "go-shooting-gallery/internal/app"
	"go-shooting-gallery/internal/config"
	"go-shooting-gallery/internal/input"
	"go-shooting-gallery/internal/state"
	"go-shooting-gallery/internal/utils"
	"go-shooting-gallery/pkg/render"
)

const frameRate = time.Second / 60

func main() {
	configPath := flag.String("config", "", "path to a TOML tuning file")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	hold := flag.Duration("hold", input.DefaultHoldTimeout, "how long a key counts as held after the terminal reports it")
	logPath := flag.String("log", "", "write the log to this file instead of discarding it")
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

	// The screen owns the terminal, log lines would tear it.
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	s, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := s.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer s.Fini()

	keys := input.NewTerminal(*hold)
	field := game.FixedViewport{W: float64(tuning.Window.Width), H: float64(tuning.Window.Height)}
	g := game.NewGame(tuning, field, keys, utils.NewPRNGService(tuning.Session.Seed))

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, g, keys))
	defer sm.SetState(nil)

	renderer := render.NewTerminalRenderer(s, render.Palette{
		Background: config.BackgroundColor,
		Text:       config.TextLightColor,
	})

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameRate)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				s.Sync()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return
				}
				keys.HandleEvent(ev)
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if dt > tuning.Session.MaxDeltaTime {
				dt = tuning.Session.MaxDeltaTime
			}
			keys.Update()
			sm.Update(dt)
			draw(renderer, sm, g, field)
		}
	}
}

func draw(r *render.TerminalRenderer, sm *state.StateMachine, g *game.Game, field game.FixedViewport) {
	r.Clear()
	switch sm.Current().(type) {
	case *state.PlayState:
		r.Draw(render.Collect(g.ECS, field.W, field.H), field.W, field.H)
		r.TextCentered(0, render.RoundLabel(g.Round()))
	default:
		r.TextCentered(1, state.MenuPrompt)
		if g.SessionID() != "" {
			s := g.Stats()
			r.TextCentered(3, fmt.Sprintf("Last session: round %d, %d destroyed (%s)", s.Round, s.EnemiesDestroyed, s.EndReason))
		}
		r.TextCentered(5, "a/d or arrows move, space fires, esc quits")
	}
	r.Show()
}
