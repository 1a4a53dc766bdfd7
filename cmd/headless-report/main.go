// cmd/headless-report/main.go
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/atotto/clipboard"

	game "go-shooting-gallery/internal/app"
	"go-shooting-gallery/internal/component"
	"go-shooting-gallery/internal/config"
	"go-shooting-gallery/internal/input"
	"go-shooting-gallery/internal/utils"
)

// strafe sweeps left and right across the field while holding fire.
func strafe(ticksPerSweep int) *input.Script {
	frames := input.Repeat(input.Hold(input.MoveLeft, input.Fire), ticksPerSweep/2)
	frames = append(frames, input.Repeat(input.Hold(input.MoveRight, input.Fire), ticksPerSweep)...)
	frames = append(frames, input.Repeat(input.Hold(input.MoveLeft, input.Fire), ticksPerSweep/2)...)
	return &input.Script{Frames: frames, Loop: true}
}

func main() {
	configPath := flag.String("config", "", "path to a TOML tuning file")
	seed := flag.Int64("seed", 1, "random seed, 0 picks one from the clock")
	seconds := flag.Float64("seconds", 120, "simulated seconds to play at most")
	dt := flag.Float64("dt", 1.0/60, "fixed tick length in seconds")
	copyReport := flag.Bool("copy", false, "copy the report to the clipboard")
	flag.Parse()

	tuning := config.DefaultTuning()
	if *configPath != "" {
		var err error
		if tuning, err = config.LoadTuning(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	tuning.Session.Seed = *seed
	if *dt <= 0 {
		log.Fatalf("tick length must be positive, got %v", *dt)
	}

	script := strafe(int(4 / *dt))
	field := game.FixedViewport{W: float64(tuning.Window.Width), H: float64(tuning.Window.Height)}
	g := game.NewGame(tuning, field, script, utils.NewPRNGService(tuning.Session.Seed))

	g.Start()
	for elapsed := 0.0; elapsed < *seconds && g.Phase() == component.PhaseActivePlay; elapsed += *dt {
		g.Update(*dt)
		script.Advance()
	}
	g.Stop()

	report := g.Stats().Summary()
	fmt.Print(report)

	if *copyReport {
		if err := clipboard.WriteAll(report); err != nil {
			log.Fatalf("failed to copy report: %v", err)
		}
		log.Println("Report copied to clipboard")
	}
}
