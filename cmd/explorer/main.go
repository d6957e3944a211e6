// Command explorer is the interactive terminal front-end: a top-down
// view of the running simulation with keyboard-driven body selection,
// camera focus, and speed control.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ajayprakashk7/Solar-system-emulator/core"
	"github.com/Ajayprakashk7/Solar-system-emulator/internal/logging"
	"github.com/Ajayprakashk7/Solar-system-emulator/internal/ui"
	"github.com/Ajayprakashk7/Solar-system-emulator/model"
	"github.com/Ajayprakashk7/Solar-system-emulator/registry"
	"github.com/Ajayprakashk7/Solar-system-emulator/timectrl"
)

func main() {
	tick := flag.Duration("tick", 33*time.Millisecond, "tick interval")
	speed := flag.Float64("speed", 1.0, "initial user speed factor")
	catalogPath := flag.String("catalog", "", "path to a JSON body catalog (default: built-in solar system)")
	flag.Parse()

	// The TUI owns stdout; keep logs quiet unless explicitly raised.
	log := logging.NewFromEnv()
	ctx := context.Background()

	bodies, err := loadBodies(*catalogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "catalog load failed: %v\n", err)
		os.Exit(1)
	}

	store := registry.New()
	speedCtl := timectrl.NewSpeedControl(*speed)
	engine := core.NewEngine(bodies, store, speedCtl, nil, log)

	program := tea.NewProgram(
		ui.NewExplorer(engine, store, speedCtl, *tick),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		log.Error(ctx, "explorer exited", logging.String("error", err.Error()))
		os.Exit(1)
	}
}

func loadBodies(path string) ([]*model.CelestialBody, error) {
	if path == "" {
		bodies := model.DefaultCatalog()
		if err := core.ValidateCatalog(bodies); err != nil {
			return nil, fmt.Errorf("built-in catalog: %w", err)
		}
		return bodies, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return core.LoadCatalog(f)
}
