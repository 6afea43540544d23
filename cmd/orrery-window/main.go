// Command orrery-window runs the explorer in a desktop window
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/orrery/config"
	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/parameter"
)

var (
	configFlag = flag.String("config", "", "Config file (toml, json or yaml)")
	logFlag    = flag.String("log", "", "Log file, overrides config")
	colsFlag   = flag.Int("cols", 140, "Initial width in cells")
	rowsFlag   = flag.Int("rows", 45, "Initial height in cells")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "orrery-window: %v\n", err)
		os.Exit(1)
	}
	if *logFlag != "" {
		cfg.Log.File = *logFlag
	}

	ex, err := engine.New(cfg, engine.Options{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "orrery-window: %v\n", err)
		os.Exit(1)
	}
	defer ex.Close()

	g := newGame(ex, *colsFlag, *rowsFlag)
	ebiten.SetWindowTitle("Orrery")
	ebiten.SetWindowSize(*colsFlag*cellW, *rowsFlag*cellH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(parameter.WindowTPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		ex.Logger().Error().Err(err).Msg("window closed with error")
		fmt.Fprintf(os.Stderr, "orrery-window: %v\n", err)
		os.Exit(1)
	}
}
