package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orrery/config"
	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/render"
)

var (
	configFlag = flag.String("config", "", "Config file (toml, json or yaml)")
	logFlag    = flag.String("log", "", "Log file, overrides config")
	lowFlag    = flag.Bool("low", false, "Start in low detail")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "orrery: %v\n", err)
		os.Exit(1)
	}
	if *logFlag != "" {
		cfg.Log.File = *logFlag
	}
	if *lowFlag {
		cfg.View.LowDetail = true
	}

	ex, err := engine.New(cfg, engine.Options{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "orrery: %v\n", err)
		os.Exit(1)
	}
	defer ex.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\norrery crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	screen.HideCursor()

	run(ex, screen)
}

func run(ex *engine.Explorer, screen tcell.Screen) {
	w, h := screen.Size()
	rend := render.New(ex.Sim().Catalog(), w, h)
	ptr := &pointer{}

	ticker := time.NewTicker(time.Second / time.Duration(ex.Config().View.FPS))
	defer ticker.Stop()

	inputCh := startInputReader(screen)

	for {
		select {
		case ev, ok := <-inputCh:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				w, h = ev.Size()
				rend.Resize(w, h)
				screen.Sync()
			case *tcell.EventKey:
				if ex.Do(ex.Keys().Event(ev)) {
					return
				}
			case *tcell.EventMouse:
				ptr.handle(ex, rend, ev)
			}

		case <-ticker.C:
			fr := ex.Step()
			rend.Draw(ex.Sim(), fr, ex.HUD(), ex.FPS())
			rend.Buffer().Flush(screen)
		}
	}
}

func startInputReader(screen tcell.Screen) <-chan tcell.Event {
	ch := make(chan tcell.Event, 64)
	go func() {
		defer close(ch)
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			ch <- ev
		}
	}()
	return ch
}
