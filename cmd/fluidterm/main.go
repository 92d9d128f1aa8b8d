// Package main runs the tube flow simulation inside a terminal.
//
// Usage:
//
//	go run ./cmd/fluidterm [flags]
//
// Flags:
//
//	--config <path>   Simulation config YAML (default: built-in defaults)
//	--t-junction      Start with the T-junction branch enabled
//	                  (--t-junction=false overrides a config that enables it)
//	--seed <n>        Random seed (0 = time based)
//	--fps <n>         Frames per second
//	--log <path>      Write logs to a file (the screen is owned by tcell)
//
// Controls:
//
//	Space    - Pause / resume
//	r        - Reset the simulation
//	t        - Toggle the T-junction branch
//	+ / -    - Lengthen / shorten the tube
//	q / Esc  - Quit
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/tubeflow/internal/fluid"
	"github.com/gonewx/tubeflow/internal/terminal"
	"github.com/gonewx/tubeflow/pkg/config"
	"github.com/gonewx/tubeflow/pkg/game"
)

var (
	configFlag    = flag.String("config", "", "Simulation config YAML (default: built-in defaults)")
	tJunctionFlag = flag.Bool("t-junction", false, "Enable the T-junction branch")
	seedFlag      = flag.Int64("seed", 0, "Random seed (0 = time based)")
	fpsFlag       = flag.Int("fps", 60, "Frames per second")
	logFlag       = flag.String("log", "", "Log file path (default: discard)")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fluidterm: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	log.SetOutput(io.Discard)
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.LoadSimulationConfig(*configFlag)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	params := overrideTJunction(cfg.Defaults, explicitFlags(flag.CommandLine), *tJunctionFlag)

	var rng *rand.Rand
	if *seedFlag != 0 {
		rng = rand.New(rand.NewSource(*seedFlag))
	}
	controller := game.NewSimulationController(cfg, params, rng)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	fps := max(*fpsFlag, 1)
	log.Printf("[Terminal] Starting at %d fps with params %+v", fps, controller.Params())
	terminal.NewRunner(screen, controller, time.Second/time.Duration(fps)).Run()
	return nil
}

// explicitFlags 返回命令行中显式给出的 flag 名
func explicitFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// overrideTJunction 只有显式给出 --t-junction 时才覆盖配置中的值
func overrideTJunction(p fluid.Params, set map[string]bool, enabled bool) fluid.Params {
	if set["t-junction"] {
		p.TJunction = enabled
	}
	return p
}
