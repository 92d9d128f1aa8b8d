// Package main is the desktop entry point of the tube flow visualization.
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--verbose            Enable verbose logging
//	--config <path>      Load simulation config from a YAML file instead of the embedded one
//	--tube-length <n>    Initial tube length
//	--width <n>          Initial container width
//	--height <n>         Initial container height
//	--t-junction         Start with the T-junction branch enabled
//	--seed <n>           Random seed (0 = time based)
//
// Controls:
//
//	Space   - Pause / resume
//	R       - Reset the simulation
//	Escape  - Quit
package main

import (
	"flag"
	"log"
	"os"

	"github.com/gonewx/tubeflow/internal/fluid"
	"github.com/gonewx/tubeflow/pkg/app"
	"github.com/gonewx/tubeflow/pkg/config"
	"github.com/gonewx/tubeflow/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verboseFlag    = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	configFlag     = flag.String("config", "", "Simulation config YAML (default: embedded data/simulation.yaml)")
	tubeLengthFlag = flag.Float64("tube-length", 0, "Initial tube length")
	widthFlag      = flag.Float64("width", 0, "Initial container width")
	heightFlag     = flag.Float64("height", 0, "Initial container height")
	tJunctionFlag  = flag.Bool("t-junction", false, "Enable the T-junction branch")
	seedFlag       = flag.Int64("seed", 0, "Random seed (0 = time based)")
)

// paramOverrides 只覆盖命令行中显式给出的参数
func paramOverrides() func(p *fluid.Params) {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	return func(p *fluid.Params) {
		if set["tube-length"] {
			p.TubeLength = *tubeLengthFlag
		}
		if set["width"] {
			p.ContainerWidth = *widthFlag
		}
		if set["height"] {
			p.ContainerHeight = *heightFlag
		}
		if set["t-junction"] {
			p.TJunction = *tJunctionFlag
		}
	}
}

func main() {
	flag.Parse()

	// 初始化嵌入资源（必须在任何配置加载之前）
	embedded.Init(dataFS)

	a, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		ConfigPath: *configFlag,
		Overrides:  paramOverrides(),
		Seed:       *seedFlag,
	})
	if err != nil {
		fatal(err)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)

	if err := ebiten.RunGame(a); err != nil {
		fatal(err)
	}
}

// fatal 非 verbose 模式下日志已被丢弃，退出前恢复到 stderr
func fatal(err error) {
	log.SetOutput(os.Stderr)
	log.Fatal(err)
}
