package terminal

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/tubeflow/internal/fluid"
)

// TubeLengthStep +/- 每次调整的管道长度
const TubeLengthStep = 10.0

// Simulation 终端前端驱动的模拟
// game.SimulationController 实现了此接口
type Simulation interface {
	Step()
	Reset()
	TogglePause() bool
	IsPaused() bool
	SetTubeLength(v float64)
	SetTJunction(enabled bool)
	Params() fluid.Params
	System() *fluid.ParticleSystem
	SimulatedTime() float64
	Steps() uint64
}

// Runner 终端主循环
//
// 事件在单独的 goroutine 中读取并通过 channel 转发，
// 模拟推进和绘制只在 Run 所在的 goroutine 中进行。
type Runner struct {
	screen   tcell.Screen
	sim      Simulation
	renderer *Renderer
	interval time.Duration
}

// NewRunner 创建终端主循环
// interval 为每帧间隔（<= 0 时使用 16ms）
func NewRunner(screen tcell.Screen, sim Simulation, interval time.Duration) *Runner {
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	return &Runner{
		screen:   screen,
		sim:      sim,
		renderer: NewRenderer(screen),
		interval: interval,
	}
}

// Run 运行直到用户退出
// 调用方负责 screen 的 Init 和 Fini
func (r *Runner) Run() {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	for {
		select {
		case ev := <-events:
			if !r.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			r.Frame()
		}
	}
}

// Frame 推进一步并绘制
func (r *Runner) Frame() {
	r.sim.Step()
	r.renderer.Draw(r.sim.System(), r.Status())
}

// HandleEvent 处理一个终端事件，返回 false 表示退出
func (r *Runner) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return r.handleKey(ev)
	case *tcell.EventResize:
		r.screen.Sync()
	}
	return true
}

func (r *Runner) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	params := r.sim.Params()
	switch ev.Rune() {
	case 'q', 'Q':
		return false
	case ' ':
		paused := r.sim.TogglePause()
		log.Printf("[Terminal] Paused: %v", paused)
	case 'r', 'R':
		r.sim.Reset()
	case 't', 'T':
		r.sim.SetTJunction(!params.TJunction)
	case '+', '=':
		r.sim.SetTubeLength(params.TubeLength + TubeLengthStep)
	case '-', '_':
		r.sim.SetTubeLength(params.TubeLength - TubeLengthStep)
	}
	return true
}

// Status 返回状态栏文字
func (r *Runner) Status() string {
	p := r.sim.Params()
	state := "running"
	if r.sim.IsPaused() {
		state = "paused"
	}
	return fmt.Sprintf("%s  particles=%d step=%d t=%.1fs  tube=%.0f T=%v  [space] pause [r] reset [t] T-junction [+/-] tube [q] quit",
		state, r.sim.System().Len(), r.sim.Steps(), r.sim.SimulatedTime(), p.TubeLength, p.TJunction)
}
