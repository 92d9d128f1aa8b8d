package terminal

import (
	"io"
	"log"
	"math/rand"
	"os"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/tubeflow/internal/fluid"
	"github.com/gonewx/tubeflow/pkg/config"
	"github.com/gonewx/tubeflow/pkg/game"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newTestRunner(t *testing.T) (*Runner, *game.SimulationController) {
	t.Helper()
	c := game.NewSimulationController(config.Default(), fluid.DefaultParams(), rand.New(rand.NewSource(5)))
	return NewRunner(newTestScreen(t), c, 0), c
}

func runeKey(ch rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, ch, tcell.ModNone)
}

func TestRunner_HandleEvent(t *testing.T) {
	tests := []struct {
		name     string
		events   []tcell.Event
		wantQuit bool
		check    func(t *testing.T, c *game.SimulationController)
	}{
		{
			name:   "空格暂停",
			events: []tcell.Event{runeKey(' ')},
			check: func(t *testing.T, c *game.SimulationController) {
				if !c.IsPaused() {
					t.Error("expected paused")
				}
			},
		},
		{
			name:   "r 重置",
			events: []tcell.Event{runeKey('r')},
			check: func(t *testing.T, c *game.SimulationController) {
				if c.Resets() != 1 {
					t.Errorf("resets = %d, want 1", c.Resets())
				}
			},
		},
		{
			name:   "t 切换 T 型分支",
			events: []tcell.Event{runeKey('t')},
			check: func(t *testing.T, c *game.SimulationController) {
				if !c.Params().TJunction {
					t.Error("expected T-junction enabled")
				}
				if _, ok := c.System().BranchEnd(); !ok {
					t.Error("particle system should be rebuilt with a branch")
				}
			},
		},
		{
			name:   "+ 加长管道",
			events: []tcell.Event{runeKey('+'), runeKey('+')},
			check: func(t *testing.T, c *game.SimulationController) {
				if c.Params().TubeLength != 120 {
					t.Errorf("tube length = %v, want 120", c.Params().TubeLength)
				}
			},
		},
		{
			name:   "- 缩短管道并受范围限制",
			events: []tcell.Event{runeKey('-'), runeKey('-'), runeKey('-'), runeKey('-'), runeKey('-'), runeKey('-')},
			check: func(t *testing.T, c *game.SimulationController) {
				if c.Params().TubeLength != 50 {
					t.Errorf("tube length = %v, want 50", c.Params().TubeLength)
				}
			},
		},
		{
			name:     "q 退出",
			events:   []tcell.Event{runeKey('q')},
			wantQuit: true,
		},
		{
			name:     "Esc 退出",
			events:   []tcell.Event{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)},
			wantQuit: true,
		},
		{
			name:   "其他按键忽略",
			events: []tcell.Event{runeKey('x'), tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)},
			check: func(t *testing.T, c *game.SimulationController) {
				if c.IsPaused() || c.Resets() != 0 {
					t.Error("unexpected state change")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, c := newTestRunner(t)

			quit := false
			for _, ev := range tt.events {
				if !r.HandleEvent(ev) {
					quit = true
				}
			}

			if quit != tt.wantQuit {
				t.Errorf("quit = %v, want %v", quit, tt.wantQuit)
			}
			if tt.check != nil {
				tt.check(t, c)
			}
		})
	}
}

func TestRunner_Frame(t *testing.T) {
	r, c := newTestRunner(t)

	for i := 0; i < 10; i++ {
		r.Frame()
	}

	if c.Steps() != 10 {
		t.Errorf("steps = %d, want 10", c.Steps())
	}
	if !strings.HasPrefix(r.Status(), "running  particles=10 step=10 ") {
		t.Errorf("Status() = %q", r.Status())
	}

	r.HandleEvent(runeKey(' '))
	r.Frame()

	if c.Steps() != 10 {
		t.Errorf("steps after pause = %d, want 10", c.Steps())
	}
	if !strings.HasPrefix(r.Status(), "paused") {
		t.Errorf("Status() = %q, want paused prefix", r.Status())
	}
}
