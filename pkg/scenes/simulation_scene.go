package scenes

import (
	"fmt"
	"log"

	"github.com/gonewx/tubeflow/pkg/config"
	"github.com/gonewx/tubeflow/pkg/ecs"
	"github.com/gonewx/tubeflow/pkg/game"
	"github.com/gonewx/tubeflow/pkg/modules"
	"github.com/gonewx/tubeflow/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// SimulationSceneName 在 SceneManager 中注册的场景名
const SimulationSceneName = "simulation"

// shortcutHint 绘图区域底部的快捷键提示
const shortcutHint = "Space: pause/resume   R: reset   Esc: quit"

// SimulationScene 流体模拟主场景
//
// 左侧为控制面板，右侧绘图区域显示容器、管道和粒子。
// 每帧顺序：快捷键 -> 面板交互 -> 模拟推进一步。
type SimulationScene struct {
	controller    *game.SimulationController
	entityManager *ecs.EntityManager
	panel         *modules.ControlPanelModule
	fluidRender   *systems.FluidRenderSystem

	keyJustPressed func(ebiten.Key) bool
}

// NewSimulationScene 创建模拟场景
func NewSimulationScene(controller *game.SimulationController) *SimulationScene {
	s := newSimulationScene(controller, inpututil.IsKeyJustPressed)
	s.panel = modules.NewControlPanelModule(s.entityManager, controller, controller.Config().Controls, s.StatusText)
	log.Printf("[SimulationScene] Created with params %+v", controller.Params())
	return s
}

func newSimulationScene(controller *game.SimulationController, keys func(ebiten.Key) bool) *SimulationScene {
	return &SimulationScene{
		controller:     controller,
		entityManager:  ecs.NewEntityManager(),
		fluidRender:    systems.NewFluidRenderSystem(controller.System, config.PanelWidth, 0),
		keyJustPressed: keys,
	}
}

// Update 处理输入并推进模拟
// deltaTime 只传给面板，模拟使用配置中的固定步长
func (s *SimulationScene) Update(deltaTime float64) {
	s.handleShortcuts()
	s.panel.Update(deltaTime)
	s.controller.Step()
}

func (s *SimulationScene) handleShortcuts() {
	if s.keyJustPressed(ebiten.KeySpace) {
		paused := s.controller.TogglePause()
		log.Printf("[SimulationScene] Paused: %v", paused)
	}
	if s.keyJustPressed(ebiten.KeyR) {
		s.controller.Reset()
	}
}

// Draw 绘制背景、模拟区域和控制面板
func (s *SimulationScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.fluidRender.Draw(screen)
	s.panel.Draw(screen)
	ebitenutil.DebugPrintAt(screen, shortcutHint, int(config.PanelWidth)+8, config.WindowHeight-20)
}

// StatusText 返回面板底部的状态行
func (s *SimulationScene) StatusText() string {
	return fmt.Sprintf("Particles: %d  t=%.1fs", s.controller.System().Len(), s.controller.SimulatedTime())
}
