package modules

import (
	"fmt"
	"log"

	"github.com/gonewx/tubeflow/internal/fluid"
	"github.com/gonewx/tubeflow/pkg/components"
	"github.com/gonewx/tubeflow/pkg/config"
	"github.com/gonewx/tubeflow/pkg/ecs"
	"github.com/gonewx/tubeflow/pkg/entities"
	"github.com/gonewx/tubeflow/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// SimulationControls 控制面板操作的模拟对象
// game.SimulationController 实现了此接口
type SimulationControls interface {
	TogglePause() bool
	IsPaused() bool
	Reset()
	SetTubeLength(v float64)
	SetContainerWidth(v float64)
	SetContainerHeight(v float64)
	SetTJunction(enabled bool)
	Params() fluid.Params
}

// ControlPanelModule 控制面板模块
//
// 职责：
//   - 创建暂停/重置按钮、三个参数滑动条和 T 型分支复选框
//   - 将控件回调接到 SimulationControls（任何参数变化都会重建模拟）
//   - 每帧同步暂停按钮文字
//   - 管理控件交互系统和渲染系统
type ControlPanelModule struct {
	entityManager *ecs.EntityManager
	controls      SimulationControls
	ranges        config.ControlRanges

	buttonSystem   *systems.ButtonSystem
	sliderSystem   *systems.SliderSystem
	checkboxSystem *systems.CheckboxSystem
	renderSystem   *systems.UIRenderSystem

	pauseButtonEntity  ecs.EntityID
	resetButtonEntity  ecs.EntityID
	tubeSliderEntity   ecs.EntityID
	widthSliderEntity  ecs.EntityID
	heightSliderEntity ecs.EntityID
	tJunctionEntity    ecs.EntityID
}

// NewControlPanelModule 创建控制面板模块
//
// 参数:
//   - em: EntityManager 实例
//   - controls: 被控制的模拟
//   - ranges: 滑动条范围
//   - status: 状态行文字提供函数（可选）
func NewControlPanelModule(em *ecs.EntityManager, controls SimulationControls, ranges config.ControlRanges, status func() string) *ControlPanelModule {
	return NewControlPanelModuleWithInput(em, controls, ranges, status, systems.DefaultPointerInput())
}

// NewControlPanelModuleWithInput 创建使用指定指针输入的控制面板模块
func NewControlPanelModuleWithInput(em *ecs.EntityManager, controls SimulationControls, ranges config.ControlRanges, status func() string, input systems.PointerInput) *ControlPanelModule {
	return newControlPanelModule(em, controls, ranges, status,
		systems.NewButtonSystemWithInput(em, input),
		systems.NewSliderSystemWithInput(em, input),
		systems.NewCheckboxSystemWithInput(em, input),
	)
}

func newControlPanelModule(
	em *ecs.EntityManager,
	controls SimulationControls,
	ranges config.ControlRanges,
	status func() string,
	buttonSystem *systems.ButtonSystem,
	sliderSystem *systems.SliderSystem,
	checkboxSystem *systems.CheckboxSystem,
) *ControlPanelModule {
	m := &ControlPanelModule{
		entityManager:  em,
		controls:       controls,
		ranges:         ranges,
		buttonSystem:   buttonSystem,
		sliderSystem:   sliderSystem,
		checkboxSystem: checkboxSystem,
		renderSystem:   systems.NewUIRenderSystem(em),
	}

	m.createWidgets(status)
	log.Printf("[ControlPanelModule] Created %d widgets", em.EntityCount())
	return m
}

func (m *ControlPanelModule) createWidgets(status func() string) {
	em := m.entityManager
	params := m.controls.Params()
	x := config.PanelPadding
	y := config.PanelPadding

	entities.NewLabelEntity(em, x, y, "Simulation Controls", nil)
	y += config.HeadingHeight

	m.pauseButtonEntity = entities.NewButtonEntity(em, x, y, pauseButtonText(m.controls.IsPaused()), func() {
		m.controls.TogglePause()
	})
	m.resetButtonEntity = entities.NewButtonEntity(em, x+config.ButtonWidth+config.ButtonSpacing, y, "Reset", func() {
		m.controls.Reset()
	})
	y += config.ButtonHeight + 2*config.ButtonSpacing

	entities.NewLabelEntity(em, x, y, "Parameters", nil)
	y += config.HeadingHeight + config.LabelLineHeight + 4

	m.tubeSliderEntity = entities.NewSliderEntity(em, x, y, "", m.ranges.TubeLength, params.TubeLength, m.controls.SetTubeLength)
	y += config.SliderRowHeight
	m.widthSliderEntity = entities.NewSliderEntity(em, x, y, "", m.ranges.ContainerWidth, params.ContainerWidth, m.controls.SetContainerWidth)
	y += config.SliderRowHeight
	m.heightSliderEntity = entities.NewSliderEntity(em, x, y, "", m.ranges.ContainerHeight, params.ContainerHeight, m.controls.SetContainerHeight)
	y += config.SliderRowHeight - config.LabelLineHeight

	m.tJunctionEntity = entities.NewCheckboxEntity(em, x, y, "T-Junction", params.TJunction, m.controls.SetTJunction)
	y += config.CheckboxSize + 2*config.ButtonSpacing

	if status != nil {
		entities.NewLabelEntity(em, x, y, "", status)
	}

	m.syncWidgets()
}

// Update 处理控件交互并同步显示
func (m *ControlPanelModule) Update(deltaTime float64) {
	m.buttonSystem.Update(deltaTime)
	m.sliderSystem.Update(deltaTime)
	m.checkboxSystem.Update(deltaTime)
	m.syncWidgets()
}

// syncWidgets 按当前模拟状态刷新按钮文字和滑动条标签
// 键盘快捷键也会修改模拟状态，所以每帧都要同步
func (m *ControlPanelModule) syncWidgets() {
	params := m.controls.Params()

	if button, ok := ecs.GetComponent[*components.ButtonComponent](m.entityManager, m.pauseButtonEntity); ok {
		button.Text = pauseButtonText(m.controls.IsPaused())
	}

	m.syncSlider(m.tubeSliderEntity, "Tube Length", params.TubeLength)
	m.syncSlider(m.widthSliderEntity, "Container Width", params.ContainerWidth)
	m.syncSlider(m.heightSliderEntity, "Container Height", params.ContainerHeight)

	if checkbox, ok := ecs.GetComponent[*components.CheckboxComponent](m.entityManager, m.tJunctionEntity); ok {
		checkbox.IsChecked = params.TJunction
	}
}

func (m *ControlPanelModule) syncSlider(id ecs.EntityID, name string, value float64) {
	slider, ok := ecs.GetComponent[*components.SliderComponent](m.entityManager, id)
	if !ok {
		return
	}
	slider.Label = fmt.Sprintf("%s: %.0f", name, value)
	if !slider.IsDragging {
		systems.SetSliderActualValue(slider, value)
	}
}

// Draw 绘制控制面板
func (m *ControlPanelModule) Draw(screen *ebiten.Image) {
	m.renderSystem.Draw(screen)
}

func pauseButtonText(paused bool) string {
	if paused {
		return "Resume"
	}
	return "Pause"
}
