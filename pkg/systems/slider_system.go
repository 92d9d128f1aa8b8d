package systems

import (
	"github.com/gonewx/tubeflow/pkg/components"
	"github.com/gonewx/tubeflow/pkg/config"
	"github.com/gonewx/tubeflow/pkg/ecs"
	"github.com/gonewx/tubeflow/pkg/utils"
)

// SliderSystem 滑块交互系统
// 负责处理滑块的鼠标拖拽交互
//
// 职责：
//   - 检测鼠标是否在滑槽区域内
//   - 检测鼠标左键按下/拖拽状态
//   - 计算点击位置并转换为 0.0~1.0 的 Value
//   - 更新 SliderComponent.Value 并以映射后的实际值调用 OnValueChange
type SliderSystem struct {
	entityManager *ecs.EntityManager
	input         PointerInput
}

// NewSliderSystemWithInput 创建滑块交互系统
// 运行时传入 DefaultPointerInput()，测试时传入 mock
func NewSliderSystemWithInput(em *ecs.EntityManager, input PointerInput) *SliderSystem {
	return &SliderSystem{
		entityManager: em,
		input:         input,
	}
}

// Update 更新滑块交互状态
func (s *SliderSystem) Update(deltaTime float64) {
	mouseX, mouseY := s.input.CursorPosition()
	mousePressed := s.input.IsPressed()

	entities := ecs.GetEntitiesWith2[*components.SliderComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		slider, _ := ecs.GetComponent[*components.SliderComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		if slider == nil || pos == nil {
			continue
		}

		isInSlot := utils.PointInRect(float64(mouseX), float64(mouseY), pos.X, pos.Y, slider.SlotWidth, slider.SlotHeight)
		slider.IsHovered = isInSlot

		if !mousePressed {
			// 鼠标释放，停止拖拽
			slider.IsDragging = false
			continue
		}

		// 按下时必须从滑槽内开始；拖拽中即使移出滑槽也继续跟随
		if !isInSlot && !slider.IsDragging {
			continue
		}
		slider.IsDragging = true

		newValue := calculateSliderValue(float64(mouseX), pos.X, slider.SlotWidth)
		if newValue != slider.Value {
			slider.Value = newValue
			if slider.OnValueChange != nil {
				slider.OnValueChange(SliderActualValue(slider))
			}
		}
	}
}

// calculateSliderValue 根据鼠标X坐标计算 0.0 ~ 1.0 的滑块值
func calculateSliderValue(mouseX, slotX, slotWidth float64) float64 {
	if slotWidth <= 0 {
		return 0.0
	}
	v := (mouseX - slotX) / slotWidth
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}

// SliderActualValue 将归一化值映射到 [Min, Max]
func SliderActualValue(slider *components.SliderComponent) float64 {
	return sliderRange(slider).Lerp(slider.Value)
}

// SetSliderActualValue 按实际值设置滑块位置（不触发回调）
func SetSliderActualValue(slider *components.SliderComponent, value float64) {
	slider.Value = sliderRange(slider).Normalize(value)
}

func sliderRange(slider *components.SliderComponent) config.Range {
	return config.Range{Min: slider.Min, Max: slider.Max}
}
