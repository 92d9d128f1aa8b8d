package systems

import (
	"github.com/gonewx/tubeflow/pkg/components"
	"github.com/gonewx/tubeflow/pkg/ecs"
	"github.com/gonewx/tubeflow/pkg/utils"
)

// ButtonSystem 按钮交互系统
// 负责处理按钮的鼠标悬停、点击等交互逻辑
//
// 职责：
//   - 检测鼠标悬停（更新按钮状态为 UIHovered）
//   - 检测鼠标释放（触发 OnClick 回调）
//   - 根据 Enabled 状态决定是否响应交互
type ButtonSystem struct {
	entityManager *ecs.EntityManager
	input         PointerInput
}

// NewButtonSystemWithInput 创建按钮交互系统
// 运行时传入 DefaultPointerInput()，测试时传入 mock
func NewButtonSystemWithInput(em *ecs.EntityManager, input PointerInput) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
		input:         input,
	}
}

// Update 更新按钮交互状态
// 检测鼠标位置和释放，更新按钮状态并触发回调
func (s *ButtonSystem) Update(deltaTime float64) {
	mouseX, mouseY := s.input.CursorPosition()
	mousePressed := s.input.IsPressed()
	mouseReleased := s.input.IsJustReleased()

	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		if button == nil || pos == nil {
			continue
		}

		// 禁用状态不响应交互
		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		if !utils.PointInRect(float64(mouseX), float64(mouseY), pos.X, pos.Y, button.Width, button.Height) {
			button.State = components.UINormal
			continue
		}

		switch {
		case mousePressed:
			button.State = components.UIClicked
		case mouseReleased:
			// 释放瞬间触发回调
			button.State = components.UIHovered
			if button.OnClick != nil {
				button.OnClick()
			}
		default:
			button.State = components.UIHovered
		}
	}
}
