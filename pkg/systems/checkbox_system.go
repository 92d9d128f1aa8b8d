package systems

import (
	"github.com/gonewx/tubeflow/pkg/components"
	"github.com/gonewx/tubeflow/pkg/ecs"
	"github.com/gonewx/tubeflow/pkg/utils"
)

// CheckboxSystem 复选框交互系统
//
// 职责：
//   - 检测鼠标是否在复选框区域内
//   - 鼠标在框内释放时切换 CheckboxComponent.IsChecked
//   - 调用 OnToggle 回调
type CheckboxSystem struct {
	entityManager *ecs.EntityManager
	input         PointerInput
}

// NewCheckboxSystemWithInput 创建复选框交互系统
// 运行时传入 DefaultPointerInput()，测试时传入 mock
func NewCheckboxSystemWithInput(em *ecs.EntityManager, input PointerInput) *CheckboxSystem {
	return &CheckboxSystem{
		entityManager: em,
		input:         input,
	}
}

// Update 更新复选框交互状态
func (s *CheckboxSystem) Update(deltaTime float64) {
	mouseX, mouseY := s.input.CursorPosition()
	mouseJustReleased := s.input.IsJustReleased()

	entities := ecs.GetEntitiesWith2[*components.CheckboxComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		checkbox, _ := ecs.GetComponent[*components.CheckboxComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		if checkbox == nil || pos == nil {
			continue
		}

		isInCheckbox := utils.PointInRect(float64(mouseX), float64(mouseY), pos.X, pos.Y, checkbox.Size, checkbox.Size)
		checkbox.IsHovered = isInCheckbox

		if mouseJustReleased && isInCheckbox {
			checkbox.IsChecked = !checkbox.IsChecked
			if checkbox.OnToggle != nil {
				checkbox.OnToggle(checkbox.IsChecked)
			}
		}
	}
}
