package systems

import "github.com/gonewx/tubeflow/pkg/utils"

// PointerInput 交互系统的指针输入接口
// 用于依赖注入，支持测试时 mock
type PointerInput interface {
	CursorPosition() (int, int)
	IsPressed() bool
	IsJustReleased() bool
}

// ebitenPointerInput Ebitengine 默认实现（鼠标左键或触摸）
type ebitenPointerInput struct{}

// CursorPosition 触摸抬起的那一帧已没有触摸点，返回最后记录的触摸位置
func (e *ebitenPointerInput) CursorPosition() (int, int) {
	utils.UpdateLastTouchPosition()
	if released, x, y := utils.IsPointerJustReleased(); released {
		return x, y
	}
	return utils.GetPointerPosition()
}

func (e *ebitenPointerInput) IsPressed() bool {
	return utils.IsPointerPressed()
}

func (e *ebitenPointerInput) IsJustReleased() bool {
	released, _, _ := utils.IsPointerJustReleased()
	return released
}

var defaultPointerInput PointerInput = &ebitenPointerInput{}

// DefaultPointerInput 返回基于鼠标左键和触摸的指针输入
func DefaultPointerInput() PointerInput {
	return defaultPointerInput
}
