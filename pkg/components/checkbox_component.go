package components

// CheckboxComponent 复选框组件
// 用于开关选项（如 T 型分支）
type CheckboxComponent struct {
	// 复选框边长
	Size float64

	// 当前状态
	IsChecked bool
	IsHovered bool

	// 标签文字，绘制在复选框右侧
	Label string

	// 回调函数
	OnToggle func(isChecked bool) // 状态切换时的回调
}
