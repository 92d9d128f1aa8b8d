package components

// ButtonComponent 按钮组件（ECS 架构）
// 包含按钮的所有数据：尺寸、文字、状态、回调
//
// 设计原则：
//   - 纯数据组件，不包含任何方法
//   - 外观由 UIRenderSystem 用矢量图形绘制，不依赖图片资源
//   - 支持点击回调
type ButtonComponent struct {
	// Text 按钮上显示的文字
	Text string

	// Width 按钮宽度（像素）
	Width float64
	// Height 按钮高度（像素）
	Height float64

	// State 当前交互状态（Normal/Hover/Clicked/Disabled）
	State UIState
	// Enabled 是否启用（禁用时不响应点击）
	Enabled bool

	// OnClick 点击回调函数（鼠标在按钮内释放时触发）
	OnClick func()
}
