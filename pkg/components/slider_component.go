package components

// SliderComponent 滑动条组件
// 用于调整容器尺寸、管道长度等连续参数
//
// Value 始终是 0.0 ~ 1.0 的归一化值，由 Min/Max 映射为实际参数
type SliderComponent struct {
	// 滑动条尺寸
	SlotWidth  float64 // 滑槽宽度
	SlotHeight float64 // 滑槽高度
	KnobWidth  float64 // 滑块宽度

	// 当前值（0.0 - 1.0）
	Value float64

	// 实际取值范围
	Min float64
	Max float64

	// 标签文字，绘制在滑槽上方
	Label string

	// 状态
	IsDragging bool // 是否正在拖动
	IsHovered  bool // 是否鼠标悬停

	// 回调函数，参数为映射后的实际值
	OnValueChange func(value float64)
}
