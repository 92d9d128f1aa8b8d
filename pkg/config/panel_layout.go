package config

import "image/color"

// 窗口与控制面板布局常量
// 所有坐标均为逻辑屏幕坐标（Layout 返回的尺寸），Ebitengine 负责缩放

const (
	// WindowWidth 逻辑屏幕宽度
	WindowWidth = 800
	// WindowHeight 逻辑屏幕高度
	WindowHeight = 600
	// WindowTitle 窗口标题
	WindowTitle = "Fluid Simulation"

	// PanelWidth 左侧控制面板宽度，绘图区域从此处开始
	PanelWidth = 200.0
	// PanelPadding 面板内边距
	PanelPadding = 12.0

	// HeadingHeight 标题行高度
	HeadingHeight = 22.0

	// ButtonWidth 按钮宽度
	ButtonWidth = 84.0
	// ButtonHeight 按钮高度
	ButtonHeight = 24.0
	// ButtonSpacing 同一行按钮的间距
	ButtonSpacing = 8.0

	// SliderWidth 滑槽宽度
	SliderWidth = 176.0
	// SliderHeight 滑槽高度（同时是可点击区域高度）
	SliderHeight = 14.0
	// SliderKnobWidth 滑块宽度
	SliderKnobWidth = 8.0
	// SliderRowHeight 一个滑动条（标签 + 滑槽）占用的高度
	SliderRowHeight = 44.0

	// CheckboxSize 复选框边长
	CheckboxSize = 14.0

	// LabelLineHeight 标签行高（basicfont 7x13）
	LabelLineHeight = 13.0

	// ParticleRadius 粒子绘制半径
	ParticleRadius = 2.0
	// ContainerStrokeWidth 容器边框线宽
	ContainerStrokeWidth = 2.0
	// TubeStrokeWidth 管道辅助线线宽
	TubeStrokeWidth = 1.0
)

// 颜色
var (
	// BackgroundColor 画布背景
	BackgroundColor = color.RGBA{R: 27, G: 27, B: 27, A: 255}
	// PanelColor 控制面板背景
	PanelColor = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	// ContainerColor 容器边框
	ContainerColor = color.White
	// TubeColor 管道与分支辅助线
	TubeColor = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	// ParticleColor 粒子颜色（矢车菊蓝）
	ParticleColor = color.RGBA{R: 100, G: 149, B: 237, A: 255}

	// WidgetColor 控件底色
	WidgetColor = color.RGBA{R: 70, G: 70, B: 70, A: 255}
	// WidgetHoverColor 控件悬停色
	WidgetHoverColor = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	// WidgetActiveColor 控件按下/选中色
	WidgetActiveColor = color.RGBA{R: 100, G: 149, B: 237, A: 255}
	// TextColor 文字颜色
	TextColor = color.RGBA{R: 230, G: 230, B: 230, A: 255}
)
