package entities

import (
	"github.com/gonewx/tubeflow/pkg/components"
	"github.com/gonewx/tubeflow/pkg/config"
	"github.com/gonewx/tubeflow/pkg/ecs"
)

// NewButtonEntity 创建按钮实体
//
// 参数：
//   - em: 实体管理器
//   - x, y: 按钮左上角（屏幕坐标）
//   - text: 按钮文字
//   - onClick: 点击回调函数
//
// 返回：
//   - 按钮实体ID
func NewButtonEntity(em *ecs.EntityManager, x, y float64, text string, onClick func()) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.ButtonComponent{
		Text:    text,
		Width:   config.ButtonWidth,
		Height:  config.ButtonHeight,
		State:   components.UINormal,
		Enabled: true,
		OnClick: onClick,
	})
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	return id
}

// NewSliderEntity 创建滑动条实体
//
// 参数：
//   - em: 实体管理器
//   - x, y: 滑槽左上角（标签绘制在其上方）
//   - label: 标签文字
//   - r: 实际取值范围
//   - value: 初始实际值（会被限制在范围内）
//   - onChange: 值改变回调，参数为映射后的实际值
func NewSliderEntity(
	em *ecs.EntityManager,
	x, y float64,
	label string,
	r config.Range,
	value float64,
	onChange func(float64),
) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.SliderComponent{
		SlotWidth:     config.SliderWidth,
		SlotHeight:    config.SliderHeight,
		KnobWidth:     config.SliderKnobWidth,
		Value:         r.Normalize(value),
		Min:           r.Min,
		Max:           r.Max,
		Label:         label,
		OnValueChange: onChange,
	})
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	return id
}

// NewCheckboxEntity 创建复选框实体
func NewCheckboxEntity(em *ecs.EntityManager, x, y float64, label string, checked bool, onToggle func(bool)) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.CheckboxComponent{
		Size:      config.CheckboxSize,
		IsChecked: checked,
		Label:     label,
		OnToggle:  onToggle,
	})
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	return id
}

// NewLabelEntity 创建文字标签实体
// provider 非空时每帧动态获取文字
func NewLabelEntity(em *ecs.EntityManager, x, y float64, text string, provider func() string) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.LabelComponent{
		Text:     text,
		Provider: provider,
	})
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	return id
}
