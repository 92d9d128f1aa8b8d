package systems

import (
	"image/color"

	"github.com/gonewx/tubeflow/pkg/components"
	"github.com/gonewx/tubeflow/pkg/config"
	"github.com/gonewx/tubeflow/pkg/ecs"
	"github.com/gonewx/tubeflow/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// UIRenderSystem 控制面板渲染系统
//
// 用矢量图形绘制按钮、滑动条、复选框和文字标签，不依赖图片资源。
// 交互状态（悬停、按下、拖拽）由对应的交互系统写入组件，本系统只读。
type UIRenderSystem struct {
	entityManager *ecs.EntityManager
	face          text.Face
}

// NewUIRenderSystem 创建控制面板渲染系统
func NewUIRenderSystem(em *ecs.EntityManager) *UIRenderSystem {
	return &UIRenderSystem{
		entityManager: em,
		face:          text.NewGoXFace(basicfont.Face7x13),
	}
}

// Draw 绘制面板背景和所有控件
func (s *UIRenderSystem) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(config.PanelWidth), float32(config.WindowHeight), config.PanelColor, false)

	s.drawLabels(screen)
	s.drawButtons(screen)
	s.drawSliders(screen)
	s.drawCheckboxes(screen)
}

func (s *UIRenderSystem) drawLabels(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.LabelComponent, *components.PositionComponent](s.entityManager) {
		label, _ := ecs.GetComponent[*components.LabelComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		clr := label.Color
		if clr == nil {
			clr = config.TextColor
		}
		// 状态行等动态文字可能超出面板宽度
		maxWidth := config.PanelWidth - pos.X - config.PanelPadding
		for i, line := range utils.WrapText(components.LabelText(label), s.face, maxWidth) {
			s.drawText(screen, line, pos.X, pos.Y+float64(i)*config.LabelLineHeight, clr)
		}
	}
}

func (s *UIRenderSystem) drawButtons(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		var fill color.Color = config.WidgetColor
		switch button.State {
		case components.UIHovered:
			fill = config.WidgetHoverColor
		case components.UIClicked:
			fill = config.WidgetActiveColor
		}

		x, y := float32(pos.X), float32(pos.Y)
		w, h := float32(button.Width), float32(button.Height)
		vector.DrawFilledRect(screen, x, y, w, h, fill, false)
		vector.StrokeRect(screen, x, y, w, h, 1, config.TextColor, false)

		// 文字居中
		dx, dy := utils.CenterText(button.Text, s.face, button.Width, button.Height)
		s.drawText(screen, button.Text, pos.X+dx, pos.Y+dy, config.TextColor)
	}
}

func (s *UIRenderSystem) drawSliders(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.SliderComponent, *components.PositionComponent](s.entityManager) {
		slider, _ := ecs.GetComponent[*components.SliderComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		// 标签在滑槽上方
		s.drawText(screen, slider.Label, pos.X, pos.Y-config.LabelLineHeight-4, config.TextColor)

		x, y := float32(pos.X), float32(pos.Y)
		w, h := float32(slider.SlotWidth), float32(slider.SlotHeight)

		slot := config.WidgetColor
		if slider.IsHovered || slider.IsDragging {
			slot = config.WidgetHoverColor
		}
		vector.DrawFilledRect(screen, x, y, w, h, slot, false)

		// 已填充部分
		vector.DrawFilledRect(screen, x, y, w*float32(slider.Value), h, config.WidgetActiveColor, false)

		knobX := x + w*float32(slider.Value) - float32(slider.KnobWidth)/2
		vector.DrawFilledRect(screen, knobX, y-2, float32(slider.KnobWidth), h+4, config.TextColor, false)
	}
}

func (s *UIRenderSystem) drawCheckboxes(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.CheckboxComponent, *components.PositionComponent](s.entityManager) {
		checkbox, _ := ecs.GetComponent[*components.CheckboxComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		x, y, size := float32(pos.X), float32(pos.Y), float32(checkbox.Size)

		var fill color.Color = config.WidgetColor
		if checkbox.IsHovered {
			fill = config.WidgetHoverColor
		}
		vector.DrawFilledRect(screen, x, y, size, size, fill, false)
		vector.StrokeRect(screen, x, y, size, size, 1, config.TextColor, false)

		if checkbox.IsChecked {
			inset := size / 4
			vector.DrawFilledRect(screen, x+inset, y+inset, size-2*inset, size-2*inset, config.WidgetActiveColor, false)
		}

		s.drawText(screen, checkbox.Label, pos.X+checkbox.Size+8, pos.Y, config.TextColor)
	}
}

func (s *UIRenderSystem) drawText(screen *ebiten.Image, str string, x, y float64, clr color.Color) {
	if str == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, s.face, op)
}
