package systems

import (
	"github.com/gonewx/tubeflow/internal/fluid"
	"github.com/gonewx/tubeflow/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FluidRenderSystem 绘制容器、管道和粒子
//
// 所有模拟坐标加上绘图区域原点（面板右侧）后绘制。
// source 每帧调用一次，因为参数变化后粒子系统会被整体替换。
type FluidRenderSystem struct {
	source  func() *fluid.ParticleSystem
	originX float64
	originY float64
}

// NewFluidRenderSystem 创建粒子渲染系统
//
// 参数:
//   - source: 返回当前粒子系统
//   - originX, originY: 绘图区域左上角的屏幕坐标
func NewFluidRenderSystem(source func() *fluid.ParticleSystem, originX, originY float64) *FluidRenderSystem {
	return &FluidRenderSystem{
		source:  source,
		originX: originX,
		originY: originY,
	}
}

// ToScreen 将模拟坐标转换为屏幕坐标
func (s *FluidRenderSystem) ToScreen(p fluid.Vec2) (float32, float32) {
	return float32(s.originX + p.X), float32(s.originY + p.Y)
}

// Draw 绘制一帧
func (s *FluidRenderSystem) Draw(screen *ebiten.Image) {
	ps := s.source()
	if ps == nil {
		return
	}

	s.drawContainer(screen, ps)
	s.drawTube(screen, ps)

	for _, p := range ps.Particles() {
		x, y := s.ToScreen(p.Position)
		vector.DrawFilledCircle(screen, x, y, config.ParticleRadius, config.ParticleColor, true)
	}
}

func (s *FluidRenderSystem) drawContainer(screen *ebiten.Image, ps *fluid.ParticleSystem) {
	b := ps.Bounds()
	x, y := s.ToScreen(b.Min)
	vector.StrokeRect(screen, x, y, float32(b.Width()), float32(b.Height()), config.ContainerStrokeWidth, config.ContainerColor, false)
}

// drawTube 绘制管道两侧的辅助线以及 T 型分支
func (s *FluidRenderSystem) drawTube(screen *ebiten.Image, ps *fluid.ParticleSystem) {
	radius := float32(ps.Constants().TubeRadius)
	sx, sy := s.ToScreen(ps.TubeStart())
	_, ey := s.ToScreen(ps.TubeEnd())

	vector.StrokeLine(screen, sx-radius, sy, sx-radius, ey, config.TubeStrokeWidth, config.TubeColor, false)
	vector.StrokeLine(screen, sx+radius, sy, sx+radius, ey, config.TubeStrokeWidth, config.TubeColor, false)

	if branchEnd, ok := ps.BranchEnd(); ok {
		bx, by := s.ToScreen(branchEnd)
		vector.StrokeLine(screen, sx+radius, by-radius, bx, by-radius, config.TubeStrokeWidth, config.TubeColor, false)
		vector.StrokeLine(screen, sx+radius, by+radius, bx, by+radius, config.TubeStrokeWidth, config.TubeColor, false)
	}
}
