package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/tubeflow/internal/fluid"
)

// densityRunes 按单元格内粒子数选择字符，超出长度时使用最后一个
var densityRunes = []rune{'.', ':', 'o', 'O', '@'}

var (
	styleBackground = tcell.StyleDefault.Background(tcell.ColorBlack)
	styleContainer  = styleBackground.Foreground(tcell.ColorWhite)
	styleTube       = styleBackground.Foreground(tcell.NewRGBColor(140, 140, 150))
	styleParticle   = styleBackground.Foreground(tcell.NewRGBColor(100, 149, 237))
	styleStatus     = styleBackground.Foreground(tcell.ColorYellow)
)

// Renderer 绘制容器、管道和粒子密度
// 最后一行保留给状态栏
type Renderer struct {
	screen tcell.Screen
	counts []int
}

// NewRenderer 创建终端渲染器
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Viewport 返回当前屏幕尺寸下的视口
func (r *Renderer) Viewport(ps *fluid.ParticleSystem) Viewport {
	w, h := r.screen.Size()
	return NewViewport(ps, w, h-1)
}

// Draw 绘制一帧并刷新屏幕
func (r *Renderer) Draw(ps *fluid.ParticleSystem, status string) {
	r.screen.SetStyle(styleBackground)
	r.screen.Clear()

	vp := r.Viewport(ps)
	r.drawGeometry(vp, ps)
	r.drawParticles(vp, ps)
	r.drawStatus(vp.Rows, status)

	r.screen.Show()
}

func (r *Renderer) drawGeometry(vp Viewport, ps *fluid.ParticleSystem) {
	b := ps.Bounds()
	r.vline(vp, b.Min.X, b.Min.Y, b.Max.Y, '│', styleContainer)
	r.vline(vp, b.Max.X, b.Min.Y, b.Max.Y, '│', styleContainer)
	r.hline(vp, b.Min.Y, b.Min.X, b.Max.X, '─', styleContainer)
	r.hline(vp, b.Max.Y, b.Min.X, b.Max.X, '─', styleContainer)

	start, end := ps.TubeStart(), ps.TubeEnd()
	radius := ps.Constants().TubeRadius
	r.vline(vp, start.X-radius, start.Y, end.Y, '┊', styleTube)
	r.vline(vp, start.X+radius, start.Y, end.Y, '┊', styleTube)

	if branch, ok := ps.BranchEnd(); ok {
		r.hline(vp, end.Y, end.X, branch.X, '┈', styleTube)
	}
}

func (r *Renderer) vline(vp Viewport, x, y0, y1 float64, ch rune, style tcell.Style) {
	col, top, ok := vp.Project(fluid.Vec2{X: x, Y: y0})
	if !ok {
		return
	}
	_, bottom, _ := vp.Project(fluid.Vec2{X: x, Y: y1})
	for row := top; row <= bottom && row < vp.Rows; row++ {
		r.screen.SetContent(col, row, ch, nil, style)
	}
}

func (r *Renderer) hline(vp Viewport, y, x0, x1 float64, ch rune, style tcell.Style) {
	left, row, ok := vp.Project(fluid.Vec2{X: x0, Y: y})
	if !ok {
		return
	}
	right, _, _ := vp.Project(fluid.Vec2{X: x1, Y: y})
	for col := left; col <= right && col < vp.Cols; col++ {
		r.screen.SetContent(col, row, ch, nil, style)
	}
}

func (r *Renderer) drawParticles(vp Viewport, ps *fluid.ParticleSystem) {
	n := vp.Cols * vp.Rows
	if cap(r.counts) < n {
		r.counts = make([]int, n)
	}
	r.counts = r.counts[:n]
	clear(r.counts)

	for _, p := range ps.Particles() {
		col, row, ok := vp.Project(p.Position)
		if !ok {
			continue
		}
		r.counts[row*vp.Cols+col]++
	}

	for i, c := range r.counts {
		if c == 0 {
			continue
		}
		r.screen.SetContent(i%vp.Cols, i/vp.Cols, DensityRune(c), nil, styleParticle)
	}
}

func (r *Renderer) drawStatus(row int, status string) {
	col := 0
	for _, ch := range status {
		r.screen.SetContent(col, row, ch, nil, styleStatus)
		col++
	}
}

// DensityRune 返回 n 个粒子对应的字符（n >= 1）
func DensityRune(n int) rune {
	if n <= 0 {
		return ' '
	}
	if n > len(densityRunes) {
		return densityRunes[len(densityRunes)-1]
	}
	return densityRunes[n-1]
}
