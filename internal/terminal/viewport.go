// Package terminal renders the particle simulation into a tcell screen.
//
// The desktop and terminal front-ends drive the same controller; this package
// only projects simulation coordinates onto character cells and maps keys to
// controller operations.
package terminal

import (
	"math"

	"github.com/gonewx/tubeflow/internal/fluid"
)

// Viewport 把模拟坐标线性映射到字符单元格
// 范围覆盖容器、管道末端和分支端点
type Viewport struct {
	Min    fluid.Vec2 // 映射到 (0, 0) 的模拟坐标
	ScaleX float64    // 每列对应的模拟宽度
	ScaleY float64    // 每行对应的模拟高度
	Cols   int
	Rows   int
}

// NewViewport 根据粒子系统的几何和可用单元格数量创建视口
// cols/rows 小于 2 时按 2 处理
func NewViewport(ps *fluid.ParticleSystem, cols, rows int) Viewport {
	cols = max(cols, 2)
	rows = max(rows, 2)

	b := ps.Bounds()
	maxX := b.Max.X
	if end, ok := ps.BranchEnd(); ok {
		maxX = math.Max(maxX, end.X)
	}
	maxY := math.Max(b.Max.Y, ps.TubeEnd().Y)

	return Viewport{
		Min:    b.Min,
		ScaleX: (maxX - b.Min.X) / float64(cols-1),
		ScaleY: (maxY - b.Min.Y) / float64(rows-1),
		Cols:   cols,
		Rows:   rows,
	}
}

// Project 返回模拟坐标所在的单元格
// 超出视口时 ok 为 false
func (v Viewport) Project(p fluid.Vec2) (col, row int, ok bool) {
	d := p.Sub(v.Min)
	col = int(math.Round(d.X / v.ScaleX))
	row = int(math.Round(d.Y / v.ScaleY))
	if col < 0 || col >= v.Cols || row < 0 || row >= v.Rows {
		return col, row, false
	}
	return col, row, true
}
