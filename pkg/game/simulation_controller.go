package game

import (
	"log"
	"math/rand"

	"github.com/gonewx/tubeflow/internal/fluid"
	"github.com/gonewx/tubeflow/pkg/config"
)

// SimulationController 持有当前参数、暂停状态和粒子系统
//
// 职责：
//   - 每帧以固定步长推进模拟（暂停时跳过）
//   - 参数变化或重置时重新构造粒子系统（几何重算，粒子清空）
//   - 将参数限制在控制面板的滑动条范围内
//
// 桌面端（SimulationScene）和终端（internal/terminal）共用此控制器。
// 不是并发安全的，只能在游戏循环所在的 goroutine 中使用。
type SimulationController struct {
	cfg    *config.SimulationConfig
	params fluid.Params
	paused bool
	system *fluid.ParticleSystem
	rng    *rand.Rand

	steps  uint64 // 自上次重置以来推进的步数
	resets int    // 重建次数（不含初始构造）
}

// NewSimulationController 创建模拟控制器
//
// 参数：
//   - cfg: 模拟配置（nil 时使用 config.Default()）
//   - params: 初始参数，会被限制在滑动条范围内
//   - rng: 随机源，所有重建的粒子系统共用（nil 时由粒子系统自行创建）
func NewSimulationController(cfg *config.SimulationConfig, params fluid.Params, rng *rand.Rand) *SimulationController {
	if cfg == nil {
		cfg = config.Default()
	}
	c := &SimulationController{
		cfg:    cfg,
		params: cfg.ClampParams(params),
		rng:    rng,
	}
	c.system = c.build()
	return c
}

func (c *SimulationController) build() *fluid.ParticleSystem {
	return fluid.NewParticleSystem(c.params, c.cfg.Constants, c.rng)
}

// Step 推进一帧
// 步长固定为配置中的 TimeStep，与真实帧间隔无关
func (c *SimulationController) Step() {
	if c.paused {
		return
	}
	c.system.Update(c.cfg.TimeStep)
	c.steps++
}

// Reset 以当前参数重建粒子系统
func (c *SimulationController) Reset() {
	c.system = c.build()
	c.steps = 0
	c.resets++
	log.Printf("[SimulationController] Reset: width=%.0f height=%.0f tube=%.0f tJunction=%v",
		c.params.ContainerWidth, c.params.ContainerHeight, c.params.TubeLength, c.params.TJunction)
}

// SetParams 替换全部参数并重建
func (c *SimulationController) SetParams(p fluid.Params) {
	p = c.cfg.ClampParams(p)
	if p == c.params {
		return
	}
	c.params = p
	c.Reset()
}

// SetTubeLength 设置管道长度（范围外的值会被限制）
func (c *SimulationController) SetTubeLength(v float64) {
	p := c.params
	p.TubeLength = v
	c.SetParams(p)
}

// SetContainerWidth 设置容器宽度
func (c *SimulationController) SetContainerWidth(v float64) {
	p := c.params
	p.ContainerWidth = v
	c.SetParams(p)
}

// SetContainerHeight 设置容器高度
func (c *SimulationController) SetContainerHeight(v float64) {
	p := c.params
	p.ContainerHeight = v
	c.SetParams(p)
}

// SetTJunction 开关 T 型分支
func (c *SimulationController) SetTJunction(enabled bool) {
	p := c.params
	p.TJunction = enabled
	c.SetParams(p)
}

// TogglePause 切换暂停状态，返回切换后的状态
func (c *SimulationController) TogglePause() bool {
	c.paused = !c.paused
	log.Printf("[SimulationController] Paused: %v", c.paused)
	return c.paused
}

// IsPaused 返回是否暂停
func (c *SimulationController) IsPaused() bool {
	return c.paused
}

// Params 返回当前参数
func (c *SimulationController) Params() fluid.Params {
	return c.params
}

// System 返回当前粒子系统
// 重置后旧的引用不再更新，调用方不应缓存
func (c *SimulationController) System() *fluid.ParticleSystem {
	return c.system
}

// Config 返回模拟配置
func (c *SimulationController) Config() *config.SimulationConfig {
	return c.cfg
}

// Steps 返回自上次重置以来的步数
func (c *SimulationController) Steps() uint64 {
	return c.steps
}

// Resets 返回重建次数
func (c *SimulationController) Resets() int {
	return c.resets
}

// SimulatedTime 返回自上次重置以来的模拟时间（秒）
func (c *SimulationController) SimulatedTime() float64 {
	return float64(c.steps) * c.cfg.TimeStep
}
