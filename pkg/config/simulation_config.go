package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/gonewx/tubeflow/internal/fluid"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig 配置校验失败时包装的哨兵错误
var ErrInvalidConfig = errors.New("invalid simulation config")

// DefaultTimeStep 每帧推进的模拟时间（秒）
// 模拟速度与刷新率绑定，不测量真实帧间隔
const DefaultTimeStep = 1.0 / 60.0

// Range 闭区间 [Min, Max]
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Clamp 将 v 限制在区间内
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Contains 检查 v 是否在区间内
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Normalize 将 v 映射到 0.0 ~ 1.0（滑动条使用）
func (r Range) Normalize(v float64) float64 {
	if r.Max <= r.Min {
		return 0
	}
	return (r.Clamp(v) - r.Min) / (r.Max - r.Min)
}

// Lerp 将 0.0 ~ 1.0 的滑动条值映射回区间
func (r Range) Lerp(t float64) float64 {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return r.Min + (r.Max-r.Min)*t
}

// ControlRanges 控制面板中三个滑动条的取值范围
type ControlRanges struct {
	TubeLength      Range `yaml:"tubeLength"`
	ContainerWidth  Range `yaml:"containerWidth"`
	ContainerHeight Range `yaml:"containerHeight"`
}

// SimulationConfig 模拟配置
//
// 配置文件位置: data/simulation.yaml（已嵌入可执行文件，可用 --config 覆盖）
// 文件中未出现的字段保留默认值。
type SimulationConfig struct {
	// TimeStep 每帧的模拟步长（秒）
	TimeStep float64 `yaml:"timeStep"`

	// Defaults 启动时的容器/管道参数
	Defaults fluid.Params `yaml:"defaults"`

	// Controls 滑动条范围
	Controls ControlRanges `yaml:"controls"`

	// Constants 模拟常量（重力、管道半径等）
	Constants fluid.Constants `yaml:"constants"`
}

// Default 返回内置默认配置
func Default() *SimulationConfig {
	return &SimulationConfig{
		TimeStep: DefaultTimeStep,
		Defaults: fluid.DefaultParams(),
		Controls: ControlRanges{
			TubeLength:      Range{Min: 50, Max: 200},
			ContainerWidth:  Range{Min: 100, Max: 400},
			ContainerHeight: Range{Min: 100, Max: 400},
		},
		Constants: fluid.DefaultConstants(),
	}
}

// LoadSimulationConfig 加载模拟配置
//
// 参数:
//   - path: 配置文件路径（如 "data/simulation.yaml"）
//
// 返回:
//   - *SimulationConfig: 加载并校验后的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadSimulationConfig(path string) (*SimulationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}
	return ParseSimulationConfig(data)
}

// ParseSimulationConfig 从 YAML 数据解析配置，缺省字段使用 Default() 的值
func ParseSimulationConfig(data []byte) (*SimulationConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse simulation config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 时间步长、粒子上限和初始生命值为正，管道半径不为负
//   - 各滑动条范围 Min <= Max 且 Min > 0
//   - 默认参数落在对应范围内
func (c *SimulationConfig) Validate() error {
	if c.TimeStep <= 0 {
		return fmt.Errorf("%w: timeStep must be positive, got %v", ErrInvalidConfig, c.TimeStep)
	}
	if c.Constants.MaxParticles <= 0 {
		return fmt.Errorf("%w: maxParticles must be positive, got %d", ErrInvalidConfig, c.Constants.MaxParticles)
	}
	if c.Constants.SpawnPerStep < 0 {
		return fmt.Errorf("%w: spawnPerStep must not be negative, got %d", ErrInvalidConfig, c.Constants.SpawnPerStep)
	}
	if c.Constants.LifeDecay <= 0 {
		return fmt.Errorf("%w: lifeDecay must be positive, got %v", ErrInvalidConfig, c.Constants.LifeDecay)
	}
	if c.Constants.InitialLife <= 0 {
		return fmt.Errorf("%w: initialLife must be positive, got %v", ErrInvalidConfig, c.Constants.InitialLife)
	}
	if c.Constants.TubeRadius < 0 {
		return fmt.Errorf("%w: tubeRadius must not be negative, got %v", ErrInvalidConfig, c.Constants.TubeRadius)
	}

	ranges := []struct {
		name  string
		r     Range
		value float64
	}{
		{"tubeLength", c.Controls.TubeLength, c.Defaults.TubeLength},
		{"containerWidth", c.Controls.ContainerWidth, c.Defaults.ContainerWidth},
		{"containerHeight", c.Controls.ContainerHeight, c.Defaults.ContainerHeight},
	}
	for _, rg := range ranges {
		if rg.r.Min <= 0 || rg.r.Min > rg.r.Max {
			return fmt.Errorf("%w: %s range invalid: min(%.1f) max(%.1f)",
				ErrInvalidConfig, rg.name, rg.r.Min, rg.r.Max)
		}
		if !rg.r.Contains(rg.value) {
			return fmt.Errorf("%w: default %s %.1f outside [%.1f, %.1f]",
				ErrInvalidConfig, rg.name, rg.value, rg.r.Min, rg.r.Max)
		}
	}

	return nil
}

// ClampParams 将参数限制在滑动条范围内
func (c *SimulationConfig) ClampParams(p fluid.Params) fluid.Params {
	p.TubeLength = c.Controls.TubeLength.Clamp(p.TubeLength)
	p.ContainerWidth = c.Controls.ContainerWidth.Clamp(p.ContainerWidth)
	p.ContainerHeight = c.Controls.ContainerHeight.Clamp(p.ContainerHeight)
	return p
}
