// Package app 提供模拟应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，main.go 只负责解析命令行参数和创建窗口。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"

	"github.com/gonewx/tubeflow/internal/fluid"
	"github.com/gonewx/tubeflow/pkg/config"
	"github.com/gonewx/tubeflow/pkg/embedded"
	"github.com/gonewx/tubeflow/pkg/game"
	"github.com/gonewx/tubeflow/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultConfigPath 嵌入的默认配置文件路径
const DefaultConfigPath = "data/simulation.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 外部配置文件路径，为空则使用嵌入的 data/simulation.yaml
	ConfigPath string
	// Overrides 在配置默认参数之上覆盖启动参数（命令行参数）
	Overrides func(p *fluid.Params)
	// Seed 随机种子，0 表示使用时间种子
	Seed int64
}

// App 是模拟应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	controller   *game.SimulationController
}

// NewApp 创建并初始化模拟应用
//
// 未指定 ConfigPath 时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	simCfg, err := LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("模拟配置加载失败: %w", err)
	}

	params := simCfg.Defaults
	if cfg.Overrides != nil {
		cfg.Overrides(&params)
	}

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
		log.Printf("[App] Using seed %d", cfg.Seed)
	}

	controller := game.NewSimulationController(simCfg, params, rng)

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	sceneManager.Register(scenes.SimulationSceneName, func() game.Scene {
		return scenes.NewSimulationScene(controller)
	})
	if !sceneManager.Load(scenes.SimulationSceneName) {
		return nil, fmt.Errorf("无法加载场景: %s", scenes.SimulationSceneName)
	}

	log.Printf("[App] Started with params %+v", controller.Params())

	return &App{
		sceneManager: sceneManager,
		controller:   controller,
	}, nil
}

// LoadConfig 加载模拟配置
// path 为空时读取嵌入的默认配置，嵌入文件缺失时使用 config.Default()
func LoadConfig(path string) (*config.SimulationConfig, error) {
	if path != "" {
		log.Printf("[Config] 加载配置文件: %s", path)
		return config.LoadSimulationConfig(path)
	}

	if !embedded.Exists(DefaultConfigPath) {
		log.Printf("[Config] 未找到嵌入配置 %s，使用内置默认值", DefaultConfigPath)
		return config.Default(), nil
	}

	data, err := embedded.ReadFile(DefaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded config: %w", err)
	}
	log.Printf("[Config] 使用嵌入配置: %s", DefaultConfigPath)
	return config.ParseSimulationConfig(data)
}

// Update 更新模拟逻辑
// 每个 tick 调用一次（通常每秒 60 次），Esc 退出
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		log.Printf("[App] Escape pressed, exiting after %.1fs simulated (%d steps since last rebuild, %d rebuilds)",
			a.controller.SimulatedTime(), a.controller.Steps(), a.controller.Resets())
		return ebiten.Termination
	}

	// 固定步长，与真实帧间隔无关
	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 窗口比例与逻辑尺寸不一致时两侧填充黑色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
