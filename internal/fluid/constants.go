package fluid

// Constants holds the tunable heuristics of the simulation.
//
// None of these values are physically calibrated; they are chosen for a
// readable animation. DefaultConstants returns the reference values and every
// field carries a yaml tag so pkg/config can load overrides.
type Constants struct {
	Gravity       float64 `yaml:"gravity"`       // 重力加速度（像素/秒²），约为真实值的 10 倍
	MaxParticles  int     `yaml:"maxParticles"`  // 粒子数量上限
	SpawnPerStep  int     `yaml:"spawnPerStep"`  // 每步最多发射的粒子数
	SurfaceOffset float64 `yaml:"surfaceOffset"` // "水面"距容器底部的距离
	SpawnSpeedMax float64 `yaml:"spawnSpeedMax"` // 初始竖直速度上限（不含）
	InitialLife   float64 `yaml:"initialLife"`
	LifeDecay     float64 `yaml:"lifeDecay"`    // 每秒衰减的生命值
	WallDamping   float64 `yaml:"wallDamping"`  // 撞墙后水平速度乘数
	TubeRadius    float64 `yaml:"tubeRadius"`   // 管道中心线两侧的作用半径
	TubeAccel     float64 `yaml:"tubeAccel"`    // 管道内额外的向下加速度
	BranchAccel   float64 `yaml:"branchAccel"`  // T 型分支的水平加速度
	BranchOffset  float64 `yaml:"branchOffset"` // 分支端点相对管道末端的水平偏移
	Origin        Vec2    `yaml:"origin"`       // 容器左上角
}

// DefaultConstants returns the reference tuning.
func DefaultConstants() Constants {
	return Constants{
		Gravity:       98.1,
		MaxParticles:  1000,
		SpawnPerStep:  1,
		SurfaceOffset: 50,
		SpawnSpeedMax: 50,
		InitialLife:   1.0,
		LifeDecay:     LifeDecayRate,
		WallDamping:   -0.5,
		TubeRadius:    10,
		TubeAccel:     200,
		BranchAccel:   100,
		BranchOffset:  50,
		Origin:        Vec2{X: 50, Y: 50},
	}
}
