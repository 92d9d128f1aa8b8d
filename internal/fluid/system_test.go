package fluid

import (
	"math/rand"
	"testing"
)

func newTestSystem(params Params) *ParticleSystem {
	return NewParticleSystem(params, DefaultConstants(), rand.New(rand.NewSource(42)))
}

// TestNewParticleSystem_Geometry 验证容器、管道和 T 型分支的几何关系
func TestNewParticleSystem_Geometry(t *testing.T) {
	tests := []struct {
		name          string
		params        Params
		wantMin       Vec2
		wantMax       Vec2
		wantTubeStart Vec2
		wantTubeEnd   Vec2
		wantBranch    bool
		wantBranchEnd Vec2
	}{
		{
			name:          "默认参数",
			params:        Params{ContainerWidth: 200, ContainerHeight: 300, TubeLength: 100},
			wantMin:       Vec2{X: 50, Y: 50},
			wantMax:       Vec2{X: 250, Y: 350},
			wantTubeStart: Vec2{X: 150, Y: 350},
			wantTubeEnd:   Vec2{X: 150, Y: 450},
		},
		{
			name:          "启用T型分支",
			params:        Params{ContainerWidth: 200, ContainerHeight: 300, TubeLength: 100, TJunction: true},
			wantMin:       Vec2{X: 50, Y: 50},
			wantMax:       Vec2{X: 250, Y: 350},
			wantTubeStart: Vec2{X: 150, Y: 350},
			wantTubeEnd:   Vec2{X: 150, Y: 450},
			wantBranch:    true,
			wantBranchEnd: Vec2{X: 200, Y: 450},
		},
		{
			name:          "最大尺寸",
			params:        Params{ContainerWidth: 400, ContainerHeight: 400, TubeLength: 200},
			wantMin:       Vec2{X: 50, Y: 50},
			wantMax:       Vec2{X: 450, Y: 450},
			wantTubeStart: Vec2{X: 250, Y: 450},
			wantTubeEnd:   Vec2{X: 250, Y: 650},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := newTestSystem(tt.params)

			if b := ps.Bounds(); b.Min != tt.wantMin || b.Max != tt.wantMax {
				t.Errorf("Bounds = %+v, want min %+v max %+v", b, tt.wantMin, tt.wantMax)
			}
			if got := ps.TubeStart(); got != tt.wantTubeStart {
				t.Errorf("TubeStart = %+v, want %+v", got, tt.wantTubeStart)
			}
			if got := ps.TubeEnd(); got != tt.wantTubeEnd {
				t.Errorf("TubeEnd = %+v, want %+v", got, tt.wantTubeEnd)
			}
			branchEnd, ok := ps.BranchEnd()
			if ok != tt.wantBranch {
				t.Fatalf("BranchEnd present = %v, want %v", ok, tt.wantBranch)
			}
			if ok && branchEnd != tt.wantBranchEnd {
				t.Errorf("BranchEnd = %+v, want %+v", branchEnd, tt.wantBranchEnd)
			}
			if ps.Len() != 0 {
				t.Errorf("new system has %d particles, want 0", ps.Len())
			}
		})
	}
}

func TestNewParticleSystem_Deterministic(t *testing.T) {
	params := Params{ContainerWidth: 320, ContainerHeight: 180, TubeLength: 75, TJunction: true}

	a := NewParticleSystem(params, DefaultConstants(), nil)
	b := NewParticleSystem(params, DefaultConstants(), nil)

	if a.Bounds() != b.Bounds() || a.TubeStart() != b.TubeStart() || a.TubeEnd() != b.TubeEnd() {
		t.Errorf("geometry differs: %+v/%+v vs %+v/%+v", a.Bounds(), a.TubeEnd(), b.Bounds(), b.TubeEnd())
	}
	ae, _ := a.BranchEnd()
	be, _ := b.BranchEnd()
	if ae != be {
		t.Errorf("branch end differs: %+v vs %+v", ae, be)
	}
	if a.Len() != 0 || b.Len() != 0 {
		t.Errorf("expected empty collections, got %d and %d", a.Len(), b.Len())
	}
}

func TestUpdate_EmitsOnePerStep(t *testing.T) {
	ps := newTestSystem(DefaultParams())
	b := ps.Bounds()

	ps.Update(1.0 / 60.0)
	if ps.Len() != 1 {
		t.Fatalf("Len = %d, want 1", ps.Len())
	}

	p := ps.Particles()[0]
	if p.Position.X < b.Min.X || p.Position.X > b.Max.X {
		t.Errorf("spawn x %v outside container [%v, %v]", p.Position.X, b.Min.X, b.Max.X)
	}
	if p.Velocity.X != 0 {
		t.Errorf("spawn Velocity.X = %v, want 0", p.Velocity.X)
	}
	// 发射后同一步内已经积分一次
	if p.Velocity.Y < 98.1/60.0 || p.Velocity.Y >= 50+98.1/60.0 {
		t.Errorf("spawn Velocity.Y = %v out of range", p.Velocity.Y)
	}
}

func TestUpdate_NeverExceedsCap(t *testing.T) {
	ps := newTestSystem(DefaultParams())

	// 极小的时间步长让粒子几乎不衰减，从而触达上限
	for i := 0; i < 1500; i++ {
		ps.Update(0.0001)
		if ps.Len() > 1000 {
			t.Fatalf("step %d: Len = %d exceeds cap", i, ps.Len())
		}
	}
	if ps.Len() != 1000 {
		t.Errorf("Len = %d, want 1000 at saturation", ps.Len())
	}
}

func TestUpdate_RemovesDeadParticles(t *testing.T) {
	ps := newTestSystem(DefaultParams())
	ps.Inject(Particle{Position: Vec2{X: 100, Y: 100}, Life: 0.01})

	ps.Update(0.1)

	for _, p := range ps.Particles() {
		if !p.Alive() {
			t.Fatalf("dead particle still present: %+v", p)
		}
		if p.Position.X == 100 && p.Position.Y < 110 && p.Life < 0.1 {
			t.Fatalf("expired particle was not removed: %+v", p)
		}
	}
	if ps.Len() != 1 {
		t.Errorf("Len = %d, want 1 (only the newly emitted particle)", ps.Len())
	}
}

func TestUpdate_WallCollision(t *testing.T) {
	tests := []struct {
		name  string
		x     float64
		vx    float64
		wantX float64
		wantV float64
	}{
		{name: "左墙", x: 40, vx: -10, wantX: 50, wantV: 5},
		{name: "右墙", x: 260, vx: 8, wantX: 250, wantV: -4},
		{name: "容器内", x: 120, vx: 3, wantX: 120, wantV: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := newTestSystem(DefaultParams())
			ps.Inject(Particle{Position: Vec2{X: tt.x, Y: 100}, Velocity: Vec2{X: tt.vx}, Life: 1})

			// dt=0 isolates the collision response from integration.
			ps.Update(0)

			p := ps.Particles()[0]
			if p.Position.X != tt.wantX {
				t.Errorf("x = %v, want %v", p.Position.X, tt.wantX)
			}
			if p.Velocity.X != tt.wantV {
				t.Errorf("vx = %v, want %v", p.Velocity.X, tt.wantV)
			}
		})
	}
}

func TestUpdate_TubeBias(t *testing.T) {
	dt := 0.1
	tests := []struct {
		name     string
		pos      Vec2
		wantBias bool
	}{
		{name: "管道中心线上", pos: Vec2{X: 150, Y: 360}, wantBias: true},
		{name: "半径以内", pos: Vec2{X: 159, Y: 360}, wantBias: true},
		{name: "半径以外", pos: Vec2{X: 165, Y: 360}, wantBias: false},
		{name: "管道入口以上", pos: Vec2{X: 150, Y: 300}, wantBias: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := newTestSystem(DefaultParams())
			ps.Inject(Particle{Position: tt.pos, Life: 1})
			ps.Update(dt)

			p := ps.Particles()[0]
			want := 98.1 * dt
			if tt.wantBias {
				want += 200 * dt
			}
			if p.Velocity.Y != want {
				t.Errorf("vy = %v, want %v", p.Velocity.Y, want)
			}
		})
	}
}

func TestUpdate_TJunctionBias(t *testing.T) {
	dt := 0.1
	pos := Vec2{X: 200, Y: 460} // 管道末端以下，偏离中心线

	withBranch := newTestSystem(Params{ContainerWidth: 200, ContainerHeight: 300, TubeLength: 100, TJunction: true})
	withBranch.Inject(Particle{Position: pos, Life: 1})
	withBranch.Update(dt)
	if got := withBranch.Particles()[0].Velocity.X; got != 100*dt {
		t.Errorf("with T-junction vx = %v, want %v", got, 100*dt)
	}

	without := newTestSystem(DefaultParams())
	without.Inject(Particle{Position: pos, Life: 1})
	without.Update(dt)
	if got := without.Particles()[0].Velocity.X; got != 0 {
		t.Errorf("without T-junction vx = %v, want 0", got)
	}
}

func TestInject_RespectsCap(t *testing.T) {
	consts := DefaultConstants()
	consts.MaxParticles = 2
	ps := NewParticleSystem(DefaultParams(), consts, rand.New(rand.NewSource(1)))

	if !ps.Inject(Particle{Life: 1}) || !ps.Inject(Particle{Life: 1}) {
		t.Fatal("expected first two injections to succeed")
	}
	if ps.Inject(Particle{Life: 1}) {
		t.Error("injection beyond cap should fail")
	}
	if ps.Inject(Particle{Life: 0}) {
		t.Error("injecting a dead particle should fail")
	}

	ps.Update(0.01)
	if ps.Len() != 2 {
		t.Errorf("Len = %d, want 2 (no emission at cap)", ps.Len())
	}
}

// TestUpdate_OneSecondEndToEnd 60 步、dt=1/60：每步发射一个，且一秒内无粒子死亡
func TestUpdate_OneSecondEndToEnd(t *testing.T) {
	ps := newTestSystem(DefaultParams())

	for i := 0; i < 60; i++ {
		ps.Update(1.0 / 60.0)
	}

	if ps.Len() != 60 {
		t.Fatalf("Len = %d, want 60", ps.Len())
	}
	for i, p := range ps.Particles() {
		if p.Life <= 0.49 || p.Life > 1.0 {
			t.Errorf("particle %d life = %v, want in (0.49, 1.0]", i, p.Life)
		}
	}
}

// TestUpdate_UsesConfiguredLifeDecay 系统步进使用 Constants.LifeDecay 而非默认衰减率
func TestUpdate_UsesConfiguredLifeDecay(t *testing.T) {
	consts := DefaultConstants()
	consts.SpawnPerStep = 0
	consts.LifeDecay = 2
	ps := NewParticleSystem(DefaultParams(), consts, rand.New(rand.NewSource(1)))

	if !ps.Inject(Particle{Position: Vec2{X: 150, Y: 100}, Life: 1}) {
		t.Fatal("injection failed")
	}

	ps.Update(0.25)
	if ps.Len() != 1 {
		t.Fatalf("Len = %d, want 1", ps.Len())
	}
	if got := ps.Particles()[0].Life; got != 0.5 {
		t.Errorf("life after 0.25s = %v, want 0.5", got)
	}

	ps.Update(0.25)
	if ps.Len() != 0 {
		t.Errorf("Len = %d, want 0 after 0.5s at decay 2", ps.Len())
	}
}
