package fluid

import (
	"math"
	"math/rand"
	"time"
)

// Params are the user-adjustable construction parameters.
type Params struct {
	ContainerWidth  float64 `yaml:"containerWidth"`
	ContainerHeight float64 `yaml:"containerHeight"`
	TubeLength      float64 `yaml:"tubeLength"`
	TJunction       bool    `yaml:"tJunction"`
}

// DefaultParams returns the parameters the viewer starts with.
func DefaultParams() Params {
	return Params{
		ContainerWidth:  200,
		ContainerHeight: 300,
		TubeLength:      100,
		TJunction:       false,
	}
}

// Bounds is an axis-aligned box given by its min (top-left) and max
// (bottom-right) corners.
type Bounds struct {
	Min Vec2
	Max Vec2
}

// Width returns the horizontal extent of the box.
func (b Bounds) Width() float64 { return b.Max.X - b.Min.X }

// Height returns the vertical extent of the box.
func (b Bounds) Height() float64 { return b.Max.Y - b.Min.Y }

// ParticleSystem owns the particle collection and the container/tube geometry.
//
// Geometry is computed once in NewParticleSystem and never changes; callers
// that need different parameters build a new system, which also discards all
// particles. A ParticleSystem is not safe for concurrent use.
type ParticleSystem struct {
	particles []Particle

	params    Params
	consts    Constants
	bounds    Bounds
	tubeStart Vec2
	tubeEnd   Vec2
	branchEnd Vec2
	hasBranch bool

	rng *rand.Rand
}

// NewParticleSystem builds a system for the given parameters.
// A nil rng is replaced by a time-seeded source.
func NewParticleSystem(params Params, consts Constants, rng *rand.Rand) *ParticleSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	bounds := Bounds{
		Min: consts.Origin,
		Max: consts.Origin.Add(Vec2{X: params.ContainerWidth, Y: params.ContainerHeight}),
	}

	// 管道起点位于容器底边中点，向下延伸 TubeLength
	tubeStart := Vec2{X: bounds.Min.X + params.ContainerWidth*0.5, Y: bounds.Max.Y}
	tubeEnd := tubeStart.Add(Vec2{Y: params.TubeLength})

	ps := &ParticleSystem{
		particles: make([]Particle, 0, consts.MaxParticles),
		params:    params,
		consts:    consts,
		bounds:    bounds,
		tubeStart: tubeStart,
		tubeEnd:   tubeEnd,
		rng:       rng,
	}
	if params.TJunction {
		ps.branchEnd = tubeEnd.Add(Vec2{X: consts.BranchOffset})
		ps.hasBranch = true
	}
	return ps
}

// Update advances the simulation by dt seconds.
//
// The step emits, integrates, resolves side-wall collisions, applies the tube
// and T-junction biases and finally culls dead particles, in that order.
func (ps *ParticleSystem) Update(dt float64) {
	ps.emit()

	c := &ps.consts
	for i := range ps.particles {
		p := &ps.particles[i]
		p.Update(dt, c.Gravity, c.LifeDecay)

		// Side walls only: there is no floor, particles leave through the bottom.
		if p.Position.X < ps.bounds.Min.X {
			p.Position.X = ps.bounds.Min.X
			p.Velocity.X *= c.WallDamping
		}
		if p.Position.X > ps.bounds.Max.X {
			p.Position.X = ps.bounds.Max.X
			p.Velocity.X *= c.WallDamping
		}

		if p.Position.Y > ps.tubeStart.Y && math.Abs(p.Position.X-ps.tubeStart.X) < c.TubeRadius {
			p.Velocity.Y += c.TubeAccel * dt
		}

		// The branch end is not used for steering; every particle below the
		// tube end is pushed the same way.
		if ps.params.TJunction && p.Position.Y > ps.tubeEnd.Y {
			p.Velocity.X += c.BranchAccel * dt
		}
	}

	ps.removeDead()
}

// emit spawns up to SpawnPerStep particles at the approximate water surface.
func (ps *ParticleSystem) emit() {
	c := &ps.consts
	for i := 0; i < c.SpawnPerStep && len(ps.particles) < c.MaxParticles; i++ {
		x := ps.bounds.Min.X + ps.rng.Float64()*ps.bounds.Width()
		y := ps.bounds.Max.Y - c.SurfaceOffset
		ps.Inject(Particle{
			Position: Vec2{X: x, Y: y},
			Velocity: Vec2{X: 0, Y: ps.rng.Float64() * c.SpawnSpeedMax},
			Life:     c.InitialLife,
		})
	}
}

// removeDead filters the collection in place, keeping insertion order.
func (ps *ParticleSystem) removeDead() {
	alive := ps.particles[:0]
	for _, p := range ps.particles {
		if p.Alive() {
			alive = append(alive, p)
		}
	}
	ps.particles = alive
}

// Inject adds a particle to the collection. Emission goes through it, and
// tests use it to place particles directly. It reports false when the
// collection is already at capacity or the particle is dead.
func (ps *ParticleSystem) Inject(p Particle) bool {
	if len(ps.particles) >= ps.consts.MaxParticles || !p.Alive() {
		return false
	}
	ps.particles = append(ps.particles, p)
	return true
}

// Particles returns the live particles. The slice is owned by the system and
// is only valid until the next Update.
func (ps *ParticleSystem) Particles() []Particle {
	return ps.particles
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

// Params returns the parameters the system was built with.
func (ps *ParticleSystem) Params() Params {
	return ps.params
}

// Constants returns the tuning the system was built with.
func (ps *ParticleSystem) Constants() Constants {
	return ps.consts
}

// Bounds returns the container box.
func (ps *ParticleSystem) Bounds() Bounds {
	return ps.bounds
}

// TubeStart returns the top of the tube (bottom-center of the container).
func (ps *ParticleSystem) TubeStart() Vec2 {
	return ps.tubeStart
}

// TubeEnd returns the bottom of the tube.
func (ps *ParticleSystem) TubeEnd() Vec2 {
	return ps.tubeEnd
}

// BranchEnd returns the T-junction endpoint, if the junction is enabled.
func (ps *ParticleSystem) BranchEnd() (Vec2, bool) {
	return ps.branchEnd, ps.hasBranch
}

// TJunction reports whether the T-junction is enabled.
func (ps *ParticleSystem) TJunction() bool {
	return ps.params.TJunction
}
