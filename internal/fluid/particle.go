package fluid

// LifeDecayRate is the default life a particle loses per simulated second.
// A particle spawned with life 1.0 therefore lives for two seconds.
const LifeDecayRate = 0.5

// Particle is a single simulated droplet.
//
// Particles are created by ParticleSystem's emission step and are owned by
// the system's collection; they are removed once Life drops to zero or below.
type Particle struct {
	Position Vec2 // 位置（屏幕坐标，像素）
	Velocity Vec2 // 速度（像素/秒）
	Life     float64
}

// Update advances the particle by dt seconds using semi-implicit Euler:
// velocity is updated before position, then life decays by dt*decay.
// ParticleSystem passes Constants.LifeDecay, which defaults to LifeDecayRate.
func (p *Particle) Update(dt, gravity, decay float64) {
	p.Velocity.Y += gravity * dt
	p.Position = p.Position.Add(p.Velocity.Scale(dt))
	p.Life -= dt * decay
}

// Alive reports whether the particle still has life left.
func (p *Particle) Alive() bool {
	return p.Life > 0
}
