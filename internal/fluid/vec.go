// Package fluid implements the particle flow simulation: particles spawn
// inside a container, fall under gravity, bounce off the side walls and are
// biased through a tube (and optional T-junction branch) below it.
//
// The package has no rendering or input dependencies. Front-ends read
// particle positions through ParticleSystem.Particles and draw them.
package fluid

// Vec2 is a 2D vector in screen space (Y grows downward).
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}
