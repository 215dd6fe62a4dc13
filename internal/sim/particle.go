package sim

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/iburimskiy/particle-rings/internal/config"
	"github.com/iburimskiy/particle-rings/internal/layout"
	"github.com/iburimskiy/particle-rings/internal/mathx"
)

// Particle is one dot. Init, Radius and Color never change after creation.
type Particle struct {
	Pos  r2.Vec
	Init r2.Vec
	Vel  r2.Vec
	Acc  r2.Vec

	Radius float64
	Scale  float64
	Color  layout.Color

	MinDistance   float64
	PushFactor    float64
	PullFactor    float64
	DampingFactor float64
}

func uniform(rng *rand.Rand, r config.Range) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

func newParticle(s layout.Seed, phys *config.Physics, rng *rand.Rand) Particle {
	return Particle{
		Pos:           s.Pos,
		Init:          s.Pos,
		Radius:        s.Radius,
		Scale:         phys.MinScale,
		Color:         s.Color,
		MinDistance:   uniform(rng, phys.MinDistance),
		PushFactor:    uniform(rng, phys.PushFactor),
		PullFactor:    uniform(rng, phys.PullFactor),
		DampingFactor: uniform(rng, phys.DampingFactor),
	}
}

// Displacement is the distance from the particle to its anchor.
func (p Particle) Displacement() float64 {
	return r2.Norm(r2.Sub(p.Init, p.Pos))
}

// DrawRadius is the visible circle radius.
func (p Particle) DrawRadius() float64 {
	return p.Radius * p.Scale
}

// Repulsion is the acceleration the cursor adds this tick. It is zero at or
// beyond MinDistance and when the cursor sits exactly on the particle.
func (p *Particle) Repulsion(cursor r2.Vec) r2.Vec {
	c := r2.Sub(p.Pos, cursor)
	dd := r2.Norm(c)
	if dd >= p.MinDistance || dd == 0 {
		return r2.Vec{}
	}
	return r2.Scale((p.MinDistance-dd)*p.PushFactor/dd, c)
}

func (p *Particle) update(cursor r2.Vec, phys *config.Physics) {
	d := r2.Sub(p.Init, p.Pos)
	p.Scale = scaleFor(r2.Norm(d), phys)
	p.Acc = r2.Scale(p.PullFactor, d)
	p.Acc = r2.Add(p.Acc, p.Repulsion(cursor))

	p.Vel = r2.Add(p.Vel, p.Acc)
	p.Vel = r2.Scale(p.DampingFactor, p.Vel)
	p.Pos = r2.Add(p.Pos, p.Vel)
}

func scaleFor(displacement float64, phys *config.Physics) float64 {
	s := mathx.MapRange(displacement, 0, phys.ScaleDistance, phys.MinScale, phys.MaxScale)
	if phys.ClampScale {
		s = mathx.Clamp(s, phys.MinScale, phys.MaxScale)
	}
	return s
}
