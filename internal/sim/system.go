// Package sim advances the particle field one tick at a time and keeps the
// draw order.
package sim

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/iburimskiy/particle-rings/internal/config"
	"github.com/iburimskiy/particle-rings/internal/layout"
)

// Sentinel is the cursor position used when no pointer is held.
var Sentinel = r2.Vec{X: config.CursorSentinel, Y: config.CursorSentinel}

// Input is the per-tick pointer state handed to Step.
type Input struct {
	Cursor r2.Vec
}

// Idle is the input with no pointer pressed.
var Idle = Input{Cursor: Sentinel}

// NewRand returns a seeded source. A zero seed is replaced by the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// System owns the particle store. Particles never move in the backing slice;
// Order holds the draw order as indices.
type System struct {
	phys      config.Physics
	particles []Particle
	order     []int
}

func New(seeds []layout.Seed, phys config.Physics, rng *rand.Rand) *System {
	s := &System{
		phys:      phys,
		particles: make([]Particle, len(seeds)),
		order:     make([]int, len(seeds)),
	}
	for i, seed := range seeds {
		s.particles[i] = newParticle(seed, &s.phys, rng)
		s.order[i] = i
	}
	return s
}

// Step integrates every particle once and re-sorts the draw order.
func (s *System) Step(in Input) {
	for i := range s.particles {
		s.particles[i].update(in.Cursor, &s.phys)
	}
	s.sortOrder()
}

// sortOrder stable-sorts by ascending scale so displaced particles draw on top.
// The previous frame's order breaks ties.
func (s *System) sortOrder() {
	slices.SortStableFunc(s.order, func(a, b int) int {
		return cmp.Compare(s.particles[a].Scale, s.particles[b].Scale)
	})
}

// Reset puts every particle back on its anchor at rest.
func (s *System) Reset() {
	for i := range s.particles {
		p := &s.particles[i]
		p.Pos = p.Init
		p.Vel = r2.Vec{}
		p.Acc = r2.Vec{}
		p.Scale = s.phys.MinScale
	}
	s.sortOrder()
}

func (s *System) Len() int { return len(s.particles) }

// At returns a copy of particle i in creation order.
func (s *System) At(i int) Particle { return s.particles[i] }

// Order is the draw order for the current tick. The slice is reused across
// ticks and must not be modified.
func (s *System) Order() []int { return s.order }

// Each calls fn for every particle in draw order. fn must not modify p.
func (s *System) Each(fn func(p *Particle)) {
	for _, i := range s.order {
		fn(&s.particles[i])
	}
}

// MeanDisplacement is the average distance of particles from their anchors.
func (s *System) MeanDisplacement() float64 {
	if len(s.particles) == 0 {
		return 0
	}
	var sum float64
	for i := range s.particles {
		sum += s.particles[i].Displacement()
	}
	return sum / float64(len(s.particles))
}
