package loop

import (
	"math"
	"math/rand"
	"time"

	"github.com/rjld-da/Game-SimpleSnake/internal/draw"
)

// particle is a short-lived visual effect in canvas sub-pixel space.
type particle struct {
	x, y     float64
	vx, vy   float64
	lifetime float64 // Seconds remaining
}

// particleDrag is the per-second velocity decay factor.
const particleDrag = 0.05

// Effects manages driver-side particle bursts (eating a target, dying).
// Purely cosmetic: effects never touch engine state.
type Effects struct {
	rng       *rand.Rand
	particles []particle
}

// NewEffects creates an effects pool with a clock-seeded source. Visual
// randomness has no determinism requirement.
func NewEffects() Effects {
	return Effects{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Burst spawns count particles in a circular pattern around (x, y), given in
// canvas sub-pixel coordinates.
func (e *Effects) Burst(x, y float64, count int, speed, lifetime float64) {
	for i := 0; i < count; i++ {
		angle := e.rng.Float64() * 2 * math.Pi
		spd := speed * (0.5 + e.rng.Float64())
		life := lifetime * (0.5 + e.rng.Float64()*0.5)

		e.particles = append(e.particles, particle{
			x:        x,
			y:        y,
			vx:       math.Cos(angle) * spd,
			vy:       math.Sin(angle) * spd,
			lifetime: life,
		})
	}
}

// Update advances all particles and drops expired ones.
func (e *Effects) Update(delta time.Duration) {
	dt := delta.Seconds()
	kept := e.particles[:0]
	for _, p := range e.particles {
		p.lifetime -= dt
		if p.lifetime <= 0 {
			continue
		}
		p.x += p.vx * dt
		p.y += p.vy * dt
		decay := 1.0 - particleDrag*dt
		if decay < 0 {
			decay = 0
		}
		p.vx *= decay
		p.vy *= decay
		kept = append(kept, p)
	}
	e.particles = kept
}

// Draw renders all live particles onto the canvas.
func (e *Effects) Draw(c *draw.Canvas) {
	for _, p := range e.particles {
		c.SetFloat(p.x, p.y)
	}
}

// Clear removes all live particles.
func (e *Effects) Clear() {
	e.particles = e.particles[:0]
}

// Active reports whether any particles are still alive.
func (e *Effects) Active() bool {
	return len(e.particles) > 0
}
