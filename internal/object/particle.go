package object

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Explosion tuning.
const (
	ParticleSize     = 3.0
	ParticleSpeed    = 120.0 // Mean burst speed, px/s
	ParticleLifetime = 0.6   // Max seconds a particle lives
	ParticleDrag     = 0.95  // Velocity kept per 1/60s
)

// ParticleTint is the color family of a particle. Renderers map it to a color.
type ParticleTint int

const (
	TintFire ParticleTint = iota
	TintSpark
	TintSmoke
)

// Particle is a short-lived visual effect. It never takes part in collisions.
type Particle struct {
	Body
	Tint ParticleTint
	Drag float64

	fade *gween.Tween
}

// NewParticle creates a particle centered at (x, y) that fades out over
// lifetime seconds.
func NewParticle(x, y, vx, vy, lifetime float64, tint ParticleTint) *Particle {
	p := &Particle{
		Body: NewBody(x-ParticleSize/2, y-ParticleSize/2, ParticleSize, ParticleSize),
		Tint: tint,
		Drag: ParticleDrag,
		fade: gween.New(1, 0, float32(lifetime), ease.OutQuad),
	}
	p.VX = vx
	p.VY = vy
	return p
}

// Kind returns KindParticle.
func (p *Particle) Kind() Kind {
	return KindParticle
}

// Update moves the particle, applies drag and fades it. The particle dies
// when the fade completes.
func (p *Particle) Update(ctx UpdateContext) {
	dt := ctx.Delta.Seconds()

	alpha, done := p.fade.Update(float32(dt))
	p.Alpha = float64(alpha)
	if done {
		p.Kill()
		return
	}

	drag := math.Pow(p.Drag, dt*60) // Normalize drag to ~60fps
	p.VX *= drag
	p.VY *= drag
	p.Integrate(dt)
}

// SpawnExplosion creates count particles in a circular burst around (x, y).
// The random source should be separate from the gameplay one so effects
// never shift gameplay outcomes.
func SpawnExplosion(x, y float64, count int, rng Rand, spawner Spawner) {
	if spawner == nil || rng == nil {
		return
	}

	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		// Speed varies from 50% to 150%, lifetime from 50% to 100%.
		spd := ParticleSpeed * (0.5 + rng.Float64())
		life := ParticleLifetime * (0.5 + rng.Float64()*0.5)
		tint := ParticleTint(int(rng.Float64()*3) % 3)

		spawner.Spawn(NewParticle(x, y, math.Cos(angle)*spd, math.Sin(angle)*spd, life, tint))
	}
}
