package ui

import (
	"math"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aquarium/camera"
	"github.com/pthm-cable/aquarium/telemetry"
)

// ParticleType identifies the type of effect particle.
type ParticleType uint8

const (
	ParticleBubble  ParticleType = iota // meals, rise
	ParticleSparkle                     // growth and hatching, radial burst
	ParticleHeart                       // breeding, rise slowly
	ParticleDeath                       // starvation, sink
	ParticleCoin                        // sales, jump then fall
)

// EffectParticle is one short-lived visual in world coordinates.
// Velocities are world units per 1/60 s.
type EffectParticle struct {
	X, Y       float32
	VelX, VelY float32
	Life       float32 // Seconds left
	MaxLife    float32
	Type       ParticleType
	Size       float32
}

// Effects turns located game events into particles.
type Effects struct {
	Particles    []EffectParticle
	maxParticles int
	rng          *rand.Rand
}

// NewEffects creates an empty particle pool.
func NewEffects(seed int64) *Effects {
	return &Effects{
		Particles:    make([]EffectParticle, 0, 500),
		maxParticles: 500,
		rng:          rand.New(rand.NewSource(seed)),
	}
}

// Emit spawns the particles for one event. Events without a location are
// ignored.
func (e *Effects) Emit(ev telemetry.Event) {
	if !ev.Located() {
		return
	}
	x, y := float32(ev.X), float32(ev.Y)

	switch ev.Type {
	case telemetry.EventMeal:
		e.burst(x, y, ParticleBubble, 3+e.rng.Intn(3))
	case telemetry.EventGrowth:
		e.burst(x, y, ParticleSparkle, 10+e.rng.Intn(5))
	case telemetry.EventHatch:
		e.burst(x, y, ParticleSparkle, 6+3*ev.Count)
	case telemetry.EventBred:
		e.burst(x, y, ParticleHeart, 5)
	case telemetry.EventStarved:
		e.burst(x, y, ParticleDeath, 8)
	case telemetry.EventFishSold:
		e.burst(x, y, ParticleCoin, 6+ev.Count)
	}
}

// Update ages and moves every particle by dt seconds.
func (e *Effects) Update(dt float32) {
	frames := dt * 60
	drag := float32(math.Pow(0.95, float64(frames)))

	alive := 0
	for i := range e.Particles {
		p := &e.Particles[i]

		p.Life -= dt
		if p.Life <= 0 {
			continue
		}

		switch p.Type {
		case ParticleBubble:
			p.VelY -= 0.02 * frames
		case ParticleHeart:
			p.VelY -= 0.005 * frames
		case ParticleDeath:
			p.VelY += 0.02 * frames
		case ParticleCoin:
			p.VelY += 0.04 * frames
		}

		p.VelX *= drag
		p.VelY *= drag

		p.X += p.VelX * frames
		p.Y += p.VelY * frames

		e.Particles[alive] = e.Particles[i]
		alive++
	}
	e.Particles = e.Particles[:alive]
}

// Count returns the current number of active particles.
func (e *Effects) Count() int {
	return len(e.Particles)
}

// Draw renders all particles through the camera, fading with age.
func (e *Effects) Draw(cam *camera.Camera) {
	for i := range e.Particles {
		p := &e.Particles[i]
		if !cam.IsVisible(p.X, p.Y, p.Size) {
			continue
		}

		lifeRatio := p.Life / p.MaxLife
		var color rl.Color
		switch p.Type {
		case ParticleBubble:
			color = rl.Color{R: 200, G: 230, B: 255, A: uint8(lifeRatio * 200)}
		case ParticleSparkle:
			color = rl.Color{R: 255, G: 240, B: 120, A: uint8(lifeRatio * 220)}
		case ParticleHeart:
			color = rl.Color{R: 255, G: 110, B: 160, A: uint8(lifeRatio * 220)}
		case ParticleDeath:
			color = rl.Color{R: 100, G: 80, B: 60, A: uint8(lifeRatio * 150)}
		case ParticleCoin:
			color = rl.Color{R: 255, G: 200, B: 40, A: uint8(lifeRatio * 255)}
		}

		sx, sy := cam.WorldToScreen(p.X, p.Y)
		size := max(cam.Scale(p.Size*lifeRatio), 0.5)
		if p.Type == ParticleBubble {
			rl.DrawCircleLines(int32(sx), int32(sy), size, color)
			continue
		}
		rl.DrawCircleV(rl.Vector2{X: sx, Y: sy}, size, color)
	}
}

func (e *Effects) burst(x, y float32, ptype ParticleType, count int) {
	for i := 0; i < count; i++ {
		if len(e.Particles) >= e.maxParticles {
			return
		}
		e.Particles = append(e.Particles, e.particle(x, y, ptype))
	}
}

func (e *Effects) particle(x, y float32, ptype ParticleType) EffectParticle {
	r := e.rng
	var velX, velY, life, size float32

	switch ptype {
	case ParticleBubble:
		velX = (r.Float32() - 0.5) * 0.4
		velY = -r.Float32() * 0.5
		life = 1 + r.Float32()*0.6
		size = 2 + r.Float32()*2
	case ParticleSparkle:
		angle := r.Float64() * 2 * math.Pi
		speed := 1 + r.Float64()*1.5
		velX = float32(math.Cos(angle) * speed)
		velY = float32(math.Sin(angle) * speed)
		life = 0.5 + r.Float32()*0.5
		size = 2 + r.Float32()*1.5
	case ParticleHeart:
		velX = (r.Float32() - 0.5) * 0.6
		velY = -0.3 - r.Float32()*0.3
		life = 1.5 + r.Float32()
		size = 3 + r.Float32()
	case ParticleDeath:
		velX = (r.Float32() - 0.5) * 0.4
		velY = r.Float32() * 0.3
		life = 1.3 + r.Float32()
		size = 3 + r.Float32()
	case ParticleCoin:
		velX = (r.Float32() - 0.5) * 2
		velY = -1.5 - r.Float32()
		life = 0.8 + r.Float32()*0.4
		size = 3 + r.Float32()
	}

	return EffectParticle{
		X:       x + (r.Float32()-0.5)*8,
		Y:       y + (r.Float32()-0.5)*8,
		VelX:    velX,
		VelY:    velY,
		Life:    life,
		MaxLife: life,
		Type:    ptype,
		Size:    size,
	}
}
