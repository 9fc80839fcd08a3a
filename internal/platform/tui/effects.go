package tui

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/giftrun/internal/core"
	"github.com/vovakirdan/giftrun/internal/games/giftrun"
)

// Effect tuning, in world units and seconds.
const (
	burstParticles   = 12
	particleGravity  = 400.0
	particleMinSpeed = 60.0
	particleMaxSpeed = 180.0
	particleMinLife  = 0.4
	particleMaxLife  = 0.9
	lightsPerTreeMin = 2
	lightsPerTreeMax = 4
)

// Particle is one spark of a gift pickup burst.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64
	MaxAge float64
	Color  core.Color
}

// Fraction returns the share of the particle's life remaining.
func (p Particle) Fraction() float64 {
	if p.MaxAge <= 0 {
		return 0
	}
	return core.ClampF(p.Life/p.MaxAge, 0, 1)
}

// Light is a blinking bulb on a tree.
type Light struct {
	X, Y  float64 // world position
	Phase float64
	Speed float64 // radians per second
	Color core.Color
}

// On reports whether the light is lit at time t.
func (l Light) On(t float64) bool {
	return math.Sin(l.Phase+l.Speed*t) > 0
}

// Effects holds purely cosmetic state. The simulation never reads it.
type Effects struct {
	rng       *rand.Rand
	t         float64
	particles []Particle
	lights    map[int][]Light // by tree entity ID
}

// NewEffects creates an empty effects layer.
func NewEffects(rng *rand.Rand) *Effects {
	return &Effects{rng: rng, lights: make(map[int][]Light)}
}

// Burst spawns a ring of particles from the center of r.
func (fx *Effects) Burst(r core.Rect) {
	cx, cy := r.Center()
	for i := 0; i < burstParticles; i++ {
		angle := fx.rng.Float64() * 2 * math.Pi
		speed := particleMinSpeed + fx.rng.Float64()*(particleMaxSpeed-particleMinSpeed)
		life := particleMinLife + fx.rng.Float64()*(particleMaxLife-particleMinLife)
		fx.particles = append(fx.particles, Particle{
			X:      cx,
			Y:      cy,
			VX:     math.Cos(angle) * speed,
			VY:     math.Sin(angle) * speed,
			Life:   life,
			MaxAge: life,
			Color:  core.Palette[fx.rng.Intn(len(core.Palette))],
		})
	}
}

// SyncTrees gives every tree in the scene its lights and forgets trees
// that no longer exist.
func (fx *Effects) SyncTrees(sprites []giftrun.Sprite) {
	seen := make(map[int]bool)
	for _, s := range sprites {
		if s.Kind != giftrun.KindTree {
			continue
		}
		seen[s.ID] = true
		if _, ok := fx.lights[s.ID]; ok {
			continue
		}
		n := lightsPerTreeMin + fx.rng.Intn(lightsPerTreeMax-lightsPerTreeMin+1)
		lights := make([]Light, n)
		for i := range lights {
			lights[i] = Light{
				X:     s.Rect.X + s.Rect.W*(0.2+0.6*fx.rng.Float64()),
				Y:     s.Rect.Y + s.Rect.H*(0.25+0.6*fx.rng.Float64()),
				Phase: fx.rng.Float64() * 2 * math.Pi,
				Speed: 2 + fx.rng.Float64()*4,
				Color: core.Palette[fx.rng.Intn(len(core.Palette))],
			}
		}
		fx.lights[s.ID] = lights
	}
	for id := range fx.lights {
		if !seen[id] {
			delete(fx.lights, id)
		}
	}
}

// Update ages particles and advances the light animation.
func (fx *Effects) Update(dt float64) {
	fx.t += dt
	alive := fx.particles[:0]
	for _, p := range fx.particles {
		p.Life -= dt
		if p.Life <= 0 {
			continue
		}
		p.VY -= particleGravity * dt
		p.X += p.VX * dt
		p.Y += p.VY * dt
		alive = append(alive, p)
	}
	fx.particles = alive
}

// Clear drops every effect.
func (fx *Effects) Clear() {
	fx.particles = nil
	fx.lights = make(map[int][]Light)
}

// Particles returns the live particles.
func (fx *Effects) Particles() []Particle {
	return fx.particles
}

// Lights returns the lights attached to a tree.
func (fx *Effects) Lights(treeID int) []Light {
	return fx.lights[treeID]
}

// Draw renders lights and particles through the viewport.
func (fx *Effects) Draw(s *core.Screen, vp *core.Viewport) {
	for _, lights := range fx.lights {
		for _, l := range lights {
			if !l.On(fx.t) {
				continue
			}
			x, y := vp.ProjectPoint(l.X, l.Y)
			s.SetColored(x, y, '•', l.Color)
		}
	}
	for _, p := range fx.particles {
		x, y := vp.ProjectPoint(p.X, p.Y)
		f := p.Fraction()
		switch {
		case f > 0.66:
			s.SetColored(x, y, '*', p.Color)
		case f > 0.33:
			s.SetColored(x, y, '+', p.Color)
		default:
			s.SetColored(x, y, '.', core.ColorGray)
		}
	}
}
