package game

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Spring smooths a target value with a damped harmonic oscillator. It is
// parameterized physically (mass, damping, stiffness) and advanced one fixed
// step at a time.
type Spring struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
}

func NewSpring(fps int, mass, damping, stiffness float64) *Spring {
	omega := math.Sqrt(stiffness / mass)
	zeta := damping / (2 * math.Sqrt(stiffness*mass))
	return &Spring{spring: harmonica.NewSpring(harmonica.FPS(fps), omega, zeta)}
}

// SetTarget moves the equilibrium instantly; the value follows over the next
// steps.
func (s *Spring) SetTarget(v float64) { s.target = v }

func (s *Spring) Target() float64 { return s.target }

// Advance runs one simulation step and returns the new value.
func (s *Spring) Advance() float64 {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	return s.pos
}

func (s *Spring) Value() float64 { return s.pos }

func (s *Spring) Velocity() float64 { return s.vel }
