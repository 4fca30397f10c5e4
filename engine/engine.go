// Package engine drives the crossfade between the current and pending
// phase. It is a two-state machine: steady display, or one fade in flight.
// Visual alpha and audio volume are the same number, derived from a tick
// counter, so a fade always completes in a fixed number of ticks.
package engine

import (
	"log"
	"time"

	"github.com/milk9111/phusic/phase"
)

const (
	DefaultFadeDuration = 5 * time.Second
	DefaultTPS          = 60
)

// Target is a navigation destination: a ring position, or an off-ring
// phase such as an ending. The zero value is "no target" and resolves to
// the ring head when moved to.
type Target struct {
	ring  int // index into the ring; -1 when off-ring
	phase *phase.Phase
}

// OffRing wraps a phase that is not part of the cyclic order.
func OffRing(p *phase.Phase) Target {
	return Target{ring: -1, phase: p}
}

type Direction int

const (
	Forward Direction = iota
	Backward
)

type Config struct {
	FadeDuration time.Duration
	TPS          int
}

type Engine struct {
	ring      *phase.Ring
	fadeTotal int

	current Target
	pending *Target // nil while steady
	elapsed int
}

func New(ring *phase.Ring, cfg Config) *Engine {
	if cfg.FadeDuration <= 0 {
		cfg.FadeDuration = DefaultFadeDuration
	}
	if cfg.TPS <= 0 {
		cfg.TPS = DefaultTPS
	}
	total := int(cfg.FadeDuration.Seconds() * float64(cfg.TPS))
	if total < 1 {
		total = 1
	}
	return &Engine{
		ring:      ring,
		fadeTotal: total,
		current:   Target{ring: -1},
	}
}

// Start puts the ring head on screen at full volume. Call once, before the
// first tick.
func (e *Engine) Start() {
	e.current = e.head()
	s := e.current.phase.Sound
	s.SetVolume(1)
	s.Play()
}

func (e *Engine) Current() *phase.Phase {
	return e.current.phase
}

// Pending returns the phase being faded to, or nil while steady.
func (e *Engine) Pending() *phase.Phase {
	if e.pending == nil {
		return nil
	}
	return e.pending.phase
}

func (e *Engine) Fading() bool {
	return e.pending != nil
}

// Progress is the normalized fade position in [0, 1]. The incoming phase's
// alpha and volume equal Progress; the outgoing volume is 1 - Progress.
func (e *Engine) Progress() float64 {
	if e.pending == nil {
		return 0
	}
	return float64(e.elapsed) / float64(e.fadeTotal)
}

// FadeTicks is the fixed tick count every fade takes to complete.
func (e *Engine) FadeTicks() int {
	return e.fadeTotal
}

// Advance soft-moves to the current position's ring neighbor.
func (e *Engine) Advance(dir Direction) {
	e.SoftMove(e.neighbor(dir))
}

// Jump hard-jumps to the current position's ring neighbor.
func (e *Engine) Jump(dir Direction) {
	e.HardJump(e.neighbor(dir))
}

// SoftMove starts a crossfade to the target. A second request while a fade
// is in flight is dropped; a target with no phase falls back to the ring
// head. The target's audio starts looping at volume zero and is brought up
// tick by tick.
func (e *Engine) SoftMove(t Target) {
	if e.pending != nil {
		return
	}

	t = e.resolve(t)
	s := t.phase.Sound
	s.SetVolume(0)
	_ = s.Rewind()
	s.Play()

	e.elapsed = 0
	e.pending = &t
}

// HardJump switches instantly, cancelling any fade in flight. Both the
// current and pending audio stop and the target plays at full volume. This
// is always accepted, even mid-fade.
func (e *Engine) HardJump(t Target) {
	t = e.resolve(t)

	if e.pending != nil {
		stop(e.pending.phase.Sound)
		e.pending = nil
	}
	if e.current.phase != nil {
		stop(e.current.phase.Sound)
	}
	e.elapsed = 0

	s := t.phase.Sound
	_ = s.Rewind()
	s.SetVolume(1)
	s.Play()
	e.current = t
}

// Tick advances an in-flight fade by one step and is a no-op while steady.
// When the counter reaches the fade total the pending phase becomes
// current and the outgoing audio stops.
func (e *Engine) Tick() {
	if e.pending == nil {
		return
	}

	e.elapsed++
	if e.elapsed >= e.fadeTotal {
		stop(e.current.phase.Sound)
		e.pending.phase.Sound.SetVolume(1)
		e.current = *e.pending
		e.pending = nil
		e.elapsed = 0
		return
	}

	p := e.Progress()
	e.pending.phase.Sound.SetVolume(p)
	e.current.phase.Sound.SetVolume(1 - p)
}

func (e *Engine) neighbor(dir Direction) Target {
	if e.current.ring < 0 {
		// Off-ring positions (endings) have no neighbors; resolve sends
		// this back to the ring head.
		return Target{ring: -1}
	}
	i := e.ring.Next(e.current.ring)
	if dir == Backward {
		i = e.ring.Prev(e.current.ring)
	}
	return Target{ring: i, phase: e.ring.At(i)}
}

func (e *Engine) resolve(t Target) Target {
	if t.phase != nil {
		return t
	}
	log.Printf("engine: no target phase, reverting back to start")
	return e.head()
}

func (e *Engine) head() Target {
	return Target{ring: 0, phase: e.ring.At(0)}
}

func stop(s phase.Sound) {
	s.Pause()
	_ = s.Rewind()
}
