package phase

import "errors"

var ErrEmptySequence = errors.New("phase: empty sequence")

// Ring is the cyclic traversal order over the built sequence. It is backed
// by the ordered slice itself; positions are indices and next/prev wrap
// modulo the length, so there are no ends to fall off.
type Ring struct {
	phases []*Phase
}

func NewRing(ordered []*Phase) (*Ring, error) {
	if len(ordered) == 0 {
		return nil, ErrEmptySequence
	}
	return &Ring{phases: ordered}, nil
}

func (r *Ring) Len() int {
	return len(r.phases)
}

func (r *Ring) At(i int) *Phase {
	return r.phases[i]
}

func (r *Ring) Next(i int) int {
	return (i + 1) % len(r.phases)
}

func (r *Ring) Prev(i int) int {
	return (i - 1 + len(r.phases)) % len(r.phases)
}
