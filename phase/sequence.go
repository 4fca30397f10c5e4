package phase

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

var ErrEmptyGroup = errors.New("phase: empty phase group")

// Interleave flattens phase groups into one presentation order, round-robin.
// Round i appends every group's phases[i % len] in group-declaration order,
// for i up to the longest group's length, so shorter groups wrap instead of
// running out and every group stays represented in every round.
func Interleave(groups []Group) ([]*Phase, error) {
	for _, g := range groups {
		if len(g.Phases) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrEmptyGroup, g.Name)
		}
	}

	lengths := lo.Map(groups, func(g Group, _ int) int { return len(g.Phases) })
	longest := lo.Max(lengths)

	ordered := make([]*Phase, 0, longest*len(groups))
	for i := 0; i < longest; i++ {
		for _, g := range groups {
			ordered = append(ordered, g.Phases[i%len(g.Phases)])
		}
	}

	return ordered, nil
}
