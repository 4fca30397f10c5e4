package phase

import (
	"errors"
	"fmt"
	"testing"
)

func namedGroup(name string, n int) Group {
	g := Group{Name: name}
	for i := 0; i < n; i++ {
		g.Phases = append(g.Phases, &Phase{Name: fmt.Sprintf("%s[%d]", name, i)})
	}
	return g
}

func TestInterleave(t *testing.T) {
	cases := []struct {
		name    string
		lengths []int
		want    []string
	}{
		{
			name:    "single_group",
			lengths: []int{3},
			want:    []string{"g0[0]", "g0[1]", "g0[2]"},
		},
		{
			name:    "equal_groups",
			lengths: []int{2, 2},
			want:    []string{"g0[0]", "g1[0]", "g0[1]", "g1[1]"},
		},
		{
			// The shorter group wraps so every round holds one pick per
			// group in declaration order.
			name:    "short_group_wraps",
			lengths: []int{2, 3},
			want:    []string{"g0[0]", "g1[0]", "g0[1]", "g1[1]", "g0[0]", "g1[2]"},
		},
		{
			name:    "three_uneven_groups",
			lengths: []int{1, 2, 3},
			want: []string{
				"g0[0]", "g1[0]", "g2[0]",
				"g0[0]", "g1[1]", "g2[1]",
				"g0[0]", "g1[0]", "g2[2]",
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			groups := make([]Group, 0, len(c.lengths))
			for i, n := range c.lengths {
				groups = append(groups, namedGroup(fmt.Sprintf("g%d", i), n))
			}

			ordered, err := Interleave(groups)
			if err != nil {
				t.Fatalf("Interleave: %v", err)
			}
			if len(ordered) != len(c.want) {
				t.Fatalf("expected %d phases, got %d", len(c.want), len(ordered))
			}
			for i, p := range ordered {
				if p.Name != c.want[i] {
					t.Fatalf("position %d: expected %s, got %s", i, c.want[i], p.Name)
				}
			}
		})
	}
}

func TestInterleaveEveryGroupInEveryRound(t *testing.T) {
	groups := []Group{
		namedGroup("a", 2),
		namedGroup("b", 5),
		namedGroup("c", 3),
	}
	ordered, err := Interleave(groups)
	if err != nil {
		t.Fatalf("Interleave: %v", err)
	}

	if len(ordered) != 5*len(groups) {
		t.Fatalf("expected %d phases, got %d", 5*len(groups), len(ordered))
	}
	for round := 0; round < 5; round++ {
		for gi, g := range groups {
			got := ordered[round*len(groups)+gi]
			want := g.Phases[round%len(g.Phases)]
			if got != want {
				t.Fatalf("round %d group %d: expected %s, got %s", round, gi, want.Name, got.Name)
			}
		}
	}
}

func TestInterleaveEmptyGroup(t *testing.T) {
	groups := []Group{
		namedGroup("ok", 2),
		{Name: "empty"},
	}
	if _, err := Interleave(groups); !errors.Is(err, ErrEmptyGroup) {
		t.Fatalf("expected ErrEmptyGroup, got %v", err)
	}
}
