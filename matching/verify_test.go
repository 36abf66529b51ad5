package matching_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/patchwall/bigraph"
	"github.com/katalvlaran/patchwall/matching"
)

// TestVerify_Rejects covers every way a matching can be invalid.
func TestVerify_Rejects(t *testing.T) {
	g := &bigraph.Graph{LeftSize: 2, RightSize: 2, Adj: [][]int{{0, 1}, {0}}}

	cases := []struct {
		name string
		m    *matching.Matching
	}{
		{"Nil", nil},
		{"WrongSize", &matching.Matching{MatchRight: []int{0}}},
		{"NotAnEdge", &matching.Matching{MatchRight: []int{matching.Unmatched, 1}}},
		{"LeftTwice", &matching.Matching{MatchRight: []int{0, 0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := matching.Verify(g, tc.m); !errors.Is(err, matching.ErrInvalidMatching) {
				t.Errorf("Verify = %v; want ErrInvalidMatching", err)
			}
		})
	}

	if err := matching.Verify(nil, &matching.Matching{}); !errors.Is(err, matching.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	ok := &matching.Matching{MatchRight: []int{1, 0}}
	if err := matching.Verify(g, ok); err != nil {
		t.Errorf("valid matching rejected: %v", err)
	}
}
