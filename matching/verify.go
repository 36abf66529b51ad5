package matching

import (
	"fmt"

	"github.com/katalvlaran/patchwall/bigraph"
)

// Verify checks that m is a valid matching of g: every matched pair is an
// edge of g and no left vertex is matched twice.
// Returns ErrGraphNil or an error wrapping ErrInvalidMatching.
// Complexity: O(V).
func Verify(g *bigraph.Graph, m *Matching) error {
	if g == nil {
		return ErrGraphNil
	}
	if m == nil || len(m.MatchRight) != g.RightSize {
		return fmt.Errorf("%w: size does not match graph", ErrInvalidMatching)
	}

	owner := make([]int, g.LeftSize)
	for u := range owner {
		owner[u] = Unmatched
	}
	for v, u := range m.MatchRight {
		if u == Unmatched {
			continue
		}
		if !g.HasEdge(u, v) {
			return fmt.Errorf("%w: pair L%d-R%d is not an edge", ErrInvalidMatching, u, v)
		}
		if owner[u] != Unmatched {
			return fmt.Errorf("%w: L%d matched to R%d and R%d", ErrInvalidMatching, u, owner[u], v)
		}
		owner[u] = v
	}

	return nil
}
