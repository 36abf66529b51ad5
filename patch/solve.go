package patch

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/patchwall/bigraph"
	"github.com/katalvlaran/patchwall/gridgraph"
	"github.com/katalvlaran/patchwall/matching"
)

// Solve computes the minimum price to repair grid with the given prices.
//
// Steps:
//  1. Validate grid, prices and options.
//  2. If prices.SimpleOnly(), answer Simple·TotalFree without building the
//     repair graph or running any matching.
//  3. Otherwise build the bipartite repair graph, compute a maximum
//     matching with the selected engine, and price m double patches plus
//     TotalFree−2m simple patches.
//  4. Optionally verify the matching (and cross-check the size with the
//     other engine) and lay out the plan.
//
// Returns ErrGridNil, ErrNegativePrice, ErrOptionViolation,
// ErrUnknownStrategy, ErrEngineMismatch, or a wrapped matching error.
// Complexity: O(W×H) under SimpleOnly, else that of the engine, O(V·E) for
// Kuhn and O(E·√V) for Hopcroft–Karp.
func Solve(grid *gridgraph.Grid, prices Prices, opts ...Option) (*Result, error) {
	// 1) Validate inputs
	if grid == nil {
		return nil, ErrGridNil
	}
	if err := prices.Validate(); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	res := &Result{
		RunID:     uuid.NewString(),
		Prices:    prices,
		TotalFree: grid.TotalFree(),
		Regions:   len(grid.Regions()),
	}
	o.Logger = o.Logger.With(zap.String("run_id", res.RunID))
	log := o.Logger
	log.Debug("grid decoded",
		zap.Int("height", grid.Height),
		zap.Int("width", grid.Width),
		zap.Int("color0", grid.CountColor0),
		zap.Int("color1", grid.CountColor1),
		zap.Int("regions", res.Regions))

	// 2) Double patches never pay off: no graph, no matching
	if prices.SimpleOnly() {
		res.SimpleOnly = true
		res.Simples = res.TotalFree
		res.Price = prices.Simple * int64(res.TotalFree)
		if o.Plan {
			res.Plan = simplePlan(grid)
		}
		log.Debug("simple patches only",
			zap.Int64("double", prices.Double),
			zap.Int64("simple", prices.Simple),
			zap.Int64("price", res.Price))
		return res, nil
	}

	// 3) Maximum matching on the repair graph
	g := bigraph.Build(grid)
	res.Edges = g.EdgeCount()
	res.Strategy = o.Strategy
	log.Debug("repair graph built",
		zap.Int("left", g.LeftSize),
		zap.Int("right", g.RightSize),
		zap.Int("edges", res.Edges))

	m, err := match(g, o.Strategy, o)
	if err != nil {
		return nil, fmt.Errorf("patch: %s matching: %w", o.Strategy, err)
	}
	size := m.Size()
	log.Debug("matching done",
		zap.String("strategy", string(o.Strategy)),
		zap.Int("seeded", m.SeedSize),
		zap.Int("size", size))

	// 4) Optional verification and layout
	if o.Verify {
		if err = verify(g, m, o); err != nil {
			return nil, err
		}
	}

	res.Doubles = size
	res.Simples = res.TotalFree - 2*size
	res.Price = Cost(res.TotalFree, size, prices)
	if o.Plan {
		res.Plan = matchedPlan(grid, g, m)
		if o.Verify {
			if err = res.Plan.Check(grid); err != nil {
				return nil, err
			}
		}
	}
	log.Debug("price computed", zap.Int64("price", res.Price),
		zap.Int("doubles", res.Doubles), zap.Int("simples", res.Simples))

	return res, nil
}

// match runs the engine named by s.
func match(g *bigraph.Graph, s Strategy, o Options) (*matching.Matching, error) {
	switch s {
	case StrategyHopcroftKarp:
		return matching.HopcroftKarp(g, matching.WithContext(o.Ctx))
	default:
		return matching.Kuhn(g, matching.WithContext(o.Ctx))
	}
}

// verify validates m and compares its size with the other engine.
func verify(g *bigraph.Graph, m *matching.Matching, o Options) error {
	if err := matching.Verify(g, m); err != nil {
		return err
	}
	other := StrategyHopcroftKarp
	if o.Strategy == StrategyHopcroftKarp {
		other = StrategyKuhn
	}
	alt, err := match(g, other, o)
	if err != nil {
		return fmt.Errorf("patch: %s matching: %w", other, err)
	}
	if alt.Size() != m.Size() {
		return fmt.Errorf("%w: %s=%d %s=%d", ErrEngineMismatch, o.Strategy, m.Size(), other, alt.Size())
	}
	o.Logger.Debug("matching verified", zap.String("against", string(other)))
	return nil
}
