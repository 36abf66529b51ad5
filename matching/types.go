package matching

import (
	"context"
	"errors"
	"fmt"
)

// Unmatched marks a right vertex that is not paired with any left vertex.
const Unmatched = -1

// Sentinel errors for matching execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("matching: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("matching: invalid option supplied")

	// ErrInvalidMatching is returned by Verify for a matching that is not
	// a set of vertex-disjoint graph edges.
	ErrInvalidMatching = errors.New("matching: invalid matching")
)

// Option configures matching behavior via functional arguments.
// If an Option is invalid, it is recorded internally and surfaced as
// ErrOptionViolation when the engine is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a matching run.
type Options struct {
	// Ctx allows cancellation; it is checked once per augmenting attempt.
	Ctx context.Context

	// Seed enables the greedy seeding phase of Kuhn.
	Seed bool

	// OnAugment is called each time an augmenting path starting at the
	// given left vertex grows the matching by one.
	OnAugment func(left int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - greedy seeding enabled
//   - no-op OnAugment hook
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Seed:      true,
		OnAugment: func(int) {},
	}
}

// WithContext sets a custom context for cancellation.
// A nil context is an option violation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithoutSeed disables the greedy seeding phase: every left vertex then
// gets its own augmenting attempt. The result is still maximum.
func WithoutSeed() Option {
	return func(o *Options) {
		o.Seed = false
	}
}

// WithOnAugment registers a callback to run after each successful augmentation.
func WithOnAugment(fn func(left int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAugment = fn
		}
	}
}

// buildOptions applies opts over DefaultOptions.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// Matching is a partial function from right vertices to left vertices.
//
//   - MatchRight[v]: left vertex paired with right vertex v, or Unmatched.
//   - Seeded[u]: left vertex u was paired by the greedy seeding phase.
//   - SeedSize: matching size right after seeding.
type Matching struct {
	MatchRight []int
	Seeded     []bool
	SeedSize   int
}

// newMatching allocates an empty matching for the given side sizes.
func newMatching(leftSize, rightSize int) *Matching {
	m := &Matching{
		MatchRight: make([]int, rightSize),
		Seeded:     make([]bool, leftSize),
	}
	for v := range m.MatchRight {
		m.MatchRight[v] = Unmatched
	}
	return m
}

// Size returns the number of matched right vertices.
// Complexity: O(RightSize).
func (m *Matching) Size() int {
	n := 0
	for _, u := range m.MatchRight {
		if u != Unmatched {
			n++
		}
	}
	return n
}

// LeftOf returns the left vertex matched to right vertex v, or Unmatched.
func (m *Matching) LeftOf(v int) int {
	if v < 0 || v >= len(m.MatchRight) {
		return Unmatched
	}
	return m.MatchRight[v]
}

// Pairs returns the matched (left, right) pairs ordered by right vertex.
func (m *Matching) Pairs() [][2]int {
	pairs := make([][2]int, 0, len(m.MatchRight))
	for v, u := range m.MatchRight {
		if u != Unmatched {
			pairs = append(pairs, [2]int{u, v})
		}
	}
	return pairs
}
