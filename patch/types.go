package patch

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Sentinel errors for patch planning.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("patch: grid is nil")

	// ErrNegativePrice is returned when a patch price is negative.
	ErrNegativePrice = errors.New("patch: prices must be non-negative")

	// ErrUnknownStrategy is returned for an unrecognized matching strategy.
	ErrUnknownStrategy = errors.New("patch: unknown matching strategy")

	// ErrEngineMismatch is returned when verification finds the two
	// matching engines disagreeing on the maximum size.
	ErrEngineMismatch = errors.New("patch: matching engines disagree")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("patch: invalid option supplied")
)

// Prices holds the cost of one double and one simple patch.
type Prices struct {
	Double int64 `yaml:"double"`
	Simple int64 `yaml:"simple"`
}

// Validate returns ErrNegativePrice if either price is negative.
func (p Prices) Validate() error {
	if p.Double < 0 || p.Simple < 0 {
		return fmt.Errorf("%w: double=%d simple=%d", ErrNegativePrice, p.Double, p.Simple)
	}
	return nil
}

// SimpleOnly reports whether two simple patches cost no more than one
// double patch, in which case double patches are never used.
// Both prices must be non-negative; the comparison does not overflow.
func (p Prices) SimpleOnly() bool {
	return p.Simple <= p.Double-p.Simple
}

// Strategy names a maximum-matching engine.
type Strategy string

const (
	// StrategyKuhn selects greedy seeding + Kuhn augmenting paths.
	StrategyKuhn Strategy = "kuhn"
	// StrategyHopcroftKarp selects the layered Hopcroft–Karp engine.
	StrategyHopcroftKarp Strategy = "hopcroft-karp"
)

// ParseStrategy converts a name to a Strategy, case-insensitively.
// An empty name selects StrategyKuhn.
func ParseStrategy(name string) (Strategy, error) {
	switch s := Strategy(strings.ToLower(strings.TrimSpace(name))); s {
	case "":
		return StrategyKuhn, nil
	case StrategyKuhn, StrategyHopcroftKarp:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Option configures Solve via functional arguments.
type Option func(*Options)

// Options holds the parameters of one Solve call.
type Options struct {
	// Ctx is forwarded to the matching engine.
	Ctx context.Context
	// Strategy selects the matching engine.
	Strategy Strategy
	// Plan requests the patch layout in Result.Plan.
	Plan bool
	// Verify validates the matching and cross-checks its size with the
	// other engine.
	Verify bool
	// Logger receives debug records of each pipeline stage.
	Logger *zap.Logger

	err error
}

// DefaultOptions returns Options with context.Background(), StrategyKuhn,
// no plan, no verification and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Strategy: StrategyKuhn,
		Logger:   zap.NewNop(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithStrategy selects the matching engine.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		parsed, err := ParseStrategy(string(s))
		if err != nil {
			o.err = err
			return
		}
		o.Strategy = parsed
	}
}

// WithPlan requests the patch layout.
func WithPlan() Option {
	return func(o *Options) {
		o.Plan = true
	}
}

// WithVerify enables matching verification and engine cross-checking.
func WithVerify() Option {
	return func(o *Options) {
		o.Verify = true
	}
}

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result is the outcome of one Solve call.
//
//   - Price: minimum total repair price.
//   - TotalFree: number of repair cells.
//   - Doubles, Simples: patch counts; Doubles is the maximum matching size.
//   - SimpleOnly: the price short-circuit was taken and no matching ran.
//   - Edges: edges of the repair graph (0 under SimpleOnly).
//   - Regions: 4-connected damaged regions of the wall.
//   - Plan: patch layout, only when requested via WithPlan.
type Result struct {
	RunID      string   `yaml:"run_id"`
	Price      int64    `yaml:"price"`
	Prices     Prices   `yaml:"prices"`
	TotalFree  int      `yaml:"total_free"`
	Doubles    int      `yaml:"doubles"`
	Simples    int      `yaml:"simples"`
	SimpleOnly bool     `yaml:"simple_only"`
	Strategy   Strategy `yaml:"strategy,omitempty"`
	Edges      int      `yaml:"edges"`
	Regions    int      `yaml:"regions"`
	Plan       *Plan    `yaml:"plan,omitempty"`
}
