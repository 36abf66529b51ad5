package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/patchwall/config"
	"github.com/katalvlaran/patchwall/logger"
	"github.com/katalvlaran/patchwall/patch"
	"github.com/katalvlaran/patchwall/wallio"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	configPath string
	cfg        config.Config
	log        *zap.Logger
}

// newRootCmd builds the command tree. A fresh tree per invocation keeps
// flag state out of package globals.
func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "patchwall",
		Short: "Find the cheapest set of patches to repair a wall",
		Long: `patchwall reads a wall of cells, some marked '*' as needing repair, and
prices its repair with double patches (two adjacent cells) and simple
patches (one cell), using a maximum bipartite matching.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.log.Sync() },
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default ./patchwall.yaml when present)")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("strategy", "", "matching engine: kuhn or hopcroft-karp")
	pf.Bool("verify", false, "cross-check every matching with the other engine")
	pf.Int("workers", 0, "number of input files solved at once")
	pf.String("marker", "", "rune marking a cell that needs repair")

	root.AddCommand(newSolveCmd(a), newPlanCmd(a))
	return root
}

// setup loads the configuration, applies flags on top and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return a.fail(cmd, err)
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("strategy") {
		cfg.Strategy, _ = flags.GetString("strategy")
	}
	if flags.Changed("verify") {
		cfg.Verify, _ = flags.GetBool("verify")
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("marker") {
		cfg.RepairMarker, _ = flags.GetString("marker")
	}
	if flags.Lookup("format") != nil && flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}
	if err = cfg.Validate(); err != nil {
		return a.fail(cmd, err)
	}

	if a.log, err = logger.New(cfg.LogLevel); err != nil {
		return a.fail(cmd, err)
	}
	a.cfg = cfg
	a.log.Debug("configuration loaded",
		zap.String("strategy", cfg.Strategy),
		zap.Bool("verify", cfg.Verify),
		zap.Int("workers", cfg.Workers))
	return nil
}

// fail reports err on the command's error stream and returns it.
func (a *app) fail(cmd *cobra.Command, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	return err
}

// solveOptions converts the configuration into patch.Solve options.
func (a *app) solveOptions(ctx context.Context, plan bool) []patch.Option {
	opts := []patch.Option{
		patch.WithContext(ctx),
		patch.WithStrategy(patch.Strategy(a.cfg.Strategy)),
		patch.WithLogger(a.log),
	}
	if a.cfg.Verify {
		opts = append(opts, patch.WithVerify())
	}
	if plan {
		opts = append(opts, patch.WithPlan())
	}
	return opts
}

// solveReader reads one problem from r and solves it.
func (a *app) solveReader(ctx context.Context, r io.Reader, plan bool) (*patch.Result, error) {
	p, err := wallio.ReadProblem(r)
	if err != nil {
		return nil, err
	}
	grid, err := p.Grid(a.cfg.GridOptions())
	if err != nil {
		return nil, err
	}
	return patch.Solve(grid, p.Prices(), a.solveOptions(ctx, plan)...)
}

// solveFile opens path and solves the problem it holds.
func (a *app) solveFile(ctx context.Context, path string, plan bool) (*patch.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	res, err := a.solveReader(ctx, f, plan)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}
