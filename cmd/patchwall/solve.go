package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/patchwall/patch"
	"github.com/katalvlaran/patchwall/wallio"
)

func newSolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "solve [file ...]",
		Short: "Print the minimum repair price of each input",
		Long: `solve prints one line per input holding the minimum repair price, in
argument order. With no file it reads a single problem from stdin. Files
are solved concurrently, at most --workers at a time.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.runSolve(cmd, args); err != nil {
				a.log.Error("solve failed", zap.Error(err))
				return a.fail(cmd, err)
			}
			return nil
		},
	}
}

func (a *app) runSolve(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		res, err := a.solveReader(ctx, cmd.InOrStdin(), false)
		if err != nil {
			return err
		}
		return wallio.WritePrice(out, res.Price)
	}

	results := make([]*patch.Result, len(args))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(a.cfg.Workers)
	for i, path := range args {
		i, path := i, path // per-iteration copies (pre-Go 1.22 loop semantics)
		eg.Go(func() error {
			res, err := a.solveFile(egCtx, path, false)
			if err != nil {
				return err
			}
			results[i] = res
			a.log.Info("solved", zap.String("file", path), zap.String("run_id", res.RunID),
				zap.Int64("price", res.Price))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	for _, res := range results {
		if err := wallio.WritePrice(out, res.Price); err != nil {
			return err
		}
	}
	return nil
}
