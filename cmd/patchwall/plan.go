package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/patchwall/patch"
	"github.com/katalvlaran/patchwall/wallio"
)

func newPlanCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan [file]",
		Short: "Print the patch layout and a summary",
		Long: `plan solves one problem and prints where every patch goes:
'<' '>' for a horizontal double patch, '^' 'v' for a vertical one and '#'
for a simple patch, followed by a summary. --format yaml prints the full
result instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.runPlan(cmd, args); err != nil {
				a.log.Error("plan failed", zap.Error(err))
				return a.fail(cmd, err)
			}
			return nil
		},
	}
	cmd.Flags().String("format", "", "report format: text or yaml")
	return cmd
}

func (a *app) runPlan(cmd *cobra.Command, args []string) error {
	format, err := wallio.ParseFormat(a.cfg.Format)
	if err != nil {
		return err
	}

	var res *patch.Result
	if len(args) == 0 {
		res, err = a.solveReader(cmd.Context(), cmd.InOrStdin(), true)
	} else {
		res, err = a.solveFile(cmd.Context(), args[0], true)
	}
	if err != nil {
		return err
	}
	return wallio.WriteReport(cmd.OutOrStdout(), res, format)
}
