package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/cobb-douglas/internal/production"
	"github.com/GoSim-25-26J-441/cobb-douglas/pkg/logger"
)

func newEvalCmd(root *rootOptions) *cobra.Command {
	var params paramFlags

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Print current and baseline output at one level of capital",
		Example: `  cobbviz eval --alpha 0.5 --k 16
  cobbviz eval --a 4 --n 10 --alpha 0.5 --k 16`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			setupStderrLogger(cmd, cfg)

			p := params.resolve(cmd, cfg)
			cmp, err := production.Compare(p)
			if err != nil {
				return err
			}
			logger.Debug("evaluated", "a", p.A, "n", p.N, "alpha", p.Alpha, "k", p.K)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Current:  Y = %.2f  (A=%.2f, K=%.2f, N=%.2f, α=%.2f)\n",
				cmp.CurrentOutput, p.A, p.K, p.N, p.Alpha)
			fmt.Fprintf(out, "Baseline: Y = %.2f  (A=%g, K=%.2f, N=%g, α=%g)\n",
				cmp.BaselineOutput, production.BaselineA, p.K, production.BaselineN, production.BaselineAlpha)
			fmt.Fprintf(out, "Difference: %+.2f\n", cmp.Difference())
			return nil
		},
	}
	params.register(cmd)
	return cmd
}
