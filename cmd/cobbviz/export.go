package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/cobb-douglas/internal/export"
	"github.com/GoSim-25-26J-441/cobb-douglas/internal/production"
	"github.com/GoSim-25-26J-441/cobb-douglas/pkg/config"
	"github.com/GoSim-25-26J-441/cobb-douglas/pkg/logger"
)

// paramFlags are the per-command parameter overrides. Unset flags keep the
// config defaults.
type paramFlags struct {
	a, n, alpha, k float64
}

func (pf *paramFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.Float64Var(&pf.a, "a", 0, "total factor productivity A")
	flags.Float64Var(&pf.n, "n", 0, "labor N")
	flags.Float64Var(&pf.alpha, "alpha", 0, "output elasticity of capital α")
	flags.Float64Var(&pf.k, "k", 0, "level of capital K")
}

// resolve applies the flags the user actually set on top of cfg's defaults.
func (pf *paramFlags) resolve(cmd *cobra.Command, cfg *config.Config) production.Params {
	p := paramsFromConfig(cfg)
	flags := cmd.Flags()
	if flags.Changed("a") {
		p.A = pf.a
	}
	if flags.Changed("n") {
		p.N = pf.n
	}
	if flags.Changed("alpha") {
		p.Alpha = pf.alpha
	}
	if flags.Changed("k") {
		p.K = pf.k
	}
	return p
}

func newExportCmd(root *rootOptions) *cobra.Command {
	var (
		format string
		output string
		params paramFlags
	)

	names := make([]string, 0, len(export.Formats()))
	for _, f := range export.Formats() {
		names = append(names, string(f))
	}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the curves and output comparison for one parameter set",
		Example: `  cobbviz export --format csv --alpha 0.5 > curve.csv
  cobbviz export --format json --a 12 --k 15 --output snapshot.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			setupStderrLogger(cmd, cfg)

			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			snap, err := production.Recompute(params.resolve(cmd, cfg), domainFromConfig(cfg))
			if err != nil {
				return err
			}
			return runExport(cmd.OutOrStdout(), output, snap, f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(export.FormatJSON),
		"output format ("+strings.Join(names, ", ")+")")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	params.register(cmd)
	return cmd
}

func runExport(stdout io.Writer, path string, snap production.Snapshot, f export.Format) error {
	if path == "" {
		return export.Write(stdout, snap, f)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := export.Write(file, snap, f); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	logger.Info("snapshot exported",
		"path", path,
		"format", f,
		"points", snap.Current.Len(),
		"current_output", snap.Comparison.CurrentOutput,
	)
	return nil
}
