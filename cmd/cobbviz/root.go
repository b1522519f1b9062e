package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/cobb-douglas/internal/production"
	"github.com/GoSim-25-26J-441/cobb-douglas/internal/store"
	"github.com/GoSim-25-26J-441/cobb-douglas/internal/tui"
	"github.com/GoSim-25-26J-441/cobb-douglas/pkg/config"
	"github.com/GoSim-25-26J-441/cobb-douglas/pkg/logger"
)

// rootOptions are the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "cobbviz",
		Short: "Explore the Cobb-Douglas production function in the terminal",
		Long: `Interactive visualization of Y = A × K^α × N^(1-α).

Move the sliders for total factor productivity (A), labor (N), the output
elasticity of capital (α) and the level of capital (K) and watch the output
curve, the fixed baseline (A=10, N=10, α=0.25) and the output comparison
update immediately.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error); overrides config")
	flags.StringVar(&opts.logFormat, "log-format", "", "log format (json, text); overrides config")

	cmd.AddCommand(newExportCmd(opts))
	cmd.AddCommand(newEvalCmd(opts))
	return cmd
}

// load reads the config file (if any) and applies flag overrides.
func (o *rootOptions) load() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.logFormat != "" {
		cfg.LogFormat = o.logFormat
	}
	return cfg, nil
}

func runInteractive(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := opts.load()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file or nowhere.
	out, closeLog, err := openLogFile(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	if out == nil {
		logger.SetDefault(logger.Discard())
	} else {
		logger.SetDefault(logger.NewFormat(cfg.LogFormat, cfg.LogLevel, out))
	}

	s, err := store.New(paramsFromConfig(cfg), domainFromConfig(cfg))
	if err != nil {
		return fmt.Errorf("failed to initialise parameters: %w", err)
	}
	unsubscribe := s.Subscribe(func(snap production.Snapshot) {
		logger.Debug("recomputed",
			"a", snap.Params.A, "n", snap.Params.N, "alpha", snap.Params.Alpha, "k", snap.Params.K,
			"current_output", snap.Comparison.CurrentOutput,
			"baseline_output", snap.Comparison.BaselineOutput,
		)
	})
	defer unsubscribe()

	logger.Info("starting visualizer", "config", opts.configPath, "theme", cfg.Theme)
	program := tea.NewProgram(
		tui.New(s, tui.NewStyles(tui.ThemeByName(cfg.Theme))),
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
	)
	if _, err := program.Run(); err != nil {
		logger.Error("visualizer stopped", "error", err)
		return fmt.Errorf("visualizer: %w", err)
	}
	logger.Info("visualizer closed")
	return nil
}

// openLogFile opens path for appending. An empty path returns a nil writer.
func openLogFile(path string) (io.Writer, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return f, func() {
		if err := f.Close(); err != nil {
			logger.Warn("closing log file", "error", err)
		}
	}, nil
}

// setupStderrLogger configures logging for the non-interactive commands.
func setupStderrLogger(cmd *cobra.Command, cfg *config.Config) {
	logger.SetDefault(logger.NewFormat(cfg.LogFormat, cfg.LogLevel, cmd.ErrOrStderr()))
}

func paramsFromConfig(cfg *config.Config) production.Params {
	return production.Params{
		A:     cfg.Defaults.A,
		N:     cfg.Defaults.N,
		Alpha: cfg.Defaults.Alpha,
		K:     cfg.Defaults.K,
	}
}

func domainFromConfig(cfg *config.Config) production.Domain {
	return production.Domain{
		Min:  cfg.Domain.Min,
		Max:  cfg.Domain.Max,
		Step: cfg.Domain.Step,
	}
}
