package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"gridlens/internal/analyze"
	"gridlens/internal/config"
	"gridlens/internal/grid"
	"gridlens/internal/report"
)

var version = "0.1.0"

var (
	// Global flags
	verbose bool
	cfgPath string

	rows      int
	cols      int
	minValue  int
	maxValue  int
	seed      int64
	colorMode string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gridlens",
	Short: "gridlens - sign-run and minimum analysis over a random grid",
	Long: `gridlens generates a grid of bounded random integers and renders an
aligned report of it: per row, the minimum number of single-cell
replacements needed so that no run of three or more consecutive cells
shares the same sign, plus the row's smallest strictly-positive value;
for the whole grid, the global minimum and every position where it
occurs.

Run without arguments to analyze a 10x10 grid of values in [-100, 100].`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runReport,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the gridlens version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gridlens %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to a YAML config file")

	rootCmd.Flags().IntVar(&rows, "rows", 10, "Number of grid rows")
	rootCmd.Flags().IntVar(&cols, "cols", 10, "Number of grid columns")
	rootCmd.Flags().IntVar(&minValue, "min", -100, "Lower value bound (inclusive)")
	rootCmd.Flags().IntVar(&maxValue, "max", 100, "Upper value bound (inclusive)")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "PRNG seed (0 = time-derived)")
	rootCmd.Flags().StringVar(&colorMode, "color", config.ColorAuto, "Color output: auto, always or never")

	rootCmd.AddCommand(versionCmd)
}

// loadConfig layers defaults, the optional config file, environment
// overrides, and finally any explicitly set flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if cfgPath != "" {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return nil, err
		}
	}
	cfg.ApplyEnvOverrides()

	f := cmd.Flags()
	if f.Changed("rows") {
		cfg.Grid.Rows = rows
	}
	if f.Changed("cols") {
		cfg.Grid.Cols = cols
	}
	if f.Changed("min") {
		cfg.Grid.Min = minValue
	}
	if f.Changed("max") {
		cfg.Grid.Max = maxValue
	}
	if f.Changed("seed") {
		cfg.Grid.Seed = seed
	}
	if f.Changed("color") {
		cfg.Output.Color = colorMode
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveColors turns the configured color mode into the boolean the
// renderer takes. Auto means color only on an interactive terminal.
func resolveColors(mode string, interactive bool) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return interactive
	}
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	start := time.Now()
	gen := grid.NewGenerator(cfg.Grid.Seed)
	g, err := gen.Generate(cfg.Grid.Rows, cfg.Grid.Cols, cfg.Grid.Min, cfg.Grid.Max)
	if err != nil {
		return err
	}
	logger.Debug("grid generated",
		zap.Int("rows", cfg.Grid.Rows),
		zap.Int("cols", cfg.Grid.Cols),
		zap.Duration("elapsed", time.Since(start)))

	start = time.Now()
	summary := analyze.Summarize(g)
	logger.Debug("analysis complete",
		zap.Bool("min_found", summary.Min.Found),
		zap.Float64("min_value", summary.Min.Value),
		zap.Int("min_positions", len(summary.Min.Positions)),
		zap.Duration("elapsed", time.Since(start)))

	interactive := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	useColors := resolveColors(cfg.Output.Color, interactive)

	report.NewRenderer(os.Stdout, report.Options{UseColors: useColors}).Render(g, summary)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
