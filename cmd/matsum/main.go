// Command matsum runs one parallel reduction over a pseudo-random work
// matrix and reports per-worker activity plus the final gross sum. It is
// the demo driver for the matsum library, mirroring the classic exercise:
//
//	matsum            # static balancing, 2 workers, 1000×100 matrix
//	matsum -d -t 8    # dynamic balancing across 8 workers
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/matsum/matrix"
	"github.com/katalvlaran/matsum/reduce"
)

var (
	// Flags
	dynamic    bool
	threads    int
	rows       int
	cols       int
	seed       int64
	configPath string
	verbose    bool

	// Logger, built in PersistentPreRunE
	logger *zap.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "matsum",
	Short: "Sum a work matrix in parallel with static or dynamic load balancing",
	Long: `matsum fills a rows×cols matrix with seeded pseudo-random values and
sums it with a pool of workers.

Static balancing pre-assigns rows by stride and needs no coordination;
dynamic balancing pulls rows one at a time from a shared counter, so a
fast worker absorbs more of the load. The gross sum is identical either
way — only the per-worker split differs.

The requested worker count is clamped to the detected hardware
parallelism, as the original exercise does.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewDevelopmentConfig()
		if !verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		} else {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
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
	RunE: runReduction,
}

// runReduction executes one full reduction run from flag parsing through
// the final summary line.
func runReduction(cmd *cobra.Command, args []string) error {
	// A config file supplies defaults; explicit flags always win.
	if configPath != "" {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		applyConfig(cmd, cfg)
	}

	runID := uuid.NewString()
	log := logger.With(zap.String("run_id", runID))

	// The clamp the original applies against hardware_concurrency(). The
	// bound is resolved once here and pinned into the engine options, so
	// the warning below can never disagree with what Reduce actually does.
	hw := runtime.NumCPU()
	log.Info("concurrent workers supported", zap.Int("hardware_parallelism", hw))

	opts := buildOptions(threads, hw, dynamic, reduce.NewZapObserver(log))
	if opts.Workers > opts.MaxWorkers {
		log.Warn("clamping worker count to hardware parallelism",
			zap.Int("requested", opts.Workers), zap.Int("using", opts.MaxWorkers))
	}

	m, err := matrix.Random(rows, cols, seed)
	if err != nil {
		return fmt.Errorf("build work matrix: %w", err)
	}
	log.Debug("work matrix populated",
		zap.Int("rows", rows), zap.Int("cols", cols), zap.Int64("seed", seed))

	res, err := reduce.Reduce(m, opts)
	if err != nil {
		return fmt.Errorf("reduce: %w", err)
	}

	log.Info("main exiting",
		zap.String("strategy", opts.Strategy.String()),
		zap.Int("workers", len(res.PerWorker)),
		zap.Int("total_work", res.RowsProcessed),
		zap.Uint64("gross_sum", res.GrossSum),
	)

	return nil
}

// buildOptions assembles the engine options for one run. The hardware
// bound is pinned into MaxWorkers explicitly instead of relying on the
// engine's own zero-value fallback, so caller-side logging and the engine
// share a single clamp value.
func buildOptions(workers, bound int, dyn bool, obs reduce.Observer) reduce.Options {
	opts := reduce.DefaultOptions()
	opts.Workers = workers
	opts.MaxWorkers = bound
	if dyn {
		opts.Strategy = reduce.Dynamic
	}
	opts.Observer = obs

	return opts
}

// applyConfig copies file defaults into any flag the user did not set.
func applyConfig(cmd *cobra.Command, cfg fileConfig) {
	flags := cmd.Flags()
	if cfg.Rows > 0 && !flags.Changed("rows") {
		rows = cfg.Rows
	}
	if cfg.Cols > 0 && !flags.Changed("cols") {
		cols = cfg.Cols
	}
	if cfg.Seed != 0 && !flags.Changed("seed") {
		seed = cfg.Seed
	}
	if cfg.Threads > 0 && !flags.Changed("threads") {
		threads = cfg.Threads
	}
	if cfg.Dynamic && !flags.Changed("dynamic") {
		dynamic = true
	}
}

func init() {
	rootCmd.Flags().BoolVarP(&dynamic, "dynamic", "d", false, "use dynamic load balancing")
	rootCmd.Flags().IntVarP(&threads, "threads", "t", reduce.DefaultWorkers, "number of workers to use")
	rootCmd.Flags().IntVar(&rows, "rows", 1000, "rows in the work matrix")
	rootCmd.Flags().IntVar(&cols, "cols", 100, "columns in the work matrix")
	rootCmd.Flags().Int64Var(&seed, "seed", matrix.DefaultSeed, "seed for the pseudo-random matrix values")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML file with default settings")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
