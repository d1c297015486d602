package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlattice/config"
	"github.com/katalvlaran/lvlattice/telemetry"
)

var (
	errMismatch    = errors.New("result differs from the sequential reference")
	errInvalidSize = errors.New("input size must be >= 0")
)

const metricsShutdownTimeout = 2 * time.Second

type runFlags struct {
	problem     string
	graph       string
	n           int
	seed        int64
	density     float64
	workers     int
	cap         int
	timeout     time.Duration
	discipline  string
	verbose     bool
	trace       string
	metrics     string
	metricsAddr string
}

func newRunCmd() *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Solve one problem and compare it with the sequential reference",
		Example: `  lvlattice run --problem mst --graph random -n 200 --seed 7
  lvlattice run --problem apsp --graph grid -n 8 --discipline barrier --workers 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.problem, "problem", "mst", "mst, sssp, components, apsp, scan or matching")
	fl.StringVar(&f.graph, "graph", "random", "path, cycle, complete, grid (n×n) or random")
	fl.IntVarP(&f.n, "n", "n", 64, "input size")
	fl.Int64Var(&f.seed, "seed", 1, "seed for random inputs and weights")
	fl.Float64Var(&f.density, "density", 0.1, "edge probability for --graph random")
	fl.IntVar(&f.workers, "workers", 0, "worker count (overrides config)")
	fl.IntVar(&f.cap, "cap", 0, "iteration cap, 0 for unbounded (overrides config)")
	fl.DurationVar(&f.timeout, "timeout", 0, "advisory per-round timeout (overrides config)")
	fl.StringVar(&f.discipline, "discipline", "", "merge or barrier (overrides config)")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "log engine rounds to stderr")
	fl.StringVar(&f.trace, "trace", "", "trace exporter: stdout, otlp or none")
	fl.StringVar(&f.metrics, "metrics", "", "metric exporter: prometheus, stdout or none")
	fl.StringVar(&f.metricsAddr, "metrics-addr", ":9090", "listen address for --metrics prometheus")

	return cmd
}

// overrides turns the flags the user actually set into config options.
func (f *runFlags) overrides(cmd *cobra.Command) ([]config.Option, error) {
	var opts []config.Option
	changed := cmd.Flags().Changed
	if changed("workers") {
		opts = append(opts, config.WithWorkers(f.workers))
	}
	if changed("cap") {
		if f.cap == 0 {
			opts = append(opts, config.WithUnboundedIterations())
		} else {
			opts = append(opts, config.WithIterationCap(f.cap))
		}
	}
	if changed("timeout") {
		opts = append(opts, config.WithTimeout(f.timeout))
	}
	if changed("discipline") {
		d, err := config.ParseDiscipline(f.discipline)
		if err != nil {
			return nil, err
		}
		opts = append(opts, config.WithDiscipline(d))
	}
	if f.verbose {
		opts = append(opts, config.WithLogging(true))
	}

	return opts, nil
}

func runSolve(cmd *cobra.Command, f *runFlags) error {
	ctx := cmd.Context()
	if f.n < 0 {
		return fmt.Errorf("-n=%d: %w", f.n, errInvalidSize)
	}

	opts, err := f.overrides(cmd)
	if err != nil {
		return err
	}
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, opts...)
	if err != nil {
		return err
	}

	tcfg, err := telemetry.DefaultConfig()
	if err != nil {
		return err
	}
	if f.trace != "" {
		tcfg.TraceExporter = f.trace
	}
	if f.metrics != "" {
		tcfg.MetricExporter = f.metrics
	}
	tcfg.Writer = cmd.ErrOrStderr()
	tel, err := telemetry.Init(ctx, tcfg)
	if err != nil {
		return err
	}
	defer func() { _ = tel.Shutdown(context.WithoutCancel(ctx)) }()

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
	if h := tel.MetricsHandler(); h != nil && f.metricsAddr != "" {
		stopServer := serveMetrics(f.metricsAddr, h, logger)
		defer stopServer()
	}

	res, err := solveProblem(ctx, f, cfg, logger)
	if err != nil {
		return err
	}

	st := res.stats
	fmt.Fprintf(cmd.OutOrStdout(),
		"problem=%s n=%d workers=%d discipline=%s\nreason=%s iterations=%d converged=%t duration=%s solve_id=%s\nmatches_reference=%t\n",
		f.problem, f.n, cfg.Workers, cfg.Discipline,
		st.Reason, st.Iterations, st.Converged, st.Duration.Round(time.Microsecond), st.SolveID,
		res.matches)
	if st.Converged && !res.matches {
		return errMismatch
	}

	return nil
}

// serveMetrics exposes h on addr/metrics until the returned func is called.
func serveMetrics(addr string, h http.Handler, logger *slog.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", h)
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "addr", addr, "error", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
