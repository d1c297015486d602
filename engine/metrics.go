package engine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	tracer = otel.Tracer("lvlattice.engine")
	meter  = otel.Meter("lvlattice.engine")
)

// instruments are created once per process on first use.
type instruments struct {
	rounds       metric.Int64Counter
	roundLatency metric.Float64Histogram
	failures     metric.Int64Counter
	runs         metric.Int64Counter
	runLatency   metric.Float64Histogram
}

var (
	instrumentsOnce sync.Once
	inst            instruments
)

// initMetrics creates the engine instruments. Failures are logged and the
// affected instruments stay nil; recording skips them.
func initMetrics(logger *slog.Logger) {
	instrumentsOnce.Do(func() {
		var failed []string
		var err error

		inst.rounds, err = meter.Int64Counter("lvlattice_engine_rounds_total",
			metric.WithDescription("Rounds executed, by phase"),
		)
		if err != nil {
			failed = append(failed, "rounds: "+err.Error())
		}

		inst.roundLatency, err = meter.Float64Histogram("lvlattice_engine_round_duration_seconds",
			metric.WithDescription("Wall time of one round"),
			metric.WithUnit("s"),
		)
		if err != nil {
			failed = append(failed, "round_latency: "+err.Error())
		}

		inst.failures, err = meter.Int64Counter("lvlattice_engine_worker_failures_total",
			metric.WithDescription("Runs aborted by a failing worker or barrier"),
		)
		if err != nil {
			failed = append(failed, "failures: "+err.Error())
		}

		inst.runs, err = meter.Int64Counter("lvlattice_engine_runs_total",
			metric.WithDescription("Completed runs, by stop reason"),
		)
		if err != nil {
			failed = append(failed, "runs: "+err.Error())
		}

		inst.runLatency, err = meter.Float64Histogram("lvlattice_engine_run_duration_seconds",
			metric.WithDescription("Wall time of one run"),
			metric.WithUnit("s"),
		)
		if err != nil {
			failed = append(failed, "run_latency: "+err.Error())
		}

		if len(failed) > 0 {
			logger.Error("failed to initialize engine metrics (observability degraded)",
				slog.Int("failed_count", len(failed)),
				slog.Any("errors", failed),
			)
		}
	})
}

func recordRound(ctx context.Context, phase Phase, d time.Duration) {
	attrs := metric.WithAttributes(attribute.String("phase", string(phase)))
	if inst.rounds != nil {
		inst.rounds.Add(ctx, 1, attrs)
	}
	if inst.roundLatency != nil {
		inst.roundLatency.Record(ctx, d.Seconds(), attrs)
	}
}

func recordFailure(ctx context.Context, phase Phase) {
	if inst.failures != nil {
		inst.failures.Add(ctx, 1, metric.WithAttributes(attribute.String("phase", string(phase))))
	}
}

func recordRun(ctx context.Context, st Stats) {
	attrs := metric.WithAttributes(
		attribute.String("reason", st.Reason.String()),
		attribute.Bool("converged", st.Converged),
	)
	if inst.runs != nil {
		inst.runs.Add(ctx, 1, attrs)
	}
	if inst.runLatency != nil {
		inst.runLatency.Record(ctx, st.Duration.Seconds(), attrs)
	}
}
