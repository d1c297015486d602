package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"slices"

	"github.com/katalvlaran/lvlattice/apsp"
	"github.com/katalvlaran/lvlattice/builder"
	"github.com/katalvlaran/lvlattice/components"
	"github.com/katalvlaran/lvlattice/config"
	"github.com/katalvlaran/lvlattice/core"
	"github.com/katalvlaran/lvlattice/engine"
	"github.com/katalvlaran/lvlattice/matching"
	"github.com/katalvlaran/lvlattice/mst"
	"github.com/katalvlaran/lvlattice/problem"
	"github.com/katalvlaran/lvlattice/scan"
	"github.com/katalvlaran/lvlattice/solver"
	"github.com/katalvlaran/lvlattice/sssp"
)

var (
	errUnknownProblem = errors.New("unknown problem")
	errUnknownGraph   = errors.New("unknown graph kind")
)

const maxWeight = 100

type result struct {
	stats   engine.Stats
	matches bool
}

// check solves p and compares the final state with the reference.
func check[S any](ctx context.Context, p problem.Problem[S], cfg config.Config, logger *slog.Logger, ok func(S) bool) (result, error) {
	s, st, err := solver.Run[S](ctx, p, cfg, solver.WithLogger(logger))
	if err != nil {
		return result{stats: st}, err
	}

	return result{stats: st, matches: ok(s)}, nil
}

func solveProblem(ctx context.Context, f *runFlags, cfg config.Config, logger *slog.Logger) (result, error) {
	switch f.problem {
	case "scan":
		return solveScan(ctx, f, cfg, logger)
	case "matching":
		return solveMatching(ctx, f, cfg, logger)
	}

	el, err := buildGraph(f)
	if err != nil {
		return result{}, err
	}

	switch f.problem {
	case "mst":
		p, err := mst.New(el)
		if err != nil {
			return result{}, err
		}
		want, _, err := mst.Kruskal(el)
		if err != nil {
			return result{}, err
		}
		return check[mst.Forest](ctx, p, cfg, logger, func(s mst.Forest) bool { return slices.Equal(want, s.Edges()) })

	case "sssp":
		p, err := sssp.New(el, 0)
		if err != nil {
			return result{}, err
		}
		want, err := sssp.Dijkstra(el, 0)
		if err != nil {
			return result{}, err
		}
		return check[sssp.Distances](ctx, p, cfg, logger, func(s sssp.Distances) bool { return slices.Equal(want, s) })

	case "components":
		p, err := components.New(el)
		if err != nil {
			return result{}, err
		}
		want, err := components.BFS(el)
		if err != nil {
			return result{}, err
		}
		return check[components.Labels](ctx, p, cfg, logger, func(s components.Labels) bool { return slices.Equal(want, s) })

	case "apsp":
		p, err := apsp.New(el)
		if err != nil {
			return result{}, err
		}
		want, err := apsp.FloydWarshall(el)
		if err != nil {
			return result{}, err
		}
		return check[apsp.Matrix](ctx, p, cfg, logger, want.Equal)
	}

	return result{}, fmt.Errorf("%q: %w", f.problem, errUnknownProblem)
}

func buildGraph(f *runFlags) (*core.EdgeList, error) {
	opts := []builder.BuilderOption{
		builder.WithSeed(f.seed),
		builder.WithUniformWeight(1, maxWeight),
	}

	var cons builder.Constructor
	switch f.graph {
	case "path":
		cons = builder.Path(f.n)
	case "cycle":
		cons = builder.Cycle(f.n)
	case "complete":
		cons = builder.Complete(f.n)
	case "grid":
		cons = builder.Grid(f.n, f.n)
	case "random":
		cons = builder.RandomSparse(f.n, f.density)
	default:
		return nil, fmt.Errorf("%q: %w", f.graph, errUnknownGraph)
	}

	return builder.BuildEdgeList(opts, cons)
}

func solveScan(ctx context.Context, f *runFlags, cfg config.Config, logger *slog.Logger) (result, error) {
	rng := rand.New(rand.NewSource(f.seed))
	values := make([]int64, f.n)
	for i := range values {
		values[i] = rng.Int63n(2*maxWeight+1) - maxWeight
	}

	p, err := scan.New(values)
	if err != nil {
		return result{}, err
	}
	want, err := scan.Sequential(values)
	if err != nil {
		return result{}, err
	}

	return check[scan.Partials](ctx, p, cfg, logger, func(s scan.Partials) bool { return slices.Equal(want, s.Sum) })
}

func solveMatching(ctx context.Context, f *runFlags, cfg config.Config, logger *slog.Logger) (result, error) {
	rng := rand.New(rand.NewSource(f.seed))
	prefs := func() [][]int {
		out := make([][]int, f.n)
		for i := range out {
			out[i] = rng.Perm(f.n)
		}
		return out
	}
	men, women := prefs(), prefs()

	p, err := matching.New(men, women)
	if err != nil {
		return result{}, err
	}
	want, err := matching.GaleShapley(men, women)
	if err != nil {
		return result{}, err
	}

	return check[matching.Proposals](ctx, p, cfg, logger, func(s matching.Proposals) bool { return slices.Equal(want, p.Wives(s)) })
}
