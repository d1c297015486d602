// Package lvlattice is a parallel engine for problems whose answer is the
// least fixpoint of a lattice: shortest distances, spanning forests,
// component labels, prefix sums, stable matchings and anything else you
// can phrase as "fix what is forbidden, otherwise advance".
//
// 🚀 What is in the box?
//
//	• problem/    : the contract every client implements, plus capability
//	                interfaces (Merger, Equaler, Cloner, InPlace)
//	• engine/     : the round loop: detect, repair or progress, merge, check
//	• solver/     : Solve / Stop / Shutdown facade over one engine
//	• state/      : versioned shared state container
//	• barrier/    : reusable cyclic barrier with a commit action
//	• termination/: convergence and force-stop flags
//	• config/     : defaults < YAML < LVLATTICE_* env < options
//	• telemetry/  : OpenTelemetry traces and metrics (stdout, OTLP, Prometheus)
//	• core/, builder/: edge lists and deterministic graph generators
//	• mst/, sssp/, components/, apsp/, scan/, matching/: ready-made problems,
//	  each with a sequential reference
//
// ✨ Why lvlattice?
//
//   - One fixed worker pool per engine, reused across rounds and runs
//   - Two disciplines: merge candidate states, or write in place behind a
//     phase barrier
//   - Every stop has a reason: converged, no-progress, iteration-cap,
//     timeout, canceled, worker-failure, stalled, external
//
// Quick example:
//
//	el, _ := builder.BuildEdgeList(nil, builder.Grid(3, 3))
//	p, _ := sssp.New(el, 0)
//	cfg, _ := config.New(config.WithWorkers(4))
//	dist, stats, err := solver.Run[sssp.Distances](ctx, p, cfg)
//
// The lvlattice command (cmd/lvlattice) runs every bundled problem on
// generated inputs and checks the result against its reference.
//
//	go install github.com/katalvlaran/lvlattice/cmd/lvlattice@latest
package lvlattice
