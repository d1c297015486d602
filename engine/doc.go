// Package engine drives a problem.Problem to a fixpoint with a fixed pool of
// workers.
//
// A run is a sequence of rounds. Each round starts from the current state s:
//
//  1. If Forbidden(s) the round repairs (Ensure), otherwise it progresses
//     (Advance). Every worker works on its own round-robin partition.
//  2. The worker results are combined according to the configured
//     discipline and published to the state container (one version per round).
//  3. The termination detector is consulted, in this order: solution,
//     no progress, iteration cap, round timeout.
//
// Two coordination disciplines exist and one is chosen per Engine:
//
//   - config.DisciplineMerge: each worker receives the round's input (a
//     private copy when the problem is a problem.Cloner) and returns a
//     candidate; candidates are folded left to right over worker index.
//   - config.DisciplineBarrier: the problem must implement problem.Cloner
//     and problem.InPlace. Workers write their owned elements of one staged
//     copy under shared access to the container, then meet at a phase
//     barrier whose action commits the staged copy.
//
// A panic in any problem method stops the run with the last published state
// and an *ExecutionError. Non-convergence within the iteration cap is not an
// error; it is reported through Stats.
//
// Runs are traced and measured with OpenTelemetry (tracer and meter
// "lvlattice.engine") and logged with log/slog when logging is enabled.
package engine
