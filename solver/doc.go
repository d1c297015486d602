// Package solver is the entry point for solving a lattice-fixpoint problem.
//
// A Solver validates its configuration up front, owns one engine.Engine
// (and through it a fixed worker pool) and can be reused for many solves:
//
//	s, err := solver.New[[]int](p, cfg)
//	if err != nil {
//		return err // configuration errors surface here, never mid-solve
//	}
//	defer s.Shutdown()
//
//	final, err := s.Solve(ctx)
//	stats := s.Stats()
//
// Run is a one-shot shorthand that creates, solves and shuts down.
package solver
