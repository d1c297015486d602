// Package termination tracks the stop signals of one fixpoint run.
//
// A Detector holds four independent signals, each its own atomic unit:
//
//   - converged      explicitly marked by the engine, never derived;
//   - iterations     incremented once per completed round;
//   - cap exceeded   iterations >= cap (cap 0 means unbounded);
//   - force stop     settable from outside the round logic.
//
// ShouldTerminate is the OR of converged, cap exceeded and force stop. No
// cross-field atomicity is provided or needed: any interleaving of the reads
// yields an answer that is correct at the next checkpoint.
//
// The first terminal Reason recorded wins; later ones are ignored until Reset.
package termination
