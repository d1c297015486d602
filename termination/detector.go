package termination

import "sync/atomic"

// Detector records convergence, iteration count and forced stop for a run.
// All methods are safe for concurrent use.
type Detector struct {
	converged  atomic.Bool
	forced     atomic.Bool
	iterations atomic.Int64
	reason     atomic.Int32
	cap        int64
}

// New returns a Detector with the given iteration cap; cap <= 0 means unbounded.
func New(limit int) *Detector {
	if limit < 0 {
		limit = 0
	}

	return &Detector{cap: int64(limit)}
}

// Cap returns the iteration cap (0 = unbounded).
func (d *Detector) Cap() int { return int(d.cap) }

// MarkConverged sets the converged signal and records reason if none is set.
func (d *Detector) MarkConverged(reason Reason) {
	d.setReason(reason)
	d.converged.Store(true)
}

// Converged reports whether the run was marked converged.
func (d *Detector) Converged() bool { return d.converged.Load() }

// Increment counts one completed round and returns the new count.
// Reaching the cap records ReasonIterationCap unless a reason is already set.
func (d *Detector) Increment() int {
	n := d.iterations.Add(1)
	if d.cap > 0 && n >= d.cap {
		d.setReason(ReasonIterationCap)
	}

	return int(n)
}

// Iterations returns the number of completed rounds.
func (d *Detector) Iterations() int { return int(d.iterations.Load()) }

// CapExceeded reports whether the iteration count reached the cap.
func (d *Detector) CapExceeded() bool {
	return d.cap > 0 && d.iterations.Load() >= d.cap
}

// ForceStop sets the force-stop signal and records reason if none is set.
func (d *Detector) ForceStop(reason Reason) {
	d.setReason(reason)
	d.forced.Store(true)
}

// ForceStopped reports whether a forced stop was requested.
func (d *Detector) ForceStopped() bool { return d.forced.Load() }

// ShouldTerminate is Converged() || CapExceeded() || ForceStopped().
func (d *Detector) ShouldTerminate() bool {
	return d.Converged() || d.CapExceeded() || d.ForceStopped()
}

// Reason returns the first terminal reason recorded, or ReasonNone.
func (d *Detector) Reason() Reason { return Reason(d.reason.Load()) }

// Reset clears every signal for reuse. The cap is kept.
func (d *Detector) Reset() {
	d.converged.Store(false)
	d.forced.Store(false)
	d.iterations.Store(0)
	d.reason.Store(int32(ReasonNone))
}

// setReason records r only when no reason has been recorded yet.
func (d *Detector) setReason(r Reason) {
	d.reason.CompareAndSwap(int32(ReasonNone), int32(r))
}
