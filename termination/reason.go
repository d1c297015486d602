package termination

// Reason explains why a run stopped.
type Reason int32

const (
	// ReasonNone means the run has not stopped.
	ReasonNone Reason = iota
	// ReasonConverged means IsSolution held on an unforbidden state.
	ReasonConverged
	// ReasonNoProgress means a round returned its input unchanged.
	ReasonNoProgress
	// ReasonIterationCap means the iteration cap was reached.
	ReasonIterationCap
	// ReasonTimeout means a round exceeded the configured timeout.
	ReasonTimeout
	// ReasonCanceled means the caller's context ended.
	ReasonCanceled
	// ReasonWorkerFailure means a worker or the coordinator failed.
	ReasonWorkerFailure
	// ReasonStalled means a forbidden state could no longer be repaired.
	ReasonStalled
	// ReasonExternal means Stop was requested from outside the run.
	ReasonExternal
)

var reasonNames = [...]string{
	ReasonNone:          "none",
	ReasonConverged:     "converged",
	ReasonNoProgress:    "no-progress",
	ReasonIterationCap:  "iteration-cap",
	ReasonTimeout:       "timeout",
	ReasonCanceled:      "canceled",
	ReasonWorkerFailure: "worker-failure",
	ReasonStalled:       "stalled",
	ReasonExternal:      "external",
}

// String implements fmt.Stringer.
func (r Reason) String() string {
	if r < 0 || int(r) >= len(reasonNames) {
		return "unknown"
	}

	return reasonNames[r]
}
