package engine

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlattice/barrier"
)

var (
	// ErrWorkerFailed matches every *ExecutionError caused by a failing
	// problem method (panic or error) in a worker or the coordinator.
	ErrWorkerFailed = errors.New("engine: worker failed")

	// ErrCoordination matches every *ExecutionError caused by a broken or
	// timed-out phase barrier.
	ErrCoordination = errors.New("engine: coordination failed")

	// ErrInPlaceRequired indicates that the barrier discipline was requested
	// for a problem that does not implement problem.Cloner and problem.InPlace.
	ErrInPlaceRequired = errors.New("engine: barrier discipline requires Cloner and InPlace")

	// ErrClosed is returned by Run after Close.
	ErrClosed = errors.New("engine: closed")

	// ErrNilContext indicates a nil context was passed to Run.
	ErrNilContext = errors.New("engine: nil context")
)

// Coordinator is the Worker value of an ExecutionError raised outside the
// worker pool (detection, merge and termination checks).
const Coordinator = -1

// Phase names the step of a round.
type Phase string

const (
	PhaseDetect   Phase = "detect"
	PhaseRepair   Phase = "repair"
	PhaseProgress Phase = "progress"
	PhaseMerge    Phase = "merge"
	PhaseCheck    Phase = "check"
)

// ExecutionError describes the failure that aborted a run.
type ExecutionError struct {
	SolveID string
	Round   int
	Phase   Phase
	Worker  int // Coordinator for failures outside the pool
	Err     error
}

// Error implements error.
func (e *ExecutionError) Error() string {
	who := "coordinator"
	if e.Worker != Coordinator {
		who = fmt.Sprintf("worker %d", e.Worker)
	}

	return fmt.Sprintf("engine: solve %s round %d %s (%s): %v", e.SolveID, e.Round, e.Phase, who, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ExecutionError) Unwrap() error { return e.Err }

// Is reports ErrCoordination for barrier failures and ErrWorkerFailed for
// everything else.
func (e *ExecutionError) Is(target error) bool {
	switch target {
	case ErrCoordination:
		return e.coordination()
	case ErrWorkerFailed:
		return !e.coordination()
	}

	return false
}

func (e *ExecutionError) coordination() bool {
	return errors.Is(e.Err, barrier.ErrBroken) || errors.Is(e.Err, barrier.ErrTimeout)
}
