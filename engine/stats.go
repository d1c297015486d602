package engine

import (
	"time"

	"github.com/katalvlaran/lvlattice/termination"
)

// Stats summarizes the most recent run of an Engine.
type Stats struct {
	SolveID        string
	Iterations     int
	Converged      bool
	ForceStopped   bool
	Reason         termination.Reason
	RepairRounds   int
	ProgressRounds int
	Version        uint64
	Duration       time.Duration
}
