package config

import (
	"errors"
	"fmt"
	"runtime"
	"time"
)

// Sentinel configuration errors. They are returned synchronously by New,
// Load and Validate and are never surfaced mid-solve.
var (
	// ErrInvalidWorkers indicates a worker count below one.
	ErrInvalidWorkers = errors.New("config: worker count must be >= 1")

	// ErrInvalidIterationCap indicates an iteration cap below one.
	ErrInvalidIterationCap = errors.New("config: iteration cap must be >= 1")

	// ErrInvalidTimeout indicates a non-positive round timeout.
	ErrInvalidTimeout = errors.New("config: timeout must be positive")

	// ErrInvalidDiscipline indicates an unknown coordination discipline.
	ErrInvalidDiscipline = errors.New("config: discipline must be \"merge\" or \"barrier\"")

	// ErrInvalidDuration indicates a non-positive barrier timeout or shutdown grace.
	ErrInvalidDuration = errors.New("config: duration must be positive")

	// ErrConfigFile indicates the YAML configuration file could not be used.
	ErrConfigFile = errors.New("config: bad configuration file")

	// ErrConfigEnv indicates an environment override could not be parsed.
	ErrConfigEnv = errors.New("config: bad environment override")
)

// Discipline selects how workers coordinate within a round.
type Discipline string

const (
	// DisciplineMerge gives each worker its own candidate state and folds the
	// candidates through the problem's merge once every worker returned.
	DisciplineMerge Discipline = "merge"

	// DisciplineBarrier lets workers write disjoint partitions of one shared
	// state and rendezvous at a phase barrier before the round is committed.
	DisciplineBarrier Discipline = "barrier"
)

// ParseDiscipline converts s into a Discipline.
func ParseDiscipline(s string) (Discipline, error) {
	switch d := Discipline(s); d {
	case DisciplineMerge, DisciplineBarrier:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDiscipline, s)
	}
}

// DefaultShutdownGrace bounds how long Shutdown waits for busy workers.
const DefaultShutdownGrace = 5 * time.Second

// Config holds the execution parameters of one solver.
//
// Zero IterationCap, Timeout and BarrierTimeout mean "unbounded".
type Config struct {
	// Workers is the fixed number of worker goroutines.
	Workers int `yaml:"workers" env:"WORKERS" validate:"gte=1"`

	// IterationCap bounds the number of rounds; 0 is unbounded.
	IterationCap int `yaml:"iteration_cap" env:"ITERATION_CAP" validate:"gte=0"`

	// Logging enables the engine's structured log output.
	Logging bool `yaml:"logging" env:"LOGGING"`

	// Timeout is the advisory per-round wall-clock budget; 0 is unbounded.
	Timeout time.Duration `yaml:"timeout" env:"TIMEOUT" validate:"gte=0"`

	// Discipline selects merge or barrier coordination.
	Discipline Discipline `yaml:"discipline" env:"DISCIPLINE" validate:"oneof=merge barrier"`

	// BarrierTimeout bounds a single barrier wait; 0 is unbounded.
	BarrierTimeout time.Duration `yaml:"barrier_timeout" env:"BARRIER_TIMEOUT" validate:"gte=0"`

	// ShutdownGrace bounds how long Shutdown waits for running workers.
	ShutdownGrace time.Duration `yaml:"shutdown_grace" env:"SHUTDOWN_GRACE" validate:"gt=0"`
}

// Default returns the default configuration: one worker per available CPU,
// unbounded iterations and time, logging disabled, merge discipline.
func Default() Config {
	return Config{
		Workers:       runtime.GOMAXPROCS(0),
		Discipline:    DisciplineMerge,
		ShutdownGrace: DefaultShutdownGrace,
	}
}

// Bounded reports whether an iteration cap is configured.
func (c Config) Bounded() bool { return c.IterationCap > 0 }

// Timed reports whether a per-round timeout is configured.
func (c Config) Timed() bool { return c.Timeout > 0 }
