// Package config defines the validated execution parameters of a fixpoint run.
//
// A Config is built once per solver and is immutable afterwards. Values come
// from, in increasing precedence:
//
//  1. Default()                  - GOMAXPROCS workers, unbounded iterations and
//     time, logging off, merge discipline, 5s shutdown grace.
//  2. a YAML file (Load)         - keys workers, iteration_cap, logging, timeout,
//     discipline, barrier_timeout, shutdown_grace.
//  3. the environment (Load)     - LVLATTICE_WORKERS, LVLATTICE_ITERATION_CAP, ...
//  4. functional options         - WithWorkers, WithIterationCap, WithTimeout, ...
//
// Options reject invalid values immediately (worker count < 1, iteration cap
// < 1, non-positive timeout); values read from files or the environment use 0
// to mean "unbounded" and are checked by Validate.
//
// Errors:
//
//	ErrInvalidWorkers      - worker count < 1.
//	ErrInvalidIterationCap - iteration cap < 1 (options) or < 0 (files).
//	ErrInvalidTimeout      - non-positive timeout (options) or negative (files).
//	ErrInvalidDiscipline   - discipline is neither "merge" nor "barrier".
//	ErrInvalidDuration     - non-positive barrier timeout or shutdown grace.
//	ErrConfigFile          - the YAML file is unreadable, too large or malformed.
//	ErrConfigEnv           - an environment variable could not be parsed.
package config
