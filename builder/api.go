// SPDX-License-Identifier: MIT
// Package: lvlattice/builder
//
// api.go - the BuildEdgeList orchestrator and the Constructor type.
//
// Design contract:
//   - One orchestrator: BuildEdgeList(opts, cons...). Creates the list,
//     resolves cfg, runs cons in order.
//   - Every constructor appends a fresh vertex block; constructors never
//     touch vertices they did not allocate.
//   - Determinism: same inputs, options, seed and order ⇒ identical lists.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlattice/core"
)

// Method names used as error prefixes.
const (
	MethodPath         = "Path"
	MethodCycle        = "Cycle"
	MethodComplete     = "Complete"
	MethodGrid         = "Grid"
	MethodRandomSparse = "RandomSparse"
	MethodDisjoint     = "Disjoint"
)

// Constructor appends a topology to el using the resolved configuration.
// Constructors validate parameters before touching el and never panic.
type Constructor func(el *core.EdgeList, cfg builderConfig) error

// BuildEdgeList creates an empty EdgeList (directed per WithDirected),
// resolves opts and applies cons in order. Constructor errors are wrapped
// with "BuildEdgeList: %w".
//
// Complexity: O(len(opts)) plus the cost of every constructor.
func BuildEdgeList(opts []BuilderOption, cons ...Constructor) (*core.EdgeList, error) {
	cfg := newBuilderConfig(opts...)
	el := &core.EdgeList{Directed: cfg.directed}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildEdgeList: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(el, cfg); err != nil {
			return nil, fmt.Errorf("BuildEdgeList: %w", err)
		}
	}

	return el, nil
}

// Disjoint groups constructors into one; their vertex blocks stay disjoint.
func Disjoint(parts ...Constructor) Constructor {
	return func(el *core.EdgeList, cfg builderConfig) error {
		for i, fn := range parts {
			if fn == nil {
				return fmt.Errorf("%s: nil part %d: %w", MethodDisjoint, i, ErrConstructFailed)
			}
			if err := fn(el, cfg); err != nil {
				return fmt.Errorf("%s: part %d: %w", MethodDisjoint, i, err)
			}
		}

		return nil
	}
}

// link adds u→v with the next weight; in directed mode with mirror it also
// adds v→u with the same weight.
func link(el *core.EdgeList, cfg builderConfig, method string, u, v int, mirror bool) error {
	w := cfg.weight()
	if _, err := el.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: %w: %w", method, err, ErrConstructFailed)
	}
	if mirror && el.Directed {
		if _, err := el.AddEdge(v, u, w); err != nil {
			return fmt.Errorf("%s: %w: %w", method, err, ErrConstructFailed)
		}
	}

	return nil
}
