// SPDX-License-Identifier: MIT
// Package: healthnet/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into a builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Constructors compose: a center or connection that already exists is left as is,
//     so Path(n) followed by RandomSparse(n, p) yields a connected random graph.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/healthnet/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early and return
// sentinel errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	if err := Apply(g, bopts, cons...); err != nil {
		return nil, err
	}

	return g, nil
}

// Apply runs constructors against an existing graph. It is how the demo
// data of the command-line tool lands in a freshly created store.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return nil
}

// ensureCenter adds center offset+idx unless it already exists.
func ensureCenter(g *core.Graph, cfg builderConfig, idx int) (int, error) {
	id := cfg.idOffset + idx
	c := core.Center{
		ID:       id,
		Name:     cfg.nameFn(id),
		District: fmt.Sprintf("District %d", idx%4+1),
		Capacity: cfg.capacityFn(idx, cfg.rng),
	}
	if err := g.AddCenter(c); err != nil && !errors.Is(err, core.ErrDuplicateCenter) {
		return 0, err
	}

	return id, nil
}

// ensureCenters adds centers for indexes 0..n-1 and returns their IDs.
func ensureCenters(method string, g *core.Graph, cfg builderConfig, n int) ([]int, error) {
	ids := make([]int, n)
	for i := 0; i < n; i++ {
		id, err := ensureCenter(g, cfg, i)
		if err != nil {
			return nil, fmt.Errorf("%s: AddCenter(%d): %w", method, cfg.idOffset+i, err)
		}
		ids[i] = id
	}

	return ids, nil
}

// connect links a and b with a generated distance; an existing connection
// is kept untouched.
func connect(method string, g *core.Graph, cfg builderConfig, a, b int) error {
	err := g.AddConnection(core.Connection{
		From:        a,
		To:          b,
		Distance:    cfg.distanceFn(cfg.rng),
		Time:        0,
		Description: method,
	})
	if err != nil && !errors.Is(err, core.ErrDuplicateConnection) {
		return fmt.Errorf("%s: AddConnection(%d,%d): %w", method, a, b, err)
	}

	return nil
}
