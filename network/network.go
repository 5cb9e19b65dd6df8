// Package network is the single entry point to a health-center network:
// it owns the graph store, serializes mutations against queries, persists
// every structural edit and records query metrics.
//
// Concurrency: queries hold the read lock for the whole call, so each one
// sees a consistent snapshot; mutations hold the write lock including the
// persistence step.
package network

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/healthnet/core"
	"github.com/katalvlaran/healthnet/logging"
	"github.com/katalvlaran/healthnet/metrics"
	"github.com/katalvlaran/healthnet/store"
)

// ErrPersist indicates the in-memory edit succeeded but writing it out failed.
var ErrPersist = errors.New("network: persist failed")

// Persister writes the network files after a mutation. *store.Store
// implements it.
type Persister interface {
	SaveCenters(g *core.Graph) error
	SaveConnections(g *core.Graph) error
}

// RelationshipExporter is implemented by persisters that can also write the
// relationship table.
type RelationshipExporter interface {
	ExportRelationships(g *core.Graph) ([]store.Relationship, error)
}

// Option configures a Network.
type Option func(*Network)

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(n *Network) {
		if l != nil {
			n.log = l
		}
	}
}

// WithMetrics records query and size metrics into r.
func WithMetrics(r *metrics.Registry) Option {
	return func(n *Network) {
		n.metrics = r
	}
}

// Network wraps a core.Graph with locking, persistence and observability.
type Network struct {
	mu      sync.RWMutex
	g       *core.Graph
	persist Persister
	log     logrus.FieldLogger
	metrics *metrics.Registry
}

// New wraps g. A nil persister keeps the network in memory only.
func New(g *core.Graph, p Persister, opts ...Option) *Network {
	n := &Network{g: g, persist: p, log: logging.Discard()}
	for _, opt := range opts {
		opt(n)
	}
	n.updateSize()

	return n
}

// Files touched by a mutation.
type files uint8

const (
	centersFile files = 1 << iota
	connectionsFile
)

// mutate runs fn under the write lock and persists the given files.
func (n *Network) mutate(op string, touched files, fields logrus.Fields, fn func(g *core.Graph) error) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := fn(n.g); err != nil {
		n.log.WithFields(fields).WithError(err).Info(op + " rejected")
		return err
	}
	n.updateSize()
	n.log.WithFields(fields).Info(op)

	if n.persist == nil {
		return nil
	}
	if touched&centersFile != 0 {
		if err := n.persist.SaveCenters(n.g); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrPersist, op, err)
		}
	}
	if touched&connectionsFile != 0 {
		if err := n.persist.SaveConnections(n.g); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrPersist, op, err)
		}
	}

	return nil
}

func (n *Network) updateSize() {
	if n.metrics != nil {
		n.metrics.SetGraphSize(n.g.CenterCount(), n.g.ConnectionCount())
	}
}

// query runs fn under the read lock and records its outcome.
func (n *Network) query(name string, fn func(g *core.Graph) error) error {
	n.mu.RLock()
	defer n.mu.RUnlock()

	start := time.Now()
	err := fn(n.g)
	elapsed := time.Since(start)
	if n.metrics != nil {
		n.metrics.RecordQuery(name, err, elapsed)
	}
	entry := n.log.WithFields(logrus.Fields{"query": name, "elapsed": elapsed})
	if err != nil {
		entry.WithError(err).Debug("query failed")
	} else {
		entry.Debug("query done")
	}

	return err
}

// AddCenter adds c and rewrites the centers file.
func (n *Network) AddCenter(c core.Center) error {
	return n.mutate("center added", centersFile, logrus.Fields{"center": c.ID}, func(g *core.Graph) error {
		return g.AddCenter(c)
	})
}

// UpdateCenter replaces the attributes of c.ID and rewrites the centers file.
func (n *Network) UpdateCenter(c core.Center) error {
	return n.mutate("center updated", centersFile, logrus.Fields{"center": c.ID}, func(g *core.Graph) error {
		return g.UpdateCenter(c)
	})
}

// RemoveCenter deletes id with its connections and rewrites both files.
func (n *Network) RemoveCenter(id int) error {
	return n.mutate("center removed", centersFile|connectionsFile, logrus.Fields{"center": id}, func(g *core.Graph) error {
		return g.RemoveCenter(id)
	})
}

// AddConnection adds c and rewrites the connections file.
func (n *Network) AddConnection(c core.Connection) error {
	return n.mutate("connection added", connectionsFile, logrus.Fields{"from": c.From, "to": c.To}, func(g *core.Graph) error {
		return g.AddConnection(c)
	})
}

// UpdateConnection replaces the attributes of {c.From, c.To} on both sides
// and rewrites the connections file.
func (n *Network) UpdateConnection(c core.Connection) error {
	return n.mutate("connection updated", connectionsFile, logrus.Fields{"from": c.From, "to": c.To}, func(g *core.Graph) error {
		return g.UpdateConnection(c)
	})
}

// RemoveConnection deletes {a, b} and rewrites the connections file.
func (n *Network) RemoveConnection(a, b int) error {
	return n.mutate("connection removed", connectionsFile, logrus.Fields{"from": a, "to": b}, func(g *core.Graph) error {
		return g.RemoveConnection(a, b)
	})
}
