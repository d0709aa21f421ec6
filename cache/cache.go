// Package cache memoizes the step graph build: building a graph for a
// pad layout is pure and deterministic in the pad's chart type, so a
// process expressing many charts of the same chart type only needs to
// pay the build cost once.
package cache

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/exprchart/engine/pad"
	"github.com/exprchart/engine/stepgraph"
)

// GraphCache memoizes stepgraph.Build results keyed by pad chart type.
// Concurrent callers requesting the same, not-yet-cached chart type
// collapse onto a single Build call via singleflight, so expressing a
// batch of charts of the same type on multiple goroutines never builds
// the graph more than once.
type GraphCache struct {
	mu     sync.RWMutex
	graphs map[string]*stepgraph.Graph
	group  singleflight.Group

	hits   int64
	misses int64
}

// NewGraphCache creates an empty GraphCache.
func NewGraphCache() *GraphCache {
	return &GraphCache{graphs: make(map[string]*stepgraph.Graph)}
}

// Get returns the cached graph for d.ChartType, building and caching it
// via stepgraph.Build if absent.
func (c *GraphCache) Get(d *pad.Data) (*stepgraph.Graph, error) {
	if g, ok := c.lookup(d.ChartType); ok {
		c.recordHit()
		return g, nil
	}

	v, err, _ := c.group.Do(d.ChartType, func() (interface{}, error) {
		if g, ok := c.lookup(d.ChartType); ok {
			return g, nil
		}
		g, err := stepgraph.Build(d)
		if err != nil {
			return nil, err
		}
		c.store(d.ChartType, g)
		return g, nil
	})
	if err != nil {
		return nil, err
	}
	c.recordMiss()
	return v.(*stepgraph.Graph), nil
}

func (c *GraphCache) lookup(chartType string) (*stepgraph.Graph, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	g, ok := c.graphs[chartType]
	return g, ok
}

func (c *GraphCache) store(chartType string, g *stepgraph.Graph) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.graphs[chartType] = g
}

func (c *GraphCache) recordHit() {
	c.mu.Lock()
	c.hits++
	c.mu.Unlock()
}

func (c *GraphCache) recordMiss() {
	c.mu.Lock()
	c.misses++
	c.mu.Unlock()
}

// Stats reports cache effectiveness.
type Stats struct {
	ChartTypesCached int
	Hits             int64
	Misses           int64
}

// Stats returns a snapshot of the cache's hit/miss counters.
func (c *GraphCache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Stats{
		ChartTypesCached: len(c.graphs),
		Hits:             c.hits,
		Misses:           c.misses,
	}
}

// Clear empties the cache, forcing the next Get for every chart type to
// rebuild.
func (c *GraphCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.graphs = make(map[string]*stepgraph.Graph)
}
