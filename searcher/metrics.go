package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetrics summarizes one minimax search.
type SearchMetrics struct {
	Depth      int
	Goroutines int
	Duration   time.Duration
	Nodes      int64
	Leaves     int64
	Cutoffs    int64
}

type Collector interface {
	Start(depth, goroutines int)
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete() SearchMetrics
}

type collector struct {
	depth      int
	goroutines int
	startTime  time.Time
	nodes      atomic.Int64
	leaves     atomic.Int64
	cutoffs    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(depth, goroutines int) {
	c.startTime = time.Now()
	c.depth = depth
	c.goroutines = goroutines
	c.nodes.Store(0)
	c.leaves.Store(0)
	c.cutoffs.Store(0)
}

func (c *collector) AddNode() {
	c.nodes.Add(1)
}

func (c *collector) AddLeaf() {
	c.leaves.Add(1)
}

func (c *collector) AddCutoff() {
	c.cutoffs.Add(1)
}

func (c *collector) Complete() SearchMetrics {
	return SearchMetrics{
		Depth:      c.depth,
		Goroutines: c.goroutines,
		Duration:   time.Since(c.startTime),
		Nodes:      c.nodes.Load(),
		Leaves:     c.leaves.Load(),
		Cutoffs:    c.cutoffs.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (dummyCollector) Start(depth, goroutines int) {}
func (dummyCollector) AddNode()                    {}
func (dummyCollector) AddLeaf()                    {}
func (dummyCollector) AddCutoff()                  {}
func (dummyCollector) Complete() SearchMetrics     { return SearchMetrics{} }
