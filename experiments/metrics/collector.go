package metrics

import (
	"time"
)

// SearchMetric captures one search invocation: the configured depth, the
// nodes expanded, the beta cutoffs taken, wall time, and the root score.
type SearchMetric struct {
	Depth     int
	Nodes     int64
	Cutoffs   int64
	Duration  time.Duration
	BestScore float64
}

type MoveMetric struct {
	Step   int
	Player int // Player index
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int
	Winner         int // Player index, -1 for a turn-capped draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(depth int)
	AddNode()
	AddCutoff()
	Complete(bestScore float64) SearchMetric
}

// collector counts with plain fields: a search runs on a single goroutine,
// and each searcher owns its own collector.
type collector struct {
	depth     int
	startTime time.Time
	nodes     int64
	cutoffs   int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	m.startTime = time.Now()
	m.depth = depth
	m.nodes = 0
	m.cutoffs = 0
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddCutoff() {
	m.cutoffs++
}

func (m *collector) Complete(bestScore float64) SearchMetric {
	return SearchMetric{
		Depth:     m.depth,
		Nodes:     m.nodes,
		Cutoffs:   m.cutoffs,
		Duration:  time.Since(m.startTime),
		BestScore: bestScore,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)                         {}
func (m *dummyCollector) AddNode()                                {}
func (m *dummyCollector) AddCutoff()                              {}
func (m *dummyCollector) Complete(bestScore float64) SearchMetric { return SearchMetric{} }
