// Package search implements expectimax search over 2048 grids: an alternating chance
// (tile spawn) and player (move choice) recursion, backed by a transposition cache keyed
// on the grid and tagged with the probability at which it was last computed.
package search

import (
	"fmt"

	"github.com/herohde/ai2048/pkg/board"
	"github.com/seekerror/stdlib/pkg/lang"
)

// SearchResult is the outcome of one top-level search call.
type SearchResult struct {
	RootGrid        board.Grid
	MoveEvaluations map[board.Move]float32
	BestMove        lang.Option[board.Move]
	Depth           uint8
	Stats           SearchStats
}

func (r SearchResult) String() string {
	if m, ok := r.BestMove.V(); ok {
		return fmt.Sprintf("{best=%v, depth=%v, evals=%v, stats=%v}", m, r.Depth, r.MoveEvaluations, r.Stats)
	}
	return fmt.Sprintf("{best=none, depth=%v, evals=%v, stats=%v}", r.Depth, r.MoveEvaluations, r.Stats)
}

// SearchStats are advisory node counters for a single search call. They are
// non-decreasing within a search but their exact values depend on visiting order.
type SearchStats struct {
	// Nodes counts every node entry, chance or player.
	Nodes uint64
	// CacheSize is the final size of the transposition cache.
	CacheSize uint64
	// CacheHits counts cache short-circuit returns.
	CacheHits uint64
	// Evals counts leaf heuristic calls.
	Evals uint64
	// Average counts chance nodes entered.
	Average uint64
}

func (s SearchStats) String() string {
	return fmt.Sprintf("{nodes=%v, cache_size=%v, cache_hits=%v, evals=%v, average=%v}", s.Nodes, s.CacheSize, s.CacheHits, s.Evals, s.Average)
}

// add combines another stats value component-wise. SearchParallel does not use it; it sums
// its per-move stats through atomicStats.
func (s *SearchStats) add(o SearchStats) {
	s.Nodes += o.Nodes
	s.CacheSize += o.CacheSize
	s.CacheHits += o.CacheHits
	s.Evals += o.Evals
	s.Average += o.Average
}
