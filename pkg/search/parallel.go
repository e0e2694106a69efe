package search

import (
	"sync"

	"github.com/herohde/ai2048/pkg/board"
	"github.com/seekerror/stdlib/pkg/lang"
	"go.uber.org/atomic"
)

// SearchParallel runs the same search as Search, but fans the ≤4 legal root moves out
// across goroutines, each with its own cache (deeper cache reuse across moves is not
// worth the synchronization cost -- see §5). Stats are summed component-wise afterwards.
func SearchParallel(g board.Grid, minProbability float32, maxDepth uint8) SearchResult {
	depth := computeDepth(g, maxDepth)

	var mu sync.Mutex
	evals := make(map[board.Move]float32)
	var best board.Move
	var bestScore float32
	bestSet := false

	var stats atomicStats

	var wg sync.WaitGroup
	it := g.PlayerMoves()
	for {
		m, next, ok := it.Next()
		if !ok {
			break
		}

		wg.Add(1)
		go func(m board.Move, next board.Grid) {
			defer wg.Done()

			r := &run{minProbability: minProbability, cache: newCache()}
			score := r.chance(next, 1.0, depth)
			r.stats.CacheSize = uint64(r.cache.size())
			stats.add(r.stats)

			mu.Lock()
			defer mu.Unlock()
			evals[m] = score
			if !bestSet || score > bestScore || (score == bestScore && m < best) {
				best, bestScore, bestSet = m, score, true
			}
		}(m, next)
	}
	wg.Wait()

	res := SearchResult{
		RootGrid:        g,
		MoveEvaluations: evals,
		Depth:           depth,
		Stats:           stats.snapshot(),
	}
	if bestSet {
		res.BestMove = lang.Some(best)
	}
	return res
}

// atomicStats accumulates SearchStats from concurrent goroutines without a mutex.
type atomicStats struct {
	nodes, cacheSize, cacheHits, evals, average atomic.Uint64
}

func (a *atomicStats) add(s SearchStats) {
	a.nodes.Add(s.Nodes)
	a.cacheSize.Add(s.CacheSize)
	a.cacheHits.Add(s.CacheHits)
	a.evals.Add(s.Evals)
	a.average.Add(s.Average)
}

func (a *atomicStats) snapshot() SearchStats {
	return SearchStats{
		Nodes:     a.nodes.Load(),
		CacheSize: a.cacheSize.Load(),
		CacheHits: a.cacheHits.Load(),
		Evals:     a.evals.Load(),
		Average:   a.average.Load(),
	}
}
