package search

import (
	"math"

	"github.com/herohde/ai2048/pkg/board"
	"github.com/herohde/ai2048/pkg/eval"
	"github.com/seekerror/stdlib/pkg/lang"
)

const (
	// MinSearchDepth is the floor of the adaptive depth policy.
	MinSearchDepth = 3
	// DefaultMaxSearchDepth is the ceiling used by the stateless Search entry point.
	DefaultMaxSearchDepth = 12
)

// Searcher is a configured expectimax searcher: a minimum probability below which a branch
// is cut off and replaced by its heuristic value, and a maximum search depth.
type Searcher struct {
	minProbability float32
	maxDepth       uint8
}

// NewSearcher returns a Searcher with the given minimum probability and maximum depth.
func NewSearcher(minProbability float32, maxDepth uint8) *Searcher {
	return &Searcher{minProbability: minProbability, maxDepth: maxDepth}
}

// Search runs the configured search on g.
func (s *Searcher) Search(g board.Grid) SearchResult {
	return search(g, s.minProbability, s.maxDepth)
}

// Search is a stateless convenience entry point using DefaultMaxSearchDepth as the depth
// ceiling. The adaptive depth policy picks the actual depth for g.
func Search(g board.Grid, minProbability float32) SearchResult {
	return search(g, minProbability, DefaultMaxSearchDepth)
}

func search(g board.Grid, minProbability float32, maxDepth uint8) SearchResult {
	depth := computeDepth(g, maxDepth)

	r := &run{minProbability: minProbability, cache: newCache()}

	evals := make(map[board.Move]float32)
	var best board.Move
	var bestScore float32
	bestSet := false

	it := g.PlayerMoves()
	for {
		m, next, ok := it.Next()
		if !ok {
			break
		}

		score := r.chance(next, 1.0, depth)
		evals[m] = score
		if !bestSet || score > bestScore {
			best, bestScore, bestSet = m, score, true
		}
	}
	r.stats.CacheSize = uint64(r.cache.size())

	res := SearchResult{
		RootGrid:        g,
		MoveEvaluations: evals,
		Depth:           depth,
		Stats:           r.stats,
	}
	if bestSet {
		res.BestMove = lang.Some(best)
	}
	return res
}

// computeDepth adapts the search depth to the number of distinct tile ranks on the grid,
// deepening the search as the game approaches its endgame: the stage adjustment starts at
// 2 and drops to 1, then 0, as the biggest tile passes 4096 and 8192.
func computeDepth(g board.Grid, maxDepth uint8) uint8 {
	adjustment := 2
	switch {
	case g.BiggestTile() > 8192:
		adjustment = 0
	case g.BiggestTile() > 4096:
		adjustment = 1
	}

	depth := int(g.CountDistinctTiles()) - adjustment
	if depth < MinSearchDepth {
		depth = MinSearchDepth
	}
	if depth > int(maxDepth) {
		depth = int(maxDepth)
	}
	return uint8(depth)
}

// run carries the mutable state of a single search call: its cache and node counters.
// It is never shared across goroutines.
type run struct {
	minProbability float32
	cache          *cache
	stats          SearchStats
}

// player evaluates a grid reached after a player move, maximizing over the grid's own
// legal moves by recursing into chance at the same depth.
func (r *run) player(g board.Grid, p float32, depth uint8) float32 {
	r.stats.Nodes++

	if depth == 0 || p < r.minProbability {
		r.stats.Evals++
		return eval.Eval(g)
	}

	if v, pStar, ok := r.cache.read(g); ok && p <= pStar {
		r.stats.CacheHits++
		return v
	}

	if g.GameOver() {
		return 0
	}

	best := float32(math.NaN())
	it := g.PlayerMoves()
	for {
		_, next, ok := it.Next()
		if !ok {
			break
		}
		best = maxFloat32(best, r.chance(next, p, depth))
	}

	r.cache.write(g, p, best)
	return best
}

// chance evaluates a grid reached after a player move but before a new tile spawns: the
// expectation over every empty cell receiving a rank-1 tile (probability 0.9) or a rank-2
// tile (probability 0.1), recursing into player one ply shallower.
func (r *run) chance(g board.Grid, p float32, depth uint8) float32 {
	r.stats.Nodes++

	if depth == 0 {
		// Mirrors player's own depth==0 leaf check, for the one entry point -- the top
		// level -- that calls chance directly instead of through player.
		r.stats.Evals++
		return eval.Eval(g)
	}
	r.stats.Average++

	k := float32(g.CountEmpty())
	p2 := p * 0.9 / k
	p4 := p * 0.1 / k

	var s2 float32
	it2 := g.RandomMovesWith2()
	for {
		g2, ok := it2.Next()
		if !ok {
			break
		}
		s2 += r.player(g2, p2, depth-1)
	}

	var s4 float32
	it4 := g.RandomMovesWith4()
	for {
		g4, ok := it4.Next()
		if !ok {
			break
		}
		s4 += r.player(g4, p4, depth-1)
	}

	avg2 := s2 / k
	avg4 := s4 / k
	return 0.9*avg2 + 0.1*avg4
}

// maxFloat32 folds like f32::max: NaN is not a real candidate and is always superseded, so
// seeding a running max with NaN instead of 0 never biases the fold towards zero.
func maxFloat32(a, b float32) float32 {
	if math.IsNaN(float64(a)) {
		return b
	}
	if b > a {
		return b
	}
	return a
}
