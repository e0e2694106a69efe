// Command batch plays a fixed number of independent games in parallel and aggregates the
// outcomes: a histogram by biggest tile reached, mean moves per game, and mean wall clock
// per game. Each game runs to completion with its own engine and random seed; no state is
// shared between games.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/herohde/ai2048/pkg/board"
	"github.com/herohde/ai2048/pkg/search"
	"github.com/seekerror/logw"
)

var (
	games          = flag.Int("games", 100, "number of games to play")
	workers        = flag.Int("workers", 8, "number of games to run concurrently")
	maxDepth       = flag.Uint("depth", 8, "maximum search depth")
	minProbability = flag.Float64("min-probability", 1e-3, "branch cutoff probability")
	seed           = flag.Int64("seed", 1, "base random seed; game i uses seed+i")
)

type outcome struct {
	biggest uint32
	moves   int
	elapsed time.Duration
}

func main() {
	flag.Parse()
	ctx := context.Background()

	logw.Infof(ctx, "Playing %v games, %v workers, depth=%v, min_probability=%v", *games, *workers, *maxDepth, *minProbability)

	results := playAll(ctx, *games, *workers, uint8(*maxDepth), float32(*minProbability), *seed)
	summarize(results)
}

func playAll(ctx context.Context, games, workers int, maxDepth uint8, minProbability float32, baseSeed int64) []outcome {
	sem := make(chan struct{}, workers)
	results := make([]outcome, games)

	var wg sync.WaitGroup
	for i := 0; i < games; i++ {
		wg.Add(1)
		sem <- struct{}{}

		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			results[i] = playOne(maxDepth, minProbability, baseSeed+int64(i))
		}(i)
	}
	wg.Wait()

	logw.Infof(ctx, "Played %v games", games)
	return results
}

func playOne(maxDepth uint8, minProbability float32, seed int64) outcome {
	rng := rand.New(rand.NewSource(seed))
	s := search.NewSearcher(minProbability, maxDepth)

	g := board.Grid(0)
	g = g.AddRandomTile(rng)
	g = g.AddRandomTile(rng)

	start := time.Now()
	moves := 0
	for !g.GameOver() {
		res := s.Search(g)
		m, ok := res.BestMove.V()
		if !ok {
			break
		}

		g = g.MakeMove(m).AddRandomTile(rng)
		moves++
	}

	return outcome{biggest: g.BiggestTile(), moves: moves, elapsed: time.Since(start)}
}

func summarize(results []outcome) {
	histogram := make(map[uint32]int)
	var totalMoves int
	var totalElapsed time.Duration

	for _, o := range results {
		histogram[o.biggest]++
		totalMoves += o.moves
		totalElapsed += o.elapsed
	}

	var tiles []uint32
	for tile := range histogram {
		tiles = append(tiles, tile)
	}
	sort.Slice(tiles, func(i, j int) bool { return tiles[i] > tiles[j] })

	fmt.Println("biggest tile histogram:")
	for _, tile := range tiles {
		fmt.Printf("  %6d: %d\n", tile, histogram[tile])
	}

	n := len(results)
	fmt.Printf("mean moves:  %.1f\n", float64(totalMoves)/float64(n))
	fmt.Printf("mean elapsed: %v\n", totalElapsed/time.Duration(n))
}
