// Package engine wraps the board and search packages into a stateful, turn-taking player:
// current grid, move history, and the knobs (depth, minimum probability) that govern the
// next search.
package engine

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/herohde/ai2048/pkg/board"
	"github.com/herohde/ai2048/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

// Options are search creation options.
type Options struct {
	// MaxDepth bounds the adaptive depth policy. Zero uses search.DefaultMaxSearchDepth.
	MaxDepth uint8
	// MinProbability is the branch cutoff probability below which a node is treated as a
	// leaf and replaced by its heuristic value.
	MinProbability float32
}

func (o Options) String() string {
	return fmt.Sprintf("{max_depth=%v, min_probability=%v}", o.MaxDepth, o.MinProbability)
}

// Engine encapsulates a single game in progress: the current grid, its history, and the
// search options used to pick the engine's own moves.
type Engine struct {
	name string

	seed int64
	opts Options

	g       board.Grid
	history []board.Grid
	rng     *rand.Rand

	mu sync.Mutex
}

// Option is an engine creation option.
type Option func(*Engine)

// WithOptions sets the default search options.
func WithOptions(opts Options) Option {
	return func(e *Engine) {
		e.opts = opts
	}
}

// WithSeed configures the engine to use the given random seed for tile spawns, instead of
// a seed derived from the current time.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.seed = seed
	}
}

// New creates an engine and resets it to a fresh, two-tile starting grid.
func New(ctx context.Context, name string, opts ...Option) *Engine {
	e := &Engine{
		name: name,
		opts: Options{MaxDepth: search.DefaultMaxSearchDepth, MinProbability: 1e-4},
	}
	for _, fn := range opts {
		fn(e)
	}
	e.Reset(ctx)

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

func (e *Engine) Options() Options {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.opts
}

func (e *Engine) SetMaxDepth(depth uint8) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts.MaxDepth = depth
}

func (e *Engine) SetMinProbability(p float32) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts.MinProbability = p
}

// Grid returns the current grid.
func (e *Engine) Grid() board.Grid {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.g
}

// Reset starts a new game: the empty grid with two random tiles spawned on it.
func (e *Engine) Reset(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.rng = rand.New(rand.NewSource(e.seed))
	e.history = nil

	g := board.Grid(0)
	g = g.AddRandomTile(e.rng)
	g = g.AddRandomTile(e.rng)
	e.g = g

	logw.Infof(ctx, "New game: %v", e.g)
}

// Move applies a player move and, if it changed the grid, spawns a new random tile.
// Returns false if the move is illegal (does not change the grid).
func (e *Engine) Move(ctx context.Context, m board.Move) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	next := e.g.MakeMove(m)
	if next == e.g {
		return false
	}

	e.history = append(e.history, e.g)
	e.g = next.AddRandomTile(e.rng)

	logw.Infof(ctx, "Move %v: %v", m, e.g)
	return true
}

// TakeBack undoes the latest move, if any.
func (e *Engine) TakeBack(ctx context.Context) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.history) == 0 {
		return false
	}

	e.g = e.history[len(e.history)-1]
	e.history = e.history[:len(e.history)-1]

	logw.Infof(ctx, "Takeback: %v", e.g)
	return true
}

// Analyze searches the current grid with the engine's configured options and returns the
// result. It does not mutate engine state.
func (e *Engine) Analyze(ctx context.Context) search.SearchResult {
	e.mu.Lock()
	g, opts := e.g, e.opts
	e.mu.Unlock()

	logw.Infof(ctx, "Analyze %v, opts=%v", g, opts)

	maxDepth := opts.MaxDepth
	if maxDepth == 0 {
		maxDepth = search.DefaultMaxSearchDepth
	}
	res := search.NewSearcher(opts.MinProbability, maxDepth).Search(g)

	logw.Infof(ctx, "Search %v: %v", g, res)
	return res
}

// GameOver reports whether the current grid has any legal move left.
func (e *Engine) GameOver() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.g.GameOver()
}
