// Package console implements a line-oriented terminal driver for playing and analyzing
// games, in the vein of a debugging REPL rather than a polished TUI: it clears nothing
// fancy, just prints the grid after each command that shows or changes it, and the search
// breakdown after each analysis.
package console

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/herohde/ai2048/pkg/board"
	"github.com/herohde/ai2048/pkg/engine"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"
)

const ProtocolName = "console"

// Driver implements a console driver: it reads one command per line from in and writes
// formatted output to the returned channel.
type Driver struct {
	iox.AsyncCloser

	e *engine.Engine

	out chan<- string

	active atomic.Bool // an engine move is pending
}

func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		AsyncCloser: iox.NewAsyncCloser(),
		e:           e,
		out:         out,
	}
	go d.process(ctx, in)

	return d, out
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "Console protocol initialized")

	d.out <- fmt.Sprintf("engine %v", d.e.Name())
	d.printBoard(ctx)

	for {
		select {
		case line, ok := <-in:
			if !ok {
				logw.Infof(ctx, "Input stream broken. Exiting")
				return
			}

			parts := strings.Split(strings.TrimSpace(line), " ")
			if len(parts) == 0 {
				break
			}

			cmd := parts[0]
			args := parts[1:]

			switch strings.ToLower(cmd) {
			case "reset", "r":
				d.e.Reset(ctx)
				d.printBoard(ctx)

			case "undo", "u":
				d.e.TakeBack(ctx)
				d.printBoard(ctx)

			case "print", "p":
				d.printBoard(ctx)

			case "analyze", "a", "go", "g":
				d.analyzeAndMove(ctx)

			case "depth", "d":
				if len(args) > 0 {
					depth, _ := strconv.Atoi(args[0])
					d.e.SetMaxDepth(uint8(depth))
				}

			case "probability": // minimum branch probability, e.g. "probability 0.0001"
				if len(args) > 0 {
					p, _ := strconv.ParseFloat(args[0], 32)
					d.e.SetMinProbability(float32(p))
				}

			case "left", "l":
				d.applyMove(ctx, board.Left)
			case "right":
				d.applyMove(ctx, board.Right)
			case "up":
				d.applyMove(ctx, board.Up)
			case "down":
				d.applyMove(ctx, board.Down)

			case "quit", "exit", "q":
				return

			case "":
				// ignore empty command

			default:
				d.out <- fmt.Sprintf("unrecognized command: '%v'", cmd)
			}

		case <-d.Closed():
			logw.Infof(ctx, "Driver closed")
			return
		}
	}
}

func (d *Driver) applyMove(ctx context.Context, m board.Move) {
	if !d.e.Move(ctx, m) {
		d.out <- fmt.Sprintf("illegal move: %v", m)
		return
	}
	d.printBoard(ctx)
}

// analyzeAndMove runs a search, prints the per-move breakdown, and -- if a best move
// exists -- applies it, mirroring a self-playing engine turn.
func (d *Driver) analyzeAndMove(ctx context.Context) {
	res := d.e.Analyze(ctx)

	d.out <- fmt.Sprintf("depth=%v min_probability~%v stats=%v", res.Depth, d.e.Options().MinProbability, res.Stats)

	var sub []moveScore
	for m, s := range res.MoveEvaluations {
		sub = append(sub, moveScore{m: m, s: s})
	}
	sort.Sort(byScore(sub))
	for i, ms := range sub {
		d.out <- fmt.Sprintf(" %2d. %v\t%v", i+1, ms.m, ms.s)
	}

	if m, ok := res.BestMove.V(); ok {
		d.out <- fmt.Sprintf("bestmove %v", m)
		d.applyMove(ctx, m)
		return
	}
	d.out <- "game over"
}

func (d *Driver) printBoard(ctx context.Context) {
	g := d.e.Grid()

	d.out <- ""
	d.out <- strings.TrimRight(g.String(), "\n")
	d.out <- fmt.Sprintf("biggest: %v, empty: %v, distinct: %v, game_over: %v", g.BiggestTile(), g.CountEmpty(), g.CountDistinctTiles(), g.GameOver())
	d.out <- ""
}

type moveScore struct {
	m board.Move
	s float32
}

// byScore orders moves by descending evaluation.
type byScore []moveScore

func (b byScore) Len() int           { return len(b) }
func (b byScore) Less(i, j int) bool { return b[i].s > b[j].s }
func (b byScore) Swap(i, j int)      { b[i], b[j] = b[j], b[i] }
