//go:build js && wasm

// Command wasm exposes the board and search packages to JavaScript: a flat 16-element
// grid in, a best-move enumeration value out. It carries no design of its own, only glue.
package main

import (
	"syscall/js"

	"github.com/herohde/ai2048/pkg/board"
	"github.com/herohde/ai2048/pkg/search"
)

// noMove is returned when the grid is already game-over: it is not one of board.Left..Down
// (0..3), so JavaScript can distinguish it from a real move.
const noMove = 255

func ai2048EvaluatePosition(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return js.ValueOf(noMove)
	}

	grid, ok := gridFromJS(args[0])
	if !ok {
		return js.ValueOf(noMove)
	}

	minProbability := float32(1e-4)
	maxDepth := uint8(search.DefaultMaxSearchDepth)
	if len(args) > 1 {
		minProbability = float32(args[1].Float())
	}
	if len(args) > 2 {
		maxDepth = uint8(args[2].Int())
	}

	res := search.NewSearcher(minProbability, maxDepth).Search(grid)
	m, ok := res.BestMove.V()
	if !ok {
		return js.ValueOf(noMove)
	}
	return js.ValueOf(int(m))
}

// gridFromJS reads a flat 16-element column-major array of tile values: index i is
// column i/4, row i%4.
func gridFromJS(v js.Value) (board.Grid, bool) {
	if v.Length() != 16 {
		return 0, false
	}

	var human [4][4]uint32
	for i := 0; i < 16; i++ {
		col := i / 4
		row := i % 4
		human[row][col] = uint32(v.Index(i).Int())
	}
	return board.FromHuman(human)
}

func main() {
	c := make(chan struct{})
	println("ai2048 engine initialized")
	js.Global().Set("ai2048EvaluatePosition", js.FuncOf(ai2048EvaluatePosition))
	<-c
}
