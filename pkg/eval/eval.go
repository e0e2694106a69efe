// Package eval sums the precomputed row heuristic across a grid's rows and its
// transpose's rows to score a position. All of the per-row weighting lives in
// board.Row.Eval/TableHeuristic; this package only performs the summation.
package eval

import "github.com/herohde/ai2048/pkg/board"

// Eval returns the heuristic value of a grid: eight table lookups (its four rows and the
// four rows of its transpose) and seven adds. Higher is better for the player.
func Eval(g board.Grid) float32 {
	var sum float32
	for _, r := range g.Rows() {
		sum += r.TableHeuristic()
	}
	for _, r := range g.Transpose().Rows() {
		sum += r.TableHeuristic()
	}
	return sum
}
