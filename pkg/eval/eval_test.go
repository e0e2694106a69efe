package eval_test

import (
	"testing"

	"github.com/herohde/ai2048/pkg/board"
	"github.com/herohde/ai2048/pkg/eval"
	"github.com/stretchr/testify/assert"
)

func TestEval_SumsRowAndColumnHeuristic(t *testing.T) {
	g, ok := board.FromHuman([4][4]uint32{{2, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 4}})
	assert.True(t, ok)

	var want float32
	for _, r := range g.Rows() {
		want += r.TableHeuristic()
	}
	for _, r := range g.Transpose().Rows() {
		want += r.TableHeuristic()
	}
	assert.Equal(t, want, eval.Eval(g))
}

func TestEval_EmptyGridIsSymmetric(t *testing.T) {
	assert.Equal(t, eval.Eval(board.Grid(0)), eval.Eval(board.Grid(0).Transpose()))
}
