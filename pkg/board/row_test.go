package board_test

import (
	"testing"

	"github.com/herohde/ai2048/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestRow_ReverseIsInvolution(t *testing.T) {
	for i := 0; i < 65536; i++ {
		r := board.Row(i)
		assert.Equal(t, r, r.Reverse().Reverse(), "row %d", i)
	}
}

func TestRow_SlideLeftSlideRightAgreeWithTables(t *testing.T) {
	for i := 0; i < 65536; i++ {
		r := board.Row(i)
		g := board.FromRows([4]board.Row{r, 0, 0, 0})
		assert.Equal(t, r.SlideLeft(), g.MakeMove(board.Left).Rows()[0], "slide_left vs table %d", i)
		assert.Equal(t, r.Reverse().SlideLeft().Reverse(), r.SlideRight(), "slide_right via reverse %d", i)
		assert.Equal(t, r.SlideRight(), g.MakeMove(board.Right).Rows()[0], "slide_right vs table %d", i)
	}
}

func TestRow_SlideLeftMergesOnce(t *testing.T) {
	tests := []struct {
		in, out [4]uint8
	}{
		{[4]uint8{1, 1, 1, 1}, [4]uint8{2, 2, 0, 0}},
		{[4]uint8{1, 1, 1, 0}, [4]uint8{2, 1, 0, 0}},
		{[4]uint8{0, 2, 2, 2}, [4]uint8{3, 2, 0, 0}},
		{[4]uint8{1, 0, 1, 0}, [4]uint8{2, 0, 0, 0}},
		{[4]uint8{0, 0, 0, 0}, [4]uint8{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		r, ok := board.PackRow(tt.in)
		assert.True(t, ok)
		want, ok := board.PackRow(tt.out)
		assert.True(t, ok)
		assert.Equal(t, want, r.SlideLeft(), "slide_left(%v)", tt.in)
	}
}

func TestRow_SlideLeftSaturatesAtMaxRank(t *testing.T) {
	in := [4]uint8{board.MaxTileRank, board.MaxTileRank, 0, 0}
	r, ok := board.PackRow(in)
	assert.True(t, ok)
	out := r.SlideLeft().Unpack()
	assert.Equal(t, uint8(board.MaxTileRank), out[0])
}

func TestRow_PackRow_RejectsOutOfRangeRank(t *testing.T) {
	_, ok := board.PackRow([4]uint8{board.MaxTileRank + 1, 0, 0, 0})
	assert.False(t, ok)
}

func TestRow_TableHeuristicAgreesWithEval(t *testing.T) {
	for i := 0; i < 65536; i++ {
		r := board.Row(i)
		assert.Equal(t, r.Eval(), r.TableHeuristic(), "row %d", i)
	}
}
