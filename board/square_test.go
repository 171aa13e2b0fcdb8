package board_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridboard/board"
)

// TestNewSquareBoard_Errors verifies that non-positive widths and widths whose
// square overflows int are rejected.
func TestNewSquareBoard_Errors(t *testing.T) {
	for _, w := range []int{0, -1, -10, math.MinInt, math.MaxInt, math.MaxInt / 2} {
		b, err := board.NewSquareBoard(w)
		if !errors.Is(err, board.ErrBadWidth) {
			t.Errorf("NewSquareBoard(%d) error = %v; want %v", w, err, board.ErrBadWidth)
		}
		if b != nil {
			t.Errorf("NewSquareBoard(%d) = %v; want nil board", w, b)
		}
	}
}

// TestAllCells_Size checks |AllCells| == W² for a range of widths.
func TestAllCells_Size(t *testing.T) {
	for w := 1; w <= 8; w++ {
		b, err := board.NewSquareBoard(w)
		require.NoError(t, err)
		assert.Len(t, b.AllCells(), w*w, "width %d", w)
		assert.Equal(t, w*w, b.Size())
	}
}

type SquareBoardSuite struct {
	suite.Suite
	b *board.SquareBoard
}

func (s *SquareBoardSuite) SetupTest() {
	b, err := board.NewSquareBoard(3)
	s.Require().NoError(err)
	s.b = b
}

func (s *SquareBoardSuite) TestAllCells_RowMajor() {
	want := []board.Cell{
		{1, 1}, {1, 2}, {1, 3},
		{2, 1}, {2, 2}, {2, 3},
		{3, 1}, {3, 2}, {3, 3},
	}
	s.Equal(want, s.b.AllCells())
	s.Equal(s.b.AllCells(), s.b.AllCells(), "enumeration must be restartable")

	var fromIter []board.Cell
	for c := range s.b.Cells() {
		fromIter = append(fromIter, c)
	}
	s.Equal(want, fromIter)
}

func (s *SquareBoardSuite) TestAllCells_CopyIsolated() {
	cells := s.b.AllCells()
	cells[0] = board.Cell{I: 9, J: 9}
	s.Equal(board.Cell{I: 1, J: 1}, s.b.AllCells()[0])
}

func (s *SquareBoardSuite) TestCellOrNull_Bounds() {
	for i := -1; i <= 5; i++ {
		for j := -1; j <= 5; j++ {
			c, ok := s.b.CellOrNull(i, j)
			inside := i >= 1 && i <= 3 && j >= 1 && j <= 3
			s.Equal(inside, ok, "CellOrNull(%d,%d)", i, j)
			if inside {
				s.Equal(board.Cell{I: i, J: j}, c)
				s.Equal(c, s.b.Cell(i, j))
			}
		}
	}
}

func (s *SquareBoardSuite) TestCell_PanicsOutOfBounds() {
	s.Panics(func() { s.b.Cell(0, 1) })
	s.Panics(func() { s.b.Cell(1, 4) })
	s.Panics(func() { s.b.Cell(4, 4) })
}

func (s *SquareBoardSuite) TestNeighbour_MatchesCellOrNull() {
	for _, c := range s.b.AllCells() {
		for _, d := range board.Directions() {
			di, dj := d.Delta()
			wantCell, wantOK := s.b.CellOrNull(c.I+di, c.J+dj)
			got, ok := s.b.Neighbour(c, d)
			s.Equal(wantOK, ok, "%v %v", c, d)
			s.Equal(wantCell, got, "%v %v", c, d)
		}
	}
}

func (s *SquareBoardSuite) TestNeighbour_Scenario() {
	left, ok := s.b.Neighbour(s.b.Cell(2, 2), board.Left)
	s.True(ok)
	s.Equal(s.b.Cell(2, 1), left)

	_, ok = s.b.Neighbour(s.b.Cell(1, 1), board.Up)
	s.False(ok)
	_, ok = s.b.Neighbour(s.b.Cell(3, 3), board.Right)
	s.False(ok)
	_, ok = s.b.Neighbour(s.b.Cell(3, 3), board.Down)
	s.False(ok)
}

func (s *SquareBoardSuite) TestNeighbours() {
	s.Equal([]board.Cell{{2, 1}, {1, 2}}, s.b.Neighbours(s.b.Cell(1, 1)))
	s.Equal([]board.Cell{{1, 2}, {3, 2}, {2, 1}, {2, 3}}, s.b.Neighbours(s.b.Cell(2, 2)))
}

func (s *SquareBoardSuite) TestRow() {
	row, err := s.b.Row(2, board.Span(1, 3))
	s.Require().NoError(err)
	s.Equal([]board.Cell{{2, 1}, {2, 2}, {2, 3}}, row)

	row, err = s.b.Row(1, board.DownTo(3, 2))
	s.Require().NoError(err)
	s.Equal([]board.Cell{{1, 3}, {1, 2}}, row)

	row, err = s.b.Row(3, board.Span(2, 10))
	s.Require().NoError(err)
	s.Equal([]board.Cell{{3, 2}, {3, 3}}, row, "upper bound clamps to width")

	row, err = s.b.Row(3, board.DownTo(7, 2))
	s.Require().NoError(err)
	s.Equal([]board.Cell{{3, 3}, {3, 2}}, row, "descending start clamps to width")

	row, err = s.b.Row(1, board.Span(5, 7))
	s.Require().NoError(err)
	s.Empty(row)
}

func (s *SquareBoardSuite) TestColumn() {
	col, err := s.b.Column(board.Span(1, 3), 3)
	s.Require().NoError(err)
	s.Equal([]board.Cell{{1, 3}, {2, 3}, {3, 3}}, col)

	col, err = s.b.Column(board.DownTo(3, 1), 1)
	s.Require().NoError(err)
	s.Equal([]board.Cell{{3, 1}, {2, 1}, {1, 1}}, col)

	col, err = s.b.Column(board.Span(2, 99), 2)
	s.Require().NoError(err)
	s.Equal([]board.Cell{{2, 2}, {3, 2}}, col)
}

func (s *SquareBoardSuite) TestRowColumn_Errors() {
	_, err := s.b.Row(0, board.Span(1, 3))
	s.ErrorIs(err, board.ErrOutOfRange)
	_, err = s.b.Row(4, board.Span(1, 3))
	s.ErrorIs(err, board.ErrOutOfRange)
	_, err = s.b.Column(board.Span(1, 3), 0)
	s.ErrorIs(err, board.ErrOutOfRange)

	_, err = s.b.Row(1, board.Span(0, 3))
	s.ErrorIs(err, board.ErrRangeStart)
	_, err = s.b.Column(board.DownTo(2, -1), 1)
	s.ErrorIs(err, board.ErrRangeStart)

	_, err = s.b.Row(1, board.Progression{First: 1, Last: 3})
	s.ErrorIs(err, board.ErrBadStep)

	// -math.MinInt overflows, so the step cannot be clamped to the width.
	row, err := s.b.Row(1, board.Progression{First: 5, Last: 1, Step: math.MinInt})
	s.ErrorIs(err, board.ErrBadStep)
	s.Nil(row)
	_, err = s.b.Column(board.Progression{First: 5, Last: 1, Step: math.MinInt}, 2)
	s.ErrorIs(err, board.ErrBadStep)
}

func (s *SquareBoardSuite) TestRowColumn_LargeStepsStayOnBoard() {
	row, err := s.b.Row(1, board.Progression{First: math.MaxInt, Last: 1, Step: -(math.MaxInt - 1)})
	s.Require().NoError(err)
	s.Equal([]board.Cell{{1, 1}}, row)

	col, err := s.b.Column(board.Progression{First: 2, Last: math.MaxInt, Step: math.MaxInt}, 3)
	s.Require().NoError(err)
	s.Equal([]board.Cell{{2, 3}}, col)

	row, err = s.b.Row(2, board.DownTo(math.MaxInt, 1))
	s.Require().NoError(err)
	s.Equal([]board.Cell{{2, 3}, {2, 2}, {2, 1}}, row)
}

func (s *SquareBoardSuite) TestIndex_RoundTrip() {
	for idx, c := range s.b.AllCells() {
		s.Equal(idx, s.b.Index(c))
		s.Equal(c, s.b.CellAt(idx))
	}
	s.False(s.b.Contains(board.Cell{I: 0, J: 2}))
	s.Panics(func() { s.b.Index(board.Cell{I: 4, J: 1}) })
	s.Panics(func() { s.b.CellAt(9) })
}

func TestSquareBoardSuite(t *testing.T) {
	suite.Run(t, new(SquareBoardSuite))
}

// TestRow_ClampsToWidth2 is the width-2 clamping scenario.
func TestRow_ClampsToWidth2(t *testing.T) {
	b, err := board.NewSquareBoard(2)
	require.NoError(t, err)
	row, err := b.Row(1, board.Span(1, 5))
	require.NoError(t, err)
	assert.Equal(t, []board.Cell{{1, 1}, {1, 2}}, row)
}

// TestRow_FullWidth checks Row(i, 1..W) returns exactly W cells in column order.
func TestRow_FullWidth(t *testing.T) {
	const w = 6
	b, err := board.NewSquareBoard(w)
	require.NoError(t, err)
	for i := 1; i <= w; i++ {
		row, err := b.Row(i, board.Span(1, w))
		require.NoError(t, err)
		require.Len(t, row, w)
		for k, c := range row {
			assert.Equal(t, board.Cell{I: i, J: k + 1}, c)
		}
	}
}
