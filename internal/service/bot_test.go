package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	mockedService "github.com/rocketscienceinc/tictactoe-cli/mocks/service"
	"github.com/rocketscienceinc/tictactoe-cli/testing/suite"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

// boardOf - builds a board from nine marks listed row by row.
func boardOf(t *testing.T, marks ...entity.Mark) *entity.Board {
	t.Helper()
	require.Len(t, marks, entity.CellsCount)

	board := entity.NewBoard()
	for cell, mark := range marks {
		if mark != e {
			require.NoError(t, board.Place(cell, mark))
		}
	}
	return board
}

func TestBotService_SuggestMove(t *testing.T) {
	t.Run("Wins even when a block and the center are available", func(t *testing.T) {
		// Given: O can finish the bottom row, X threatens the top row, the center is free
		st := suite.New(t)
		bot := NewBotService(st.Logger, mockedService.NewMockrandSource(t))
		board := boardOf(t,
			x, x, e,
			e, e, e,
			o, o, e,
		)

		// When: the computer playing O picks a move
		cell := bot.SuggestMove(board, o, x)

		// Then: it completes its own line
		assert.Equal(t, 8, cell)
	})

	t.Run("Takes the lowest winning cell", func(t *testing.T) {
		// Given: O can win at 5, 6 and 8
		st := suite.New(t)
		bot := NewBotService(st.Logger, mockedService.NewMockrandSource(t))
		board := boardOf(t,
			o, x, x,
			o, o, e,
			e, x, e,
		)

		cell := bot.SuggestMove(board, o, x)

		assert.Equal(t, 5, cell)
	})

	t.Run("Blocks the opponent instead of taking the center", func(t *testing.T) {
		// Given: X threatens the top row and O cannot win
		st := suite.New(t)
		bot := NewBotService(st.Logger, mockedService.NewMockrandSource(t))
		board := boardOf(t,
			x, x, e,
			e, e, e,
			e, e, o,
		)

		// When: the computer playing O picks a move
		cell := bot.SuggestMove(board, o, x)

		// Then: it blocks at cell 2
		assert.Equal(t, 2, cell)
	})

	t.Run("Blocks the lowest threat", func(t *testing.T) {
		// Given: X threatens cells 2 and 6
		st := suite.New(t)
		bot := NewBotService(st.Logger, mockedService.NewMockrandSource(t))
		board := boardOf(t,
			x, x, e,
			x, o, e,
			e, e, o,
		)

		cell := bot.SuggestMove(board, o, x)

		assert.Equal(t, 2, cell)
	})

	t.Run("Takes the center on an empty board", func(t *testing.T) {
		st := suite.New(t)
		bot := NewBotService(st.Logger, mockedService.NewMockrandSource(t))

		cell := bot.SuggestMove(entity.NewBoard(), x, o)

		assert.Equal(t, entity.CenterCell, cell)
	})

	t.Run("Takes the center after a corner opening", func(t *testing.T) {
		st := suite.New(t)
		bot := NewBotService(st.Logger, mockedService.NewMockrandSource(t))
		board := boardOf(t,
			x, e, e,
			e, e, e,
			e, e, e,
		)

		cell := bot.SuggestMove(board, o, x)

		assert.Equal(t, entity.CenterCell, cell)
	})

	t.Run("Picks a random empty cell when no rule applies", func(t *testing.T) {
		// Given: X holds the center and nobody threatens a line
		st := suite.New(t)
		rng := mockedService.NewMockrandSource(t)
		bot := NewBotService(st.Logger, rng)
		board := boardOf(t,
			e, e, e,
			e, x, e,
			e, e, e,
		)

		// the eight empty cells are 0, 1, 2, 3, 5, 6, 7, 8
		rng.EXPECT().IntN(8).Return(5).Once()

		// When: the computer playing O picks a move
		cell := bot.SuggestMove(board, o, x)

		// Then: the sixth empty cell is chosen
		assert.Equal(t, 6, cell)
	})

	t.Run("Random choice is always an empty cell", func(t *testing.T) {
		st := suite.New(t)
		bot := NewBotService(st.Logger, NewRandSource(42))
		board := boardOf(t,
			x, o, e,
			e, x, e,
			e, e, o,
		)
		empty := board.EmptyCells()

		for range 50 {
			cell := bot.SuggestMove(board, o, x)
			assert.Contains(t, empty, cell)
		}
	})

	t.Run("Does not touch the board", func(t *testing.T) {
		st := suite.New(t)
		bot := NewBotService(st.Logger, mockedService.NewMockrandSource(t))
		board := boardOf(t,
			x, x, e,
			e, o, e,
			e, e, e,
		)
		before := board.Snapshot()

		bot.SuggestMove(board, o, x)

		assert.Equal(t, before, board.Snapshot())
		assert.Equal(t, 3, board.Filled())
	})

	t.Run("Returns -1 on a full board", func(t *testing.T) {
		st := suite.New(t)
		bot := NewBotService(st.Logger, mockedService.NewMockrandSource(t))
		board := boardOf(t,
			x, o, x,
			x, o, o,
			o, x, x,
		)

		cell := bot.SuggestMove(board, o, x)

		assert.Equal(t, -1, cell)
	})
}

func TestFindWinningMove(t *testing.T) {
	tests := []struct {
		name  string
		grid  entity.Grid
		mark  entity.Mark
		cell  int
		found bool
	}{
		{
			name:  "Empty board",
			grid:  entity.Grid{},
			mark:  x,
			cell:  -1,
			found: false,
		},
		{
			name:  "Row",
			grid:  entity.Grid{{x, x, e}, {o, o, e}, {e, e, e}},
			mark:  x,
			cell:  2,
			found: true,
		},
		{
			name:  "Column",
			grid:  entity.Grid{{x, o, e}, {x, o, e}, {e, e, e}},
			mark:  o,
			cell:  7,
			found: true,
		},
		{
			name:  "Anti-diagonal",
			grid:  entity.Grid{{e, e, o}, {e, o, e}, {e, e, e}},
			mark:  o,
			cell:  6,
			found: true,
		},
		{
			name:  "Only the opponent can win",
			grid:  entity.Grid{{x, x, e}, {e, e, e}, {e, e, e}},
			mark:  o,
			cell:  -1,
			found: false,
		},
		{
			name:  "Full board",
			grid:  entity.Grid{{x, o, x}, {x, o, o}, {o, x, x}},
			mark:  x,
			cell:  -1,
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell, found := FindWinningMove(tt.grid, tt.mark)

			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.cell, cell)
		})
	}
}
