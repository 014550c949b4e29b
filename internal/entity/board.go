package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const (
	BoardSize  = 3
	CellsCount = BoardSize * BoardSize

	CenterCell = 4
)

// Grid is a 3x3 view of the board. It is a value type: assigning or passing it copies every cell.
type Grid [BoardSize][BoardSize]Mark

// CellPosition - converts a cell index into row and column.
func CellPosition(cell int) (row, column int) {
	return cell / BoardSize, cell % BoardSize
}

func IsValidCell(cell int) bool {
	return cell >= 0 && cell < CellsCount
}

// Cell - returns the mark at cell, EmptyCell for an index outside the grid.
func (that Grid) Cell(cell int) Mark {
	if !IsValidCell(cell) {
		return EmptyCell
	}
	row, column := CellPosition(cell)
	return that[row][column]
}

// With - returns a copy of the grid with mark placed at cell. The receiver is not modified,
// and an index outside the grid yields an unchanged copy.
func (that Grid) With(cell int, mark Mark) Grid {
	if !IsValidCell(cell) {
		return that
	}
	row, column := CellPosition(cell)
	that[row][column] = mark
	return that
}

// EmptyCells - returns indexes of all empty cells in ascending order.
func (that Grid) EmptyCells() []int {
	cells := make([]int, 0, CellsCount)
	for cell := range CellsCount {
		if that.Cell(cell) == EmptyCell {
			cells = append(cells, cell)
		}
	}
	return cells
}

// Board holds the state of a single game. It starts empty and is never reset.
type Board struct {
	grid   Grid
	filled int
}

func NewBoard() *Board {
	return &Board{}
}

func (that *Board) IsOccupied(cell int) (bool, error) {
	if !IsValidCell(cell) {
		return false, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	return that.grid.Cell(cell) != EmptyCell, nil
}

// Place - puts mark into an empty cell.
func (that *Board) Place(cell int, mark Mark) error {
	if !mark.IsPlayer() {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidMark, mark)
	}

	occupied, err := that.IsOccupied(cell)
	if err != nil {
		return err
	}

	if occupied {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that.grid = that.grid.With(cell, mark)
	that.filled++

	return nil
}

// Cell - returns the mark at cell, EmptyCell for an index outside the board.
func (that *Board) Cell(cell int) Mark {
	return that.grid.Cell(cell)
}

func (that *Board) Snapshot() Grid {
	return that.grid
}

func (that *Board) EmptyCells() []int {
	return that.grid.EmptyCells()
}

func (that *Board) Filled() int {
	return that.filled
}

func (that *Board) IsFull() bool {
	return that.filled == CellsCount
}
