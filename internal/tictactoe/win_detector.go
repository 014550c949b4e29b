package tictactoe

import "github.com/rocketscienceinc/tictactoe-cli/internal/entity"

// winCombos lists every line of the board: rows, columns, then both diagonals.
var winCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// HasWon - reports whether mark fills at least one full line of grid.
func HasWon(grid entity.Grid, mark entity.Mark) bool {
	if !mark.IsPlayer() {
		return false
	}

	for _, combo := range winCombos {
		if grid.Cell(combo[0]) == mark && grid.Cell(combo[1]) == mark && grid.Cell(combo[2]) == mark {
			return true
		}
	}

	return false
}
