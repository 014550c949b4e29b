package service

import (
	"log/slog"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

const noMove = -1

// BotService chooses the computer's move: win if possible, otherwise block,
// otherwise take the center, otherwise play a random empty cell.
type BotService interface {
	SuggestMove(board *entity.Board, computerMark, opponentMark entity.Mark) int
}

//go:generate mockery --name randSource --with-expecter --output ../../mocks/service --outpkg service
type randSource interface {
	IntN(n int) int
}

type botService struct {
	logger *slog.Logger
	rng    randSource
}

func NewBotService(logger *slog.Logger, rng randSource) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
		rng:    rng,
	}
}

// NewRandSource - returns a uniform generator for the random fallback. Zero seed means a random seed.
func NewRandSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64() //nolint: gosec // it's a game
	}
	return rand.New(rand.NewPCG(seed, ^seed)) //nolint: gosec // it's a game
}

// SuggestMove - must not be called on a full board; returns -1 in that case.
func (that *botService) SuggestMove(board *entity.Board, computerMark, opponentMark entity.Mark) int {
	grid := board.Snapshot()

	if cell, ok := FindWinningMove(grid, computerMark); ok {
		that.logger.Debug("move chosen", "rule", "win", "cell", cell)
		return cell
	}

	if cell, ok := FindWinningMove(grid, opponentMark); ok {
		that.logger.Debug("move chosen", "rule", "block", "cell", cell)
		return cell
	}

	if grid.Cell(entity.CenterCell) == entity.EmptyCell {
		that.logger.Debug("move chosen", "rule", "center", "cell", entity.CenterCell)
		return entity.CenterCell
	}

	availableCells := grid.EmptyCells()
	if len(availableCells) == 0 {
		that.logger.Error("no available moves")
		return noMove
	}

	cell := availableCells[that.rng.IntN(len(availableCells))]
	that.logger.Debug("move chosen", "rule", "random", "cell", cell)

	return cell
}

// FindWinningMove - returns the lowest empty cell where mark would complete a line.
func FindWinningMove(grid entity.Grid, mark entity.Mark) (int, bool) {
	for _, cell := range grid.EmptyCells() {
		if tictactoe.HasWon(grid.With(cell, mark), mark) {
			return cell, true
		}
	}
	return noMove, false
}
