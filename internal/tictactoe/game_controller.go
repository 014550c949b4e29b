package tictactoe

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// State of a game session.
type State int

const (
	AwaitingHumanMove State = iota
	AwaitingComputerMove
	Won
	Draw
)

func (that State) String() string {
	switch that {
	case AwaitingHumanMove:
		return "awaiting_human_move"
	case AwaitingComputerMove:
		return "awaiting_computer_move"
	case Won:
		return "won"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

func (that State) IsFinished() bool {
	return that == Won || that == Draw
}

// Result describes how a finished game ended. Winner is EmptyCell on a draw.
type Result struct {
	State  State
	Winner entity.Mark
	Moves  int
}

//go:generate mockery --name humanConsole --with-expecter --output ../../mocks/tictactoe --outpkg tictactoe
type humanConsole interface {
	// ReadMove blocks until the human picks an unoccupied cell.
	ReadMove(board *entity.Board) (int, error)
	AnnounceWinner(mark entity.Mark, board *entity.Board) error
	AnnounceDraw() error
}

//go:generate mockery --name moveAdvisor --with-expecter --output ../../mocks/tictactoe --outpkg tictactoe
type moveAdvisor interface {
	SuggestMove(board *entity.Board, computerMark, opponentMark entity.Mark) int
}

// GameController runs one game session between the human and the computer.
// The human always moves first, whichever mark they chose.
type GameController struct {
	logger *slog.Logger

	id       string
	board    *entity.Board
	human    entity.Player
	computer entity.Player

	advisor moveAdvisor
	console humanConsole

	state  State
	winner entity.Mark
	moves  int
}

func NewGameController(logger *slog.Logger, humanMark entity.Mark, advisor moveAdvisor, console humanConsole) *GameController {
	id := uuid.NewString()
	human, computer := entity.NewPlayers(humanMark)

	return &GameController{
		logger:   logger.With("component", "game_controller", "session", id),
		id:       id,
		board:    entity.NewBoard(),
		human:    human,
		computer: computer,
		advisor:  advisor,
		console:  console,
		state:    AwaitingHumanMove,
		winner:   entity.EmptyCell,
	}
}

func (that *GameController) ID() string {
	return that.id
}

func (that *GameController) State() State {
	return that.state
}

func (that *GameController) Winner() entity.Mark {
	return that.winner
}

func (that *GameController) Moves() int {
	return that.moves
}

func (that *GameController) Board() *entity.Board {
	return that.board
}

func (that *GameController) Human() entity.Player {
	return that.human
}

func (that *GameController) Computer() entity.Player {
	return that.computer
}

// Play - runs the game until somebody wins or the board is full, then announces the result.
func (that *GameController) Play() (Result, error) {
	that.logger.Info("game started", "human", that.human.Mark.String(), "computer", that.computer.Mark.String())

	for !that.state.IsFinished() {
		if _, err := that.Step(); err != nil {
			return that.result(), err
		}
	}

	if err := that.announce(); err != nil {
		return that.result(), fmt.Errorf("failed to announce result: %w", err)
	}

	that.logger.Info("game finished", "state", that.state.String(), "winner", that.winner.String(), "moves", that.moves)

	return that.result(), nil
}

// Step - performs exactly one transition of the state machine and returns the new state.
func (that *GameController) Step() (State, error) {
	switch that.state {
	case AwaitingHumanMove:
		cell, err := that.console.ReadMove(that.board)
		if err != nil {
			return that.state, fmt.Errorf("failed to read human move: %w", err)
		}

		if err = that.makeTurn(that.human, cell); err != nil {
			return that.state, fmt.Errorf("human failed to make turn: %w", err)
		}
	case AwaitingComputerMove:
		cell := that.advisor.SuggestMove(that.board, that.computer.Mark, that.human.Mark)

		if err := that.makeTurn(that.computer, cell); err != nil {
			return that.state, fmt.Errorf("computer failed to make turn: %w", err)
		}
	default:
		return that.state, apperror.ErrGameFinished
	}

	return that.state, nil
}

func (that *GameController) makeTurn(player entity.Player, cell int) error {
	if err := that.board.Place(cell, player.Mark); err != nil {
		return err
	}

	that.moves++
	that.logger.Debug("turn made", "mark", player.Mark.String(), "cell", cell, "moves", that.moves)

	that.updateGameStatus(player)

	return nil
}

// updateGameStatus - the win check runs first, so a winning ninth move is never a draw.
func (that *GameController) updateGameStatus(player entity.Player) {
	switch {
	case HasWon(that.board.Snapshot(), player.Mark):
		that.state = Won
		that.winner = player.Mark
	case that.moves == entity.CellsCount:
		that.state = Draw
	case player == that.human:
		that.state = AwaitingComputerMove
	default:
		that.state = AwaitingHumanMove
	}
}

func (that *GameController) announce() error {
	if that.state == Won {
		return that.console.AnnounceWinner(that.winner, that.board)
	}
	return that.console.AnnounceDraw()
}

func (that *GameController) result() Result {
	return Result{
		State:  that.state,
		Winner: that.winner,
		Moves:  that.moves,
	}
}
