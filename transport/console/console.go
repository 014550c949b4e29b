package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	welcomeMessage      = "Welcome to Tic-tac-toe! Please choose your mark (1 for X or 0 for O): "
	movePrompt          = "Please enter your move (0-8): "
	invalidInputMessage = "Invalid input. Please enter a number between %d and %d:"
	occupiedCellMessage = "That cell is already occupied. Choose another one."
	currentBoardHeader  = "Current Board:"
	winMessage          = "%s wins!"
	tieMessage          = "No one won"

	cellSeparator = " | "
)

// boardNumbering is shown before every human move.
const boardNumbering = `0 | 1 | 2
3 | 4 | 5
6 | 7 | 8
`

// Console is the line-oriented text interface of the game.
// Every message is written on its own line.
type Console struct {
	logger *slog.Logger

	reader *bufio.Reader
	out    io.Writer
}

func New(logger *slog.Logger, in io.Reader, out io.Writer) *Console {
	return &Console{
		logger: logger.With("component", "console"),
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// ChooseMark - greets the human and asks which mark they want to play with.
func (that *Console) ChooseMark() (entity.Mark, error) {
	if err := that.println(welcomeMessage); err != nil {
		return entity.EmptyCell, err
	}

	choice, err := that.ReadIntInRange(entity.ChoiceO, entity.ChoiceX)
	if err != nil {
		return entity.EmptyCell, fmt.Errorf("failed to read mark choice: %w", err)
	}

	return entity.MarkFromChoice(choice)
}

// ReadMove - shows the numbering and the board, then asks until an unoccupied cell is entered.
func (that *Console) ReadMove(board *entity.Board) (int, error) {
	if err := that.println(boardNumbering); err != nil {
		return 0, err
	}

	if err := that.println(currentBoardHeader); err != nil {
		return 0, err
	}

	if err := that.PrintBoard(board); err != nil {
		return 0, err
	}

	for {
		if err := that.println(movePrompt); err != nil {
			return 0, err
		}

		cell, err := that.ReadIntInRange(0, entity.CellsCount-1)
		if err != nil {
			return 0, fmt.Errorf("failed to read move: %w", err)
		}

		occupied, err := board.IsOccupied(cell)
		if err != nil {
			return 0, err
		}

		if !occupied {
			return cell, nil
		}

		that.logger.Debug("occupied cell selected", "cell", cell)

		if err = that.println(occupiedCellMessage); err != nil {
			return 0, err
		}
	}
}

// ReadIntInRange - reads lines until one holds an integer within [lower, upper].
func (that *Console) ReadIntInRange(lower, upper int) (int, error) {
	for {
		line, err := that.readLine()
		if err != nil {
			return 0, err
		}

		if value, ok := parseDigits(line); ok && value >= lower && value <= upper {
			return value, nil
		}

		that.logger.Debug("invalid input", "input", line, "lower", lower, "upper", upper)

		if err = that.println(fmt.Sprintf(invalidInputMessage, lower, upper)); err != nil {
			return 0, err
		}
	}
}

func (that *Console) AnnounceWinner(mark entity.Mark, board *entity.Board) error {
	if err := that.println(fmt.Sprintf(winMessage, mark)); err != nil {
		return err
	}

	return that.PrintBoard(board)
}

func (that *Console) AnnounceDraw() error {
	return that.println(tieMessage)
}

// PrintBoard - writes one line per row, cells separated by " | ".
func (that *Console) PrintBoard(board *entity.Board) error {
	for _, row := range RenderBoard(board.Snapshot()) {
		if err := that.println(row); err != nil {
			return err
		}
	}

	return nil
}

// RenderBoard - returns the text rows of the grid.
func RenderBoard(grid entity.Grid) []string {
	rows := make([]string, 0, entity.BoardSize)
	for _, row := range grid {
		marks := make([]string, 0, entity.BoardSize)
		for _, mark := range row {
			marks = append(marks, mark.String())
		}
		rows = append(rows, strings.Join(marks, cellSeparator))
	}

	return rows
}

// readLine - returns the next line without its line ending. A line that does not fit
// the read buffer is discarded and returned as "", which never parses as a number.
func (that *Console) readLine() (string, error) {
	line, isPrefix, err := that.reader.ReadLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", apperror.ErrInputClosed
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	if !isPrefix {
		return string(line), nil
	}

	for isPrefix {
		if _, isPrefix, err = that.reader.ReadLine(); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return "", fmt.Errorf("failed to read input: %w", err)
		}
	}

	that.logger.Debug("over-long input line discarded")

	return "", nil
}

func (that *Console) println(msg string) error {
	if _, err := fmt.Fprintln(that.out, msg); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// parseDigits - accepts only non-empty strings of ASCII digits, so signs and spaces are rejected.
func parseDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	value, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}

	return value, true
}
