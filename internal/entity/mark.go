package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

// Mark is the content of a single cell: empty or one of the two player marks.
type Mark int8

const (
	EmptyCell Mark = iota
	PlayerO
	PlayerX
)

// Mark choices accepted at the start of a game.
const (
	ChoiceO = 0
	ChoiceX = 1
)

var markSymbols = map[Mark]string{
	EmptyCell: " ",
	PlayerO:   "O",
	PlayerX:   "X",
}

// MarkFromChoice - maps the numeric choice typed by the human (0 or 1) to a mark.
func MarkFromChoice(choice int) (Mark, error) {
	switch choice {
	case ChoiceO:
		return PlayerO, nil
	case ChoiceX:
		return PlayerX, nil
	default:
		return EmptyCell, fmt.Errorf("%w: %d", apperror.ErrUnknownMarkChoice, choice)
	}
}

func (that Mark) String() string {
	if s, ok := markSymbols[that]; ok {
		return s
	}
	return "?"
}

// Opponent - returns the complementary mark. EmptyCell has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Player is identified by its mark and never changes it during a game.
type Player struct {
	Mark Mark
}

// NewPlayers - creates the human player with the chosen mark and the computer with the other one.
func NewPlayers(humanMark Mark) (human, computer Player) {
	return Player{Mark: humanMark}, Player{Mark: humanMark.Opponent()}
}
