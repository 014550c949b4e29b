package apperror

import "errors"

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrInputClosed  = errors.New("input closed")

	ErrInvalidMark       = errors.New("invalid mark")
	ErrUnknownMarkChoice = errors.New("unknown mark choice")
)
