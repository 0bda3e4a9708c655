package apperror

import "errors"

var (
	ErrStoreNotFound     = errors.New("store not found")
	ErrGameNotFound      = errors.New("game not found")
	ErrGameAlreadyExists = errors.New("game already exists")

	ErrSamePlayer     = errors.New("players must be distinct")
	ErrInvalidAddress = errors.New("invalid player identity")
	ErrUnknownPlayer  = errors.New("player is not part of this game")

	ErrNotYourTurn     = errors.New("it's not your turn")
	ErrGameFinished    = errors.New("game is already finished")
	ErrGameNotFinished = errors.New("game is not finished yet")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrInvalidCell     = errors.New("invalid cell index")
	ErrInvalidResetter = errors.New("caller is not allowed to reset this game")
)
