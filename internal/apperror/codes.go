package apperror

import "errors"

// Code maps an error chain to the abort code transports report to clients.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrStoreNotFound):
		return "store_not_found"
	case errors.Is(err, ErrGameNotFound):
		return "game_not_found"
	case errors.Is(err, ErrGameAlreadyExists):
		return "game_already_exists"
	case errors.Is(err, ErrSamePlayer):
		return "same_player"
	case errors.Is(err, ErrInvalidAddress):
		return "invalid_address"
	case errors.Is(err, ErrUnknownPlayer):
		return "unknown_player"
	case errors.Is(err, ErrNotYourTurn):
		return "wrong_turn"
	case errors.Is(err, ErrGameFinished):
		return "game_over"
	case errors.Is(err, ErrGameNotFinished):
		return "game_not_over"
	case errors.Is(err, ErrCellOccupied):
		return "cell_occupied"
	case errors.Is(err, ErrInvalidCell):
		return "out_of_bounds"
	case errors.Is(err, ErrInvalidResetter):
		return "invalid_resetter"
	default:
		return "internal"
	}
}
