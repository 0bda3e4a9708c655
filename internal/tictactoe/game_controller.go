package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

// MakeTurn places the caller's mark on the board and flips the turn.
// Every check runs before any mutation, so a failed turn leaves the
// game exactly as it was.
func MakeTurn(gameInstance *entity.Game, callerID string, cell int) error {
	if IsFinished(gameInstance.Board) {
		return apperror.ErrGameFinished
	}

	mark, err := ResolveMark(gameInstance, callerID)
	if err != nil {
		return err
	}

	if err = validateCell(gameInstance, cell); err != nil {
		return err
	}

	gameInstance.Board[cell] = mark
	gameInstance.Turn = entity.ToggleMark(mark)

	return nil
}

// Reset clears a finished board for a new round. The loser starts the
// next round; after a tie the pre-reset turn is kept as is.
func Reset(gameInstance *entity.Game, callerID, hostID string) error {
	if !CanReset(gameInstance, callerID, hostID) {
		return apperror.ErrInvalidResetter
	}

	outcome := Evaluate(gameInstance.Board)
	if outcome == entity.EmptyCell {
		return apperror.ErrGameNotFinished
	}

	for i := range gameInstance.Board {
		gameInstance.Board[i] = entity.EmptyCell
	}

	switch outcome {
	case entity.PlayerX:
		gameInstance.Turn = entity.PlayerO
	case entity.PlayerO:
		gameInstance.Turn = entity.PlayerX
	}

	return nil
}

func validateCell(gameInstance *entity.Game, cell int) error {
	if cell < 0 || cell >= len(gameInstance.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if gameInstance.Board[cell] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}
