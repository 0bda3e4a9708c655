package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

// ValidatePlayers - checks the player pair a game is started with.
// Empty identities and reserved system identities can never play.
func ValidatePlayers(playerX, playerO string, reserved []string) error {
	if playerX == playerO {
		return apperror.ErrSamePlayer
	}

	for _, id := range []string{playerX, playerO} {
		if id == "" {
			return apperror.ErrInvalidAddress
		}
		for _, r := range reserved {
			if id == r {
				return apperror.ErrInvalidAddress
			}
		}
	}

	return nil
}

// ResolveMark - maps the caller to its mark and checks it is the caller's turn.
func ResolveMark(gameInstance *entity.Game, callerID string) (string, error) {
	mark, ok := gameInstance.MarkOf(callerID)
	if !ok {
		return entity.EmptyCell, apperror.ErrUnknownPlayer
	}

	if gameInstance.Turn != mark {
		return entity.EmptyCell, apperror.ErrNotYourTurn
	}

	return mark, nil
}

// CanReset - the host and both players may reset a finished game.
func CanReset(gameInstance *entity.Game, callerID, hostID string) bool {
	return callerID == hostID || callerID == gameInstance.PlayerX || callerID == gameInstance.PlayerO
}
