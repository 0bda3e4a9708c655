package usecase

import (
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

// TurnPicker decides which mark opens a new game. Injected so tests
// can pin the first turn instead of flipping a coin.
type TurnPicker interface {
	FirstTurn() string
}

type randomTurnPicker struct{}

func NewRandomTurnPicker() TurnPicker {
	return &randomTurnPicker{}
}

func (that *randomTurnPicker) FirstTurn() string {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return entity.PlayerX
	}
	return entity.PlayerO
}
