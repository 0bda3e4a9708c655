package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

func TestEvaluate(t *testing.T) {
	t.Run("Empty board is still playable", func(t *testing.T) {
		// Given: a fresh board
		board := [9]string{}

		// Then: no outcome yet
		require.Equal(t, entity.EmptyCell, Evaluate(board))
	})

	t.Run("Top row win", func(t *testing.T) {
		// Given: X holds the whole top row
		board := [9]string{"X", "X", "X", "", "", "", "", "", ""}

		// Then: X is the winner
		require.Equal(t, entity.PlayerX, Evaluate(board))
	})

	t.Run("Column win", func(t *testing.T) {
		// Given: O holds the middle column
		board := [9]string{"", "O", "", "", "O", "", "", "O", ""}

		require.Equal(t, entity.PlayerO, Evaluate(board))
	})

	t.Run("Diagonal win", func(t *testing.T) {
		// Given: X holds the main diagonal
		board := [9]string{"X", "", "", "", "X", "", "", "", "X"}

		require.Equal(t, entity.PlayerX, Evaluate(board))
	})

	t.Run("Anti-diagonal win", func(t *testing.T) {
		// Given: O holds the anti-diagonal
		board := [9]string{"", "", "O", "", "O", "", "O", "", ""}

		require.Equal(t, entity.PlayerO, Evaluate(board))
	})

	t.Run("Full board without a line is a tie", func(t *testing.T) {
		// Given: a finished game with no completed triple
		board := [9]string{"X", "O", "X", "O", "X", "O", "O", "X", "O"}

		require.Equal(t, entity.PlayerTie, Evaluate(board))
	})

	t.Run("Partial line is not a win", func(t *testing.T) {
		// Given: two X marks in the top row and an empty third cell
		board := [9]string{"X", "X", "", "", "O", "", "", "", "O"}

		assert.Equal(t, entity.EmptyCell, Evaluate(board))
	})
}

func TestIsFinished(t *testing.T) {
	// Given: a won board and a playable board
	won := [9]string{"X", "X", "X", "", "", "", "", "", ""}
	playable := [9]string{"X", "", "", "", "", "", "", "", ""}

	// Then: only the won board reports finished
	assert.True(t, IsFinished(won))
	assert.False(t, IsFinished(playable))
}
