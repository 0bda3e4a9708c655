package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

func TestMakeTurn(t *testing.T) {
	t.Run("MakeTurn", func(t *testing.T) {
		// Given: a new game where X opens
		game := entity.NewGame("alice", "bob", entity.PlayerX)

		// When: the X player makes a turn
		err := MakeTurn(game, "alice", 0)
		require.NoError(t, err)

		// Then: the game state should reflect the turn and queue change
		expectedGame := &entity.Game{
			Board:   [9]string{entity.PlayerX, "", "", "", "", "", "", "", ""},
			Turn:    entity.PlayerO,
			PlayerX: "alice",
			PlayerO: "bob",
		}

		require.Equal(t, expectedGame, game)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a game where X already took cell 0
		game := entity.NewGame("alice", "bob", entity.PlayerX)
		require.NoError(t, MakeTurn(game, "alice", 0))

		// When: O tries to take the same cell
		err := MakeTurn(game, "bob", 0)

		// Then: an error ErrCellOccupied must be returned
		require.ErrorIs(t, err, apperror.ErrCellOccupied)

		// Then: the game state remains unchanged
		expectedGame := &entity.Game{
			Board:   [9]string{entity.PlayerX, "", "", "", "", "", "", "", ""},
			Turn:    entity.PlayerO,
			PlayerX: "alice",
			PlayerO: "bob",
		}

		require.Equal(t, expectedGame, game)
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		// Given: a new game where X opens
		game := entity.NewGame("alice", "bob", entity.PlayerX)

		// When: the O player tries to move first
		err := MakeTurn(game, "bob", 1)

		// Then: an error ErrNotYourTurn must be returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)

		// Then: the board stays empty
		require.Equal(t, [9]string{}, game.Board)
	})

	t.Run("Error on caller outside the game", func(t *testing.T) {
		// Given: a new game between alice and bob
		game := entity.NewGame("alice", "bob", entity.PlayerX)

		// When: a stranger tries to move
		err := MakeTurn(game, "mallory", 0)

		// Then: an error ErrUnknownPlayer must be returned
		require.ErrorIs(t, err, apperror.ErrUnknownPlayer)
	})

	t.Run("Invalid cell", func(t *testing.T) {
		// Given: a new game where X opens
		game := entity.NewGame("alice", "bob", entity.PlayerX)

		// When: an index outside the board is passed
		err := MakeTurn(game, "alice", 20)

		// Then: an error ErrInvalidCell must be returned
		assert.ErrorIs(t, err, apperror.ErrInvalidCell)

		// Then: the board stays empty
		assert.Equal(t, [9]string{}, game.Board)
	})

	t.Run("Invalid negative cell", func(t *testing.T) {
		game := entity.NewGame("alice", "bob", entity.PlayerX)

		err := MakeTurn(game, "alice", -1)

		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Error on finished game", func(t *testing.T) {
		// Given: a game X already won
		game := entity.NewGame("alice", "bob", entity.PlayerX)
		game.Board = [9]string{"X", "X", "X", "O", "O", "", "", "", ""}
		game.Turn = entity.PlayerO

		// When: O tries to keep playing
		err := MakeTurn(game, "bob", 5)

		// Then: an error ErrGameFinished must be returned
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestReset(t *testing.T) {
	t.Run("Error while game is in progress", func(t *testing.T) {
		// Given: a game with open cells and no winner
		game := entity.NewGame("alice", "bob", entity.PlayerX)
		require.NoError(t, MakeTurn(game, "alice", 0))

		// When: a player tries to reset it
		err := Reset(game, "bob", "host-1")

		// Then: an error ErrGameNotFinished must be returned
		require.ErrorIs(t, err, apperror.ErrGameNotFinished)
	})

	t.Run("Error on foreign resetter", func(t *testing.T) {
		// Given: a finished game
		game := entity.NewGame("alice", "bob", entity.PlayerX)
		game.Board = [9]string{"X", "X", "X", "O", "O", "", "", "", ""}

		// When: neither host nor player tries to reset it
		err := Reset(game, "mallory", "host-1")

		// Then: an error ErrInvalidResetter must be returned
		require.ErrorIs(t, err, apperror.ErrInvalidResetter)
	})

	t.Run("Loser opens the next round", func(t *testing.T) {
		// Given: a game X won
		game := entity.NewGame("alice", "bob", entity.PlayerX)
		game.Board = [9]string{"X", "X", "X", "O", "O", "", "", "", ""}
		game.Turn = entity.PlayerO

		// When: the winner resets it
		err := Reset(game, "alice", "host-1")
		require.NoError(t, err)

		// Then: the board is empty and O starts
		require.Equal(t, [9]string{}, game.Board)
		require.Equal(t, entity.PlayerO, game.Turn)
	})

	t.Run("Winner X side after O win", func(t *testing.T) {
		// Given: a game O won
		game := entity.NewGame("alice", "bob", entity.PlayerX)
		game.Board = [9]string{"O", "O", "O", "X", "X", "", "X", "", ""}
		game.Turn = entity.PlayerX

		// When: the host resets it
		err := Reset(game, "host-1", "host-1")
		require.NoError(t, err)

		// Then: X starts the next round
		require.Equal(t, entity.PlayerX, game.Turn)
	})

	t.Run("Tie keeps the previous turn", func(t *testing.T) {
		// Given: a tied board with O due next
		game := entity.NewGame("alice", "bob", entity.PlayerX)
		game.Board = [9]string{"X", "O", "X", "O", "X", "O", "O", "X", "O"}
		game.Turn = entity.PlayerO

		// When: a player resets it
		err := Reset(game, "bob", "host-1")
		require.NoError(t, err)

		// Then: the pre-reset turn carries over
		require.Equal(t, [9]string{}, game.Board)
		require.Equal(t, entity.PlayerO, game.Turn)
	})
}

func TestValidatePlayers(t *testing.T) {
	reserved := []string{"system"}

	t.Run("Distinct players pass", func(t *testing.T) {
		require.NoError(t, ValidatePlayers("alice", "bob", reserved))
	})

	t.Run("Same player rejected", func(t *testing.T) {
		require.ErrorIs(t, ValidatePlayers("alice", "alice", reserved), apperror.ErrSamePlayer)
	})

	t.Run("Empty identity rejected", func(t *testing.T) {
		require.ErrorIs(t, ValidatePlayers("", "bob", reserved), apperror.ErrInvalidAddress)
	})

	t.Run("Reserved identity rejected", func(t *testing.T) {
		require.ErrorIs(t, ValidatePlayers("alice", "system", reserved), apperror.ErrInvalidAddress)
	})
}
