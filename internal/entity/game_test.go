package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	// When: create a new game instance
	game := NewGame("alice", "bob", PlayerX)

	// Then: the game should have the expected initial state
	expectedGame := Game{
		Board:   [9]string{EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell},
		Turn:    PlayerX,
		PlayerX: "alice",
		PlayerO: "bob",
	}

	require.NotNil(t, game)
	require.Equal(t, expectedGame, *game)
}

func TestGame_MarkOf(t *testing.T) {
	game := NewGame("alice", "bob", PlayerO)

	t.Run("X player", func(t *testing.T) {
		mark, ok := game.MarkOf("alice")
		require.True(t, ok)
		require.Equal(t, PlayerX, mark)
	})

	t.Run("O player", func(t *testing.T) {
		mark, ok := game.MarkOf("bob")
		require.True(t, ok)
		require.Equal(t, PlayerO, mark)
	})

	t.Run("Stranger", func(t *testing.T) {
		_, ok := game.MarkOf("mallory")
		require.False(t, ok)
	})
}

func TestGame_IdentityOf(t *testing.T) {
	game := NewGame("alice", "bob", PlayerX)

	assert.Equal(t, "alice", game.IdentityOf(PlayerX))
	assert.Equal(t, "bob", game.IdentityOf(PlayerO))
	assert.Equal(t, "", game.IdentityOf(PlayerTie))
	assert.Equal(t, "", game.IdentityOf(EmptyCell))
}

func TestToggleMark(t *testing.T) {
	assert.Equal(t, PlayerO, ToggleMark(PlayerX))
	assert.Equal(t, PlayerX, ToggleMark(PlayerO))
}
