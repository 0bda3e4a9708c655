package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/testing/suite"
)

func TestGameStoreRepository_EnsureStore(t *testing.T) {
	ctx, st := suite.New(t)

	repo := NewGameStoreRepository(st.Storage)

	// When: EnsureStore is called twice for the same host
	require.NoError(t, repo.EnsureStore(ctx, "host-1"))
	require.NoError(t, repo.EnsureStore(ctx, "host-1"))

	// Then: the store exists and a game can be created in it
	game := entity.NewGame("alice", "bob", entity.PlayerX)
	require.NoError(t, repo.CreateGame(ctx, "host-1", "match", game))
}

func TestGameStoreRepository_CreateGame(t *testing.T) {
	t.Run("CreateGame_Duplicate", func(t *testing.T) {
		ctx, st := suite.New(t)

		repo := NewGameStoreRepository(st.Storage)

		// Given: a store with one game
		require.NoError(t, repo.EnsureStore(ctx, "host-1"))
		game := entity.NewGame("alice", "bob", entity.PlayerX)
		require.NoError(t, repo.CreateGame(ctx, "host-1", "match", game))

		// When: the same name is created again
		err := repo.CreateGame(ctx, "host-1", "match", game)

		// Then: the duplicate is rejected
		require.ErrorIs(t, err, apperror.ErrGameAlreadyExists)
	})

	t.Run("CreateGame_NoStore", func(t *testing.T) {
		ctx, st := suite.New(t)

		repo := NewGameStoreRepository(st.Storage)

		// When: a game is created without an ensured store
		err := repo.CreateGame(ctx, "ghost", "match", entity.NewGame("alice", "bob", entity.PlayerX))

		// Then: the missing store is reported
		require.ErrorIs(t, err, apperror.ErrStoreNotFound)
	})
}

func TestGameStoreRepository_GetGame(t *testing.T) {
	t.Run("GetGame_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		repo := NewGameStoreRepository(st.Storage)

		// Given: a persisted game
		require.NoError(t, repo.EnsureStore(ctx, "host-1"))
		game := entity.NewGame("alice", "bob", entity.PlayerO)
		game.Board[4] = entity.PlayerO
		require.NoError(t, repo.CreateGame(ctx, "host-1", "match", game))

		// When: GetGame is called with the existing name
		retrieved, err := repo.GetGame(ctx, "host-1", "match")

		// Then: the retrieved game should match the saved game
		require.NoError(t, err)
		require.Equal(t, game, retrieved)
	})

	t.Run("GetGame_GameNotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		repo := NewGameStoreRepository(st.Storage)

		require.NoError(t, repo.EnsureStore(ctx, "host-1"))

		_, err := repo.GetGame(ctx, "host-1", "ghost")

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("GetGame_StoreNotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		repo := NewGameStoreRepository(st.Storage)

		_, err := repo.GetGame(ctx, "ghost", "match")

		require.ErrorIs(t, err, apperror.ErrStoreNotFound)
	})
}

func TestGameStoreRepository_SaveGame(t *testing.T) {
	ctx, st := suite.New(t)

	repo := NewGameStoreRepository(st.Storage)

	// Given: a persisted game
	require.NoError(t, repo.EnsureStore(ctx, "host-1"))
	game := entity.NewGame("alice", "bob", entity.PlayerX)
	require.NoError(t, repo.CreateGame(ctx, "host-1", "match", game))

	// When: the board changes and the game is saved again
	game.Board[0] = entity.PlayerX
	game.Turn = entity.PlayerO
	require.NoError(t, repo.SaveGame(ctx, "host-1", "match", game))

	// Then: the stored state reflects the change
	retrieved, err := repo.GetGame(ctx, "host-1", "match")
	require.NoError(t, err)
	require.Equal(t, game, retrieved)
}

func TestGameStoreRepository_DeleteGame(t *testing.T) {
	t.Run("DeleteGame_KeepsStore", func(t *testing.T) {
		ctx, st := suite.New(t)

		repo := NewGameStoreRepository(st.Storage)

		// Given: a store with one game
		require.NoError(t, repo.EnsureStore(ctx, "host-1"))
		require.NoError(t, repo.CreateGame(ctx, "host-1", "match", entity.NewGame("alice", "bob", entity.PlayerX)))

		// When: the game is deleted
		require.NoError(t, repo.DeleteGame(ctx, "host-1", "match"))

		// Then: the now empty store is still present
		_, err := repo.GetGame(ctx, "host-1", "match")
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("DeleteGame_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		repo := NewGameStoreRepository(st.Storage)

		require.NoError(t, repo.EnsureStore(ctx, "host-1"))

		err := repo.DeleteGame(ctx, "host-1", "ghost")

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}

func TestGameStoreRepository_DeleteStore(t *testing.T) {
	t.Run("DeleteStore_RemovesGames", func(t *testing.T) {
		ctx, st := suite.New(t)

		repo := NewGameStoreRepository(st.Storage)

		// Given: a store with two games
		require.NoError(t, repo.EnsureStore(ctx, "host-1"))
		require.NoError(t, repo.CreateGame(ctx, "host-1", "first", entity.NewGame("alice", "bob", entity.PlayerX)))
		require.NoError(t, repo.CreateGame(ctx, "host-1", "second", entity.NewGame("carol", "dave", entity.PlayerO)))

		// When: the store is deleted
		require.NoError(t, repo.DeleteStore(ctx, "host-1"))

		// Then: the store and its games are gone in one step
		_, err := repo.GetGame(ctx, "host-1", "first")
		require.ErrorIs(t, err, apperror.ErrStoreNotFound)
	})

	t.Run("DeleteStore_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		repo := NewGameStoreRepository(st.Storage)

		err := repo.DeleteStore(ctx, "ghost")

		require.ErrorIs(t, err, apperror.ErrStoreNotFound)
	})
}
