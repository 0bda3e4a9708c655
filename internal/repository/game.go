package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

type dbGameStore struct {
	client *redis.Client
}

// NewGameStoreRepository - redis-backed store: one marker key per host plus
// one hash holding that host's games keyed by name.
func NewGameStoreRepository(client *redis.Client) GameStoreRepository {
	return &dbGameStore{
		client: client,
	}
}

func storeKey(hostID string) string {
	return "store:" + hostID
}

func gamesKey(hostID string) string {
	return "store:" + hostID + ":games"
}

func (that *dbGameStore) EnsureStore(ctx context.Context, hostID string) error {
	if err := that.client.SetNX(ctx, storeKey(hostID), "1", 0).Err(); err != nil {
		return fmt.Errorf("failed to ensure store: %w", err)
	}

	return nil
}

func (that *dbGameStore) DeleteStore(ctx context.Context, hostID string) error {
	if err := that.requireStore(ctx, hostID); err != nil {
		return err
	}

	pipe := that.client.TxPipeline()
	pipe.Del(ctx, storeKey(hostID))
	pipe.Del(ctx, gamesKey(hostID))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete store: %w", err)
	}

	return nil
}

func (that *dbGameStore) CreateGame(ctx context.Context, hostID, name string, game *entity.Game) error {
	if err := that.requireStore(ctx, hostID); err != nil {
		return err
	}

	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	created, err := that.client.HSetNX(ctx, gamesKey(hostID), name, gameJSON).Result()
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	if !created {
		return fmt.Errorf("%w: %s", apperror.ErrGameAlreadyExists, name)
	}

	return nil
}

func (that *dbGameStore) GetGame(ctx context.Context, hostID, name string) (*entity.Game, error) {
	if err := that.requireStore(ctx, hostID); err != nil {
		return nil, err
	}

	response, err := that.client.HGet(ctx, gamesKey(hostID), name).Result()

	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrGameNotFound, name)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by name: %w", err)
	}

	var existingGame entity.Game
	if err = json.Unmarshal([]byte(response), &existingGame); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}

func (that *dbGameStore) SaveGame(ctx context.Context, hostID, name string, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	if err = that.client.HSet(ctx, gamesKey(hostID), name, gameJSON).Err(); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

func (that *dbGameStore) DeleteGame(ctx context.Context, hostID, name string) error {
	if err := that.requireStore(ctx, hostID); err != nil {
		return err
	}

	removed, err := that.client.HDel(ctx, gamesKey(hostID), name).Result()
	if err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	if removed == 0 {
		return fmt.Errorf("%w: %s", apperror.ErrGameNotFound, name)
	}

	return nil
}

func (that *dbGameStore) requireStore(ctx context.Context, hostID string) error {
	exists, err := that.client.Exists(ctx, storeKey(hostID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check store: %w", err)
	}

	if exists == 0 {
		return fmt.Errorf("%w: %s", apperror.ErrStoreNotFound, hostID)
	}

	return nil
}
