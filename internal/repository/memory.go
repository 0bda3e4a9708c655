package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

type memoryGameStore struct {
	mu     sync.Mutex
	stores map[string]map[string]entity.Game
}

// NewMemoryGameStoreRepository keeps all stores in process memory.
// Used by tests and by deployments without a storage backend.
func NewMemoryGameStoreRepository() GameStoreRepository {
	return &memoryGameStore{
		stores: make(map[string]map[string]entity.Game),
	}
}

func (that *memoryGameStore) EnsureStore(_ context.Context, hostID string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, exists := that.stores[hostID]; !exists {
		that.stores[hostID] = make(map[string]entity.Game)
	}

	return nil
}

func (that *memoryGameStore) DeleteStore(_ context.Context, hostID string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, exists := that.stores[hostID]; !exists {
		return fmt.Errorf("%w: %s", apperror.ErrStoreNotFound, hostID)
	}

	delete(that.stores, hostID)

	return nil
}

func (that *memoryGameStore) CreateGame(_ context.Context, hostID, name string, game *entity.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	games, exists := that.stores[hostID]
	if !exists {
		return fmt.Errorf("%w: %s", apperror.ErrStoreNotFound, hostID)
	}

	if _, exists = games[name]; exists {
		return fmt.Errorf("%w: %s", apperror.ErrGameAlreadyExists, name)
	}

	games[name] = *game

	return nil
}

func (that *memoryGameStore) GetGame(_ context.Context, hostID, name string) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	games, exists := that.stores[hostID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", apperror.ErrStoreNotFound, hostID)
	}

	game, exists := games[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", apperror.ErrGameNotFound, name)
	}

	return &game, nil
}

func (that *memoryGameStore) SaveGame(_ context.Context, hostID, name string, game *entity.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	games, exists := that.stores[hostID]
	if !exists {
		return fmt.Errorf("%w: %s", apperror.ErrStoreNotFound, hostID)
	}

	games[name] = *game

	return nil
}

func (that *memoryGameStore) DeleteGame(_ context.Context, hostID, name string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	games, exists := that.stores[hostID]
	if !exists {
		return fmt.Errorf("%w: %s", apperror.ErrStoreNotFound, hostID)
	}

	if _, exists = games[name]; !exists {
		return fmt.Errorf("%w: %s", apperror.ErrGameNotFound, name)
	}

	delete(games, name)

	return nil
}
