package service

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

type GameService interface {
	EnsureStore(ctx context.Context, hostID string) error
	DeleteStore(ctx context.Context, hostID string) error

	CreateGame(ctx context.Context, hostID, name string, game *entity.Game) error
	GetGame(ctx context.Context, hostID, name string) (*entity.Game, error)
	SaveGame(ctx context.Context, hostID, name string, game *entity.Game) error
	DeleteGame(ctx context.Context, hostID, name string) error
}

type gameStoreRepo interface {
	EnsureStore(ctx context.Context, hostID string) error
	DeleteStore(ctx context.Context, hostID string) error

	CreateGame(ctx context.Context, hostID, name string, game *entity.Game) error
	GetGame(ctx context.Context, hostID, name string) (*entity.Game, error)
	SaveGame(ctx context.Context, hostID, name string, game *entity.Game) error
	DeleteGame(ctx context.Context, hostID, name string) error
}

type gameService struct {
	gameStoreRepo gameStoreRepo
}

func NewGameService(gameStoreRepo gameStoreRepo) GameService {
	return &gameService{
		gameStoreRepo: gameStoreRepo,
	}
}

func (that *gameService) EnsureStore(ctx context.Context, hostID string) error {
	if err := that.gameStoreRepo.EnsureStore(ctx, hostID); err != nil {
		return fmt.Errorf("failed to ensure store in storage: %w", err)
	}
	return nil
}

func (that *gameService) DeleteStore(ctx context.Context, hostID string) error {
	if err := that.gameStoreRepo.DeleteStore(ctx, hostID); err != nil {
		return fmt.Errorf("failed to delete store from storage: %w", err)
	}
	return nil
}

func (that *gameService) CreateGame(ctx context.Context, hostID, name string, game *entity.Game) error {
	if err := that.gameStoreRepo.CreateGame(ctx, hostID, name, game); err != nil {
		return fmt.Errorf("failed to create game in storage: %w", err)
	}
	return nil
}

func (that *gameService) GetGame(ctx context.Context, hostID, name string) (*entity.Game, error) {
	game, err := that.gameStoreRepo.GetGame(ctx, hostID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve game from storage: %w", err)
	}
	return game, nil
}

func (that *gameService) SaveGame(ctx context.Context, hostID, name string, game *entity.Game) error {
	if err := that.gameStoreRepo.SaveGame(ctx, hostID, name, game); err != nil {
		return fmt.Errorf("failed to save game in storage: %w", err)
	}
	return nil
}

func (that *gameService) DeleteGame(ctx context.Context, hostID, name string) error {
	if err := that.gameStoreRepo.DeleteGame(ctx, hostID, name); err != nil {
		return fmt.Errorf("failed to delete game from storage: %w", err)
	}
	return nil
}
