package repository

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

// GameStoreRepository persists named games grouped per host identity.
// A store is created lazily by EnsureStore and survives with zero games
// until DeleteStore removes it together with everything it contains.
type GameStoreRepository interface {
	EnsureStore(ctx context.Context, hostID string) error
	DeleteStore(ctx context.Context, hostID string) error

	CreateGame(ctx context.Context, hostID, name string, game *entity.Game) error
	GetGame(ctx context.Context, hostID, name string) (*entity.Game, error)
	SaveGame(ctx context.Context, hostID, name string, game *entity.Game) error
	DeleteGame(ctx context.Context, hostID, name string) error
}
