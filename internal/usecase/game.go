package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/internal/tictactoe"
)

// GameUseCase is the full operation surface of the arena: every mutating
// operation takes the caller identity explicitly and either commits its
// whole effect or fails a precondition and changes nothing.
type GameUseCase interface {
	StartGame(ctx context.Context, hostID, name, playerX, playerO string) (*entity.Game, error)
	MakeTurn(ctx context.Context, callerID, hostID, name string, cell int) (*entity.Game, error)
	ResetGame(ctx context.Context, callerID, hostID, name string) (*entity.Game, error)

	DeleteGame(ctx context.Context, hostID, name string) error
	DeleteStore(ctx context.Context, hostID string) error

	GetBoard(ctx context.Context, hostID, name string) ([9]string, error)
	GetPlayers(ctx context.Context, hostID, name string) (string, string, error)
	GetCurrentPlayer(ctx context.Context, hostID, name string) (string, string, error)
	GetWinner(ctx context.Context, hostID, name string) (string, string, error)
}

type gameService interface {
	EnsureStore(ctx context.Context, hostID string) error
	DeleteStore(ctx context.Context, hostID string) error

	CreateGame(ctx context.Context, hostID, name string, game *entity.Game) error
	GetGame(ctx context.Context, hostID, name string) (*entity.Game, error)
	SaveGame(ctx context.Context, hostID, name string, game *entity.Game) error
	DeleteGame(ctx context.Context, hostID, name string) error
}

type gameUseCase struct {
	logger *slog.Logger

	gameService gameService
	turnPicker  TurnPicker

	reserved []string
}

func NewGameUseCase(logger *slog.Logger, gameService gameService, turnPicker TurnPicker, reserved []string) GameUseCase {
	return &gameUseCase{
		logger:      logger,
		gameService: gameService,
		turnPicker:  turnPicker,
		reserved:    reserved,
	}
}

func (that *gameUseCase) StartGame(ctx context.Context, hostID, name, playerX, playerO string) (*entity.Game, error) {
	if err := tictactoe.ValidatePlayers(playerX, playerO, that.reserved); err != nil {
		return nil, err
	}

	if err := that.gameService.EnsureStore(ctx, hostID); err != nil {
		return nil, fmt.Errorf("failed to ensure store: %w", err)
	}

	game := entity.NewGame(playerX, playerO, that.turnPicker.FirstTurn())

	if err := that.gameService.CreateGame(ctx, hostID, name, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game started", "host", hostID, "game", name, "first_turn", game.Turn)

	return game, nil
}

func (that *gameUseCase) MakeTurn(ctx context.Context, callerID, hostID, name string, cell int) (*entity.Game, error) {
	game, err := that.gameService.GetGame(ctx, hostID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if err = tictactoe.MakeTurn(game, callerID, cell); err != nil {
		return nil, err
	}

	if err = that.gameService.SaveGame(ctx, hostID, name, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) ResetGame(ctx context.Context, callerID, hostID, name string) (*entity.Game, error) {
	game, err := that.gameService.GetGame(ctx, hostID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if err = tictactoe.Reset(game, callerID, hostID); err != nil {
		return nil, err
	}

	if err = that.gameService.SaveGame(ctx, hostID, name, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	that.logger.Info("game reset", "host", hostID, "game", name, "first_turn", game.Turn)

	return game, nil
}

func (that *gameUseCase) DeleteGame(ctx context.Context, hostID, name string) error {
	if err := that.gameService.DeleteGame(ctx, hostID, name); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game deleted", "host", hostID, "game", name)

	return nil
}

func (that *gameUseCase) DeleteStore(ctx context.Context, hostID string) error {
	if err := that.gameService.DeleteStore(ctx, hostID); err != nil {
		return fmt.Errorf("failed to delete store: %w", err)
	}

	that.logger.Info("store deleted", "host", hostID)

	return nil
}

func (that *gameUseCase) GetBoard(ctx context.Context, hostID, name string) ([9]string, error) {
	game, err := that.gameService.GetGame(ctx, hostID, name)
	if err != nil {
		return [9]string{}, fmt.Errorf("failed to get game: %w", err)
	}

	return game.Board, nil
}

func (that *gameUseCase) GetPlayers(ctx context.Context, hostID, name string) (string, string, error) {
	game, err := that.gameService.GetGame(ctx, hostID, name)
	if err != nil {
		return "", "", fmt.Errorf("failed to get game: %w", err)
	}

	return game.PlayerX, game.PlayerO, nil
}

// GetCurrentPlayer reports the mark and identity due to move next.
// Once the game is over nobody is "current" and both values are empty.
func (that *gameUseCase) GetCurrentPlayer(ctx context.Context, hostID, name string) (string, string, error) {
	game, err := that.gameService.GetGame(ctx, hostID, name)
	if err != nil {
		return "", "", fmt.Errorf("failed to get game: %w", err)
	}

	if tictactoe.IsFinished(game.Board) {
		return "", "", nil
	}

	return game.Turn, game.IdentityOf(game.Turn), nil
}

// GetWinner reports the winning mark and identity, PlayerTie with an
// empty identity on a tie, and two empty values while play continues.
func (that *gameUseCase) GetWinner(ctx context.Context, hostID, name string) (string, string, error) {
	game, err := that.gameService.GetGame(ctx, hostID, name)
	if err != nil {
		return "", "", fmt.Errorf("failed to get game: %w", err)
	}

	outcome := tictactoe.Evaluate(game.Board)

	return outcome, game.IdentityOf(outcome), nil
}
