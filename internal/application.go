package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-arena/internal/config"
	"github.com/rocketscienceinc/tictactoe-arena/internal/repository"
	"github.com/rocketscienceinc/tictactoe-arena/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-arena/internal/repository/storage/sqlite"
	"github.com/rocketscienceinc/tictactoe-arena/internal/service"
	"github.com/rocketscienceinc/tictactoe-arena/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-arena/transport/rest"
	"github.com/rocketscienceinc/tictactoe-arena/transport/websocket"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	gameStoreRepo, closeStorage, err := buildGameStoreRepo(ctx, conf)
	if err != nil {
		return fmt.Errorf("could not build game store repository: %w", err)
	}

	defer func() {
		if err = closeStorage(); err != nil {
			log.Error("could not close storage", "error", err)
		}
	}()

	gameService := service.NewGameService(gameStoreRepo)
	authService := service.NewAuthService(conf.JWTSecretKey)
	gameUseCase := usecase.NewGameUseCase(logger, gameService, usecase.NewRandomTurnPicker(), conf.ReservedIdentities)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		restServer := rest.New(logger, gameUseCase, authService)
		if httpErr := restServer.Start(conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, gameUseCase, authService)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// buildGameStoreRepo selects the persistence backend from config.
func buildGameStoreRepo(ctx context.Context, conf *config.Config) (repository.GameStoreRepository, func() error, error) {
	switch conf.Storage {
	case config.StorageRedis:
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}
		return repository.NewGameStoreRepository(redisStorage.Connection), redisStorage.Close, nil

	case config.StorageSQLite:
		sqliteStorage, err := sqlite.New(conf.SQLiteStoragePath)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}
		if err = sqliteStorage.Init(ctx); err != nil {
			return nil, nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}
		return repository.NewSQLiteGameStoreRepository(sqliteStorage.Connection), sqliteStorage.Close, nil

	case config.StorageMemory:
		return repository.NewMemoryGameStoreRepository(), func() error { return nil }, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend: %q", conf.Storage)
	}
}
