package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

type gameViews interface {
	GetBoard(ctx context.Context, hostID, name string) ([9]string, error)
	GetPlayers(ctx context.Context, hostID, name string) (string, string, error)
	GetCurrentPlayer(ctx context.Context, hostID, name string) (string, string, error)
	GetWinner(ctx context.Context, hostID, name string) (string, string, error)
}

type authService interface {
	GenerateToken(identity string) (string, error)
}

type Server struct {
	logger      *slog.Logger
	gameViews   gameViews
	authService authService
}

func New(logger *slog.Logger, gameViews gameViews, authService authService) *Server {
	return &Server{
		logger:      logger,
		gameViews:   gameViews,
		authService: authService,
	}
}

func (that *Server) Start(port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", pingHandler)
	mux.HandleFunc("POST /token", that.handleToken)
	mux.HandleFunc("GET /game/board", that.handleBoard)
	mux.HandleFunc("GET /game/players", that.handlePlayers)
	mux.HandleFunc("GET /game/turn", that.handleCurrentPlayer)
	mux.HandleFunc("GET /game/winner", that.handleWinner)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
