package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

type sqliteGameStore struct {
	db *sql.DB
}

// NewSQLiteGameStoreRepository - sqlite-backed store: a stores table with
// one row per host and a games table keyed by (host, name).
func NewSQLiteGameStoreRepository(db *sql.DB) GameStoreRepository {
	return &sqliteGameStore{
		db: db,
	}
}

func (that *sqliteGameStore) EnsureStore(ctx context.Context, hostID string) error {
	query := `INSERT OR IGNORE INTO stores (host_id) VALUES (?)`

	if _, err := that.db.ExecContext(ctx, query, hostID); err != nil {
		return fmt.Errorf("failed to ensure store: %w", err)
	}

	return nil
}

func (that *sqliteGameStore) DeleteStore(ctx context.Context, hostID string) error {
	tx, err := that.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint: errcheck // rollback after commit is a no-op

	result, err := tx.ExecContext(ctx, `DELETE FROM stores WHERE host_id = ?`, hostID)
	if err != nil {
		return fmt.Errorf("failed to delete store: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to count deleted rows: %w", err)
	}

	if removed == 0 {
		return fmt.Errorf("%w: %s", apperror.ErrStoreNotFound, hostID)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM games WHERE host_id = ?`, hostID); err != nil {
		return fmt.Errorf("failed to delete games: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (that *sqliteGameStore) CreateGame(ctx context.Context, hostID, name string, game *entity.Game) error {
	if err := that.requireStore(ctx, hostID); err != nil {
		return err
	}

	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	query := `INSERT INTO games (host_id, name, state) VALUES (?, ?, ?)`

	_, err = that.db.ExecContext(ctx, query, hostID, name, string(gameJSON))

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return fmt.Errorf("%w: %s", apperror.ErrGameAlreadyExists, name)
	}

	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	return nil
}

func (that *sqliteGameStore) GetGame(ctx context.Context, hostID, name string) (*entity.Game, error) {
	if err := that.requireStore(ctx, hostID); err != nil {
		return nil, err
	}

	query := `SELECT state FROM games WHERE host_id = ? AND name = ?`

	var state string
	err := that.db.QueryRowContext(ctx, query, hostID, name).Scan(&state)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrGameNotFound, name)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by name: %w", err)
	}

	var existingGame entity.Game
	if err = json.Unmarshal([]byte(state), &existingGame); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}

func (that *sqliteGameStore) SaveGame(ctx context.Context, hostID, name string, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	query := `UPDATE games SET state = ? WHERE host_id = ? AND name = ?`

	if _, err = that.db.ExecContext(ctx, query, string(gameJSON), hostID, name); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

func (that *sqliteGameStore) DeleteGame(ctx context.Context, hostID, name string) error {
	if err := that.requireStore(ctx, hostID); err != nil {
		return err
	}

	result, err := that.db.ExecContext(ctx, `DELETE FROM games WHERE host_id = ? AND name = ?`, hostID, name)
	if err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to count deleted rows: %w", err)
	}

	if removed == 0 {
		return fmt.Errorf("%w: %s", apperror.ErrGameNotFound, name)
	}

	return nil
}

func (that *sqliteGameStore) requireStore(ctx context.Context, hostID string) error {
	var one int
	err := that.db.QueryRowContext(ctx, `SELECT 1 FROM stores WHERE host_id = ?`, hostID).Scan(&one)

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", apperror.ErrStoreNotFound, hostID)
	}

	if err != nil {
		return fmt.Errorf("failed to check store: %w", err)
	}

	return nil
}
