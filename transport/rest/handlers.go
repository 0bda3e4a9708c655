package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
)

type gameResponse struct {
	Host string `json:"host"`
	Game string `json:"game"`

	Board *[9]string `json:"board,omitempty"`
	Turn  string     `json:"turn,omitempty"`

	PlayerX string `json:"player_x,omitempty"`
	PlayerO string `json:"player_o,omitempty"`

	Identity string `json:"identity,omitempty"`
	Winner   string `json:"winner,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// handleToken mints a development token for the given identity. Real
// deployments put a proper identity provider in front of this service.
func (that *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Identity string `json:"identity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.Identity == "" {
		http.Error(w, "identity is required", http.StatusBadRequest)
		return
	}

	token, err := that.authService.GenerateToken(request.Identity)
	if err != nil {
		that.logger.Error("failed to generate token", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (that *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	hostID, name, ok := gameParams(w, r)
	if !ok {
		return
	}

	board, err := that.gameViews.GetBoard(r.Context(), hostID, name)
	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, gameResponse{Host: hostID, Game: name, Board: &board})
}

func (that *Server) handlePlayers(w http.ResponseWriter, r *http.Request) {
	hostID, name, ok := gameParams(w, r)
	if !ok {
		return
	}

	playerX, playerO, err := that.gameViews.GetPlayers(r.Context(), hostID, name)
	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, gameResponse{Host: hostID, Game: name, PlayerX: playerX, PlayerO: playerO})
}

func (that *Server) handleCurrentPlayer(w http.ResponseWriter, r *http.Request) {
	hostID, name, ok := gameParams(w, r)
	if !ok {
		return
	}

	mark, identity, err := that.gameViews.GetCurrentPlayer(r.Context(), hostID, name)
	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, gameResponse{Host: hostID, Game: name, Turn: mark, Identity: identity})
}

func (that *Server) handleWinner(w http.ResponseWriter, r *http.Request) {
	hostID, name, ok := gameParams(w, r)
	if !ok {
		return
	}

	mark, identity, err := that.gameViews.GetWinner(r.Context(), hostID, name)
	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, gameResponse{Host: hostID, Game: name, Winner: mark, Identity: identity})
}

func gameParams(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	hostID := r.URL.Query().Get("host")
	name := r.URL.Query().Get("game")

	if hostID == "" || name == "" {
		http.Error(w, "host and game are required", http.StatusBadRequest)
		return "", "", false
	}

	return hostID, name, true
}

func (that *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, apperror.ErrStoreNotFound), errors.Is(err, apperror.ErrGameNotFound):
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		that.logger.Error("internal error", "error", err)
	}

	writeJSON(w, status, errorResponse{Error: err.Error(), Code: apperror.Code(err)})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
