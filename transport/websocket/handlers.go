package websocket

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
)

func (that *Server) handleStartGame(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleStartGame")

	payloadReq, hostID, err := that.authenticatedPayload(msg)
	if err != nil {
		log.Error("failed to authenticate request", "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, err)
	}

	game, err := that.gameUseCase.StartGame(ctx, hostID, payloadReq.Game, payloadReq.PlayerX, payloadReq.PlayerO)
	if err != nil {
		log.Error("failed to start game", "game", payloadReq.Game, "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, err)
	}

	payloadResp := ResponsePayload{
		Host:    hostID,
		Game:    payloadReq.Game,
		Board:   &game.Board,
		Turn:    game.Turn,
		PlayerX: game.PlayerX,
		PlayerO: game.PlayerO,
	}

	if err = that.sendMessage(*bufrw, msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("game started", "host", hostID, "game", payloadReq.Game)

	return nil
}

func (that *Server) handleMakeTurn(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleMakeTurn")

	payloadReq, callerID, err := that.authenticatedPayload(msg)
	if err != nil {
		log.Error("failed to authenticate request", "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, err)
	}

	if payloadReq.Cell == nil {
		return that.sendErrorResponse(bufrw, msg.Action, apperror.ErrInvalidCell)
	}

	game, err := that.gameUseCase.MakeTurn(ctx, callerID, payloadReq.Host, payloadReq.Game, *payloadReq.Cell)
	if err != nil {
		log.Error("failed to make turn", "game", payloadReq.Game, "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, err)
	}

	payloadResp := ResponsePayload{
		Host:  payloadReq.Host,
		Game:  payloadReq.Game,
		Board: &game.Board,
		Turn:  game.Turn,
	}

	return that.sendMessage(*bufrw, msg.Action, payloadResp)
}

func (that *Server) handleResetGame(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleResetGame")

	payloadReq, callerID, err := that.authenticatedPayload(msg)
	if err != nil {
		log.Error("failed to authenticate request", "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, err)
	}

	game, err := that.gameUseCase.ResetGame(ctx, callerID, payloadReq.Host, payloadReq.Game)
	if err != nil {
		log.Error("failed to reset game", "game", payloadReq.Game, "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, err)
	}

	payloadResp := ResponsePayload{
		Host:  payloadReq.Host,
		Game:  payloadReq.Game,
		Board: &game.Board,
		Turn:  game.Turn,
	}

	return that.sendMessage(*bufrw, msg.Action, payloadResp)
}

func (that *Server) handleDeleteGame(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleDeleteGame")

	payloadReq, hostID, err := that.authenticatedPayload(msg)
	if err != nil {
		log.Error("failed to authenticate request", "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, err)
	}

	if err = that.gameUseCase.DeleteGame(ctx, hostID, payloadReq.Game); err != nil {
		log.Error("failed to delete game", "game", payloadReq.Game, "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, err)
	}

	return that.sendMessage(*bufrw, msg.Action, ResponsePayload{Host: hostID, Game: payloadReq.Game})
}

func (that *Server) handleDeleteStore(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleDeleteStore")

	_, hostID, err := that.authenticatedPayload(msg)
	if err != nil {
		log.Error("failed to authenticate request", "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, err)
	}

	if err = that.gameUseCase.DeleteStore(ctx, hostID); err != nil {
		log.Error("failed to delete store", "host", hostID, "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, err)
	}

	return that.sendMessage(*bufrw, msg.Action, ResponsePayload{Host: hostID})
}

func (that *Server) handleGetBoard(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	payloadReq, err := unmarshalPayload(msg)
	if err != nil {
		return that.sendErrorResponse(bufrw, msg.Action, err)
	}

	board, err := that.gameUseCase.GetBoard(ctx, payloadReq.Host, payloadReq.Game)
	if err != nil {
		return that.sendErrorResponse(bufrw, msg.Action, err)
	}

	return that.sendMessage(*bufrw, msg.Action, ResponsePayload{
		Host:  payloadReq.Host,
		Game:  payloadReq.Game,
		Board: &board,
	})
}

func (that *Server) handleGetPlayers(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	payloadReq, err := unmarshalPayload(msg)
	if err != nil {
		return that.sendErrorResponse(bufrw, msg.Action, err)
	}

	playerX, playerO, err := that.gameUseCase.GetPlayers(ctx, payloadReq.Host, payloadReq.Game)
	if err != nil {
		return that.sendErrorResponse(bufrw, msg.Action, err)
	}

	return that.sendMessage(*bufrw, msg.Action, ResponsePayload{
		Host:    payloadReq.Host,
		Game:    payloadReq.Game,
		PlayerX: playerX,
		PlayerO: playerO,
	})
}

func (that *Server) handleGetCurrentPlayer(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	payloadReq, err := unmarshalPayload(msg)
	if err != nil {
		return that.sendErrorResponse(bufrw, msg.Action, err)
	}

	mark, identity, err := that.gameUseCase.GetCurrentPlayer(ctx, payloadReq.Host, payloadReq.Game)
	if err != nil {
		return that.sendErrorResponse(bufrw, msg.Action, err)
	}

	return that.sendMessage(*bufrw, msg.Action, ResponsePayload{
		Host:     payloadReq.Host,
		Game:     payloadReq.Game,
		Turn:     mark,
		Identity: identity,
	})
}

func (that *Server) handleGetWinner(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	payloadReq, err := unmarshalPayload(msg)
	if err != nil {
		return that.sendErrorResponse(bufrw, msg.Action, err)
	}

	mark, identity, err := that.gameUseCase.GetWinner(ctx, payloadReq.Host, payloadReq.Game)
	if err != nil {
		return that.sendErrorResponse(bufrw, msg.Action, err)
	}

	return that.sendMessage(*bufrw, msg.Action, ResponsePayload{
		Host:     payloadReq.Host,
		Game:     payloadReq.Game,
		Winner:   mark,
		Identity: identity,
	})
}

// authenticatedPayload unmarshals the payload and resolves the caller
// identity from its token.
func (that *Server) authenticatedPayload(msg *Message) (*Payload, string, error) {
	payloadReq, err := unmarshalPayload(msg)
	if err != nil {
		return nil, "", err
	}

	callerID, err := that.authService.ParseIdentity(payloadReq.Token)
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve caller identity: %w", err)
	}

	return payloadReq, callerID, nil
}

func unmarshalPayload(msg *Message) (*Payload, error) {
	var payloadReq Payload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}
	return &payloadReq, nil
}

func (that *Server) sendErrorResponse(bufrw *bufio.ReadWriter, action string, err error) error {
	return that.sendMessage(*bufrw, action, ResponsePayload{
		Error: err.Error(),
		Code:  apperror.Code(err),
	})
}
