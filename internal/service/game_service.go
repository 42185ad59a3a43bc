package service

import (
	"context"
	"fmt"
	"time"

	"github.com/benbeisheim/chess-engine/internal/model"
	"github.com/google/uuid"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) JoinGame(gameID string, playerID string) (model.Color, error) {
	return gs.gameManager.AddPlayerToGame(gameID, playerID)
}

func (gs *GameService) CreateGame() (string, error) {
	gameID := uuid.New().String()

	if err := gs.gameManager.CreateGame(gameID); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}

	return gameID, nil
}

func (gs *GameService) JoinMatchmaking(playerID string) error {
	return gs.gameManager.JoinMatchmaking(playerID)
}

// RunMatchmaking blocks, pairing queued players until ctx is done.
func (gs *GameService) RunMatchmaking(ctx context.Context, interval time.Duration) {
	gs.gameManager.Run(ctx, interval)
}

func (gs *GameService) GetGameState(gameID string) (StateView, error) {
	return gs.gameManager.GetGameState(gameID)
}

func (gs *GameService) HandleMove(gameID string, playerID string, move model.MoveRequest) (model.MoveResult, error) {
	return gs.gameManager.MakeMove(gameID, playerID, move)
}

func (gs *GameService) LegalDestinations(gameID string, from model.Square) ([]model.Square, error) {
	return gs.gameManager.LegalDestinations(gameID, from)
}

func (gs *GameService) RegisterConnection(gameID string, playerID string, conn *Conn) error {
	return gs.gameManager.RegisterConnection(gameID, playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, playerID string, conn *Conn) {
	gs.gameManager.UnregisterConnection(gameID, playerID, conn)
}

func (gs *GameService) RegisterMatchmakingChannel(playerID string, ch chan string) error {
	return gs.gameManager.RegisterMatchmakingChannel(playerID, ch)
}

func (gs *GameService) UnregisterMatchmakingChannel(playerID string, ch chan string) {
	gs.gameManager.UnregisterMatchmakingChannel(playerID, ch)
}
