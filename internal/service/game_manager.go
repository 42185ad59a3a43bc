package service

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/benbeisheim/chess-engine/internal/model"
	"github.com/benbeisheim/chess-engine/internal/ws"
	"github.com/google/uuid"
)

// MatchFoundEvent tells a queued player which game and seat they got.
type MatchFoundEvent struct {
	GameID string      `json:"gameId"`
	Color  model.Color `json:"color"`
}

type GameManager struct {
	games            map[string]*Session
	queue            *Queue
	matchingChannels map[string]chan string
	mu               sync.RWMutex
}

func NewGameManager() *GameManager {
	return &GameManager{
		games:            make(map[string]*Session),
		queue:            NewQueue(),
		matchingChannels: make(map[string]chan string),
	}
}

// Run pairs queued players every interval until ctx is done.
func (gm *GameManager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for {
				if _, ok := gm.matchNext(); !ok {
					break
				}
			}
		}
	}
}

// matchNext seats the two longest-waiting players in a new game and notifies
// them. It reports false when fewer than two players are waiting.
func (gm *GameManager) matchNext() (string, bool) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	player1, player2, ok := gm.queue.GetNextPair()
	if !ok {
		return "", false
	}

	gameID := uuid.New().String()
	session := NewSession(gameID)
	gm.games[gameID] = session

	for _, p := range []Player{player1, player2} {
		color, err := session.AddPlayer(p.ID)
		if err != nil {
			log.Printf("matchmaking: seating player %s in game %s: %v", p.ID, gameID, err)
			continue
		}
		if !gm.notifyMatch(p.ID, MatchFoundEvent{GameID: gameID, Color: color}) {
			log.Printf("matchmaking: player %s was not listening for game %s", p.ID, gameID)
		}
	}
	log.Printf("matchmaking: paired %s and %s in game %s", player1.ID, player2.ID, gameID)
	return gameID, true
}

// notifyMatch sends the event and closes the player's channel. Callers hold gm.mu.
func (gm *GameManager) notifyMatch(playerID string, event MatchFoundEvent) bool {
	ch, ok := gm.matchingChannels[playerID]
	if !ok {
		return false
	}
	delete(gm.matchingChannels, playerID)
	defer close(ch)

	select {
	case ch <- mustJSON(event):
		return true
	default:
		return false
	}
}

func (gm *GameManager) RegisterMatchmakingChannel(playerID string, ch chan string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if existingCh, exists := gm.matchingChannels[playerID]; exists {
		// Remove from map first to prevent any new writes
		delete(gm.matchingChannels, playerID)
		close(existingCh)
	}
	gm.matchingChannels[playerID] = ch
	return nil
}

// UnregisterMatchmakingChannel stops listening for a player and takes them
// out of the queue.
func (gm *GameManager) UnregisterMatchmakingChannel(playerID string, ch chan string) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if current, ok := gm.matchingChannels[playerID]; ok && current == ch {
		delete(gm.matchingChannels, playerID)
		gm.queue.Remove(playerID)
	}
}

func mustJSON(v interface{}) string {
	msg, err := ws.NewMessage(ws.MessageTypeMatchFound, v)
	if err != nil {
		panic(err)
	}
	bytes, err := json.Marshal(msg)
	if err != nil {
		panic(err)
	}
	return string(bytes)
}

func (gm *GameManager) CreateGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return ErrGameExists
	}
	gm.games[gameID] = NewSession(gameID)
	return nil
}

func (gm *GameManager) GetGame(gameID string) (*Session, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	session, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return session, nil
}

func (gm *GameManager) AddPlayerToGame(gameID string, playerID string) (model.Color, error) {
	session, err := gm.GetGame(gameID)
	if err != nil {
		return "", err
	}
	return session.AddPlayer(playerID)
}

func (gm *GameManager) JoinMatchmaking(playerID string) error {
	return gm.queue.AddPlayer(Player{ID: playerID})
}

func (gm *GameManager) GetGameState(gameID string) (StateView, error) {
	session, err := gm.GetGame(gameID)
	if err != nil {
		return StateView{}, err
	}
	return session.View(), nil
}

func (gm *GameManager) MakeMove(gameID string, playerID string, move model.MoveRequest) (model.MoveResult, error) {
	session, err := gm.GetGame(gameID)
	if err != nil {
		return model.MoveResult{}, err
	}
	return session.MakeMove(playerID, move)
}

func (gm *GameManager) LegalDestinations(gameID string, from model.Square) ([]model.Square, error) {
	session, err := gm.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	return session.LegalDestinations(from)
}

func (gm *GameManager) RegisterConnection(gameID string, playerID string, conn *Conn) error {
	session, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return session.RegisterConnection(playerID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID string, playerID string, conn *Conn) {
	session, err := gm.GetGame(gameID)
	if err != nil {
		return
	}
	session.UnregisterConnection(playerID, conn)
}
