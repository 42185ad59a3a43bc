package service

import (
	"fmt"
	"log"
	"sync"

	"github.com/benbeisheim/chess-engine/internal/model"
	"github.com/benbeisheim/chess-engine/internal/ws"
	"github.com/gofiber/websocket/v2"
)

// StateWriter is the part of a websocket connection a session pushes to.
type StateWriter interface {
	WriteJSON(v interface{}) error
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Conn serializes writes to one websocket connection. The underlying
// connection allows a single concurrent writer; every writer for a player's
// socket, broadcast or handler, goes through the same Conn.
type Conn struct {
	mu   sync.Mutex
	conn StateWriter
}

func NewConn(conn StateWriter) *Conn {
	return &Conn{conn: conn}
}

func (c *Conn) WriteJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

func (c *Conn) WriteMessage(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(messageType, data)
}

func (c *Conn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.Close()
}

// The connections for a specific game
type GameConnections struct {
	connections map[string]*Conn // playerID -> connection
	mu          sync.RWMutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*Conn),
	}
}

// CapturedPieces is keyed by the side that made the capture.
type CapturedPieces struct {
	White []model.PieceView `json:"white"`
	Black []model.PieceView `json:"black"`
}

// StateView is the JSON the game's clients render.
type StateView struct {
	ID             string              `json:"id"`
	Board          model.BoardSnapshot `json:"boardState"`
	Moves          int                 `json:"moves"`
	ToMove         model.Color         `json:"toMove"`
	IsCheck        bool                `json:"isCheck"`
	Outcome        model.Outcome       `json:"outcome"`
	Resolve        *string             `json:"resolve"`
	EnPassantPawn  *model.Square       `json:"enPassantPawn"`
	LastMove       *model.Ply          `json:"lastMove"`
	CapturedPieces CapturedPieces      `json:"capturedPieces"`
	Players        struct {
		White ClientPlayer `json:"white"`
		Black ClientPlayer `json:"black"`
	} `json:"players"`
}

// Session hosts one game: the rule state, its two seats and its observers.
// The rule state is replaced wholesale after every accepted move.
//
// Lock order is mu, then sendMu. sendMu is taken before mu is released so
// views reach every connection in the order they were produced.
type Session struct {
	ID          string
	mu          sync.Mutex
	sendMu      sync.Mutex
	state       *model.GameState
	moves       int
	white       string
	black       string
	lastMove    *model.Ply
	captured    CapturedPieces
	connections *GameConnections
}

func NewSession(id string) *Session {
	return &Session{
		ID:          id,
		state:       model.NewGame(),
		captured:    CapturedPieces{White: []model.PieceView{}, Black: []model.PieceView{}},
		connections: NewGameConnections(),
	}
}

// AddPlayer seats playerID in the first free seat, White first. A player
// already seated gets their existing color back.
func (s *Session) AddPlayer(playerID string) (model.Color, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.colorOf(playerID); ok {
		return c, nil
	}
	switch {
	case s.white == "":
		s.white = playerID
		return model.White, nil
	case s.black == "":
		s.black = playerID
		return model.Black, nil
	}
	return "", ErrGameFull
}

func (s *Session) colorOf(playerID string) (model.Color, bool) {
	switch {
	case playerID == "":
		return "", false
	case playerID == s.white:
		return model.White, true
	case playerID == s.black:
		return model.Black, true
	}
	return "", false
}

func (s *Session) canSpectate() bool {
	return s.white == "" || s.black == ""
}

// MakeMove plays req on behalf of playerID and pushes the new state to every
// connection.
func (s *Session) MakeMove(playerID string, req model.MoveRequest) (model.MoveResult, error) {
	s.mu.Lock()
	color, ok := s.colorOf(playerID)
	if !ok {
		s.mu.Unlock()
		return model.MoveResult{}, ErrNotAPlayer
	}
	if color != s.state.Turn() && !s.state.Outcome().IsTerminal() {
		s.mu.Unlock()
		return model.MoveResult{}, fmt.Errorf("%w: %s to move", ErrNotYourTurn, s.state.Turn())
	}

	next, result, err := s.state.AttemptMove(req)
	if err != nil {
		s.mu.Unlock()
		log.Printf("game %s: %s move rejected: %v", s.ID, color, err)
		return model.MoveResult{}, err
	}
	s.state = next
	s.moves++
	ply := result.Ply
	s.lastMove = &ply
	if ply.CapturedPiece != nil {
		switch color {
		case model.White:
			s.captured.White = append(s.captured.White, *ply.CapturedPiece)
		case model.Black:
			s.captured.Black = append(s.captured.Black, *ply.CapturedPiece)
		}
	}
	view := s.view()
	s.sendMu.Lock()
	s.mu.Unlock()

	log.Printf("game %s: %s %v->%v applied (%v)", s.ID, color, req.From, req.To, result.Outcome)
	s.broadcast(view)
	s.sendMu.Unlock()
	return result, nil
}

func (s *Session) View() StateView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view()
}

func (s *Session) view() StateView {
	outcome := s.state.Outcome()
	v := StateView{
		ID:             s.ID,
		Moves:          s.moves,
		Board:          s.state.Snapshot(),
		ToMove:         s.state.Turn(),
		IsCheck:        outcome.Status == model.Check || outcome.Status == model.Checkmate,
		Outcome:        outcome,
		LastMove:       s.lastMove,
		CapturedPieces: s.captured,
	}
	if outcome.IsTerminal() {
		resolve := string(outcome.Status)
		v.Resolve = &resolve
	}
	if sq, ok := s.state.EnPassantPawn(); ok {
		v.EnPassantPawn = &sq
	}
	v.Players.White = ClientPlayer{ID: s.white, Color: model.White}
	v.Players.Black = ClientPlayer{ID: s.black, Color: model.Black}
	return v
}

func (s *Session) LegalDestinations(from model.Square) ([]model.Square, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.LegalDestinations(from)
}

// RegisterConnection attaches conn to playerID and sends it the current
// state. A player with a live connection keeps it; the new one is closed.
func (s *Session) RegisterConnection(playerID string, conn *Conn) error {
	s.mu.Lock()
	_, seated := s.colorOf(playerID)
	isAuthorized := seated || s.canSpectate()
	view := s.view()
	s.sendMu.Lock()
	s.mu.Unlock()
	defer s.sendMu.Unlock()

	if !isAuthorized {
		return ErrNotAuthorized
	}

	s.connections.mu.Lock()
	if _, exists := s.connections.connections[playerID]; exists {
		s.connections.mu.Unlock()
		_ = conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "Connection already exists"),
		)
		conn.Close()
		return nil
	}
	s.connections.connections[playerID] = conn
	s.connections.mu.Unlock()
	log.Printf("game %s: registered connection for player %s", s.ID, playerID)

	return send(conn, view)
}

// UnregisterConnection forgets conn if it is still the player's current one.
func (s *Session) UnregisterConnection(playerID string, conn *Conn) {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()

	if current, exists := s.connections.connections[playerID]; exists && current == conn {
		delete(s.connections.connections, playerID)
		log.Printf("game %s: unregistered connection for player %s", s.ID, playerID)
	}
}

// broadcast writes view to every connection; callers hold sendMu.
func (s *Session) broadcast(view StateView) {
	s.connections.mu.RLock()
	active := make(map[string]*Conn, len(s.connections.connections))
	for playerID, conn := range s.connections.connections {
		active[playerID] = conn
	}
	s.connections.mu.RUnlock()

	for playerID, conn := range active {
		if err := send(conn, view); err != nil {
			log.Printf("game %s: dropping connection for player %s: %v", s.ID, playerID, err)
			s.UnregisterConnection(playerID, conn)
		}
	}
}

func send(conn *Conn, view StateView) error {
	msg, err := ws.NewMessage(ws.MessageTypeGameState, view)
	if err != nil {
		return err
	}
	return conn.WriteJSON(msg)
}
