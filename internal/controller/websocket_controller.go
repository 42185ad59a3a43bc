package controller

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/benbeisheim/chess-engine/internal/service"
	"github.com/benbeisheim/chess-engine/internal/ws"
	"github.com/gofiber/websocket/v2"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	playerID, _ := c.Locals("playerID").(string)

	// Every write to c, including error replies, goes through conn.
	conn := service.NewConn(c)
	if err := wsc.gameService.RegisterConnection(gameID, playerID, conn); err != nil {
		log.Printf("game %s: failed to register connection for %s: %v", gameID, playerID, err)
		wsc.sendError(conn, err)
		conn.Close()
		return
	}
	defer wsc.gameService.UnregisterConnection(gameID, playerID, conn)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Printf("game %s: read error for %s: %v", gameID, playerID, err)
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			wsc.sendError(conn, fmt.Errorf("malformed message: %w", err))
			continue
		}
		if err := wsc.handleMessage(gameID, playerID, msg); err != nil {
			log.Printf("game %s: handle error for %s: %v", gameID, playerID, err)
			wsc.sendError(conn, err)
		}
	}
}

// handleMessage dispatches one inbound message. Accepted moves reach the
// client through the session broadcast, so only failures are answered here.
func (wsc *WebSocketController) handleMessage(gameID, playerID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var body moveBody
		if err := json.Unmarshal(msg.Payload, &body); err != nil {
			return fmt.Errorf("malformed move: %w", err)
		}
		req, err := parseMove(body)
		if err != nil {
			return err
		}
		_, err = wsc.gameService.HandleMove(gameID, playerID, req)
		return err
	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

// HandleMatchmaking holds the socket open until the player is paired, then
// forwards the matchFound message and closes.
func (wsc *WebSocketController) HandleMatchmaking(c *websocket.Conn) {
	playerID, _ := c.Locals("playerID").(string)
	defer c.Close()

	// The manager never blocks on a send, so the channel needs room for one.
	ch := make(chan string, 1)
	if err := wsc.gameService.RegisterMatchmakingChannel(playerID, ch); err != nil {
		wsc.sendError(c, err)
		return
	}
	defer wsc.gameService.UnregisterMatchmakingChannel(playerID, ch)

	// A read fails once the client goes away; that ends the wait.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	select {
	case msg, ok := <-ch:
		if !ok || msg == "" {
			return
		}
		if err := c.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
			log.Printf("matchmaking: notifying %s: %v", playerID, err)
		}
	case <-gone:
		log.Printf("matchmaking: player %s left the queue", playerID)
	}
}

func (wsc *WebSocketController) sendError(c service.StateWriter, err error) {
	msg, mErr := ws.NewMessage(ws.MessageTypeError, ws.ErrorPayload{Error: err.Error()})
	if mErr != nil {
		return
	}
	if wErr := c.WriteJSON(msg); wErr != nil {
		log.Printf("failed to send error message: %v", wErr)
	}
}
