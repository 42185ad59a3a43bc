package controller

import (
	"encoding/json"
	"testing"

	"github.com/benbeisheim/chess-engine/internal/model"
	"github.com/benbeisheim/chess-engine/internal/service"
	"github.com/benbeisheim/chess-engine/internal/testutil"
	"github.com/benbeisheim/chess-engine/internal/ws"
)

func TestWebSocketController_HandleMessage(t *testing.T) {
	gs := service.NewGameService(service.NewGameManager())
	gameID, err := gs.CreateGame()
	testutil.AssertNoError(t, err)
	_, err = gs.JoinGame(gameID, "alice")
	testutil.AssertNoError(t, err)
	_, err = gs.JoinGame(gameID, "bob")
	testutil.AssertNoError(t, err)

	wsc := NewWebSocketController(gs)
	move := func(body string) ws.Message {
		return ws.Message{Type: ws.MessageTypeMove, Payload: json.RawMessage(body)}
	}

	err = wsc.handleMessage(gameID, "alice", ws.Message{Type: "resign", Payload: json.RawMessage(`{}`)})
	testutil.AssertContains(t, err.Error(), "unknown message type")

	err = wsc.handleMessage(gameID, "alice", move(`"e2e4"`))
	testutil.AssertContains(t, err.Error(), "malformed move")

	err = wsc.handleMessage(gameID, "alice", move(moveJSON(4, 6, 4, 3, "")))
	testutil.AssertErrorIs(t, err, model.ErrIllegalMove)

	testutil.AssertNoError(t, wsc.handleMessage(gameID, "alice", move(moveJSON(4, 6, 4, 4, ""))))

	state, err := gs.GetGameState(gameID)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, state.ToMove, model.Black)
}
