package model

import (
	"errors"
	"testing"

	"github.com/benbeisheim/chess-engine/internal/testutil"
)

func TestAttemptMove_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		state      func(t *testing.T) *GameState
		move       MoveRequest
		wantErr    error
		wantReason string
	}{
		{
			name:    "empty source",
			state:   func(*testing.T) *GameState { return NewGame() },
			move:    req("e4", "e5"),
			wantErr: ErrNoPieceAtSource,
		},
		{
			name:    "black moves first",
			state:   func(*testing.T) *GameState { return NewGame() },
			move:       req("e7", "e5"),
			wantErr:    ErrWrongSideToMove,
			wantReason: "white to move",
		},
		{
			name:    "off-board destination",
			state:   func(*testing.T) *GameState { return NewGame() },
			move:    MoveRequest{From: sq("h2"), To: Square{File: 8, Rank: 5}},
			wantErr: ErrInvalidCoordinate,
		},
		{
			name:       "own piece on destination",
			state:      func(*testing.T) *GameState { return NewGame() },
			move:       req("d1", "d2"),
			wantErr:    ErrIllegalMove,
			wantReason: reasonOwnPiece,
		},
		{
			name:       "bishop hemmed in",
			state:      func(*testing.T) *GameState { return NewGame() },
			move:       req("c1", "e3"),
			wantErr:    ErrIllegalMove,
			wantReason: reasonBlocked,
		},
		{
			name:       "rook pattern",
			state:      func(*testing.T) *GameState { return NewGame() },
			move:       req("a1", "b3"),
			wantErr:    ErrIllegalMove,
			wantReason: reasonPattern,
		},
		{
			name: "pinned rook leaves the file",
			state: func(t *testing.T) *GameState {
				return position(t, White, "wK@e1", "wR@e2", "bR@e8", "bK@a8")
			},
			move:       req("e2", "a2"),
			wantErr:    ErrIllegalMove,
			wantReason: reasonSelfCheck,
		},
		{
			name: "king steps onto attacked file",
			state: func(t *testing.T) *GameState {
				return position(t, White, "wK@e1", "bR@d8", "bK@a8")
			},
			move:       req("e1", "d1"),
			wantErr:    ErrIllegalMove,
			wantReason: reasonSelfCheck,
		},
		{
			name: "ignoring check",
			state: func(t *testing.T) *GameState {
				return position(t, White, "wK@e1", "wP@a2", "bR@e8", "bK@a8")
			},
			move:       req("a2", "a3"),
			wantErr:    ErrIllegalMove,
			wantReason: reasonSelfCheck,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.state(t)
			next, _, err := s.AttemptMove(tt.move)
			testutil.AssertErrorIs(t, err, tt.wantErr)
			if next != s {
				t.Errorf("rejected move returned a new state")
			}
			var me *MoveError
			if !errors.As(err, &me) {
				t.Fatalf("error %v is not a *MoveError", err)
			}
			testutil.AssertEqual(t, me.From, tt.move.From)
			testutil.AssertEqual(t, me.Reason, tt.wantReason)
		})
	}
}

func TestAttemptMove_RejectionLeavesBoardAlone(t *testing.T) {
	s := position(t, White, "wK@e1", "wR@e2", "bR@e8", "bK@a8")
	before := s.Snapshot()

	_, _, err := s.AttemptMove(req("e2", "a2"))
	testutil.AssertErrorIs(t, err, ErrIllegalMove)
	testutil.AssertEqual(t, s.Snapshot(), before)
	testutil.AssertEqual(t, s.Turn(), White)
}

func TestAttemptMove_PinnedPieceMayMoveAlongPin(t *testing.T) {
	s := position(t, White, "wK@e1", "wR@e2", "bR@e8", "bK@a8")
	next := play(t, s, "e2e5")
	testutil.AssertEqual(t, pieceAt(t, next, "e5"), PieceView{Kind: Rook, Color: White})

	next = position(t, White, "wK@e1", "wR@e2", "bR@e8", "bK@a8")
	next = play(t, next, "e2e8")
	testutil.AssertEqual(t, next.Outcome(), Outcome{Status: Check, Side: Black})
}

func TestAttemptMove_KnightJumps(t *testing.T) {
	s := play(t, NewGame(), "g1f3", "b8c6")
	testutil.AssertEqual(t, pieceAt(t, s, "f3"), PieceView{Kind: Knight, Color: White})
	testutil.AssertEqual(t, pieceAt(t, s, "c6"), PieceView{Kind: Knight, Color: Black})
	assertEmpty(t, s, "g1")
}

func TestAttemptMove_Capture(t *testing.T) {
	s := play(t, NewGame(), "e2e4", "d7d5")
	next, res, err := s.AttemptMove(req("e4", "d5"))
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, res.Ply.CapturedPiece, &PieceView{Kind: Pawn, Color: Black})
	capturedAt := sq("d5")
	testutil.AssertEqual(t, res.Ply.CapturedAt, &capturedAt)
	testutil.AssertEqual(t, pieceAt(t, next, "d5"), PieceView{Kind: Pawn, Color: White})
	testutil.AssertEqual(t, len(next.board.Pieces(Black)), 15)
}
