package model

import (
	"testing"

	"github.com/benbeisheim/chess-engine/internal/testutil"
)

var castlingPieces = []string{"wK@e1", "wR@a1", "wR@h1", "bK@e8", "bR@a8", "bR@h8"}

func TestCastling(t *testing.T) {
	tests := []struct {
		name     string
		turn     Color
		move     string
		kingTo   string
		rookFrom string
		rookTo   string
	}{
		{"white kingside", White, "e1g1", "g1", "h1", "f1"},
		{"white queenside", White, "e1c1", "c1", "a1", "d1"},
		{"black kingside", Black, "e8g8", "g8", "h8", "f8"},
		{"black queenside", Black, "e8c8", "c8", "a8", "d8"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := position(t, tt.turn, castlingPieces...)
			next, res, err := s.AttemptMove(req(tt.move[:2], tt.move[2:]))
			testutil.AssertNoError(t, err)

			testutil.AssertEqual(t, pieceAt(t, next, tt.kingTo), PieceView{Kind: King, Color: tt.turn})
			testutil.AssertEqual(t, pieceAt(t, next, tt.rookTo), PieceView{Kind: Rook, Color: tt.turn})
			assertEmpty(t, next, tt.rookFrom)
			assertEmpty(t, next, tt.move[:2])
			testutil.AssertEqual(t, res.Ply.CastleRookMove, &CastleRookMove{From: sq(tt.rookFrom), To: sq(tt.rookTo)})
			testutil.AssertEqual(t, next.Turn(), tt.turn.Opponent())
		})
	}
}

func TestCastlingRefused(t *testing.T) {
	tests := []struct {
		name       string
		pieces     []string
		moved      string
		move       string
		wantReason string
	}{
		{
			name:       "through an attacked square",
			pieces:     []string{"wK@e1", "wR@h1", "bK@a8", "bR@f8"},
			move:       "e1g1",
			wantReason: reasonCastleAttacked,
		},
		{
			name:       "out of check",
			pieces:     []string{"wK@e1", "wR@h1", "bK@a8", "bR@e5"},
			move:       "e1g1",
			wantReason: reasonCastleAttacked,
		},
		{
			name:       "into check",
			pieces:     []string{"wK@e1", "wR@a1", "bK@h8", "bR@c8"},
			move:       "e1c1",
			wantReason: reasonCastleAttacked,
		},
		{
			name:       "queenside through attacked d1",
			pieces:     []string{"wK@e1", "wR@a1", "bK@h8", "bR@d8"},
			move:       "e1c1",
			wantReason: reasonCastleAttacked,
		},
		{
			name:       "bishop in the way",
			pieces:     []string{"wK@e1", "wR@h1", "wB@f1", "bK@a8"},
			move:       "e1g1",
			wantReason: reasonBlocked,
		},
		{
			name:       "queenside b-file piece in the way",
			pieces:     []string{"wK@e1", "wR@a1", "wN@b1", "bK@h8"},
			move:       "e1c1",
			wantReason: reasonBlocked,
		},
		{
			name:       "rook has moved",
			pieces:     []string{"wK@e1", "wR@h1", "bK@a8"},
			moved:      "h1",
			move:       "e1g1",
			wantReason: reasonCastleMoved,
		},
		{
			name:       "king has moved",
			pieces:     []string{"wK@e1", "wR@h1", "bK@a8"},
			moved:      "e1",
			move:       "e1g1",
			wantReason: reasonCastleMoved,
		},
		{
			name:       "king off the e-file",
			pieces:     []string{"wK@d1", "wR@h1", "bK@a8"},
			move:       "d1f1",
			wantReason: reasonPattern,
		},
		{
			name:       "king off the e-file toward the queen side",
			pieces:     []string{"wK@f1", "wR@a1", "bK@h8"},
			move:       "f1d1",
			wantReason: reasonPattern,
		},
		{
			name:       "no rook in the corner",
			pieces:     []string{"wK@e1", "bK@a8"},
			move:       "e1g1",
			wantReason: reasonCastleMoved,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := board(t, tt.pieces...)
			if tt.moved != "" {
				b.At(sq(tt.moved)).HasMoved = true
			}
			s, err := NewGameFromPosition(b, White)
			testutil.AssertNoError(t, err)

			_, _, err = s.AttemptMove(req(tt.move[:2], tt.move[2:]))
			testutil.AssertErrorIs(t, err, ErrIllegalMove)
			if me, ok := err.(*MoveError); ok {
				testutil.AssertEqual(t, me.Reason, tt.wantReason)
			}
		})
	}
}

func TestCastling_QueensideWithAttackedB1(t *testing.T) {
	s := position(t, White, "wK@e1", "wR@a1", "bK@h8", "bR@b8")
	next := play(t, s, "e1c1")
	testutil.AssertEqual(t, pieceAt(t, next, "c1"), PieceView{Kind: King, Color: White})
	testutil.AssertEqual(t, pieceAt(t, next, "d1"), PieceView{Kind: Rook, Color: White})
}

func TestCastling_LostAfterRookReturns(t *testing.T) {
	s := position(t, White, castlingPieces...)
	s = play(t, s, "h1h2", "a8a7", "h2h1", "a7a8")

	_, _, err := s.AttemptMove(req("e1", "g1"))
	testutil.AssertErrorIs(t, err, ErrIllegalMove)
	// The other wing is untouched.
	play(t, s, "e1c1")
}

func TestEnPassant(t *testing.T) {
	s := position(t, Black, "wK@e1", "wP@e5", "bK@e8", "bP@d7")
	s = play(t, s, "d7d5")

	ep, ok := s.EnPassantPawn()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, ep, sq("d5"))

	next, res, err := s.AttemptMove(req("e5", "d6"))
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, res.Ply.EnPassant)
	testutil.AssertEqual(t, res.Ply.CapturedPiece, &PieceView{Kind: Pawn, Color: Black})
	capturedAt := sq("d5")
	testutil.AssertEqual(t, res.Ply.CapturedAt, &capturedAt)
	testutil.AssertEqual(t, pieceAt(t, next, "d6"), PieceView{Kind: Pawn, Color: White})
	assertEmpty(t, next, "d5")
	assertEmpty(t, next, "e5")

	_, ok = next.EnPassantPawn()
	testutil.AssertFalse(t, ok)
}

func TestEnPassant_Expires(t *testing.T) {
	s := position(t, Black, "wK@e1", "wP@e5", "bK@e8", "bP@d7")
	s = play(t, s, "d7d5", "e1e2", "e8f8")

	_, ok := s.EnPassantPawn()
	testutil.AssertFalse(t, ok)
	_, _, err := s.AttemptMove(req("e5", "d6"))
	testutil.AssertErrorIs(t, err, ErrIllegalMove)
}

func TestEnPassant_OnlyAfterDoubleStep(t *testing.T) {
	s := position(t, Black, "wK@e1", "wP@e5", "bK@e8", "bP@d6")
	s = play(t, s, "d6d5")

	_, _, err := s.AttemptMove(req("e5", "d6"))
	testutil.AssertErrorIs(t, err, ErrIllegalMove)
}

func TestPromotion(t *testing.T) {
	tests := []struct {
		name      string
		move      MoveRequest
		wantKind  PieceKind
		wantError error
	}{
		{"defaults to queen", req("a7", "a8"), Queen, nil},
		{"knight on request", MoveRequest{From: sq("a7"), To: sq("a8"), Promotion: Knight}, Knight, nil},
		{"rook on request", MoveRequest{From: sq("a7"), To: sq("a8"), Promotion: Rook}, Rook, nil},
		{"capturing", MoveRequest{From: sq("a7"), To: sq("b8"), Promotion: Bishop}, Bishop, nil},
		{"king is not a choice", MoveRequest{From: sq("a7"), To: sq("a8"), Promotion: King}, "", ErrIllegalMove},
		{"pawn is not a choice", MoveRequest{From: sq("a7"), To: sq("a8"), Promotion: Pawn}, "", ErrIllegalMove},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := position(t, White, "wK@e1", "wP@a7", "bK@h5", "bN@b8")
			next, res, err := s.AttemptMove(tt.move)
			if tt.wantError != nil {
				testutil.AssertErrorIs(t, err, tt.wantError)
				testutil.AssertEqual(t, pieceAt(t, s, "a7"), PieceView{Kind: Pawn, Color: White})
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, res.Ply.Promotion, tt.wantKind)
			testutil.AssertEqual(t, pieceAt(t, next, tt.move.To.String()), PieceView{Kind: tt.wantKind, Color: White})
			assertEmpty(t, next, "a7")
		})
	}
}

func TestPromotion_Black(t *testing.T) {
	s := position(t, Black, "wK@h8", "bK@a5", "bP@c2")
	next, res, err := s.AttemptMove(req("c2", "c1"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, res.Ply.Piece, PieceView{Kind: Pawn, Color: Black})
	testutil.AssertEqual(t, pieceAt(t, next, "c1"), PieceView{Kind: Queen, Color: Black})
}

func TestPromotion_ChoiceIgnoredOnOrdinaryMove(t *testing.T) {
	next, res, err := NewGame().AttemptMove(MoveRequest{From: sq("e2"), To: sq("e4"), Promotion: Queen})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, res.Ply.Promotion, PieceKind(""))
	testutil.AssertEqual(t, pieceAt(t, next, "e4"), PieceView{Kind: Pawn, Color: White})
}
