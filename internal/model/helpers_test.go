package model

import (
	"testing"
)

// sq converts a coordinate name such as "e4" to a Square.
func sq(name string) Square {
	return Square{File: int(name[0] - 'a'), Rank: boardSize - int(name[1]-'0')}
}

func req(from, to string) MoveRequest {
	return MoveRequest{From: sq(from), To: sq(to)}
}

// placement is "<color><kind>@<square>", e.g. "wK@e1" or "bP@d7".
func position(t *testing.T, turn Color, placements ...string) *GameState {
	t.Helper()
	s, err := NewGameFromPosition(board(t, placements...), turn)
	if err != nil {
		t.Fatalf("NewGameFromPosition(%v) failed: %v", placements, err)
	}
	return s
}

func board(t *testing.T, placements ...string) *Board {
	t.Helper()
	kinds := map[byte]PieceKind{'K': King, 'Q': Queen, 'R': Rook, 'B': Bishop, 'N': Knight, 'P': Pawn}
	b := NewBoard()
	for _, pl := range placements {
		color := White
		if pl[0] == 'b' {
			color = Black
		}
		if _, err := b.Place(kinds[pl[1]], color, sq(pl[3:])); err != nil {
			t.Fatalf("Place(%q) failed: %v", pl, err)
		}
	}
	return b
}

// play applies moves in order and fails the test on the first rejection.
func play(t *testing.T, s *GameState, moves ...string) *GameState {
	t.Helper()
	for _, m := range moves {
		next, _, err := s.AttemptMove(req(m[:2], m[2:]))
		if err != nil {
			t.Fatalf("AttemptMove(%s) failed: %v", m, err)
		}
		s = next
	}
	return s
}

func pieceAt(t *testing.T, s *GameState, name string) PieceView {
	t.Helper()
	v, ok := s.PieceAt(sq(name))
	if !ok {
		t.Fatalf("PieceAt(%s) is empty", name)
	}
	return v
}

func assertEmpty(t *testing.T, s *GameState, name string) {
	t.Helper()
	if v, ok := s.PieceAt(sq(name)); ok {
		t.Errorf("PieceAt(%s) = %v, want empty", name, v)
	}
}
