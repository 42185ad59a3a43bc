package model

const (
	reasonOffBoard       = "destination is off the board"
	reasonSameSquare     = "piece must move"
	reasonOwnPiece       = "destination holds a piece of the same side"
	reasonPattern        = "piece cannot move that way"
	reasonBlocked        = "path is blocked"
	reasonSelfCheck      = "move leaves own king in check"
	reasonCastleMoved    = "king or rook has already moved"
	reasonCastleAttacked = "king would castle out of, through or into check"
	reasonPromotion      = "pawns promote to queen, rook, bishop or knight"
)

// plan validates moving p to `to` against s and returns the move's effects,
// or a non-empty rejection reason. A promoting pawn defaults to a queen.
// Nothing outside a private board copy is touched.
func (s *GameState) plan(p *Piece, to Square) (effects, string) {
	b := s.board
	switch {
	case !to.onBoard():
		return effects{}, reasonOffBoard
	case to == p.Square:
		return effects{}, reasonSameSquare
	}

	target := b.At(to)
	if target != nil && target.Color == p.Color {
		return effects{}, reasonOwnPiece
	}

	eff := effects{from: p.Square, to: to}
	if target != nil {
		sq := to
		eff.capture = &sq
	}

	if rm, ok := castleRookMove(p, to); ok {
		if reason := s.castleRejection(p, to, rm); reason != "" {
			return effects{}, reason
		}
		eff.rook = &rm
	} else if victim, ok := s.enPassantVictim(p, to); ok {
		sq := victim.Square
		eff.capture = &sq
		eff.enPassant = true
	} else {
		if !canReach(p, to, b) {
			return effects{}, reasonPattern
		}
		if !unobstructed(p, to, b) {
			return effects{}, reasonBlocked
		}
	}

	if p.Kind == Pawn {
		if to.Rank == p.Color.promotionRank() {
			eff.promote = Queen
		}
		eff.doubleStep = abs(to.Rank-p.Square.Rank) == 2
	}

	scratch := b.clone()
	scratch.apply(eff)
	if IsInCheck(p.Color, scratch) {
		return effects{}, reasonSelfCheck
	}
	return eff, ""
}

func (s *GameState) isLegal(p *Piece, to Square) bool {
	_, reason := s.plan(p, to)
	return reason == ""
}

// destinations lists every legal target for p in rank-then-file order.
func (s *GameState) destinations(p *Piece) []Square {
	out := []Square{}
	for rank := 0; rank < boardSize; rank++ {
		for file := 0; file < boardSize; file++ {
			sq := Square{File: file, Rank: rank}
			if s.isLegal(p, sq) {
				out = append(out, sq)
			}
		}
	}
	return out
}

func (s *GameState) hasLegalMove(color Color) bool {
	for _, p := range s.board.Pieces(color) {
		for rank := 0; rank < boardSize; rank++ {
			for file := 0; file < boardSize; file++ {
				if s.isLegal(p, Square{File: file, Rank: rank}) {
					return true
				}
			}
		}
	}
	return false
}
