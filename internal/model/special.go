package model

// effects is everything one move does to a board. It names squares rather
// than piece handles so the same plan runs on the live board or a scratch copy.
type effects struct {
	from, to   Square
	capture    *Square
	rook       *CastleRookMove
	promote    PieceKind
	doubleStep bool
	enPassant  bool
}

// kingHomeFile is the e-file, the only file a king castles from.
const kingHomeFile = 4

// castleRookMove recognises a king stepping two files from the e-file along a
// rank and returns where the matching corner rook would go.
func castleRookMove(king *Piece, to Square) (CastleRookMove, bool) {
	if king.Kind != King || king.Square.File != kingHomeFile {
		return CastleRookMove{}, false
	}
	if to.Rank != king.Square.Rank || abs(to.File-king.Square.File) != 2 {
		return CastleRookMove{}, false
	}
	dir := sign(to.File - king.Square.File)
	rookFile := 0
	if dir > 0 {
		rookFile = boardSize - 1
	}
	return CastleRookMove{
		From: Square{File: rookFile, Rank: to.Rank},
		To:   Square{File: king.Square.File + dir, Rank: to.Rank},
	}, true
}

func (s *GameState) castleRejection(king *Piece, to Square, rm CastleRookMove) string {
	b := s.board
	if king.HasMoved || king.Square.Rank != king.Color.backRank() {
		return reasonCastleMoved
	}
	rook := b.At(rm.From)
	if rook == nil || rook.Kind != Rook || rook.Color != king.Color || rook.HasMoved {
		return reasonCastleMoved
	}
	if !pathClear(king.Square, rm.From, b) {
		return reasonBlocked
	}
	opp := king.Color.Opponent()
	for _, sq := range []Square{king.Square, rm.To, to} {
		if squareAttacked(sq, opp, b) {
			return reasonCastleAttacked
		}
	}
	return ""
}

// enPassantVictim returns the pawn p would capture en passant by moving to
// `to`: the enemy pawn that just double-stepped onto p's rank, adjacent file.
func (s *GameState) enPassantVictim(p *Piece, to Square) (*Piece, bool) {
	if p.Kind != Pawn || s.lastDoubleStep == nil {
		return nil, false
	}
	if abs(to.File-p.Square.File) != 1 || to.Rank-p.Square.Rank != p.Color.forward() {
		return nil, false
	}
	if s.board.At(to) != nil {
		return nil, false
	}
	victimSq := Square{File: to.File, Rank: p.Square.Rank}
	if victimSq != *s.lastDoubleStep {
		return nil, false
	}
	victim := s.board.At(victimSq)
	if victim == nil || victim.Kind != Pawn || victim.Color == p.Color {
		return nil, false
	}
	return victim, true
}

// apply performs eff on b and returns the captured piece, if any. The
// capture is removed before the mover lands so no square ever holds two pieces.
func (b *Board) apply(eff effects) *Piece {
	var captured *Piece
	if eff.capture != nil {
		if captured = b.At(*eff.capture); captured != nil {
			b.remove(captured)
		}
	}

	mover := b.At(eff.from)
	b.relocate(mover, eff.to)

	if eff.rook != nil {
		if rook := b.At(eff.rook.From); rook != nil {
			b.relocate(rook, eff.rook.To)
		}
	}

	if eff.promote != "" {
		b.remove(mover)
		b.put(&Piece{Kind: eff.promote, Color: mover.Color, Square: eff.to, HasMoved: true})
	}
	return captured
}
