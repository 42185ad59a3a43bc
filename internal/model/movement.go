package model

// reachFunc reports whether a piece's move pattern covers the destination.
// It ignores obstruction and check; the validator adds both.
type reachFunc func(p *Piece, to Square, b *Board) bool

var reachTable = map[PieceKind]reachFunc{
	Pawn:   pawnReach,
	Knight: knightReach,
	Bishop: bishopReach,
	Rook:   rookReach,
	Queen:  queenReach,
	King:   kingReach,
}

func canReach(p *Piece, to Square, b *Board) bool {
	if to == p.Square || !to.onBoard() {
		return false
	}
	reach, ok := reachTable[p.Kind]
	return ok && reach(p, to, b)
}

func pawnReach(p *Piece, to Square, b *Board) bool {
	df := to.File - p.Square.File
	dr := to.Rank - p.Square.Rank
	fwd := p.Color.forward()
	target := b.At(to)

	switch {
	case df == 0 && dr == fwd:
		return target == nil
	case df == 0 && dr == 2*fwd:
		if p.Square.Rank != p.Color.pawnStartRank() || target != nil {
			return false
		}
		return b.At(Square{File: p.Square.File, Rank: p.Square.Rank + fwd}) == nil
	case abs(df) == 1 && dr == fwd:
		return target != nil && target.Color != p.Color
	}
	return false
}

func knightReach(p *Piece, to Square, _ *Board) bool {
	df, dr := abs(to.File-p.Square.File), abs(to.Rank-p.Square.Rank)
	return (df == 1 && dr == 2) || (df == 2 && dr == 1)
}

func bishopReach(p *Piece, to Square, _ *Board) bool {
	df, dr := abs(to.File-p.Square.File), abs(to.Rank-p.Square.Rank)
	return df == dr && df > 0
}

func rookReach(p *Piece, to Square, _ *Board) bool {
	df, dr := to.File-p.Square.File, to.Rank-p.Square.Rank
	return (df == 0) != (dr == 0)
}

func queenReach(p *Piece, to Square, b *Board) bool {
	return bishopReach(p, to, b) || rookReach(p, to, b)
}

func kingReach(p *Piece, to Square, _ *Board) bool {
	df, dr := abs(to.File-p.Square.File), abs(to.Rank-p.Square.Rank)
	return df <= 1 && dr <= 1 && df+dr > 0
}

// pathClear walks the unit step from `from` toward `to` and fails on the
// first occupied square strictly between them. Only meaningful for lines.
func pathClear(from, to Square, b *Board) bool {
	df, dr := sign(to.File-from.File), sign(to.Rank-from.Rank)
	sq, ok := from.offset(df, dr)
	for ok && sq != to {
		if b.At(sq) != nil {
			return false
		}
		sq, ok = sq.offset(df, dr)
	}
	return true
}

// unobstructed applies pathClear to everything except knights, which jump.
func unobstructed(p *Piece, to Square, b *Board) bool {
	return p.Kind == Knight || pathClear(p.Square, to, b)
}

// attacks reports whether p strikes sq. Pawns attack their forward diagonals
// whether or not the square is occupied, unlike pawnReach.
func attacks(p *Piece, sq Square, b *Board) bool {
	if p.Kind == Pawn {
		return abs(sq.File-p.Square.File) == 1 && sq.Rank-p.Square.Rank == p.Color.forward()
	}
	return canReach(p, sq, b) && unobstructed(p, sq, b)
}
