package model

// IsInCheck reports whether color's king is attacked on b. A board without
// that king is never in check.
func IsInCheck(color Color, b *Board) bool {
	king := b.King(color)
	if king == nil {
		return false
	}
	return squareAttacked(king.Square, color.Opponent(), b)
}

// squareAttacked stops at the first attacker found.
func squareAttacked(sq Square, by Color, b *Board) bool {
	for _, p := range b.Pieces(by) {
		if attacks(p, sq, b) {
			return true
		}
	}
	return false
}
