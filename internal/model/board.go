package model

import "fmt"

// Board is the authoritative square -> piece mapping. squares is indexed
// [rank][file], matching how the board is rendered top to bottom.
type Board struct {
	squares [boardSize][boardSize]*Piece
}

// BoardSnapshot is a copy of the board for rendering, indexed [rank][file].
type BoardSnapshot [boardSize][boardSize]*PieceView

var backRankKinds = [boardSize]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns an empty board for custom setups.
func NewBoard() *Board {
	return &Board{}
}

func newStandardBoard() *Board {
	b := NewBoard()
	for file, kind := range backRankKinds {
		for _, color := range []Color{White, Black} {
			b.put(&Piece{Kind: kind, Color: color, Square: Square{File: file, Rank: color.backRank()}})
			b.put(&Piece{Kind: Pawn, Color: color, Square: Square{File: file, Rank: color.pawnStartRank()}})
		}
	}
	return b
}

// Place adds a new piece to an empty square and returns its handle so setup
// code can mark it as already moved.
func (b *Board) Place(kind PieceKind, color Color, sq Square) (*Piece, error) {
	if !sq.onBoard() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCoordinate, sq)
	}
	if _, ok := ParsePieceKind(string(kind)); !ok {
		return nil, fmt.Errorf("%w: unknown piece kind %q", ErrInvalidPosition, kind)
	}
	if color != White && color != Black {
		return nil, fmt.Errorf("%w: unknown color %q", ErrInvalidPosition, color)
	}
	if occupant := b.At(sq); occupant != nil {
		return nil, fmt.Errorf("%w: %v already holds %v", ErrInvalidPosition, sq, occupant)
	}
	p := &Piece{Kind: kind, Color: color, Square: sq}
	b.put(p)
	return p, nil
}

// At returns the piece on sq, or nil.
func (b *Board) At(sq Square) *Piece {
	if !sq.onBoard() {
		return nil
	}
	return b.squares[sq.Rank][sq.File]
}

func (b *Board) put(p *Piece) {
	b.squares[p.Square.Rank][p.Square.File] = p
}

func (b *Board) remove(p *Piece) {
	if b.At(p.Square) == p {
		b.squares[p.Square.Rank][p.Square.File] = nil
	}
}

// relocate moves p to an empty square and marks it as moved.
func (b *Board) relocate(p *Piece, to Square) {
	b.remove(p)
	p.Square = to
	p.HasMoved = true
	b.put(p)
}

// Pieces lists a side's pieces in rank-then-file order.
func (b *Board) Pieces(color Color) []*Piece {
	pieces := make([]*Piece, 0, 16)
	for rank := 0; rank < boardSize; rank++ {
		for file := 0; file < boardSize; file++ {
			if p := b.squares[rank][file]; p != nil && p.Color == color {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// King returns the side's king, or nil if the board has none.
func (b *Board) King(color Color) *Piece {
	for _, p := range b.Pieces(color) {
		if p.Kind == King {
			return p
		}
	}
	return nil
}

func (b *Board) countKings(color Color) int {
	n := 0
	for _, p := range b.Pieces(color) {
		if p.Kind == King {
			n++
		}
	}
	return n
}

// clone returns an isolated deep copy; no handle is shared with b.
func (b *Board) clone() *Board {
	c := &Board{}
	for rank := 0; rank < boardSize; rank++ {
		for file := 0; file < boardSize; file++ {
			if p := b.squares[rank][file]; p != nil {
				cp := *p
				c.squares[rank][file] = &cp
			}
		}
	}
	return c
}

func (b *Board) snapshot() BoardSnapshot {
	var s BoardSnapshot
	for rank := 0; rank < boardSize; rank++ {
		for file := 0; file < boardSize; file++ {
			if p := b.squares[rank][file]; p != nil {
				v := p.view()
				s[rank][file] = &v
			}
		}
	}
	return s
}
