package model

import "fmt"

const boardSize = 8

// Square is a board coordinate. File 0 is the a-file; rank 0 is Black's back
// rank and rank 7 is White's, so e2 is {File: 4, Rank: 6}.
type Square struct {
	File int `json:"file"`
	Rank int `json:"rank"`
}

// NewSquare validates a coordinate coming from outside the engine.
func NewSquare(file, rank int) (Square, error) {
	sq := Square{File: file, Rank: rank}
	if !sq.onBoard() {
		return Square{}, fmt.Errorf("%w: (%d,%d)", ErrInvalidCoordinate, file, rank)
	}
	return sq, nil
}

func (s Square) onBoard() bool {
	return s.File >= 0 && s.File < boardSize && s.Rank >= 0 && s.Rank < boardSize
}

// offset steps by (df, dr); ok is false when the result would leave the board.
func (s Square) offset(df, dr int) (Square, bool) {
	next := Square{File: s.File + df, Rank: s.Rank + dr}
	return next, next.onBoard()
}

// String renders the square as a coordinate name, e.g. "e4".
func (s Square) String() string {
	if !s.onBoard() {
		return fmt.Sprintf("(%d,%d)", s.File, s.Rank)
	}
	return fmt.Sprintf("%c%d", s.File+'a', boardSize-s.Rank)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
