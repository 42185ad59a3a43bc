package model

import (
	"fmt"
	"strings"
)

type PieceKind string

const (
	King   PieceKind = "king"
	Queen  PieceKind = "queen"
	Rook   PieceKind = "rook"
	Bishop PieceKind = "bishop"
	Knight PieceKind = "knight"
	Pawn   PieceKind = "pawn"
)

// ParsePieceKind accepts a kind name in any case.
func ParsePieceKind(s string) (PieceKind, bool) {
	k := PieceKind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case King, Queen, Rook, Bishop, Knight, Pawn:
		return k, true
	}
	return "", false
}

// IsPromotionChoice reports whether a pawn may promote to k.
func (k PieceKind) IsPromotionChoice() bool {
	switch k {
	case Queen, Rook, Bishop, Knight:
		return true
	}
	return false
}

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

// Opponent returns the other side.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// forward is the rank delta of a pawn step.
func (c Color) forward() int {
	if c == White {
		return -1
	}
	return 1
}

func (c Color) backRank() int {
	if c == White {
		return boardSize - 1
	}
	return 0
}

func (c Color) pawnStartRank() int {
	return c.backRank() + c.forward()
}

// promotionRank is the opponent's back rank.
func (c Color) promotionRank() int {
	return c.Opponent().backRank()
}

// Piece is a live piece owned by a Board. Only the board moves it.
type Piece struct {
	Kind     PieceKind `json:"type"`
	Color    Color     `json:"color"`
	Square   Square    `json:"position"`
	HasMoved bool      `json:"hasMoved"`
}

func (p *Piece) String() string {
	return fmt.Sprintf("%s %s@%s", p.Color, p.Kind, p.Square)
}

// PieceView is the read-only description handed to renderers.
type PieceView struct {
	Kind  PieceKind `json:"type"`
	Color Color     `json:"color"`
}

func (p *Piece) view() PieceView {
	return PieceView{Kind: p.Kind, Color: p.Color}
}
