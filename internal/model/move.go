package model

// MoveRequest is the intent a collaborator sends: move whatever stands on
// From to To. Promotion is optional and only read when a pawn promotes.
type MoveRequest struct {
	From      Square    `json:"from"`
	To        Square    `json:"to"`
	Promotion PieceKind `json:"promotion,omitempty"`
}

type CastleRookMove struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

// Ply records what an applied move did to the board.
type Ply struct {
	Piece          PieceView       `json:"piece"`
	From           Square          `json:"from"`
	To             Square          `json:"to"`
	CapturedPiece  *PieceView      `json:"capturedPiece"`
	CapturedAt     *Square         `json:"capturedAt,omitempty"`
	CastleRookMove *CastleRookMove `json:"castleRookMove"`
	Promotion      PieceKind       `json:"promotion,omitempty"`
	EnPassant      bool            `json:"enPassant,omitempty"`
}

type SimpleMove struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

// MoveResult is what AttemptMove reports for an applied move.
type MoveResult struct {
	Ply     Ply     `json:"ply"`
	Outcome Outcome `json:"outcome"`
}
