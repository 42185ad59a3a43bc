package model

import "fmt"

type Status string

const (
	InProgress Status = "in_progress"
	Check      Status = "check"
	Checkmate  Status = "checkmate"
	Stalemate  Status = "stalemate"
)

// Outcome classifies the position for the side to move. Side is the side in
// check for Check and the winner for Checkmate; it is empty otherwise.
type Outcome struct {
	Status Status `json:"status"`
	Side   Color  `json:"side,omitempty"`
}

// IsTerminal reports whether no further moves can be played.
func (o Outcome) IsTerminal() bool {
	return o.Status == Checkmate || o.Status == Stalemate
}

func (o Outcome) String() string {
	switch o.Status {
	case Check:
		return fmt.Sprintf("%s in check", o.Side)
	case Checkmate:
		return fmt.Sprintf("checkmate, %s wins", o.Side)
	case Stalemate:
		return "stalemate"
	}
	return "in progress"
}

// GameState is one game's complete rule state. Values are never modified
// once handed out: AttemptMove builds its successor on a private copy.
type GameState struct {
	board *Board
	turn  Color
	// lastDoubleStep is the pawn that advanced two ranks on the previous
	// move, the only history en passant needs.
	lastDoubleStep *Square
	outcome        Outcome
}

// NewGame returns the standard starting position with White to move.
func NewGame() *GameState {
	return &GameState{
		board:   newStandardBoard(),
		turn:    White,
		outcome: Outcome{Status: InProgress},
	}
}

// NewGameFromPosition starts a game from a custom board. The board is copied;
// later changes to b do not reach the game.
func NewGameFromPosition(b *Board, turn Color) (*GameState, error) {
	if turn != White && turn != Black {
		return nil, fmt.Errorf("%w: unknown side to move %q", ErrInvalidPosition, turn)
	}
	for _, c := range []Color{White, Black} {
		if n := b.countKings(c); n != 1 {
			return nil, fmt.Errorf("%w: %s has %d kings", ErrInvalidPosition, c, n)
		}
	}
	if IsInCheck(turn.Opponent(), b) {
		return nil, fmt.Errorf("%w: %s is in check but not to move", ErrInvalidPosition, turn.Opponent())
	}
	s := &GameState{board: b.clone(), turn: turn}
	s.outcome = s.evaluate()
	return s, nil
}

func (s *GameState) clone() *GameState {
	c := *s
	c.board = s.board.clone()
	if s.lastDoubleStep != nil {
		sq := *s.lastDoubleStep
		c.lastDoubleStep = &sq
	}
	return &c
}

func (s *GameState) Turn() Color {
	return s.turn
}

func (s *GameState) Outcome() Outcome {
	return s.outcome
}

// EnPassantPawn returns the pawn that can be taken en passant this turn.
func (s *GameState) EnPassantPawn() (Square, bool) {
	if s.lastDoubleStep == nil {
		return Square{}, false
	}
	return *s.lastDoubleStep, true
}

// PieceAt describes the piece on sq for rendering.
func (s *GameState) PieceAt(sq Square) (PieceView, bool) {
	p := s.board.At(sq)
	if p == nil {
		return PieceView{}, false
	}
	return p.view(), true
}

// Snapshot copies the board for rendering.
func (s *GameState) Snapshot() BoardSnapshot {
	return s.board.snapshot()
}

// AttemptMove plays req for the side to move. On success it returns a new
// state and what happened; on failure it returns s itself, untouched, and a
// *MoveError wrapping the reason.
func (s *GameState) AttemptMove(req MoveRequest) (*GameState, MoveResult, error) {
	if s.outcome.IsTerminal() {
		return s, MoveResult{}, reject(req, ErrGameAlreadyOver, s.outcome.String())
	}
	if !req.From.onBoard() || !req.To.onBoard() {
		return s, MoveResult{}, reject(req, ErrInvalidCoordinate, "")
	}

	p := s.board.At(req.From)
	if p == nil {
		return s, MoveResult{}, reject(req, ErrNoPieceAtSource, "")
	}
	if p.Color != s.turn {
		return s, MoveResult{}, reject(req, ErrWrongSideToMove, fmt.Sprintf("%s to move", s.turn))
	}

	eff, reason := s.plan(p, req.To)
	if reason != "" {
		return s, MoveResult{}, reject(req, ErrIllegalMove, reason)
	}
	if eff.promote != "" && req.Promotion != "" {
		if !req.Promotion.IsPromotionChoice() {
			return s, MoveResult{}, reject(req, ErrIllegalMove, reasonPromotion)
		}
		eff.promote = req.Promotion
	}

	next := s.clone()
	ply := Ply{
		Piece:     p.view(),
		From:      req.From,
		To:        req.To,
		Promotion: eff.promote,
		EnPassant: eff.enPassant,
	}
	if eff.rook != nil {
		rm := *eff.rook
		ply.CastleRookMove = &rm
	}
	if captured := next.board.apply(eff); captured != nil {
		v := captured.view()
		at := captured.Square
		ply.CapturedPiece = &v
		ply.CapturedAt = &at
	}

	next.lastDoubleStep = nil
	if eff.doubleStep {
		sq := eff.to
		next.lastDoubleStep = &sq
	}
	next.turn = s.turn.Opponent()
	next.outcome = next.evaluate()

	return next, MoveResult{Ply: ply, Outcome: next.outcome}, nil
}

// evaluate classifies the position for the side to move.
func (s *GameState) evaluate() Outcome {
	inCheck := IsInCheck(s.turn, s.board)
	canMove := s.hasLegalMove(s.turn)
	switch {
	case inCheck && !canMove:
		return Outcome{Status: Checkmate, Side: s.turn.Opponent()}
	case inCheck:
		return Outcome{Status: Check, Side: s.turn}
	case !canMove:
		return Outcome{Status: Stalemate}
	}
	return Outcome{Status: InProgress}
}

// LegalDestinations lists where the piece on from may legally move. Pieces of
// the side not to move, and every piece once the game is over, have none.
func (s *GameState) LegalDestinations(from Square) ([]Square, error) {
	if !from.onBoard() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCoordinate, from)
	}
	p := s.board.At(from)
	if p == nil {
		return nil, fmt.Errorf("%w: %v", ErrNoPieceAtSource, from)
	}
	if p.Color != s.turn || s.outcome.IsTerminal() {
		return []Square{}, nil
	}
	return s.destinations(p), nil
}

// LegalMoves enumerates every legal move for the side to move.
func (s *GameState) LegalMoves() []SimpleMove {
	moves := []SimpleMove{}
	if s.outcome.IsTerminal() {
		return moves
	}
	for _, p := range s.board.Pieces(s.turn) {
		for _, to := range s.destinations(p) {
			moves = append(moves, SimpleMove{From: p.Square, To: to})
		}
	}
	return moves
}
