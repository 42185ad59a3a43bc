package model

import (
	"errors"
	"fmt"
)

// Every rejection AttemptMove returns wraps one of these; test with errors.Is.
var (
	ErrNoPieceAtSource   = errors.New("no piece at source square")
	ErrWrongSideToMove   = errors.New("wrong side to move")
	ErrIllegalMove       = errors.New("illegal move")
	ErrGameAlreadyOver   = errors.New("game already over")
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrInvalidPosition   = errors.New("invalid position")
)

// MoveError carries the attempted move alongside the rejection.
type MoveError struct {
	Err    error
	From   Square
	To     Square
	Reason string
}

func (e *MoveError) Error() string {
	msg := fmt.Sprintf("%v->%v: %v", e.From, e.To, e.Err)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

func reject(req MoveRequest, err error, reason string) *MoveError {
	return &MoveError{Err: err, From: req.From, To: req.To, Reason: reason}
}
