package service

import "errors"

var (
	ErrGameNotFound  = errors.New("game not found")
	ErrGameExists    = errors.New("game already exists")
	ErrGameFull      = errors.New("game is full")
	ErrNotAPlayer    = errors.New("player not in game")
	ErrNotYourTurn   = errors.New("not your turn")
	ErrNotAuthorized = errors.New("not authorized to join this game")
	ErrAlreadyQueued = errors.New("player already in queue")
)
