package service

import "github.com/benbeisheim/chess-engine/internal/model"

type Player struct {
	ID    string
	Color model.Color
}

type ClientPlayer struct {
	ID    string      `json:"name"`
	Color model.Color `json:"color"`
}
