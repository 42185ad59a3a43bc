package controller

import (
	"errors"
	"log"

	"github.com/benbeisheim/chess-engine/internal/model"
	"github.com/benbeisheim/chess-engine/internal/service"
	"github.com/gofiber/fiber/v2"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

// statusFor maps engine and service errors onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, model.ErrInvalidCoordinate):
		return fiber.StatusBadRequest
	case errors.Is(err, service.ErrNotAPlayer), errors.Is(err, service.ErrNotYourTurn),
		errors.Is(err, service.ErrNotAuthorized):
		return fiber.StatusForbidden
	case errors.Is(err, model.ErrGameAlreadyOver), errors.Is(err, service.ErrGameFull),
		errors.Is(err, service.ErrAlreadyQueued), errors.Is(err, service.ErrGameExists):
		return fiber.StatusConflict
	case errors.Is(err, model.ErrIllegalMove), errors.Is(err, model.ErrNoPieceAtSource),
		errors.Is(err, model.ErrWrongSideToMove):
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}

func errorResponse(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func playerID(c *fiber.Ctx) string {
	id, _ := c.Locals("playerID").(string)
	return id
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	gameID, err := gc.gameService.CreateGame()
	if err != nil {
		return errorResponse(c, err)
	}
	log.Printf("created game %s for player %s", gameID, playerID(c))
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	color, err := gc.gameService.JoinGame(gameID, playerID(c))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Game joined",
		"color":   color,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameState, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(gameState)
}

// moveBody is the wire form of a move intent.
type moveBody struct {
	From      model.Square `json:"from"`
	To        model.Square `json:"to"`
	Promotion string       `json:"promotion"`
}

// parseMove validates a move intent before it reaches the engine.
func parseMove(body moveBody) (model.MoveRequest, error) {
	from, err := model.NewSquare(body.From.File, body.From.Rank)
	if err != nil {
		return model.MoveRequest{}, err
	}
	to, err := model.NewSquare(body.To.File, body.To.Rank)
	if err != nil {
		return model.MoveRequest{}, err
	}
	req := model.MoveRequest{From: from, To: to}
	if body.Promotion != "" {
		kind, ok := model.ParsePieceKind(body.Promotion)
		if !ok {
			return model.MoveRequest{}, &model.MoveError{Err: model.ErrIllegalMove, From: from, To: to, Reason: "unknown promotion piece " + body.Promotion}
		}
		req.Promotion = kind
	}
	return req, nil
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	var body moveBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid move body",
		})
	}
	req, err := parseMove(body)
	if err != nil {
		return errorResponse(c, err)
	}

	result, err := gc.gameService.HandleMove(c.Params("gameId"), playerID(c), req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(result)
}

func (gc *GameController) LegalDestinations(c *fiber.Ctx) error {
	from, err := model.NewSquare(c.QueryInt("file", -1), c.QueryInt("rank", -1))
	if err != nil {
		return errorResponse(c, err)
	}

	destinations, err := gc.gameService.LegalDestinations(c.Params("gameId"), from)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"from":         from,
		"destinations": destinations,
	})
}

func (gc *GameController) JoinMatchmaking(c *fiber.Ctx) error {
	if err := gc.gameService.JoinMatchmaking(playerID(c)); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"status": "queued",
	})
}
