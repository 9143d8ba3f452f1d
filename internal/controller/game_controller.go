package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/onechess/backend/internal/model"
	"github.com/onechess/backend/internal/service"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

// MoveRequest is the body of POST /move.
type MoveRequest struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion"`
}

func (gc *GameController) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Healthy",
	})
}

func (gc *GameController) GetState(c *fiber.Ctx) error {
	return c.JSON(gc.gameService.GetState())
}

func (gc *GameController) GetHistory(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"history": gc.gameService.GetHistory(),
	})
}

// PostMove applies a move to the shared game. Rule rejections come back
// as 400 with the reason text and a stable code; the game is untouched
// in that case.
func (gc *GameController) PostMove(c *fiber.Ctx) error {
	var req MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	record, err := gc.gameService.ApplyMove(req.From, req.To, req.Promotion)
	if err != nil {
		if model.IsRuleError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
				"code":  model.ErrorCode(err),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to apply move",
		})
	}

	return c.JSON(fiber.Map{
		"state":     gc.gameService.GetState(),
		"last_move": record,
	})
}

func (gc *GameController) PostRestart(c *fiber.Ctx) error {
	gc.gameService.Restart()

	return c.JSON(fiber.Map{
		"state":   gc.gameService.GetState(),
		"history": []model.MoveRecord{},
	})
}
