package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/websocket/v2"

	"github.com/onechess/backend/internal/config"
	"github.com/onechess/backend/internal/controller"
	"github.com/onechess/backend/internal/middleware"
	"github.com/onechess/backend/internal/model"
	"github.com/onechess/backend/internal/service"
)

func main() {
	cfg := config.LoadConfig()

	app := fiber.New()

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Client-ID",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: true,
	}))
	app.Use(middleware.EnsureClientID())

	// One game for the whole process lifetime: a single shared board.
	game := model.NewGame()
	gameService := service.NewGameService(game)

	gameController := controller.NewGameController(gameService)
	wsController := controller.NewWebSocketController(gameService)

	app.Get("/", gameController.HealthCheck)
	app.Get("/state", gameController.GetState)
	app.Post("/move", gameController.PostMove)
	app.Get("/history", gameController.GetHistory)
	app.Post("/restart", gameController.PostRestart)

	app.Use("/ws", middleware.WebSocketUpgrade())
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsController.HandleConnection(c)
	}))

	log.Fatal(app.Listen(cfg.Addr))
}
