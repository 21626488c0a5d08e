package main

import (
	"event_agenda/config"
	"event_agenda/database"
	"event_agenda/handler"
	"event_agenda/router"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 25 * 1024 * 1024, // brochure uploads
	})

	origins := config.Config("CORS_ORIGIN")
	if origins == "" {
		origins = "http://localhost:5173"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()
	database.ConnectRedis()
	handler.Init(config.LoadAgendaConfig())

	router.SetupRoutes(app)
	log.Fatal(app.Listen(":8002"))
}
