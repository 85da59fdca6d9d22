package main

import (
	"accommodation_manager/config"
	"accommodation_manager/database"
	"accommodation_manager/middleware"
	"accommodation_manager/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()
	if cfg.GateMode == config.GateDisabled {
		log.Warn("AUTH_SERVICE_URL not set, access gate disabled: all requests pass unchecked")
	}

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Authorization, Accept, user-id",
		MaxAge:       600,
	}))

	database.ConnectDB()

	gate := middleware.NewAccessGate(cfg)
	router.SetupRoutes(app, gate, cfg.BasePath)

	log.Fatal(app.Listen(":" + cfg.Port))
}
