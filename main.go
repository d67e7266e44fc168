package main

import (
	"log"

	"room_booking/config"
	"room_booking/database"
	"room_booking/handler"
	"room_booking/helper"
	"room_booking/router"
	"room_booking/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/redis/go-redis/v9"
)

func main() {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigOr("CORS_ORIGIN", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	snap, err := database.Connect()
	if err != nil {
		log.Fatalf("failed to open snapshot store: %v", err)
	}

	s, err := store.New(snap)
	if err != nil {
		log.Fatalf("failed to load state: %v", err)
	}
	defer s.Close()

	var hub *handler.EventHub
	if addr := config.Config("REDIS_ADDR"); addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: config.Config("REDIS_PASSWORD"),
		})
		hub = handler.NewEventHub(rdb)
	}

	helper.StartBookingScheduler(s)
	defer helper.StopBookingScheduler()

	router.SetupRoutes(app, s, hub)

	log.Fatal(app.Listen(":" + config.ConfigOr("PORT", "8002")))
}
