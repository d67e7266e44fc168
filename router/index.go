package router

import (
	"room_booking/handler"
	"room_booking/middleware"
	"room_booking/model"
	"room_booking/store"
	"room_booking/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// SetupRoutes wires the actor-facing API. Page access (home, status,
// admin) is decided once here via the access table, not inside handlers.
func SetupRoutes(app *fiber.App, s *store.Store, hub *handler.EventHub) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login(s))
	auth.Post("/logout", handler.Logout(s))
	auth.Post("/refresh-token", handler.RefreshToken())
	auth.Get("/me", middleware.Protected(), handler.Me())

	// Home page: public browsing of rooms and availability.
	home := middleware.RequirePage(model.PageHome)
	v1.Get("/availability", home, handler.GetAvailability(s))
	v1.Get("/rooms", home, handler.GetRooms(s))
	v1.Get("/rooms/:roomId", home, validate.GetByID("roomId"), handler.GetRoomByID(s))

	// Status page: a signed-in student's own bookings.
	status := v1.Group("/booking", middleware.Protected(), middleware.RequirePage(model.PageStatus))
	status.Get("/", handler.GetBookings(s))
	status.Post("/", validate.CreateBooking(s), handler.CreateBooking(s, hub))
	status.Patch("/:bookingId/cancel", validate.GetByID("bookingId"), handler.CancelBooking(s, hub))

	// Admin dashboard: decisions, permanent deletes, catalog management.
	admin := v1.Group("/admin", middleware.RequirePage(model.PageAdmin))
	admin.Get("/booking", handler.GetBookings(s))
	admin.Patch("/booking/:bookingId/status", validate.GetByID("bookingId"), validate.DecideBooking(), handler.DecideBooking(s, hub))
	admin.Delete("/booking/:bookingId", validate.GetByID("bookingId"), handler.DeleteBooking(s, hub))
	admin.Post("/room", validate.CreateRoom(), handler.CreateRoom(s))
	admin.Put("/room/:roomId", validate.EditRoom(s, "roomId"), handler.EditRoom(s))
	admin.Delete("/room/:roomId", validate.GetByID("roomId"), handler.DeleteRoom(s))

	theme := v1.Group("/theme")
	theme.Get("/", handler.GetTheme(s))
	theme.Put("/", handler.SetTheme(s))

	if hub != nil {
		ws := v1.Group("/ws")
		ws.Use(func(c *fiber.Ctx) error {
			if websocket.IsWebSocketUpgrade(c) {
				return c.Next()
			}
			return fiber.ErrUpgradeRequired
		})
		ws.Get("/building/:building", websocket.New(hub.Connection))
	}
}
