package handler

import (
	"room_booking/model"
	"room_booking/store"
	"room_booking/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var themeValidate = validator.New()

func GetTheme(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"theme": s.Theme()})
	}
}

// SetTheme persists the light/dark preference with the other snapshots.
func SetTheme(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ThemeInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Tema harus light atau dark.", err)
		}
		if err := themeValidate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Tema harus light atau dark.", err)
		}
		s.SetTheme(input.Theme)
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"theme": input.Theme})
	}
}
