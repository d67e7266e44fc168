package validate

import (
	"errors"

	"room_booking/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// GetByID lifts a non-empty path param into locals for the handler.
func GetByID(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		value := c.Params(key)
		if value == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "ID tidak boleh kosong", errors.New("params invalid"))
		}

		c.Locals("inputId", value)
		return c.Next()
	}
}
