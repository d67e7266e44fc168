package handler

import (
	"errors"
	"time"

	"room_booking/constants"
	"room_booking/store"
	"room_booking/utils"

	"github.com/gofiber/fiber/v2"
)

// GetAvailability lists rooms with their free slots for a date, optionally
// filtered by building. Defaults: today, both buildings.
func GetAvailability(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		date := c.Query("date", time.Now().Format("2006-01-02"))
		if !utils.IsValidYYYYMMDD(date) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.INVALID_DATE_FORMAT, errors.New("invalid date"), "date")
		}

		building := c.Query("building", store.BuildingAll)
		if building != store.BuildingAll && building != "D" && building != "S" {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Gedung harus D, S, atau semua.", errors.New("invalid building"), "building")
		}

		rooms, err := s.Availability(date, building)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		return utils.SuccessResponse(c, fiber.StatusOK, rooms)
	}
}
