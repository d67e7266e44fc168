package validate

import (
	"errors"
	"fmt"

	"room_booking/constants"
	"room_booking/model"
	"room_booking/store"
	"room_booking/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateBooking parses and validates a booking request: struct tags, time
// formats, start < end, room existence and the room's operating window.
// The conflict check itself stays inside the store's critical section.
func CreateBooking(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateBookingInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("Tidak dapat membaca permintaan: %s", err.Error()), err)
		}

		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		startMin, err := utils.ToMinutes(input.StartTime)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.INVALID_TIME_FORMAT, err, "startTime")
		}
		endMin, err := utils.ToMinutes(input.EndTime)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.INVALID_TIME_FORMAT, err, "endTime")
		}
		if startMin >= endMin {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.INVALID_TIME_RANGE, errors.New("start must be before end"), "endTime")
		}

		room, err := s.GetRoom(input.RoomID)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ROOM_NOT_FOUND, err, "roomId")
		}

		roomStart, err := utils.ToMinutes(room.AvailableStartTime)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		roomEnd, err := utils.ToMinutes(room.AvailableEndTime)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if startMin < roomStart || endMin > roomEnd {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.OUTSIDE_ROOM_WINDOW, errors.New("outside operating window"), "startTime")
		}

		c.Locals("createBookingInput", input)
		c.Locals("bookingRoom", room)
		return c.Next()
	}
}

// DecideBooking validates the admin decision body (Disetujui or Ditolak).
func DecideBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.DecideBookingInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_STATUS_VALUE, err)
		}
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.INVALID_STATUS_VALUE, err, "status")
		}

		c.Locals("decideBookingInput", input)
		return c.Next()
	}
}
