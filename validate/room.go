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

// CreateRoom validates a new catalog entry: struct tags plus a coherent
// operating window.
func CreateRoom() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateRoomInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("Tidak dapat membaca permintaan: %s", err.Error()), err)
		}

		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		if err := checkWindow(c, input.AvailableStartTime, input.AvailableEndTime); err != nil {
			return err
		}

		c.Locals("createRoomInput", input)
		return c.Next()
	}
}

// EditRoom validates a partial room update against the stored record and
// stashes the merged result.
func EditRoom(s *store.Store, key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roomID := c.Params(key)
		room, err := s.GetRoom(roomID)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, err)
		}

		var input model.EditRoomInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("Tidak dapat membaca permintaan: %s", err.Error()), err)
		}
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		if input.Name != nil {
			room.Name = *input.Name
		}
		if input.Building != nil {
			room.Building = *input.Building
		}
		if input.AvailableStartTime != nil {
			room.AvailableStartTime = *input.AvailableStartTime
		}
		if input.AvailableEndTime != nil {
			room.AvailableEndTime = *input.AvailableEndTime
		}

		if err := checkWindow(c, room.AvailableStartTime, room.AvailableEndTime); err != nil {
			return err
		}

		c.Locals("editRoomResult", room)
		return c.Next()
	}
}

func checkWindow(c *fiber.Ctx, start, end string) error {
	startMin, err := utils.ToMinutes(start)
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.INVALID_TIME_FORMAT, err, "availableStartTime")
	}
	endMin, err := utils.ToMinutes(end)
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.INVALID_TIME_FORMAT, err, "availableEndTime")
	}
	if startMin >= endMin {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.INVALID_TIME_RANGE, errors.New("window start must be before end"), "availableEndTime")
	}
	return nil
}
