package handler

import (
	"errors"

	"room_booking/constants"
	"room_booking/helper"
	"room_booking/model"
	"room_booking/store"
	"room_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func GetRooms(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return utils.SuccessResponse(c, fiber.StatusOK, s.Rooms())
	}
}

func GetRoomByID(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roomID := c.Locals("inputId").(string)
		room, err := s.GetRoom(roomID)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, err)
		}
		return utils.SuccessResponse(c, fiber.StatusOK, room)
	}
}

func CreateRoom(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, isAdmin, ok := helper.GetInfoUserFromToken(c)
		if !ok || !isAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
		}

		input := c.Locals("createRoomInput").(model.CreateRoomInput)
		room, err := s.CreateRoom(input)
		if err != nil {
			if errors.Is(err, store.ErrValidation) {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_TIME_RANGE, err)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		return utils.SuccessResponse(c, fiber.StatusCreated, room)
	}
}

// EditRoom replaces the catalog record; bookings keep their denormalized
// copies of the old name and building.
func EditRoom(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, isAdmin, ok := helper.GetInfoUserFromToken(c)
		if !ok || !isAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
		}

		room := c.Locals("editRoomResult").(model.Room)
		updated, err := s.EditRoom(room)
		if err != nil {
			if errors.Is(err, store.ErrRoomNotFound) {
				return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, err)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		return utils.SuccessResponse(c, fiber.StatusOK, updated)
	}
}

// DeleteRoom removes a room from the catalog. Existing bookings for it are
// orphaned deliberately, not cascade-deleted.
func DeleteRoom(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, isAdmin, ok := helper.GetInfoUserFromToken(c)
		if !ok || !isAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
		}

		roomID := c.Locals("inputId").(string)
		if err := s.DeleteRoom(roomID); err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, err)
		}
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": roomID})
	}
}
