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

// CreateBooking submits a validated request; the store runs the conflict
// check and append atomically. The requester's identity comes from the
// token, never from the body.
func CreateBooking(s *store.Store, hub *EventHub) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claim, _, ok := helper.GetInfoUserFromToken(c)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", errors.New("no user in token"))
		}

		input := c.Locals("createBookingInput").(model.CreateBookingInput)

		booking, err := s.CreateBooking(model.Booking{
			RoomID:    input.RoomID,
			UserID:    claim.Email,
			UserName:  claim.Name,
			UserNIM:   claim.NIM,
			Date:      input.Date,
			StartTime: input.StartTime,
			EndTime:   input.EndTime,
			Purpose:   input.Purpose,
		})
		if err != nil {
			switch {
			case errors.Is(err, store.ErrConflict):
				return utils.ErrorResponse(c, fiber.StatusConflict, constants.BOOKING_CONFLICT, err)
			case errors.Is(err, store.ErrRoomNotFound):
				return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, err)
			case errors.Is(err, store.ErrValidation):
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_TIME_RANGE, err)
			default:
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
			}
		}

		hub.PublishBooking("created", booking)

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": constants.BOOKING_CREATED,
			"booking": booking,
		})
	}
}

// GetBookings returns every booking for admins, only the requester's own
// for users.
func GetBookings(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claim, isAdmin, ok := helper.GetInfoUserFromToken(c)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", errors.New("no user in token"))
		}
		if isAdmin {
			return utils.SuccessResponse(c, fiber.StatusOK, s.Bookings())
		}
		return utils.SuccessResponse(c, fiber.StatusOK, s.BookingsForUser(claim.Email))
	}
}

// DecideBooking applies the admin decision (Disetujui or Ditolak) and
// notifies the requester by email when one is configured.
func DecideBooking(s *store.Store, hub *EventHub) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, isAdmin, ok := helper.GetInfoUserFromToken(c)
		if !ok || !isAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
		}

		bookingID := c.Locals("inputId").(string)
		input := c.Locals("decideBookingInput").(model.DecideBookingInput)

		booking, err := s.SetBookingStatus(bookingID, input.Status)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrBookingNotFound):
				return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
			case errors.Is(err, store.ErrIllegalTransition):
				return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, constants.ILLEGAL_TRANSITION, err)
			default:
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
			}
		}

		hub.PublishBooking("status", booking)

		if helper.ValidEmail(booking.UserID) {
			utils.SendDecisionEmail(booking.UserID, utils.DecisionEmailData{
				UserName:  booking.UserName,
				RoomName:  booking.RoomName,
				Date:      booking.Date,
				StartTime: booking.StartTime,
				EndTime:   booking.EndTime,
				Purpose:   booking.Purpose,
				Status:    string(booking.Status),
			})
		}

		return utils.SuccessResponse(c, fiber.StatusOK, booking)
	}
}

// CancelBooking lets the owning user move a still-active booking to
// Dibatalkan.
func CancelBooking(s *store.Store, hub *EventHub) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claim, _, ok := helper.GetInfoUserFromToken(c)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", errors.New("no user in token"))
		}

		bookingID := c.Locals("inputId").(string)

		booking, err := s.CancelBooking(bookingID, claim.Email)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrBookingNotFound):
				return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
			case errors.Is(err, store.ErrForbidden):
				return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BOOKING_OWNER, err)
			case errors.Is(err, store.ErrIllegalTransition):
				return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, constants.ILLEGAL_TRANSITION, err)
			default:
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
			}
		}

		hub.PublishBooking("status", booking)

		return c.JSON(fiber.Map{
			"message": constants.BOOKING_CANCELED,
			"booking": booking,
		})
	}
}

// DeleteBooking removes a booking permanently (admin only).
func DeleteBooking(s *store.Store, hub *EventHub) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, isAdmin, ok := helper.GetInfoUserFromToken(c)
		if !ok || !isAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
		}

		bookingID := c.Locals("inputId").(string)
		booking, err := s.GetBooking(bookingID)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
		}
		if err := s.DeleteBooking(bookingID); err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
		}

		hub.PublishBooking("deleted", booking)

		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": bookingID})
	}
}
