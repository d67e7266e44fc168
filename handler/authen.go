package handler

import (
	"errors"
	"time"

	"room_booking/constants"
	"room_booking/helper"
	"room_booking/model"
	"room_booking/store"
	"room_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Login is the mocked campus sign-in: the admin address gets the Admin
// role, any other @uinsaizu.ac.id address a student account. No password.
func Login(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type LoginInput struct {
			Email string `json:"email"`
		}

		loginInput := new(LoginInput)
		if err := c.BodyParser(loginInput); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
		}
		if loginInput.Email == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, errors.New("email is required"))
		}

		user, err := helper.ResolveCampusUser(loginInput.Email)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusUnauthorized, constants.INVALID_EMAIL, err, "email")
		}

		tokenClaim := model.TokenClaim{
			Email: user.Email,
			Name:  user.Name,
			NIM:   user.ID,
			Role:  user.Role,
		}
		token, err := helper.GenerateAccessToken(tokenClaim)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		refreshToken, err := helper.GenerateRefreshToken(tokenClaim)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		s.SetCurrentUser(&user)

		c.Cookie(&fiber.Cookie{
			Name:     "access_token",
			Value:    token,
			HTTPOnly: true,
			SameSite: "None",
			Secure:   false,
			Path:     "/",
		})
		c.Cookie(&fiber.Cookie{
			Name:     "refresh_token",
			Value:    refreshToken,
			HTTPOnly: true,
			SameSite: "None",
			Secure:   false,
			Path:     "/",
		})

		return c.JSON(fiber.Map{
			"message": "login success",
			"user":    user,
		})
	}
}

func Logout(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s.SetCurrentUser(nil)

		c.Cookie(&fiber.Cookie{Name: "access_token", Value: "", Expires: time.Now().Add(-time.Hour), HTTPOnly: true, Path: "/"})
		c.Cookie(&fiber.Cookie{Name: "refresh_token", Value: "", Expires: time.Now().Add(-time.Hour), HTTPOnly: true, Path: "/"})

		return c.JSON(fiber.Map{"message": "logout success"})
	}
}

// RefreshToken exchanges a valid refresh cookie for a new access cookie.
func RefreshToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		refresh := c.Cookies("refresh_token")
		if refresh == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing refresh token", errors.New("no refresh token"))
		}

		token, err := helper.ParseToken(refresh)
		if err != nil || !token.Valid {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", err)
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", errors.New("bad claims"))
		}
		email, _ := claims["email"].(string)
		user, err := helper.ResolveCampusUser(email)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_EMAIL, err)
		}

		access, err := helper.GenerateAccessToken(model.TokenClaim{
			Email: user.Email, Name: user.Name, NIM: user.ID, Role: user.Role,
		})
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		c.Cookie(&fiber.Cookie{
			Name:     "access_token",
			Value:    access,
			HTTPOnly: true,
			SameSite: "None",
			Secure:   false,
			Path:     "/",
		})
		return c.JSON(fiber.Map{"message": "token refreshed"})
	}
}

// Me echoes the authenticated actor from the token.
func Me() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claim, _, ok := helper.GetInfoUserFromToken(c)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", errors.New("no user in token"))
		}
		return utils.SuccessResponse(c, fiber.StatusOK, model.User{
			Email: claim.Email,
			Role:  claim.Role,
			Name:  claim.Name,
			ID:    claim.NIM,
		})
	}
}
