package middleware

import (
	"errors"
	"os"
	"strings"

	"room_booking/constants"
	"room_booking/model"
	"room_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func tokenFromRequest(c *fiber.Ctx) string {
	token := c.Cookies("access_token")
	if token == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		}
	}
	return token
}

func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFromRequest(c)
		if token == "" {
			return utils.ErrorResponse(c, 401, "Missing token", errors.New("no token"))
		}

		jwtToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, 401, "Invalid token", err)
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}

// RequirePage guards a route group with the page access table. An invalid
// or absent token means a guest, which is still enough for public pages.
func RequirePage(page model.Page) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var role model.UserRole
		if token := tokenFromRequest(c); token != "" {
			jwtToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
				return []byte(os.Getenv("JWT_SECRET")), nil
			})
			if err == nil && jwtToken.Valid {
				if claims, ok := jwtToken.Claims.(jwt.MapClaims); ok {
					if r, ok := claims["role"].(string); ok {
						role = model.UserRole(r)
					}
				}
				c.Locals("user", jwtToken)
			}
		}

		if !model.Accessible(page, role) {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.PAGE_FORBIDDEN, errors.New("page not accessible for role"))
		}
		return c.Next()
	}
}
