package helper

import (
	"fmt"
	"net/mail"
	"os"
	"strings"
	"time"

	"room_booking/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var JwtSecret = []byte(os.Getenv("JWT_SECRET"))

const AdminEmail = "admin@uinsaizu.ac.id"
const CampusDomain = "@uinsaizu.ac.id"

func ValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

// ResolveCampusUser maps a campus email to the mock actor. The admin
// address yields the Admin role; every other campus address is a student.
// Non-campus addresses are rejected.
func ResolveCampusUser(email string) (model.User, error) {
	addr := strings.ToLower(strings.TrimSpace(email))
	if !ValidEmail(addr) || !strings.HasSuffix(addr, CampusDomain) {
		return model.User{}, fmt.Errorf("email %q is not a campus address", email)
	}
	if addr == AdminEmail {
		return model.User{Email: addr, Role: model.RoleAdmin, Name: "Admin SAIZU", ID: "000000000"}, nil
	}
	return model.User{Email: addr, Role: model.RoleUser, Name: "Mahasiswa UIN SAIZU", ID: "123456789"}, nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["email"] = tokenClaim.Email
	claims["name"] = tokenClaim.Name
	claims["nim"] = tokenClaim.NIM
	claims["role"] = string(tokenClaim.Role)
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	return token.SignedString(JwtSecret)
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["email"] = tokenClaim.Email
	claims["role"] = string(tokenClaim.Role)
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	return token.SignedString(JwtSecret)
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret, nil
	})
}

// GetInfoUserFromToken reads the actor from the parsed token stashed by
// the Protected middleware. The second return is isAdmin, the third is
// whether a valid token was present at all.
func GetInfoUserFromToken(c *fiber.Ctx) (model.TokenClaim, bool, bool) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, false, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, false, false
	}
	claim := model.TokenClaim{}
	if v, ok := claims["email"].(string); ok {
		claim.Email = v
	}
	if v, ok := claims["name"].(string); ok {
		claim.Name = v
	}
	if v, ok := claims["nim"].(string); ok {
		claim.NIM = v
	}
	if v, ok := claims["role"].(string); ok {
		claim.Role = model.UserRole(v)
	}
	return claim, claim.Role == model.RoleAdmin, claim.Email != ""
}
