package model

type UserRole string

const (
	RoleUser  UserRole = "User"
	RoleAdmin UserRole = "Admin"
)

// User is the mock-authenticated actor. ID carries the NIM (students) or
// NIP (staff).
type User struct {
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
	Name  string   `json:"name"`
	ID    string   `json:"id"`
}

type TokenClaim struct {
	Email string   `json:"email"`
	Name  string   `json:"name"`
	NIM   string   `json:"nim"`
	Role  UserRole `json:"role"`
}

type TokenData struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

type ThemeInput struct {
	Theme Theme `json:"theme" validate:"required,oneof=light dark"`
}
