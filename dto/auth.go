package dto

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims represents our custom JWT claims. Admin tokens carry the
// username claim, technician and citizen tokens carry the display name; the
// subject is always the account id.
type TokenClaims struct {
	Username string `json:"username,omitempty"`
	Name     string `json:"name,omitempty"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// AdminLoginRequest carries admin credentials.
type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TechnicianLoginRequest carries an optional technician display name. There
// is no credential: technician login matches by name only.
type TechnicianLoginRequest struct {
	Name string `json:"name"`
}

// CitizenLoginRequest identifies a citizen by name and government id. The
// pair is an identity, not a credential: the same pair always resolves to
// the same account.
type CitizenLoginRequest struct {
	Name         string `json:"name"`
	GovernmentID string `json:"governmentId"`
}

// AuthUser is the identity projection returned alongside a token.
type AuthUser struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// AuthResponse represents the response after authentication
type AuthResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}
