package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/civicfix-server/config"
	"github.com/civicfix-server/dto"
	"github.com/civicfix-server/models"
	"github.com/civicfix-server/repositories"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Sentinel errors mapped to HTTP statuses by the handlers.
var (
	ErrMissingCredentials = errors.New("username and password required")
	ErrUnknownAdmin       = errors.New("invalid admin username")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrNoActiveTechnician = errors.New("no active technician found")
	ErrMissingIdentity    = errors.New("name and government ID required")
)

// AdminLogin authenticates the single configured admin account. Any other
// username is rejected before the database is consulted: this is a deliberate
// single-admin restriction, not a general role check.
func AdminLogin(req dto.AdminLoginRequest) (*dto.AuthResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, ErrMissingCredentials
	}

	username := strings.ToLower(req.Username)
	if username != strings.ToLower(config.AdminUsername()) {
		slog.Warn("admin login rejected", "username", req.Username)
		return nil, ErrUnknownAdmin
	}

	userRepo := repositories.NewUserRepository()
	user, err := userRepo.FindAdminByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownAdmin
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidPassword
	}

	token, err := GenerateToken(user.ID, user.Username, "", string(models.RoleAdmin))
	if err != nil {
		return nil, err
	}

	slog.Info("admin login", "username", user.Username)
	return &dto.AuthResponse{
		Token: token,
		User:  dto.AuthUser{ID: user.ID, Name: user.Username, Role: string(models.RoleAdmin)},
	}, nil
}

// TechnicianLogin resolves a technician identity by display name only; no
// credential is checked. A name matching an active technician
// (case-insensitively) wins; otherwise any active technician is returned.
func TechnicianLogin(req dto.TechnicianLoginRequest) (*dto.AuthResponse, error) {
	techRepo := repositories.NewTechnicianRepository()

	var tech models.Technician
	var found bool

	if name := strings.TrimSpace(req.Name); name != "" {
		match, err := techRepo.FindActiveByName(name)
		if err == nil {
			tech = match
			found = true
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if !found {
		match, err := techRepo.FirstActive()
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNoActiveTechnician
			}
			return nil, err
		}
		tech = match
	}

	token, err := GenerateToken(tech.ID, "", tech.Name, string(models.RoleTechnician))
	if err != nil {
		return nil, err
	}

	slog.Info("technician login", "name", tech.Name)
	return &dto.AuthResponse{
		Token: token,
		User:  dto.AuthUser{ID: tech.ID, Name: tech.Name, Role: string(models.RoleTechnician)},
	}, nil
}

// CitizenLogin finds or creates a citizen keyed by (case-insensitive name,
// government id). The stored hash of the government id is a placeholder and
// is never verified: citizen login is identity-by-assertion.
func CitizenLogin(req dto.CitizenLoginRequest) (*dto.AuthResponse, error) {
	if req.Name == "" || req.GovernmentID == "" {
		return nil, ErrMissingIdentity
	}

	userRepo := repositories.NewUserRepository()
	user, err := userRepo.FindCitizenByIdentity(req.Name, req.GovernmentID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		hash, hashErr := bcrypt.GenerateFromPassword([]byte(req.GovernmentID), bcrypt.DefaultCost)
		if hashErr != nil {
			return nil, hashErr
		}
		user, err = userRepo.Create(models.User{
			Username:     fmt.Sprintf("citizen_%s", uuid.NewString()),
			PasswordHash: string(hash),
			Role:         models.RoleCitizen,
			Name:         req.Name,
			GovernmentID: req.GovernmentID,
		})
		if err != nil {
			return nil, err
		}
		slog.Info("created citizen account", "name", user.Name)
	}

	token, err := GenerateToken(user.ID, "", user.Name, string(models.RoleCitizen))
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: token,
		User:  dto.AuthUser{ID: user.ID, Name: user.Name, Role: string(models.RoleCitizen)},
	}, nil
}

// GenerateToken issues a signed HS256 token with a 7-day expiry.
func GenerateToken(subject, username, name, role string) (string, error) {
	now := time.Now()
	claims := dto.TokenClaims{
		Username: username,
		Name:     name,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(7 * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.JWTSecret()))
}

// ValidateToken verifies a token's signature and expiry and returns its claims.
func ValidateToken(tokenString string) (*dto.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.JWTSecret()), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
