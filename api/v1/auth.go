package v1

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/civicfix-server/dto"
	"github.com/civicfix-server/services"
	"github.com/gin-gonic/gin"
)

// AdminLogin handles the single-admin password login.
func AdminLogin(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password required"})
		return
	}

	resp, err := services.AdminLogin(req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password required"})
		case errors.Is(err, services.ErrUnknownAdmin):
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid username"})
		case errors.Is(err, services.ErrInvalidPassword):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		default:
			slog.Error("admin login failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// TechnicianLogin handles the name-only technician login. An absent or
// unparseable body is treated as an empty name: the service falls back to an
// arbitrary active technician.
func TechnicianLogin(c *gin.Context) {
	var req dto.TechnicianLoginRequest
	_ = c.ShouldBindJSON(&req)

	resp, err := services.TechnicianLogin(req)
	if err != nil {
		if errors.Is(err, services.ErrNoActiveTechnician) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No active technician found"})
			return
		}
		slog.Error("technician login failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CitizenLogin handles the citizen find-or-create login.
func CitizenLogin(c *gin.Context) {
	var req dto.CitizenLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and government ID required"})
		return
	}

	resp, err := services.CitizenLogin(req)
	if err != nil {
		if errors.Is(err, services.ErrMissingIdentity) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name and government ID required"})
			return
		}
		slog.Error("citizen login failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
