package v1

import (
	"log/slog"
	"net/http"

	"github.com/civicfix-server/dto"
	"github.com/civicfix-server/services"
	"github.com/gin-gonic/gin"
)

// ListTechnicians returns the active roster as {name, phone} pairs.
func ListTechnicians(c *gin.Context) {
	techs, err := services.ListTechnicians()
	if err != nil {
		slog.Error("failed to list technicians", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list technicians"})
		return
	}
	c.JSON(http.StatusOK, techs)
}

// CreateTechnician adds a roster entry. Admin only.
func CreateTechnician(c *gin.Context) {
	var req dto.CreateTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and phone required"})
		return
	}
	if req.Name == "" || req.Phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and phone required"})
		return
	}

	tech, err := services.CreateTechnician(req)
	if err != nil {
		slog.Error("failed to create technician", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "unable to create"})
		return
	}

	c.JSON(http.StatusCreated, dto.CreateTechnicianResponse{
		ID:    tech.ID,
		Name:  tech.Name,
		Phone: tech.Phone,
	})
}
