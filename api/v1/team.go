package v1

import (
	"log/slog"
	"net/http"

	"github.com/civicfix-server/services"
	"github.com/gin-gonic/gin"
)

// GetTeam returns admins and the active technician roster.
func GetTeam(c *gin.Context) {
	team, err := services.GetTeam()
	if err != nil {
		slog.Error("failed to load team", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load team"})
		return
	}
	c.JSON(http.StatusOK, team)
}
