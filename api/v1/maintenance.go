package v1

import (
	"log/slog"
	"net/http"

	"github.com/civicfix-server/services"
	"github.com/gin-gonic/gin"
)

// CleanupTechnicians triggers the name-normalization batch job. Admin only;
// intended for a single manual operator, the job takes no locks.
func CleanupTechnicians(c *gin.Context) {
	if err := services.CleanupTechnicians(); err != nil {
		slog.Error("technician cleanup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cleanup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
