package v1

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/civicfix-server/dto"
	"github.com/civicfix-server/models"
	"github.com/civicfix-server/services"
	"github.com/gin-gonic/gin"
)

// ListIssues returns every issue, newest first.
func ListIssues(c *gin.Context) {
	issues, err := services.ListIssues()
	if err != nil {
		slog.Error("failed to list issues", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list issues"})
		return
	}
	c.JSON(http.StatusOK, issues)
}

// CreateIssue handles citizen report submission. Open to unauthenticated
// callers by design.
func CreateIssue(c *gin.Context) {
	var req dto.CreateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title, location, category required"})
		return
	}
	if req.Title == "" || req.Location == "" || req.Category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title, location, category required"})
		return
	}
	if !models.ValidCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category"})
		return
	}

	issue, err := services.CreateIssue(req)
	if err != nil {
		slog.Error("failed to create issue", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create issue"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": issue.ID})
}

// UpdateIssueStatus overwrites an issue's lifecycle status. Admin only.
func UpdateIssueStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	err := services.UpdateIssueStatus(c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		case errors.Is(err, services.ErrIssueNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		default:
			slog.Error("failed to update issue status", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// AssignIssue overwrites an issue's technician pair. Admin only.
func AssignIssue(c *gin.Context) {
	var req dto.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "exactly two technicians required"})
		return
	}
	if len(req.AssignedTo) != 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "exactly two technicians required"})
		return
	}

	err := services.ReassignIssue(c.Param("id"), req.AssignedTo)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAssignment):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid technician names"})
		case errors.Is(err, services.ErrIssueNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		default:
			slog.Error("failed to reassign issue", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "assign failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DeleteIssue hard-deletes an issue. Admin only.
func DeleteIssue(c *gin.Context) {
	err := services.DeleteIssue(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrIssueNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		slog.Error("failed to delete issue", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
