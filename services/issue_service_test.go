package services

import (
	"regexp"
	"testing"

	"github.com/civicfix-server/dto"
	"github.com/civicfix-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dayFormat = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func activeNames(t *testing.T, names ...string) map[string]bool {
	t.Helper()
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

func TestCreateIssueRandomAssignment(t *testing.T) {
	db := setupTestDB(t)
	seedTechnician(t, db, "Viraj", true)
	seedTechnician(t, db, "Srushti", true)
	seedTechnician(t, db, "Neil", true)
	seedTechnician(t, db, "Inactive", false)
	roster := activeNames(t, "Viraj", "Srushti", "Neil")

	reqs := map[string]dto.CreateIssueRequest{
		"omitted assignment": {
			Title: "Pothole on 5th", Location: "5th Ave", Category: "pothole",
		},
		"wrong length assignment": {
			Title: "Dark street", Location: "Oak St", Category: "streetlight",
			AssignedTo: []string{"Viraj"},
		},
		"unknown name assignment": {
			Title: "Overflowing bin", Location: "Main St", Category: "garbage",
			AssignedTo: []string{"Viraj", "Ghost"},
		},
		"inactive name assignment": {
			Title: "Water leak", Location: "Elm St", Category: "utility",
			AssignedTo: []string{"Viraj", "Inactive"},
		},
	}

	for name, req := range reqs {
		t.Run(name, func(t *testing.T) {
			issue, err := CreateIssue(req)
			require.NoError(t, err)

			assigned := []string(issue.AssignedTo)
			require.Len(t, assigned, 2)
			assert.NotEqual(t, assigned[0], assigned[1])
			assert.True(t, roster[assigned[0]], "unexpected assignee %q", assigned[0])
			assert.True(t, roster[assigned[1]], "unexpected assignee %q", assigned[1])
		})
	}
}

func TestCreateIssueHonorsValidPair(t *testing.T) {
	db := setupTestDB(t)
	seedTechnician(t, db, "Viraj", true)
	seedTechnician(t, db, "Srushti", true)
	seedTechnician(t, db, "Neil", true)

	issue, err := CreateIssue(dto.CreateIssueRequest{
		Title:      "Pothole on 5th",
		Location:   "5th Ave",
		Category:   "pothole",
		AssignedTo: []string{"Neil", "Srushti"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Neil", "Srushti"}, []string(issue.AssignedTo))
}

func TestCreateIssueForcesPendingAndStampsDate(t *testing.T) {
	db := setupTestDB(t)
	seedTechnician(t, db, "Viraj", true)
	seedTechnician(t, db, "Srushti", true)

	issue, err := CreateIssue(dto.CreateIssueRequest{
		Title:    "Pothole on 5th",
		Location: "5th Ave",
		Category: "pothole",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, issue.Status)
	assert.Regexp(t, dayFormat, issue.Date)
	assert.Empty(t, issue.Description)
}

func TestCreateIssueNotEnoughTechnicians(t *testing.T) {
	db := setupTestDB(t)
	seedTechnician(t, db, "Viraj", true)

	_, err := CreateIssue(dto.CreateIssueRequest{
		Title:    "Pothole on 5th",
		Location: "5th Ave",
		Category: "pothole",
	})
	assert.ErrorIs(t, err, ErrNotEnoughTechnicians)
}

func TestUpdateIssueStatus(t *testing.T) {
	db := setupTestDB(t)
	seedTechnician(t, db, "Viraj", true)
	seedTechnician(t, db, "Srushti", true)

	issue, err := CreateIssue(dto.CreateIssueRequest{
		Title: "Pothole on 5th", Location: "5th Ave", Category: "pothole",
	})
	require.NoError(t, err)

	t.Run("invalid status leaves the issue unmodified", func(t *testing.T) {
		err := UpdateIssueStatus(issue.ID, "done")
		assert.ErrorIs(t, err, ErrInvalidStatus)

		var stored models.Issue
		require.NoError(t, db.First(&stored, "id = ?", issue.ID).Error)
		assert.Equal(t, models.StatusPending, stored.Status)
	})

	t.Run("unknown id", func(t *testing.T) {
		err := UpdateIssueStatus("no-such-id", "resolved")
		assert.ErrorIs(t, err, ErrIssueNotFound)
	})

	t.Run("valid transition", func(t *testing.T) {
		require.NoError(t, UpdateIssueStatus(issue.ID, "in_progress"))

		var stored models.Issue
		require.NoError(t, db.First(&stored, "id = ?", issue.ID).Error)
		assert.Equal(t, models.StatusInProgress, stored.Status)
		// Assignment is untouched by a status change.
		assert.Len(t, []string(stored.AssignedTo), 2)
	})
}

func TestReassignIssue(t *testing.T) {
	db := setupTestDB(t)
	seedTechnician(t, db, "Viraj", true)
	seedTechnician(t, db, "Srushti", true)
	seedTechnician(t, db, "Neil", true)

	issue, err := CreateIssue(dto.CreateIssueRequest{
		Title: "Pothole on 5th", Location: "5th Ave", Category: "pothole",
	})
	require.NoError(t, err)
	require.NoError(t, UpdateIssueStatus(issue.ID, "in_progress"))

	t.Run("wrong pair length", func(t *testing.T) {
		err := ReassignIssue(issue.ID, []string{"Viraj"})
		assert.ErrorIs(t, err, ErrInvalidAssignment)
	})

	t.Run("unknown technician", func(t *testing.T) {
		err := ReassignIssue(issue.ID, []string{"Viraj", "Ghost"})
		assert.ErrorIs(t, err, ErrInvalidAssignment)
	})

	t.Run("unknown issue", func(t *testing.T) {
		err := ReassignIssue("no-such-id", []string{"Viraj", "Neil"})
		assert.ErrorIs(t, err, ErrIssueNotFound)
	})

	t.Run("valid reassignment keeps status", func(t *testing.T) {
		require.NoError(t, ReassignIssue(issue.ID, []string{"Viraj", "Neil"}))

		var stored models.Issue
		require.NoError(t, db.First(&stored, "id = ?", issue.ID).Error)
		assert.Equal(t, []string{"Viraj", "Neil"}, []string(stored.AssignedTo))
		assert.Equal(t, models.StatusInProgress, stored.Status)
	})
}

func TestDeleteIssue(t *testing.T) {
	db := setupTestDB(t)
	seedTechnician(t, db, "Viraj", true)
	seedTechnician(t, db, "Srushti", true)

	issue, err := CreateIssue(dto.CreateIssueRequest{
		Title: "Pothole on 5th", Location: "5th Ave", Category: "pothole",
	})
	require.NoError(t, err)

	assert.ErrorIs(t, DeleteIssue("no-such-id"), ErrIssueNotFound)
	require.NoError(t, DeleteIssue(issue.ID))

	var count int64
	require.NoError(t, db.Model(&models.Issue{}).Count(&count).Error)
	assert.Zero(t, count)

	assert.ErrorIs(t, DeleteIssue(issue.ID), ErrIssueNotFound)
}

func TestListIssuesNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	seedTechnician(t, db, "Viraj", true)
	seedTechnician(t, db, "Srushti", true)

	// Insert with explicit timestamps so ordering does not depend on clock
	// resolution within the test.
	old := models.Issue{Title: "Old", Location: "A", Category: "other", Status: models.StatusPending, Date: "2024-01-01"}
	require.NoError(t, db.Create(&old).Error)
	require.NoError(t, db.Model(&old).Update("created_at", "2024-01-01 10:00:00").Error)

	recent := models.Issue{Title: "Recent", Location: "B", Category: "other", Status: models.StatusPending, Date: "2024-02-01"}
	require.NoError(t, db.Create(&recent).Error)
	require.NoError(t, db.Model(&recent).Update("created_at", "2024-02-01 10:00:00").Error)

	issues, err := ListIssues()
	require.NoError(t, err)
	require.Len(t, issues, 2)
	assert.Equal(t, "Recent", issues[0].Title)
	assert.Equal(t, "Old", issues[1].Title)
}
