package services

import (
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"github.com/civicfix-server/dto"
	"github.com/civicfix-server/models"
	"github.com/civicfix-server/repositories"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrIssueNotFound        = errors.New("issue not found")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrInvalidAssignment    = errors.New("exactly two valid technicians required")
	ErrNotEnoughTechnicians = errors.New("not enough technicians")
)

// ListIssues returns every issue newest-created first, projected to the wire
// shape.
func ListIssues() ([]dto.IssueResponse, error) {
	issueRepo := repositories.NewIssueRepository()
	issues, err := issueRepo.FindAllNewestFirst()
	if err != nil {
		return nil, err
	}

	out := make([]dto.IssueResponse, 0, len(issues))
	for _, i := range issues {
		out = append(out, dto.IssueResponse{
			ID:          i.ID,
			Title:       i.Title,
			Description: i.Description,
			Location:    i.Location,
			Status:      string(i.Status),
			Date:        i.Date,
			Image:       i.Image,
			Category:    string(i.Category),
			AssignedTo:  []string(i.AssignedTo),
		})
	}
	return out, nil
}

// CreateIssue stores a new report. Status is always forced to pending and the
// date is stamped with the current UTC calendar day regardless of input.
// Caller-supplied assignments are honored only when they name exactly two
// currently-active technicians; anything else falls back to a random draw.
func CreateIssue(req dto.CreateIssueRequest) (models.Issue, error) {
	assigned, err := resolveAssignment(req.AssignedTo)
	if err != nil {
		return models.Issue{}, err
	}

	issueRepo := repositories.NewIssueRepository()
	issue, err := issueRepo.Create(models.Issue{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Status:      models.StatusPending,
		Date:        time.Now().UTC().Format("2006-01-02"),
		Image:       req.Image,
		Category:    models.IssueCategory(req.Category),
		AssignedTo:  datatypes.NewJSONSlice(assigned),
	})
	if err != nil {
		return models.Issue{}, err
	}

	slog.Info("issue created", "id", issue.ID, "category", issue.Category, "assignedTo", assigned)
	return issue, nil
}

// resolveAssignment validates a requested technician pair against the active
// roster, falling back to a random pair when the request is absent or invalid.
func resolveAssignment(requested []string) ([]string, error) {
	if len(requested) == 2 {
		techRepo := repositories.NewTechnicianRepository()
		techs, err := techRepo.FindActive()
		if err != nil {
			return nil, err
		}
		names := make(map[string]bool, len(techs))
		for _, t := range techs {
			names[t.Name] = true
		}
		if names[requested[0]] && names[requested[1]] {
			return requested, nil
		}
	}
	return pickTwoTechnicians()
}

// pickTwoTechnicians draws two distinct active technicians uniformly at
// random, by rejection sampling over indices until two distinct ones are
// collected.
func pickTwoTechnicians() ([]string, error) {
	techRepo := repositories.NewTechnicianRepository()
	techs, err := techRepo.FindActive()
	if err != nil {
		return nil, err
	}
	if len(techs) < 2 {
		return nil, ErrNotEnoughTechnicians
	}

	idxs := make(map[int]struct{}, 2)
	for len(idxs) < 2 {
		idxs[rand.Intn(len(techs))] = struct{}{}
	}

	names := make([]string, 0, 2)
	for i := range idxs {
		names = append(names, techs[i].Name)
	}
	return names, nil
}

// UpdateIssueStatus overwrites only the status field of an existing issue.
func UpdateIssueStatus(id, status string) error {
	if !models.ValidStatus(status) {
		return ErrInvalidStatus
	}

	issueRepo := repositories.NewIssueRepository()
	if _, err := issueRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrIssueNotFound
		}
		return err
	}
	return issueRepo.UpdateStatus(id, models.IssueStatus(status))
}

// ReassignIssue overwrites only the technician pair of an existing issue.
// Both names must belong to currently-active technicians; status is untouched.
func ReassignIssue(id string, assignedTo []string) error {
	if len(assignedTo) != 2 {
		return ErrInvalidAssignment
	}

	techRepo := repositories.NewTechnicianRepository()
	techs, err := techRepo.FindActive()
	if err != nil {
		return err
	}
	names := make(map[string]bool, len(techs))
	for _, t := range techs {
		names[t.Name] = true
	}
	if !names[assignedTo[0]] || !names[assignedTo[1]] {
		return ErrInvalidAssignment
	}

	issueRepo := repositories.NewIssueRepository()
	if _, err := issueRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrIssueNotFound
		}
		return err
	}
	return issueRepo.UpdateAssignedTo(id, assignedTo)
}

// DeleteIssue hard-deletes an issue by id.
func DeleteIssue(id string) error {
	issueRepo := repositories.NewIssueRepository()
	if _, err := issueRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrIssueNotFound
		}
		return err
	}
	return issueRepo.Delete(id)
}
