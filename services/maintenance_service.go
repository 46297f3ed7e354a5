package services

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/civicfix-server/repositories"
	"github.com/civicfix-server/utils"
	"gorm.io/gorm"
)

// CleanupTechnicians repairs accumulated name-casing drift. For every
// technician whose stored name is entirely lowercase, the proper-cased
// variant either replaces it in place or, when a technician already exists
// under that name, the lowercase duplicate is deleted. Afterwards every
// issue's assignment list is rewritten, replacing any name whose proper-cased
// form now exists in the technician set.
//
// The job is idempotent and safe to re-run, but not transactional: a
// mid-batch failure leaves a valid intermediate state. It is also not safe
// to run concurrently with itself; a single manual operator is assumed.
func CleanupTechnicians() error {
	techRepo := repositories.NewTechnicianRepository()
	techs, err := techRepo.FindAll()
	if err != nil {
		return err
	}

	names := make(map[string]bool, len(techs))
	for _, t := range techs {
		names[t.Name] = true
	}

	renamed := 0
	deleted := 0
	for _, t := range techs {
		if t.Name != strings.ToLower(t.Name) {
			continue
		}
		proper := utils.ToProperCase(t.Name)

		_, err := techRepo.FindByName(proper)
		switch {
		case err == nil:
			// Proper-cased twin already exists; drop the lowercase duplicate.
			if err := techRepo.Delete(t.ID); err != nil {
				return err
			}
			deleted++
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := techRepo.UpdateName(t.ID, proper); err != nil {
				return err
			}
			names[proper] = true
			renamed++
		default:
			return err
		}
	}

	issueRepo := repositories.NewIssueRepository()
	issues, err := issueRepo.FindAll()
	if err != nil {
		return err
	}

	rewritten := 0
	for _, issue := range issues {
		updated := make([]string, len(issue.AssignedTo))
		changed := false
		for i, n := range issue.AssignedTo {
			proper := utils.ToProperCase(n)
			if names[proper] {
				updated[i] = proper
				if proper != n {
					changed = true
				}
			} else {
				updated[i] = n
			}
		}
		if err := issueRepo.UpdateAssignedTo(issue.ID, updated); err != nil {
			return err
		}
		if changed {
			rewritten++
		}
	}

	slog.Info("technician cleanup finished",
		"renamed", renamed, "deleted", deleted, "issuesRewritten", rewritten)
	return nil
}
