package services

import (
	"github.com/civicfix-server/dto"
	"github.com/civicfix-server/repositories"
)

// GetTeam returns the operating team: admin accounts sorted by username and
// the active technician roster sorted by name, both projected to
// {name, phone}.
func GetTeam() (*dto.TeamResponse, error) {
	userRepo := repositories.NewUserRepository()
	admins, err := userRepo.FindAdmins()
	if err != nil {
		return nil, err
	}

	techRepo := repositories.NewTechnicianRepository()
	techs, err := techRepo.FindActiveOrdered()
	if err != nil {
		return nil, err
	}

	team := &dto.TeamResponse{
		Admins:      make([]dto.TechnicianResponse, 0, len(admins)),
		Technicians: make([]dto.TechnicianResponse, 0, len(techs)),
	}
	for _, a := range admins {
		team.Admins = append(team.Admins, dto.TechnicianResponse{Name: a.Username, Phone: a.Phone})
	}
	for _, t := range techs {
		team.Technicians = append(team.Technicians, dto.TechnicianResponse{Name: t.Name, Phone: t.Phone})
	}
	return team, nil
}
