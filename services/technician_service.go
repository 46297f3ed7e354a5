package services

import (
	"log/slog"

	"github.com/civicfix-server/dto"
	"github.com/civicfix-server/models"
	"github.com/civicfix-server/repositories"
)

// ListTechnicians returns the active roster sorted by name, projected to the
// public {name, phone} shape.
func ListTechnicians() ([]dto.TechnicianResponse, error) {
	techRepo := repositories.NewTechnicianRepository()
	techs, err := techRepo.FindActiveOrdered()
	if err != nil {
		return nil, err
	}

	out := make([]dto.TechnicianResponse, 0, len(techs))
	for _, t := range techs {
		out = append(out, dto.TechnicianResponse{Name: t.Name, Phone: t.Phone})
	}
	return out, nil
}

// CreateTechnician adds a roster entry. The password hash is left empty: the
// technician login flow never checks it.
func CreateTechnician(req dto.CreateTechnicianRequest) (models.Technician, error) {
	techRepo := repositories.NewTechnicianRepository()
	tech, err := techRepo.Create(models.Technician{
		Name:   req.Name,
		Phone:  req.Phone,
		Active: true,
	})
	if err != nil {
		return models.Technician{}, err
	}

	slog.Info("technician created", "name", tech.Name)
	return tech, nil
}
