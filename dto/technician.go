package dto

// CreateTechnicianRequest is the admin-only roster addition body.
type CreateTechnicianRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// TechnicianResponse is the public roster projection.
type TechnicianResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// CreateTechnicianResponse echoes the created roster entry.
type CreateTechnicianResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// TeamResponse lists the operating team: admins and the active roster.
type TeamResponse struct {
	Admins      []TechnicianResponse `json:"admins"`
	Technicians []TechnicianResponse `json:"technicians"`
}
