package dto

// CreateIssueRequest is the citizen-facing report submission body. Status is
// not accepted: new issues always start pending.
type CreateIssueRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	AssignedTo  []string `json:"assignedTo"`
}

// UpdateStatusRequest carries the new lifecycle status for an issue.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// AssignRequest carries the replacement technician pair for an issue.
type AssignRequest struct {
	AssignedTo []string `json:"assignedTo"`
}

// IssueResponse is the wire shape of an issue in list responses.
type IssueResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Status      string   `json:"status"`
	Date        string   `json:"date"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	AssignedTo  []string `json:"assignedTo"`
}
