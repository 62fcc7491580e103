package model

type Issue struct {
	ID          string `json:"id"`
	ProjectID   string `json:"project_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

type CreateIssueRequest struct {
	ProjectID   string `json:"project_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type CreateIssueResponse struct {
	Issue Issue `json:"issue"`
}

type UpdateIssueStatusRequest struct {
	IssueID string `json:"issue_id"`
	Status  string `json:"status"`
}

type UpdateIssueStatusResponse struct {
	Issue Issue `json:"issue"`
}

type CloseIssueRequest struct {
	IssueID         string   `json:"issue_id"`
	CollaboratorIDs []string `json:"collaborator_ids"`
}

type CloseIssueResponse struct {
	Issue         Issue    `json:"issue"`
	Collaborators []string `json:"collaborators"`
}

type GetProjectIssuesRequest struct {
	ProjectID string `json:"project_id"`
}

type GetProjectIssuesResponse struct {
	Issues []Issue `json:"issues"`
}
