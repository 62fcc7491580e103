package model

type Project struct {
	ID          string   `json:"id"`
	CreatedBy   string   `json:"created_by"`
	OwnerName   string   `json:"owner_name"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	RepoURL     string   `json:"repo_url"`
	Tags        []string `json:"tags"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

type CreateProjectRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	RepoURL     string   `json:"repo_url"`
	Tags        []string `json:"tags"`
}

type CreateProjectResponse struct {
	Project Project `json:"project"`
}

type GetProjectRequest struct {
	ProjectID string `json:"project_id"`
}

type GetProjectResponse struct {
	Project ProjectSummary `json:"project"`
}

type GetMyProjectsRequest struct{}

type GetMyProjectsResponse struct {
	Projects []Project `json:"projects"`
}

type GetProjectsByUserRequest struct {
	UserID string `json:"user_id"`
}

type GetProjectsByUserResponse struct {
	Projects []Project `json:"projects"`
}

type UpdateProjectRequest struct {
	ProjectID   string   `json:"project_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	RepoURL     string   `json:"repo_url"`
	Tags        []string `json:"tags"`
}

type UpdateProjectResponse struct {
	Project Project `json:"project"`
}

type DeleteProjectRequest struct {
	ProjectID string `json:"project_id"`
}

type DeleteProjectResponse struct{}
