package model

type User struct {
	ID                string   `json:"id"`
	Email             string   `json:"email"`
	FullName          string   `json:"full_name"`
	Bio               string   `json:"bio"`
	AvatarURL         string   `json:"avatar_url"`
	GithubUsername    string   `json:"github_username"`
	IsGithubConnected bool     `json:"is_github_connected"`
	IsVerified        bool     `json:"is_verified"`
	Skills            []string `json:"skills"`
}

type GetMeRequest struct{}

type GetMeResponse struct {
	User User `json:"user"`
}

type GetUserRequest struct {
	UserID string `json:"user_id"`
}

type GetUserResponse struct {
	User User `json:"user"`
}

type GetListUserRequest struct {
	Q      string `json:"q"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}

type GetListUserResponse struct {
	Users []User `json:"users"`
}

type UpdateUserRequest struct {
	FullName       string   `json:"full_name"`
	Bio            string   `json:"bio"`
	AvatarURL      string   `json:"avatar_url"`
	GithubUsername string   `json:"github_username"`
	Skills         []string `json:"skills"`
}

type UpdateUserResponse struct {
	User User `json:"user"`
}
