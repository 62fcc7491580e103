package model

type Comment struct {
	ID         string `json:"id"`
	ProjectID  string `json:"project_id"`
	UserID     string `json:"user_id"`
	UserName   string `json:"user_name"`
	UserAvatar string `json:"user_avatar"`
	Content    string `json:"content"`
	CreatedAt  string `json:"created_at"`
}

type CreateCommentRequest struct {
	ProjectID string `json:"project_id"`
	Content   string `json:"content"`
}

type CreateCommentResponse struct {
	Comment Comment `json:"comment"`
}

type DeleteCommentRequest struct {
	CommentID string `json:"comment_id"`
}

type DeleteCommentResponse struct{}

type GetProjectCommentsRequest struct {
	ProjectID string `json:"project_id"`
}

type GetProjectCommentsResponse struct {
	Comments []Comment `json:"comments"`
}
