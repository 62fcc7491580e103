package model

type ToggleLikeRequest struct {
	ProjectID string `json:"project_id"`
}

type ToggleLikeResponse struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likes_count"`
}
