package request

type CreatePostRequest struct {
	Title    string   `json:"title" binding:"required,min=3"`
	Content  string   `json:"content" binding:"required,min=10"`
	Images   []string `json:"images"`
	Featured bool     `json:"featured"`
}

type UpdatePostRequest struct {
	Title    *string   `json:"title" binding:"omitempty,min=3"`
	Content  *string   `json:"content" binding:"omitempty,min=10"`
	Images   *[]string `json:"images"`
	Featured *bool     `json:"featured"`
}

type CommentRequest struct {
	Comment string `json:"comment" binding:"required"`
}
