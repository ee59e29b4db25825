package request

type CreateNoticeRequest struct {
	Title string `json:"title" binding:"required"`
	Image string `json:"image"`
}

// UpdateNoticeRequest uses pointers so an omitted field is distinguishable
// from an explicit empty string and left untouched.
type UpdateNoticeRequest struct {
	Title *string `json:"title"`
	Image *string `json:"image"`
}
