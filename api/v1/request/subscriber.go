package request

// SubscribeRequest accepts the phone in local ten-digit form or with the +977
// prefix already applied; normalization happens before storage.
type SubscribeRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	Email       string `json:"email" binding:"omitempty,email"`
}

type UpdateSubscriberRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	Email       string `json:"email" binding:"omitempty,email"`
}
