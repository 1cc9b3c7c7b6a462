package dto

type CreateNotificationRequest struct {
	Title    string `json:"title" validate:"required"`
	Body     string `json:"body" validate:"required"`
	ImageURL string `json:"image_url,omitempty" validate:"omitempty,url"`
	Audience string `json:"audience,omitempty" validate:"omitempty,oneof=all free paid"`
}

type UpdateTicketRequest struct {
	Status string `json:"status" validate:"required,oneof=open pending resolved closed"`
}

type ListQuery struct {
	Search string
	Limit  int
	Offset int
}
