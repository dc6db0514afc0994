package account

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
}
