package user

import (
	v1user "microfinance-backend/internal/api/v1/user"
	"microfinance-backend/internal/models"
)

type CreateUserInput struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"max=20"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`
	Status   string `json:"status"`
}

type ReasonInput struct {
	Reason string `json:"reason" binding:"required,max=255"`
}

type PagedUsers struct {
	Items []v1user.UserResponse `json:"items"`
	Total int64                 `json:"total"`
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
}

func newUserResponses(users []models.User) []v1user.UserResponse {
	out := make([]v1user.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, v1user.NewUserResponse(&users[i]))
	}
	return out
}
