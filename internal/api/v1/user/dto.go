package user

import (
	"time"

	"microfinance-backend/internal/models"
)

// UserResponse defines the response structure for user information.
type UserResponse struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone,omitempty"`
	Status           string    `json:"status"`
	Role             string    `json:"role"`
	RegistrationDate time.Time `json:"registrationDate"`
	Token            string    `json:"token,omitempty"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		Phone:            u.Phone,
		Status:           string(u.Status),
		Role:             string(u.Role),
		RegistrationDate: u.CreatedAt,
	}
}

// UpdateProfileInput carries the fields a user may change on their own
// profile.
type UpdateProfileInput struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}
