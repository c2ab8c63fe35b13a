package response

import (
	"time"

	"smakownia-backend/internal/domain/user"
)

type AuthorizedUser struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	User        *AuthorizedUser `json:"user"`
}

func FromUser(token string, u *user.User) *LoginResponse {
	return &LoginResponse{
		AccessToken: token,
		User: &AuthorizedUser{
			ID:        u.ID().String(),
			Email:     u.Email().String(),
			Role:      u.Role().String(),
			LastLogin: u.LastLogin(),
		},
	}
}
