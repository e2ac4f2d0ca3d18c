package dto

import "time"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	Id          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	Title       string    `json:"title,omitempty"`
	Avatar      string    `json:"avatar,omitempty"`
	LastActive  time.Time `json:"last_active"`
	CanUseAI    bool      `json:"can_use_ai"`
	Permissions []string  `json:"permissions"`
	JoinedAt    time.Time `json:"joined_at"`
	Status      string    `json:"status"`
}

// SessionStateResponse is served without authentication so a client can
// poll while the session is being restored.
type SessionStateResponse struct {
	State     string        `json:"state"`
	IsLoading bool          `json:"is_loading"`
	User      *UserResponse `json:"user"`
}
