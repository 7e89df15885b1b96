package dto

import "github.com/nico/guidepanel/internal/api/validation"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	UserID   string `json:"userId"`
}

func (r LoginRequest) Validate() map[string]string {
	errors := make(map[string]string)
	if !validation.IsValidEmail(r.Email) {
		errors["email"] = "Enter a valid email address"
	}
	if len(r.Password) < 4 {
		errors["password"] = "Password must be at least 4 characters"
	}
	if r.UserID == "" {
		errors["userId"] = "Pick a team member"
	}
	return errors
}

type LoginResponse struct {
	Token       string      `json:"token"`
	User        interface{} `json:"user"`
	Permissions interface{} `json:"permissions"`
}
