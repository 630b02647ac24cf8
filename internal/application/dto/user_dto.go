package dto

import "taskdash/internal/domain/entity"

// UserDTO represents the account behind the session
type UserDTO struct {
	Name              string `json:"name" yaml:"name"`
	Email             string `json:"email" yaml:"email"`
	IsAccountVerified bool   `json:"is_account_verified" yaml:"is_account_verified"`
}

// SessionDTO describes the current session
type SessionDTO struct {
	LoggedIn bool     `json:"logged_in" yaml:"logged_in"`
	User     *UserDTO `json:"user,omitempty" yaml:"user,omitempty"`
}

// CredentialsRequest represents a login or registration request
type CredentialsRequest struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserToDTO converts a User entity to a UserDTO
func UserToDTO(user *entity.User) *UserDTO {
	if user == nil {
		return nil
	}
	return &UserDTO{
		Name:              user.Name,
		Email:             user.Email,
		IsAccountVerified: user.IsAccountVerified,
	}
}
