package user

import (
	userRepo "turfbook/database/repository/user"
	"turfbook/models"
)

// AuthResponse is returned on successful registration or login.
type AuthResponse struct {
	ID       string `json:"id"`
	Token    string `json:"token"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// UserService defines account management operations.
type UserService interface {
	// RegisterUser creates a customer account and signs it in.
	RegisterUser(username, password, fullName string) (*AuthResponse, error)
	// AuthenticateUser verifies credentials and issues a fresh token.
	AuthenticateUser(username, password string) (*AuthResponse, error)
	// GetUserByID fetches an account by ID.
	GetUserByID(id string) (*models.User, error)
	// RevokeAuthToken signs the user out by dropping the cached token hash.
	RevokeAuthToken(userID string) error
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
