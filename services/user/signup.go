package user

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"turfbook/models"
	"turfbook/utils"
)

// RegisterUser creates a customer account and signs it in.
func (s *DefaultUserService) RegisterUser(username, password, fullName string) (*AuthResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" || strings.TrimSpace(fullName) == "" {
		return nil, fmt.Errorf("username, password and full name are required")
	}

	existing, err := s.Repo.GetByUsername(username)
	if err != nil {
		utils.GetLogger().Error("RegisterUser: lookup failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("username already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("registration failed, please try again")
	}

	newUser := &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(fullName),
		Role:         "user",
	}
	if err := s.Repo.Create(newUser); err != nil {
		utils.GetLogger().Error("RegisterUser: create failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return s.issueToken(newUser)
}
