package user

import (
	"context"
	"fmt"
	"time"

	"menagio/config"
	"menagio/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUser creates a new account. The role defaults to client; emails on
// the configured allow-list are elevated to admin.
func (s *DefaultUserService) RegisterUser(ctx context.Context, input RegistrationInput) (*AuthResponse, error) {
	existing, err := s.Repo.GetUserByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := models.RoleClient
	if config.IsAdminEmail(input.Email) {
		role = models.RoleAdmin
	}

	now := time.Now()
	u := models.User{
		ID:           uuid.New().String(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Phone:        input.Phone,
		Role:         role,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.CreateUser(&u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueSession(ctx, &u)
}
