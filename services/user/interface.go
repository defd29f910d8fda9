package user

import (
	"context"

	"menagio/models"

	userRepo "menagio/database/repository/user"

	"go.uber.org/zap"
)

// RegistrationInput carries the signup form fields.
type RegistrationInput struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Password  string `json:"password" binding:"required,min=8"`
}

// AuthResponse is returned on successful signup or signin.
type AuthResponse struct {
	User    models.User        `json:"user"`
	Token   string             `json:"token"`
	Session models.AuthSession `json:"session"`
}

// UserService manages accounts and authentication.
type UserService interface {
	RegisterUser(ctx context.Context, input RegistrationInput) (*AuthResponse, error)
	AuthenticateUser(ctx context.Context, email, password string) (*AuthResponse, error)
	SignOut(ctx context.Context, userID string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, user models.User) (*models.User, error)
	SetAvatar(ctx context.Context, userID, avatarURL string) error
	SetFCMToken(ctx context.Context, userID, token string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Logger *zap.Logger
}
