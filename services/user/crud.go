package user

import (
	"context"
	"fmt"

	"menagio/models"
)

// GetUserByID returns the user with sensitive fields cleared.
func (s *DefaultUserService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	u, err := s.Repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = ""
	return u, nil
}

// UpdateProfile updates the mutable profile fields of an existing user.
func (s *DefaultUserService) UpdateProfile(ctx context.Context, user models.User) (*models.User, error) {
	current, err := s.Repo.GetUserByID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	current.FirstName = user.FirstName
	current.LastName = user.LastName
	current.Phone = user.Phone

	if err := s.Repo.UpdateUser(current); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	current.PasswordHash = ""
	return current, nil
}

// SetAvatar stores the uploaded avatar URL on the profile.
func (s *DefaultUserService) SetAvatar(ctx context.Context, userID, avatarURL string) error {
	current, err := s.Repo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	current.AvatarURL = avatarURL
	return s.Repo.UpdateUser(current)
}

// SetFCMToken stores the device's push token on the profile.
func (s *DefaultUserService) SetFCMToken(ctx context.Context, userID, token string) error {
	current, err := s.Repo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	current.FCMToken = token
	return s.Repo.UpdateUser(current)
}
