package user

import (
	"context"
	"fmt"
	"time"

	"menagio/config"
	"menagio/models"
	"menagio/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 72 * time.Hour

// AuthenticateUser verifies credentials and issues a session. Allow-listed
// emails are elevated to admin at login; the role is never downgraded here.
func (s *DefaultUserService) AuthenticateUser(ctx context.Context, email, password string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetUserByEmail(ctx, email)
	if err != nil {
		s.Logger.Error("AuthenticateUser: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if userRec.Role != models.RoleAdmin && config.IsAdminEmail(userRec.Email) {
		if err := s.Repo.SetRole(ctx, userRec.ID, models.RoleAdmin); err != nil {
			s.Logger.Warn("failed to elevate admin role", zap.String("user", userRec.ID), zap.Error(err))
		} else {
			userRec.Role = models.RoleAdmin
		}
	}

	return s.issueSession(ctx, userRec)
}

// issueSession mints a JWT, caches its hash and builds the explicit
// AuthSession handed to controllers.
func (s *DefaultUserService) issueSession(ctx context.Context, u *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, string(u.Role), tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	authCache := utils.GetAuthCacheClient()
	cacheKey := utils.AuthCachePrefix + u.ID
	if err := authCache.Set(ctx, cacheKey, utils.HashToken(token), utils.AuthCacheTTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to cache auth token: %w", err)
	}

	session := models.AuthSession{
		UserID:    u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		Token:     token,
		CreatedAt: time.Now(),
	}

	sanitized := *u
	sanitized.PasswordHash = ""
	return &AuthResponse{User: sanitized, Token: token, Session: session}, nil
}

// SignOut revokes the cached token hash for a user.
func (s *DefaultUserService) SignOut(ctx context.Context, userID string) error {
	authCache := utils.GetAuthCacheClient()
	if err := authCache.Del(ctx, utils.AuthCachePrefix+userID).Err(); err != nil {
		return fmt.Errorf("failed to revoke auth token: %w", err)
	}
	return nil
}
