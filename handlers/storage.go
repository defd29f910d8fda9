// File: menagio/handlers/storage.go
package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"menagio/middleware"
	"menagio/services/storage"
	"menagio/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StorageHandler exposes the avatar upload endpoint.
type StorageHandler struct {
	Storage storage.StorageService
	Users   user.UserService
	Logger  *zap.Logger
}

// NewStorageHandler wires the storage and user services into HTTP handlers.
func NewStorageHandler(storageSvc storage.StorageService, userSvc user.UserService, logger *zap.Logger) *StorageHandler {
	return &StorageHandler{Storage: storageSvc, Users: userSvc, Logger: logger}
}

// UploadAvatar stores a profile picture and records its URL on the profile.
func (h *StorageHandler) UploadAvatar(c *gin.Context) {
	auth, ok := middleware.AuthSessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	tmpPath := filepath.Join(os.TempDir(), fmt.Sprintf("avatar_%s_%s", auth.UserID, filepath.Base(file.Filename)))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		h.Logger.Error("failed to buffer upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
		return
	}
	defer os.Remove(tmpPath)

	url, err := h.Storage.UploadFile(c.Request.Context(), tmpPath, "avatars")
	if err != nil {
		h.Logger.Error("avatar upload failed", zap.String("user", auth.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload avatar"})
		return
	}

	if err := h.Users.SetAvatar(c.Request.Context(), auth.UserID, url); err != nil {
		h.Logger.Error("failed to record avatar URL", zap.String("user", auth.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save avatar"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"avatarUrl": url})
}
