package userRepo

import (
	"context"
	"fmt"
	"time"

	"menagio/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateUser inserts a new user document.
func (repo *MongoUserRepo) CreateUser(user *models.User) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := repo.userColl.InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by ID.
func (repo *MongoUserRepo) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var user models.User
	err := repo.userColl.FindOne(ctxWithTimeout, bson.M{"id": userID}).Decode(&user)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email. A missing user returns (nil, nil)
// so callers can distinguish absence from lookup failure.
func (repo *MongoUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var user models.User
	err := repo.userColl.FindOne(ctxWithTimeout, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching user by email: %w", err)
	}
	return &user, nil
}

// UpdateUser replaces the mutable fields of an existing user document.
func (repo *MongoUserRepo) UpdateUser(user *models.User) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user.UpdatedAt = time.Now()
	filter := bson.M{"id": user.ID}
	update := bson.M{"$set": user}
	_, err := repo.userColl.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating user %s: %w", user.ID, err)
	}
	return nil
}

// DeleteUser removes a user document.
func (repo *MongoUserRepo) DeleteUser(ctx context.Context, userID string) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := repo.userColl.DeleteOne(ctxWithTimeout, bson.M{"id": userID})
	if err != nil {
		return fmt.Errorf("error deleting user %s: %w", userID, err)
	}
	return nil
}

// SetRole updates only the role of a user.
func (repo *MongoUserRepo) SetRole(ctx context.Context, userID string, role models.Role) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"role": role, "updated_at": time.Now()}}
	_, err := repo.userColl.UpdateOne(ctxWithTimeout, bson.M{"id": userID}, update)
	if err != nil {
		return fmt.Errorf("error setting role for user %s: %w", userID, err)
	}
	return nil
}
