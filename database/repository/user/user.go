package userRepo

import (
	"context"

	"menagio/database"
	"menagio/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository defines persistence operations for user records.
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(user *models.User) error
	DeleteUser(ctx context.Context, userID string) error
	ListClients(ctx context.Context, q models.ListQuery) ([]models.User, int64, error)
	SetRole(ctx context.Context, userID string, role models.Role) error
}

// MongoUserRepo is the MongoDB implementation of UserRepository.
type MongoUserRepo struct {
	userColl *mongo.Collection
}

// NewMongoUserRepo wires the repository to the users collection.
func NewMongoUserRepo() *MongoUserRepo {
	db := database.MongoClient.Database(database.DatabaseName)
	return &MongoUserRepo{userColl: db.Collection("users")}
}
