package userRepo

import (
	"context"
	"fmt"
	"time"

	"menagio/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListClients returns one admin page of client users plus the total match count.
func (repo *MongoUserRepo) ListClients(ctx context.Context, q models.ListQuery) ([]models.User, int64, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"role": models.RoleClient}
	if q.Search != "" {
		regex := primitive.Regex{Pattern: q.Search, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"first_name": regex},
			bson.M{"last_name": regex},
			bson.M{"email": regex},
			bson.M{"phone": regex},
		}
	}

	total, err := repo.userColl.CountDocuments(ctxWithTimeout, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting clients: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(q.Offset()).
		SetLimit(q.Limit()).
		SetProjection(bson.M{"password_hash": 0})

	cursor, err := repo.userColl.Find(ctxWithTimeout, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing clients: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var users []models.User
	if err := cursor.All(ctxWithTimeout, &users); err != nil {
		return nil, 0, fmt.Errorf("error decoding clients: %w", err)
	}
	return users, total, nil
}
