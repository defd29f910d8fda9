package quoteRepo

import (
	"context"
	"fmt"
	"time"

	"menagio/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListQuotes returns one admin page of quote requests plus the total match count.
// Results are ordered by creation time descending.
func (repo *MongoQuoteRepo) ListQuotes(ctx context.Context, q models.ListQuery) ([]models.QuoteRequest, int64, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if q.Status != "" {
		filter["status"] = q.Status
	}
	if q.Search != "" {
		regex := primitive.Regex{Pattern: q.Search, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"company_name": regex},
			bson.M{"contact_name": regex},
			bson.M{"email": regex},
		}
	}

	total, err := repo.quoteColl.CountDocuments(ctxWithTimeout, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting quote requests: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(q.Offset()).
		SetLimit(q.Limit())

	cursor, err := repo.quoteColl.Find(ctxWithTimeout, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing quote requests: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var quotes []models.QuoteRequest
	if err := cursor.All(ctxWithTimeout, &quotes); err != nil {
		return nil, 0, fmt.Errorf("error decoding quote requests: %w", err)
	}
	return quotes, total, nil
}
