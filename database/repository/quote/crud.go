package quoteRepo

import (
	"context"
	"fmt"
	"time"

	"menagio/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateQuote inserts a new quote request document.
func (repo *MongoQuoteRepo) CreateQuote(quote *models.QuoteRequest) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := repo.quoteColl.InsertOne(ctx, quote)
	if err != nil {
		return fmt.Errorf("error creating quote request: %w", err)
	}
	return nil
}

// GetQuoteByID retrieves a quote request by its ID.
func (repo *MongoQuoteRepo) GetQuoteByID(ctx context.Context, quoteID string) (*models.QuoteRequest, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var quote models.QuoteRequest
	err := repo.quoteColl.FindOne(ctxWithTimeout, bson.M{"id": quoteID}).Decode(&quote)
	if err != nil {
		return nil, fmt.Errorf("quote request not found: %w", err)
	}
	return &quote, nil
}

// UpdateQuoteStatus atomically sets the status and updated_at of a quote request
// and returns the updated document.
func (repo *MongoQuoteRepo) UpdateQuoteStatus(ctx context.Context, quoteID string, status models.QuoteStatus) (*models.QuoteRequest, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": quoteID}
	update := bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.QuoteRequest
	if err := repo.quoteColl.FindOneAndUpdate(ctxWithTimeout, filter, update, opts).Decode(&updated); err != nil {
		return nil, fmt.Errorf("error updating status for quote %s: %w", quoteID, err)
	}
	return &updated, nil
}
