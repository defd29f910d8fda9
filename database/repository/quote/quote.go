package quoteRepo

import (
	"context"

	"menagio/database"
	"menagio/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// QuoteRepository defines persistence operations for business quote requests.
type QuoteRepository interface {
	CreateQuote(quote *models.QuoteRequest) error
	GetQuoteByID(ctx context.Context, quoteID string) (*models.QuoteRequest, error)
	ListQuotes(ctx context.Context, q models.ListQuery) ([]models.QuoteRequest, int64, error)
	UpdateQuoteStatus(ctx context.Context, quoteID string, status models.QuoteStatus) (*models.QuoteRequest, error)
}

// MongoQuoteRepo is the MongoDB implementation of QuoteRepository.
type MongoQuoteRepo struct {
	quoteColl *mongo.Collection
}

// NewMongoQuoteRepo wires the repository to the quote_requests collection.
func NewMongoQuoteRepo() *MongoQuoteRepo {
	db := database.MongoClient.Database(database.DatabaseName)
	return &MongoQuoteRepo{quoteColl: db.Collection("quote_requests")}
}
