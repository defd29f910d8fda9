package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"menagio/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// DashboardStats aggregates per-status booking counts and total revenue.
// Revenue sums paid invoice amounts independently of booking status.
func (repo *MongoBookingRepo) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
	}
	cursor, err := repo.bookingColl.Aggregate(ctxWithTimeout, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregation error: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var results []struct {
		Status models.BookingStatus `bson:"_id"`
		Count  int64                `bson:"count"`
	}
	if err := cursor.All(ctxWithTimeout, &results); err != nil {
		return nil, fmt.Errorf("error decoding aggregation result: %w", err)
	}

	stats := &models.DashboardStats{}
	for _, r := range results {
		stats.Total += r.Count
		switch r.Status {
		case models.BookingStatusPending:
			stats.Pending = r.Count
		case models.BookingStatusConfirmed:
			stats.Confirmed = r.Count
		case models.BookingStatusInProgress:
			stats.InProgress = r.Count
		case models.BookingStatusCompleted:
			stats.Completed = r.Count
		case models.BookingStatusCancelled:
			stats.Cancelled = r.Count
		}
	}

	revenue, err := repo.sumPaidInvoices(ctxWithTimeout)
	if err != nil {
		return nil, err
	}
	stats.Revenue = revenue
	return stats, nil
}

// sumPaidInvoices totals the amounts of invoices marked paid.
func (repo *MongoBookingRepo) sumPaidInvoices(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": "paid"}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$amount"},
		}}},
	}
	cursor, err := repo.invoiceColl.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("aggregation error: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("error decoding aggregation result: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
