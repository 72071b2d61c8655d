package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ricewise/ricewise/internal/domain/models"
)

// InsertSales stores a new sales record. Records are append-only.
func (r *Repository) InsertSales(ctx context.Context, record models.SalesRecord) error {
	if _, err := r.sales().InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to insert sales record: %w", err)
	}
	return nil
}

// ListByUser returns all of a user's sales records, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]models.SalesRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.sales().Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.SalesRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode sales records: %w", err)
	}
	return records, nil
}

// DeleteSales removes a record owned by the given user.
func (r *Repository) DeleteSales(ctx context.Context, id, userID string) error {
	res, err := r.sales().DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return fmt.Errorf("failed to delete sales record: %w", err)
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

// DistinctUsers lists every user id that has at least one sales record.
func (r *Repository) DistinctUsers(ctx context.Context) ([]string, error) {
	values, err := r.sales().Distinct(ctx, "user_id", bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list distinct users: %w", err)
	}
	users := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			users = append(users, s)
		}
	}
	return users, nil
}
