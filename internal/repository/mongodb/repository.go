package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	salesCollection     = "sales"
	inventoryCollection = "retailer_inventory"
)

// Repository provides MongoDB-backed persistence for sales and inventory
// records. The per-collection operations live in sales.go and inventory.go.
type Repository struct {
	client *mongo.Client
	dbName string
}

// NewRepository connects to MongoDB and verifies the connection.
func NewRepository(ctx context.Context, uri string, dbName string) (*Repository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Repository{client: client, dbName: dbName}, nil
}

func (r *Repository) sales() *mongo.Collection {
	return r.client.Database(r.dbName).Collection(salesCollection)
}

func (r *Repository) inventory() *mongo.Collection {
	return r.client.Database(r.dbName).Collection(inventoryCollection)
}

// Close closes the MongoDB connection.
func (r *Repository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
