package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ricewise/ricewise/internal/domain/models"
)

// InsertInventory stores a new inventory listing.
func (r *Repository) InsertInventory(ctx context.Context, record models.InventoryRecord) error {
	if _, err := r.inventory().InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to insert inventory record: %w", err)
	}
	return nil
}

// ListInventoryByRetailer returns a retailer's own listings, newest first.
func (r *Repository) ListInventoryByRetailer(ctx context.Context, retailerID string, f models.InventoryFilter) ([]models.InventoryRecord, error) {
	filter := bson.M{"retailer_id": retailerID}
	if f.Date != "" {
		filter["date_posted"] = f.Date
	} else {
		dateRange := bson.M{}
		if f.From != "" {
			dateRange["$gte"] = f.From
		}
		if f.To != "" {
			dateRange["$lte"] = f.To
		}
		if len(dateRange) > 0 {
			filter["date_posted"] = dateRange
		}
	}
	if f.Variety != "" {
		filter["rice_variety"] = containsPattern(f.Variety)
	}
	if priceRange := priceFilter(f.MinPrice, f.MaxPrice); len(priceRange) > 0 {
		filter["price_per_kg"] = priceRange
	}

	opts := options.Find().SetSort(bson.D{{Key: "date_posted", Value: -1}, {Key: "created_at", Value: -1}})
	cursor, err := r.inventory().Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.InventoryRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode inventory records: %w", err)
	}
	return records, nil
}

// GetInventory fetches one listing owned by the retailer.
func (r *Repository) GetInventory(ctx context.Context, id, retailerID string) (models.InventoryRecord, error) {
	var record models.InventoryRecord
	err := r.inventory().FindOne(ctx, bson.M{"_id": id, "retailer_id": retailerID}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.InventoryRecord{}, models.ErrNotFound
	}
	if err != nil {
		return models.InventoryRecord{}, fmt.Errorf("failed to load inventory record: %w", err)
	}
	return record, nil
}

// UpdateInventory applies a partial edit to a listing owned by the retailer
// and returns the updated document.
func (r *Repository) UpdateInventory(ctx context.Context, id, retailerID string, u models.InventoryUpdate) (models.InventoryRecord, error) {
	set := bson.M{}
	if u.DatePosted != nil {
		set["date_posted"] = *u.DatePosted
	}
	if u.RiceVariety != nil {
		set["rice_variety"] = strings.TrimSpace(*u.RiceVariety)
	}
	if u.StockKg != nil {
		set["stock_kg"] = *u.StockKg
	}
	if u.PricePerKg != nil {
		set["price_per_kg"] = *u.PricePerKg
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var record models.InventoryRecord
	err := r.inventory().
		FindOneAndUpdate(ctx, bson.M{"_id": id, "retailer_id": retailerID}, bson.M{"$set": set}, opts).
		Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.InventoryRecord{}, models.ErrNotFound
	}
	if err != nil {
		return models.InventoryRecord{}, fmt.Errorf("failed to update inventory record: %w", err)
	}
	return record, nil
}

// DeleteInventory removes a listing owned by the retailer.
func (r *Repository) DeleteInventory(ctx context.Context, id, retailerID string) error {
	res, err := r.inventory().DeleteOne(ctx, bson.M{"_id": id, "retailer_id": retailerID})
	if err != nil {
		return fmt.Errorf("failed to delete inventory record: %w", err)
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

// BrowseInventory serves the cross-retailer consumer view. In latest mode the
// newest listing per (retailer, variety) pair wins; otherwise listings are
// matched by posting date.
func (r *Repository) BrowseInventory(ctx context.Context, f models.InventoryBrowseFilter) ([]models.InventoryRecord, error) {
	match := bson.M{}
	if f.Variety != "" {
		match["rice_variety"] = containsPattern(f.Variety)
	}
	if priceRange := priceFilter(f.MinPrice, f.MaxPrice); len(priceRange) > 0 {
		match["price_per_kg"] = priceRange
	}
	if f.RetailerID != "" {
		match["retailer_id"] = f.RetailerID
	}
	if f.Date != "" {
		match["date_posted"] = f.Date
	}

	var records []models.InventoryRecord
	if f.Latest {
		pipeline := mongo.Pipeline{
			{{Key: "$match", Value: match}},
			{{Key: "$sort", Value: bson.D{
				{Key: "retailer_id", Value: 1},
				{Key: "rice_variety", Value: 1},
				{Key: "date_posted", Value: -1},
				{Key: "created_at", Value: -1},
			}}},
			{{Key: "$group", Value: bson.M{
				"_id": bson.M{
					"retailer": "$retailer_id",
					"variety":  bson.M{"$ifNull": bson.A{"$rice_variety", ""}},
				},
				"doc": bson.M{"$first": "$$ROOT"},
			}}},
			{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$doc"}}},
			{{Key: "$sort", Value: bson.D{{Key: "date_posted", Value: -1}, {Key: "created_at", Value: -1}}}},
		}
		cursor, err := r.inventory().Aggregate(ctx, pipeline)
		if err != nil {
			return nil, fmt.Errorf("failed to browse inventory: %w", err)
		}
		defer cursor.Close(ctx)
		if err := cursor.All(ctx, &records); err != nil {
			return nil, fmt.Errorf("failed to decode inventory records: %w", err)
		}
		return records, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "date_posted", Value: -1}, {Key: "created_at", Value: -1}})
	cursor, err := r.inventory().Find(ctx, match, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to browse inventory: %w", err)
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode inventory records: %w", err)
	}
	return records, nil
}

func containsPattern(text string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(text), Options: "i"}
}

func priceFilter(min, max *float64) bson.M {
	priceRange := bson.M{}
	if min != nil {
		priceRange["$gte"] = *min
	}
	if max != nil {
		priceRange["$lte"] = *max
	}
	return priceRange
}
