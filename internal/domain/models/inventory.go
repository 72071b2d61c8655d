package models

import "time"

// DateLayout is the wire format for inventory posting dates.
const DateLayout = "2006-01-02"

// InventoryRecord is a retailer's point-in-time stock listing. RiceVariety is
// optional; an empty string means unspecified.
type InventoryRecord struct {
	ID          string    `bson:"_id" json:"id"`
	RetailerID  string    `bson:"retailer_id" json:"retailer_id"`
	DatePosted  string    `bson:"date_posted" json:"date_posted"`
	RiceVariety string    `bson:"rice_variety,omitempty" json:"rice_variety,omitempty"`
	StockKg     float64   `bson:"stock_kg" json:"stock_kg"`
	PricePerKg  float64   `bson:"price_per_kg" json:"price_per_kg"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// InventoryInput is the creation payload. StockKg and PricePerKg are required;
// DatePosted defaults to today when empty.
type InventoryInput struct {
	RiceVariety string   `json:"rice_variety"`
	StockKg     *float64 `json:"stock_kg"`
	PricePerKg  *float64 `json:"price_per_kg"`
	DatePosted  string   `json:"date_posted"`
}

// InventoryUpdate carries a partial edit; nil fields are left untouched.
type InventoryUpdate struct {
	DatePosted  *string  `json:"date_posted"`
	RiceVariety *string  `json:"rice_variety"`
	StockKg     *float64 `json:"stock_kg"`
	PricePerKg  *float64 `json:"price_per_kg"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u InventoryUpdate) IsEmpty() bool {
	return u.DatePosted == nil && u.RiceVariety == nil && u.StockKg == nil && u.PricePerKg == nil
}

// InventoryFilter narrows a retailer's own listing query. Date takes priority
// over the From/To range when both are set.
type InventoryFilter struct {
	Date     string
	From     string
	To       string
	Variety  string
	MinPrice *float64
	MaxPrice *float64
}

// InventoryBrowseFilter narrows the cross-retailer consumer view. Latest
// selects the newest row per (retailer, variety); otherwise rows are matched
// by posting date (default today).
type InventoryBrowseFilter struct {
	Latest     bool
	Date       string
	Variety    string
	MinPrice   *float64
	MaxPrice   *float64
	RetailerID string
}
