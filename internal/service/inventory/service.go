package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ricewise/ricewise/internal/domain/models"
)

// Repository is the persistence surface the inventory service depends on.
type Repository interface {
	InsertInventory(ctx context.Context, record models.InventoryRecord) error
	ListInventoryByRetailer(ctx context.Context, retailerID string, f models.InventoryFilter) ([]models.InventoryRecord, error)
	GetInventory(ctx context.Context, id, retailerID string) (models.InventoryRecord, error)
	UpdateInventory(ctx context.Context, id, retailerID string, u models.InventoryUpdate) (models.InventoryRecord, error)
	DeleteInventory(ctx context.Context, id, retailerID string) error
	BrowseInventory(ctx context.Context, f models.InventoryBrowseFilter) ([]models.InventoryRecord, error)
}

// Service manages retailer stock listings and the consumer browse view.
type Service struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a new inventory service instance.
func NewService(repo Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// Create stores a new listing for the retailer. StockKg and PricePerKg are
// required; the posting date defaults to today.
func (s *Service) Create(ctx context.Context, retailerID string, in models.InventoryInput) (models.InventoryRecord, error) {
	if in.StockKg == nil || in.PricePerKg == nil {
		return models.InventoryRecord{}, fmt.Errorf("%w: stock_kg and price_per_kg are required", models.ErrInvalidInput)
	}
	if *in.StockKg < 0 || *in.PricePerKg < 0 {
		return models.InventoryRecord{}, fmt.Errorf("%w: stock_kg and price_per_kg must not be negative", models.ErrInvalidInput)
	}

	date := in.DatePosted
	if date == "" {
		date = s.now().Format(models.DateLayout)
	} else if err := validDate(date); err != nil {
		return models.InventoryRecord{}, err
	}

	record := models.InventoryRecord{
		ID:          uuid.NewString(),
		RetailerID:  retailerID,
		DatePosted:  date,
		RiceVariety: strings.TrimSpace(in.RiceVariety),
		StockKg:     *in.StockKg,
		PricePerKg:  *in.PricePerKg,
		CreatedAt:   s.now(),
	}
	if err := s.repo.InsertInventory(ctx, record); err != nil {
		return models.InventoryRecord{}, err
	}
	s.logger.Info("inventory listing created",
		zap.String("record_id", record.ID),
		zap.String("retailer_id", retailerID),
		zap.String("date_posted", date))
	return record, nil
}

// List returns the retailer's own listings narrowed by the filter.
func (s *Service) List(ctx context.Context, retailerID string, f models.InventoryFilter) ([]models.InventoryRecord, error) {
	if f.Date != "" {
		if err := validDate(f.Date); err != nil {
			return nil, err
		}
	}
	records, err := s.repo.ListInventoryByRetailer(ctx, retailerID, f)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []models.InventoryRecord{}
	}
	return records, nil
}

// Get fetches one of the retailer's listings.
func (s *Service) Get(ctx context.Context, id, retailerID string) (models.InventoryRecord, error) {
	return s.repo.GetInventory(ctx, id, retailerID)
}

// Update applies a partial edit to one of the retailer's listings and returns
// the updated row.
func (s *Service) Update(ctx context.Context, id, retailerID string, u models.InventoryUpdate) (models.InventoryRecord, error) {
	if u.IsEmpty() {
		return models.InventoryRecord{}, fmt.Errorf("%w: no updatable fields provided", models.ErrInvalidInput)
	}
	if u.DatePosted != nil {
		if err := validDate(*u.DatePosted); err != nil {
			return models.InventoryRecord{}, err
		}
	}
	if u.StockKg != nil && *u.StockKg < 0 {
		return models.InventoryRecord{}, fmt.Errorf("%w: stock_kg must not be negative", models.ErrInvalidInput)
	}
	if u.PricePerKg != nil && *u.PricePerKg < 0 {
		return models.InventoryRecord{}, fmt.Errorf("%w: price_per_kg must not be negative", models.ErrInvalidInput)
	}
	if u.RiceVariety != nil {
		trimmed := strings.TrimSpace(*u.RiceVariety)
		u.RiceVariety = &trimmed
	}
	return s.repo.UpdateInventory(ctx, id, retailerID, u)
}

// Delete removes one of the retailer's listings.
func (s *Service) Delete(ctx context.Context, id, retailerID string) error {
	if err := s.repo.DeleteInventory(ctx, id, retailerID); err != nil {
		return err
	}
	s.logger.Info("inventory listing deleted",
		zap.String("record_id", id), zap.String("retailer_id", retailerID))
	return nil
}

// Browse serves the consumer view across all retailers. Without the latest
// flag the posting date defaults to today.
func (s *Service) Browse(ctx context.Context, f models.InventoryBrowseFilter) ([]models.InventoryRecord, error) {
	if !f.Latest && f.Date == "" {
		f.Date = s.now().Format(models.DateLayout)
	}
	if f.Date != "" {
		if err := validDate(f.Date); err != nil {
			return nil, err
		}
	}
	records, err := s.repo.BrowseInventory(ctx, f)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []models.InventoryRecord{}
	}
	return records, nil
}

func validDate(s string) error {
	if _, err := time.Parse(models.DateLayout, s); err != nil {
		return fmt.Errorf("%w: date must be formatted YYYY-MM-DD", models.ErrInvalidInput)
	}
	return nil
}
