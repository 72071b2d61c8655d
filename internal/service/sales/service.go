package sales

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/ricewise/ricewise/internal/domain/models"
	"github.com/ricewise/ricewise/internal/service/analytics"
)

// Repository is the persistence surface the sales service depends on.
type Repository interface {
	InsertSales(ctx context.Context, record models.SalesRecord) error
	ListByUser(ctx context.Context, userID string) ([]models.SalesRecord, error)
	DeleteSales(ctx context.Context, id, userID string) error
}

// Exporter mirrors accepted submissions into an external sheet. Export
// failures are logged but never fail the submission.
type Exporter interface {
	AppendSalesRecord(ctx context.Context, record models.SalesRecord) error
}

// Service handles sales record submission and retrieval.
type Service struct {
	repo     Repository
	exporter Exporter
	logger   *zap.Logger
	now      func() time.Time
}

// NewService wires a new sales service instance. exporter may be nil when no
// sheet export is configured.
func NewService(repo Repository, exporter Exporter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, exporter: exporter, logger: logger, now: time.Now}
}

// Submit validates and stores a new sales entry for the caller, then mirrors
// it to the configured exporter.
func (s *Service) Submit(ctx context.Context, userID string, in models.SalesInput) (models.SalesRecord, error) {
	record, err := models.NewSalesRecord(userID, in, s.now())
	if err != nil {
		return models.SalesRecord{}, err
	}
	if err := s.repo.InsertSales(ctx, record); err != nil {
		return models.SalesRecord{}, err
	}
	s.logger.Info("sales record stored",
		zap.String("record_id", record.ID),
		zap.String("user_id", userID),
		zap.String("period", record.PeriodKey))

	if s.exporter != nil {
		if err := s.exporter.AppendSalesRecord(ctx, record); err != nil {
			s.logger.Warn("sheet export failed", zap.Error(err), zap.String("record_id", record.ID))
		}
	}
	return record, nil
}

// List returns the caller's history narrowed by the time filter. Persistence
// failures degrade to an empty list so the dashboard keeps rendering.
func (s *Service) List(ctx context.Context, userID string, f analytics.Filter) []models.SalesRecord {
	records, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("loading sales history failed, serving empty set",
			zap.Error(err), zap.String("user_id", userID))
		return []models.SalesRecord{}
	}
	filtered := analytics.FilterByTime(records, f)
	if filtered == nil {
		filtered = []models.SalesRecord{}
	}
	return filtered
}

// Delete removes one of the caller's records. Deleting another user's record
// reports ErrNotFound.
func (s *Service) Delete(ctx context.Context, id, userID string) error {
	if err := s.repo.DeleteSales(ctx, id, userID); err != nil {
		return err
	}
	s.logger.Info("sales record deleted", zap.String("record_id", id), zap.String("user_id", userID))
	return nil
}

// AvailableYears lists the distinct years present in the caller's history,
// ascending. Persistence failures degrade to an empty list.
func (s *Service) AvailableYears(ctx context.Context, userID string) []int {
	records, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("loading sales history failed, serving empty set",
			zap.Error(err), zap.String("user_id", userID))
		return []int{}
	}
	seen := map[int]bool{}
	years := []int{}
	for _, r := range records {
		if r.Year > 0 && !seen[r.Year] {
			seen[r.Year] = true
			years = append(years, r.Year)
		}
	}
	sort.Ints(years)
	return years
}

// Defaults returns the market-analysis fields of the latest record matching
// the optional year and month, falling back to the latest record overall.
// ok is false when the caller has no history at all.
func (s *Service) Defaults(ctx context.Context, userID string, year, month int) (models.MarketDefaults, bool) {
	records, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("loading sales history failed, serving empty set",
			zap.Error(err), zap.String("user_id", userID))
		return models.MarketDefaults{}, false
	}
	if len(records) == 0 {
		return models.MarketDefaults{}, false
	}

	candidates := records
	if year > 0 {
		candidates = keepRecords(candidates, func(r models.SalesRecord) bool { return r.Year == year })
	}
	if month > 0 {
		candidates = keepRecords(candidates, func(r models.SalesRecord) bool { return r.Month == month })
	}
	if len(candidates) == 0 {
		candidates = records
	}

	latest := candidates[0]
	for _, r := range candidates[1:] {
		if r.Timestamp.After(latest.Timestamp) {
			latest = r
		}
	}
	return models.MarketDefaults{
		Population:      latest.Population,
		AvgConsumption:  latest.AvgConsumption,
		PurchasingPower: latest.PurchasingPower,
		Competitors:     latest.Competitors,
		CustomerDemand:  latest.CustomerDemand,
	}, true
}

func keepRecords(records []models.SalesRecord, pred func(models.SalesRecord) bool) []models.SalesRecord {
	out := make([]models.SalesRecord, 0, len(records))
	for _, r := range records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}
