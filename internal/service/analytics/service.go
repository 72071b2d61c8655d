package analytics

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ricewise/ricewise/internal/domain/models"
)

// SalesReader is the persistence surface the analytics engines load from.
type SalesReader interface {
	ListByUser(ctx context.Context, userID string) ([]models.SalesRecord, error)
}

// Service computes dashboard analytics over a user's sales history. Every call
// reloads and recomputes from scratch; there is no cross-request state.
type Service struct {
	repo   SalesReader
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a new analytics service instance.
func NewService(repo SalesReader, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// load fetches the caller's history, degrading to an empty set when the
// persistence layer fails so dashboards keep rendering.
func (s *Service) load(ctx context.Context, userID string) []models.SalesRecord {
	records, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("loading sales history failed, serving empty set",
			zap.Error(err), zap.String("user_id", userID))
		return nil
	}
	return records
}

func (s *Service) loadFiltered(ctx context.Context, userID string, f Filter) []models.SalesRecord {
	return FilterByTime(s.load(ctx, userID), f)
}

// Summary returns the dashboard totals and chart buckets for the filtered set.
func (s *Service) Summary(ctx context.Context, userID string, f Filter, period string) models.AnalyticsSummary {
	return BuildSummary(s.loadFiltered(ctx, userID, f), period)
}

// Trends runs the trend engine over the filtered set.
func (s *Service) Trends(ctx context.Context, userID string, f Filter) (models.TrendReport, error) {
	return ComputeTrends(s.loadFiltered(ctx, userID, f))
}

// Correlations runs the correlation engine over the filtered set.
func (s *Service) Correlations(ctx context.Context, userID string, f Filter) (models.CorrelationReport, error) {
	return ComputeCorrelations(s.loadFiltered(ctx, userID, f))
}

// MarketComparison buckets the filtered set into population bands.
func (s *Service) MarketComparison(ctx context.Context, userID string, f Filter) (map[string]models.MarketSegment, error) {
	return CompareMarkets(s.loadFiltered(ctx, userID, f))
}

// DataQuality scores completeness of the filtered set.
func (s *Service) DataQuality(ctx context.Context, userID string, f Filter) models.DataQualityReport {
	return ValidateQuality(s.loadFiltered(ctx, userID, f))
}

// Forecast projects the caller's volumes the given number of weeks ahead.
func (s *Service) Forecast(ctx context.Context, userID string, weeks int) (models.ForecastReport, error) {
	return BuildForecast(s.load(ctx, userID), weeks, s.now())
}

// Progress evaluates data-entry completeness for a year. Zero selects the
// latest year on record, falling back to the current year.
func (s *Service) Progress(ctx context.Context, userID string, year int) models.YearProgress {
	records := s.load(ctx, userID)
	if year == 0 {
		for _, r := range records {
			if r.Year > year {
				year = r.Year
			}
		}
		if year == 0 {
			year = s.now().Year()
		}
	}
	return ComputeProgress(records, year)
}

// PredictInput carries the on-demand rice demand calculation inputs.
type PredictInput struct {
	Population      float64 `json:"population"`
	AvgConsumption  float64 `json:"avgConsumption"`
	PurchasingPower float64 `json:"purchasingPower"`
	Competitors     float64 `json:"competitors"`
	DemandLevel     string  `json:"demandLevel"`
}

// Predict applies the rice demand model to ad-hoc inputs and attaches
// recommendations derived from the caller's history. Out-of-range inputs are
// clamped rather than rejected.
func (s *Service) Predict(ctx context.Context, userID string, in PredictInput) models.Prediction {
	if in.PurchasingPower < 0 {
		in.PurchasingPower = 0
	}
	if in.PurchasingPower > 1 {
		in.PurchasingPower = 1
	}
	if in.Competitors < 0 {
		in.Competitors = 0
	}

	predicted := models.PredictedDemand(in.Population, in.AvgConsumption, in.PurchasingPower, in.Competitors)

	demand := in.DemandLevel
	if demand == "" {
		demand = "Medium"
	}
	history := s.load(ctx, userID)
	recommendations := Recommendations(RecommendationInput{
		Competitors:    in.Competitors,
		CustomerDemand: demand,
	}, history, s.now())

	return models.Prediction{
		PredictedDemand: models.Round2(predicted),
		FormulaUsed:     models.DemandFormula,
		Recommendations: recommendations,
	}
}
