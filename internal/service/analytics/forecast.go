package analytics

import (
	"fmt"
	"time"

	"github.com/ricewise/ricewise/internal/domain/models"
)

const (
	defaultForecastWeeks = 4
	forecastMethod       = "Trend-based linear projection"
)

// BuildForecast projects sold and unsold volumes a number of weeks ahead by
// extending the regression slopes from the latest record. Confidence depends
// on how much history backs the trend.
func BuildForecast(records []models.SalesRecord, weeks int, now time.Time) (models.ForecastReport, error) {
	if weeks <= 0 {
		weeks = defaultForecastWeeks
	}
	if len(records) < 2 {
		return models.ForecastReport{}, fmt.Errorf("%w: forecasting needs at least 2 historical records", models.ErrInsufficientData)
	}

	trends, err := ComputeTrends(records)
	if err != nil {
		return models.ForecastReport{}, err
	}

	latest := records[0]
	for _, r := range records[1:] {
		if r.Timestamp.After(latest.Timestamp) {
			latest = r
		}
	}
	base, ok := models.ResolveDate(latest)
	if !ok {
		base = now
	}

	confidence := "Low"
	switch {
	case len(records) >= 8:
		confidence = "High"
	case len(records) >= 4:
		confidence = "Medium"
	}

	forecast := make([]models.ForecastPoint, 0, weeks)
	for k := 1; k <= weeks; k++ {
		sold := latest.RiceSold + trends.SalesTrend*float64(k)
		if sold < 0 {
			sold = 0
		}
		unsold := latest.RiceUnsold + trends.UnsoldTrend*float64(k)
		if unsold < 0 {
			unsold = 0
		}
		forecast = append(forecast, models.ForecastPoint{
			Period:                   base.AddDate(0, 0, 7*k).Format("2006-01-02"),
			PredictedSold:            models.Round2(sold),
			PredictedUnsold:          models.Round2(unsold),
			PredictedWastePercentage: models.Round2(models.ComputeWastePercentage(sold, unsold)),
			ConfidenceLevel:          confidence,
		})
	}

	return models.ForecastReport{
		Forecast:       forecast,
		Trends:         trends,
		LastUpdated:    latest.PeriodKey,
		ForecastMethod: forecastMethod,
	}, nil
}
