package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/ricewise/ricewise/internal/domain/models"
)

const movingAvgWindow = 3

// ComputeTrends calculates per-metric regression slopes, moving averages and
// seasonality views. Records are ordered by best-effort resolved date before
// the time series is extracted.
func ComputeTrends(records []models.SalesRecord) (models.TrendReport, error) {
	if len(records) < 2 {
		return models.TrendReport{}, fmt.Errorf("%w: trend analysis needs at least 2 records", models.ErrInsufficientData)
	}

	sorted := make([]models.SalesRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, _ := models.ResolveDate(sorted[i])
		dj, _ := models.ResolveDate(sorted[j])
		return di.Before(dj)
	})

	labels := make([]string, len(sorted))
	sold := make([]float64, len(sorted))
	unsold := make([]float64, len(sorted))
	prices := make([]float64, len(sorted))
	waste := make([]float64, len(sorted))
	efficiency := make([]float64, len(sorted))
	for i, r := range sorted {
		labels[i] = r.PeriodKey
		sold[i] = r.RiceSold
		unsold[i] = r.RiceUnsold
		prices[i] = r.PricePerKg
		waste[i] = r.WastePercentage
		efficiency[i] = 100 - r.WastePercentage
	}

	report := models.TrendReport{
		SalesTrend:      slope(sold),
		UnsoldTrend:     slope(unsold),
		WasteTrend:      slope(waste),
		PriceTrend:      slope(prices),
		EfficiencyTrend: slope(efficiency),
		Labels:          labels,
		SalesMovingAvg:  movingAverage(sold, movingAvgWindow),
		WasteMovingAvg:  movingAverage(waste, movingAvgWindow),
		WeekdayPatterns: weekdayPatterns(records),
	}
	if wom := weekOfMonthPatterns(records); len(wom) > 0 {
		report.WeekOfMonthPatterns = wom
	}
	return report, nil
}

// slope is the ordinary-least-squares slope of values against a 0..n-1 index,
// 0 when fewer than two points or a degenerate denominator.
func slope(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	var sumX, sumY, sumXY, sumX2 float64
	for i, y := range values {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}
	denominator := float64(n)*sumX2 - sumX*sumX
	if denominator == 0 {
		return 0
	}
	return (float64(n)*sumXY - sumX*sumY) / denominator
}

// movingAverage returns trailing window means; inputs shorter than the window
// pass through unchanged.
func movingAverage(values []float64, window int) []float64 {
	if len(values) < window {
		return values
	}
	out := make([]float64, 0, len(values)-window+1)
	for i := 0; i+window <= len(values); i++ {
		var sum float64
		for _, v := range values[i : i+window] {
			sum += v
		}
		out = append(out, sum/float64(window))
	}
	return out
}

// weekdayPatterns averages rice sold by weekday name, using daily records only.
func weekdayPatterns(records []models.SalesRecord) map[string]float64 {
	groups := map[string][]float64{}
	for _, r := range records {
		if r.Day > 0 && r.Month > 0 && r.Year > 0 {
			weekday := time.Date(r.Year, time.Month(r.Month), r.Day, 0, 0, 0, 0, time.UTC).Weekday().String()
			groups[weekday] = append(groups[weekday], r.RiceSold)
		}
	}
	out := make(map[string]float64, len(groups))
	for day, values := range groups {
		out[day] = mean(values)
	}
	return out
}

// weekOfMonthPatterns averages rice sold by week-of-month index for records
// that carry a week number.
func weekOfMonthPatterns(records []models.SalesRecord) map[string]float64 {
	groups := map[int][]float64{}
	for _, r := range records {
		if r.Week > 0 && r.Month > 0 && r.Year > 0 {
			groups[r.Week] = append(groups[r.Week], r.RiceSold)
		}
	}
	out := make(map[string]float64, len(groups))
	for week, values := range groups {
		out[fmt.Sprintf("Week %d", week)] = mean(values)
	}
	return out
}

func mean(values []float64) float64 {
	m, err := stats.Mean(stats.Float64Data(values))
	if err != nil {
		return 0
	}
	return m
}
