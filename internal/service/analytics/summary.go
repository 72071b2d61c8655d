package analytics

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ricewise/ricewise/internal/domain/models"
)

// Aggregation hints accepted by BuildSummary.
const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// BuildSummary totals the filtered record set and aggregates chart buckets at
// the requested granularity. An empty set yields a zero-valued summary rather
// than an error so dashboards degrade gracefully.
func BuildSummary(records []models.SalesRecord, period string) models.AnalyticsSummary {
	if len(records) == 0 {
		return models.AnalyticsSummary{
			EfficiencyScore: "No data",
			ChartData:       []models.ChartBucket{},
		}
	}

	var totalSold, totalWaste, totalRevenue, priceSum float64
	for _, r := range records {
		totalSold += r.RiceSold
		totalWaste += r.RiceUnsold
		totalRevenue += r.TotalRevenue
		priceSum += r.PricePerKg
	}
	overallWaste := models.ComputeWastePercentage(totalSold, totalWaste)

	if period != PeriodYear && period != PeriodMonth {
		period = PeriodWeek
	}

	return models.AnalyticsSummary{
		TotalEntries:    len(records),
		TotalSold:       models.Round2(totalSold),
		TotalRevenue:    models.Round2(totalRevenue),
		TotalWaste:      models.Round2(totalWaste),
		AvgPrice:        models.Round2(priceSum / float64(len(records))),
		EfficiencyScore: efficiencyLabel(overallWaste),
		WastePercentage: models.Round2(overallWaste),
		ChartData:       aggregateChart(records, period),
	}
}

type chartAccumulator struct {
	sold       float64
	unsold     float64
	revenue    float64
	priceSum   float64
	priceCount int
}

func aggregateChart(records []models.SalesRecord, period string) []models.ChartBucket {
	buckets := map[string]*chartAccumulator{}
	for _, r := range records {
		label := bucketLabel(r, period)
		acc, ok := buckets[label]
		if !ok {
			acc = &chartAccumulator{}
			buckets[label] = acc
		}
		acc.sold += r.RiceSold
		acc.unsold += r.RiceUnsold
		acc.revenue += r.TotalRevenue
		if r.PricePerKg != 0 {
			acc.priceSum += r.PricePerKg
			acc.priceCount++
		}
	}

	labels := make([]string, 0, len(buckets))
	for label := range buckets {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool { return bucketLess(labels[i], labels[j], period) })

	chart := make([]models.ChartBucket, 0, len(labels))
	for _, label := range labels {
		acc := buckets[label]
		var avgPrice float64
		if acc.priceCount > 0 {
			avgPrice = acc.priceSum / float64(acc.priceCount)
		}
		chart = append(chart, models.ChartBucket{
			Period:          label,
			Sold:            models.Round2(acc.sold),
			Unsold:          models.Round2(acc.unsold),
			Revenue:         models.Round2(acc.revenue),
			Price:           models.Round2(avgPrice),
			WastePercentage: models.Round2(models.ComputeWastePercentage(acc.sold, acc.unsold)),
		})
	}
	return chart
}

func bucketLabel(r models.SalesRecord, period string) string {
	switch period {
	case PeriodYear:
		if r.Year == 0 {
			return "Unknown"
		}
		return strconv.Itoa(r.Year)
	case PeriodMonth:
		if r.Year > 0 && r.Month > 0 {
			return fmt.Sprintf("%d-%02d", r.Year, r.Month)
		}
		return r.PeriodKey
	default:
		return r.PeriodKey
	}
}

func bucketLess(a, b, period string) bool {
	switch period {
	case PeriodYear:
		ai, errA := strconv.Atoi(a)
		bi, errB := strconv.Atoi(b)
		if errA == nil && errB == nil {
			return ai < bi
		}
	case PeriodMonth:
		aYear, aMonth, okA := splitMonthLabel(a)
		bYear, bMonth, okB := splitMonthLabel(b)
		if okA && okB {
			if aYear != bYear {
				return aYear < bYear
			}
			return aMonth < bMonth
		}
	}
	return a < b
}

func splitMonthLabel(label string) (year, month int, ok bool) {
	ys, ms, found := strings.Cut(label, "-")
	if !found {
		return 0, 0, false
	}
	y, errY := strconv.Atoi(ys)
	m, errM := strconv.Atoi(ms)
	if errY != nil || errM != nil {
		return 0, 0, false
	}
	return y, m, true
}
