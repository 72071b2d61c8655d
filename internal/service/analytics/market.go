package analytics

import (
	"fmt"

	"github.com/ricewise/ricewise/internal/domain/models"
)

// Population bands used as a proxy for market size.
const (
	MarketSmall  = "Small Market (<1000)"
	MarketMedium = "Medium Market (1000-2000)"
	MarketLarge  = "Large Market (>2000)"
)

// CompareMarkets buckets records into population bands and summarizes each.
// Bands with no records are omitted.
func CompareMarkets(records []models.SalesRecord) (map[string]models.MarketSegment, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no records available for market comparison", models.ErrInsufficientData)
	}

	groups := map[string][]models.SalesRecord{}
	for _, r := range records {
		switch {
		case r.Population < 1000:
			groups[MarketSmall] = append(groups[MarketSmall], r)
		case r.Population < 2000:
			groups[MarketMedium] = append(groups[MarketMedium], r)
		default:
			groups[MarketLarge] = append(groups[MarketLarge], r)
		}
	}

	comparison := make(map[string]models.MarketSegment, len(groups))
	for band, group := range groups {
		var totalSold, totalWaste float64
		prices := make([]float64, len(group))
		wastes := make([]float64, len(group))
		for i, r := range group {
			totalSold += r.RiceSold
			totalWaste += r.RiceUnsold
			prices[i] = r.PricePerKg
			wastes[i] = r.WastePercentage
		}
		avgWaste := mean(wastes)
		comparison[band] = models.MarketSegment{
			TotalSold:          totalSold,
			TotalWaste:         totalWaste,
			AvgPrice:           mean(prices),
			AvgWastePercentage: avgWaste,
			EfficiencyScore:    efficiencyLabel(avgWaste),
		}
	}
	return comparison, nil
}

// efficiencyLabel maps a waste percentage onto the dashboard's qualitative score.
func efficiencyLabel(wastePct float64) string {
	switch {
	case wastePct < 10:
		return "Excellent"
	case wastePct < 20:
		return "Good"
	default:
		return "Needs Improvement"
	}
}
