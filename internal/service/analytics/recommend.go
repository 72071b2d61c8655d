package analytics

import (
	"fmt"
	"time"

	"github.com/ricewise/ricewise/internal/domain/models"
)

// RecommendationInput is the candidate entry advice is generated for. The
// on-demand prediction endpoint leaves PricePerKg and WastePercentage at zero.
type RecommendationInput struct {
	WastePercentage float64
	PricePerKg      float64
	CustomerDemand  string
	Competitors     float64
	RiceSold        float64
}

// Recommendations emits rule-based advisory strings by comparing the candidate
// entry against the caller's history. now anchors the same-calendar-month
// seasonal check.
func Recommendations(in RecommendationInput, history []models.SalesRecord, now time.Time) []string {
	recommendations := []string{}

	if len(history) > 0 {
		wastes := make([]float64, len(history))
		prices := make([]float64, len(history))
		for i, r := range history {
			wastes[i] = r.WastePercentage
			prices[i] = r.PricePerKg
		}
		avgWaste := mean(wastes)
		avgPrice := mean(prices)

		switch {
		case in.WastePercentage > avgWaste+5:
			recommendations = append(recommendations,
				fmt.Sprintf("Waste is %.1f%% higher than average. Consider reducing next week's order by 15-20%%", in.WastePercentage-avgWaste))
		case in.WastePercentage < avgWaste-5:
			recommendations = append(recommendations,
				fmt.Sprintf("Waste is %.1f%% lower than average. You might be understocking. Consider increasing order by 10%%", avgWaste-in.WastePercentage))
		default:
			recommendations = append(recommendations, "Waste levels are within normal range. Maintain current ordering levels")
		}

		if in.PricePerKg > avgPrice*1.1 {
			recommendations = append(recommendations, "Price is significantly higher than average. Consider competitive pricing to increase sales")
		} else if in.PricePerKg < avgPrice*0.9 {
			recommendations = append(recommendations, "Price is lower than average. You might be underpricing. Consider increasing price by 5-10%")
		}
	}

	switch in.CustomerDemand {
	case "High":
		recommendations = append(recommendations, "High demand expected - consider increasing stock by 10-15% and maintaining competitive pricing")
	case "Low":
		recommendations = append(recommendations, "Low demand period - reduce stock to minimize waste and consider promotional pricing")
	}

	if in.Competitors > 3 {
		recommendations = append(recommendations, "High competition area - focus on competitive pricing, quality, and customer service")
	} else if in.Competitors < 2 {
		recommendations = append(recommendations, "Low competition - you have pricing power. Consider optimizing for profit margins")
	}

	if len(history) >= 4 {
		currentMonth := int(now.Month())
		var seasonal []float64
		for _, r := range history {
			if models.MonthOf(r) == currentMonth {
				seasonal = append(seasonal, r.RiceSold)
			}
		}
		if len(seasonal) > 0 && in.RiceSold < mean(seasonal)*0.8 {
			recommendations = append(recommendations, "Sales below seasonal average. Check if there are local events or holidays affecting demand")
		}
	}

	return recommendations
}
