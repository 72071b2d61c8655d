package analytics

import (
	"fmt"
	"math"

	"github.com/ricewise/ricewise/internal/domain/models"
)

// ComputeCorrelations calculates pairwise Pearson coefficients across the
// metric pairs the dashboard charts, each with a qualitative interpretation.
func ComputeCorrelations(records []models.SalesRecord) (models.CorrelationReport, error) {
	if len(records) < 3 {
		return models.CorrelationReport{}, fmt.Errorf("%w: correlation analysis needs at least 3 records", models.ErrInsufficientData)
	}

	sold := make([]float64, len(records))
	prices := make([]float64, len(records))
	population := make([]float64, len(records))
	competitors := make([]float64, len(records))
	waste := make([]float64, len(records))
	for i, r := range records {
		sold[i] = r.RiceSold
		prices[i] = r.PricePerKg
		population[i] = float64(r.Population)
		competitors[i] = float64(r.Competitors)
		waste[i] = r.WastePercentage
	}

	report := models.CorrelationReport{
		PriceVsDemand:       pearson(prices, sold),
		PopulationVsDemand:  pearson(population, sold),
		CompetitionVsDemand: pearson(competitors, sold),
		PriceVsWaste:        pearson(prices, waste),
		DemandVsWaste:       pearson(sold, waste),
	}
	report.Interpretations = map[string]string{
		"price_vs_demand":       interpretCorrelation(report.PriceVsDemand),
		"population_vs_demand":  interpretCorrelation(report.PopulationVsDemand),
		"competition_vs_demand": interpretCorrelation(report.CompetitionVsDemand),
		"price_vs_waste":        interpretCorrelation(report.PriceVsWaste),
		"demand_vs_waste":       interpretCorrelation(report.DemandVsWaste),
	}
	return report, nil
}

// pearson is the sample correlation coefficient, 0 when the series are too
// short, mismatched or degenerate.
func pearson(x, y []float64) float64 {
	if len(x) != len(y) || len(x) < 2 {
		return 0
	}
	n := float64(len(x))
	var sumX, sumY, sumXY, sumX2, sumY2 float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumX2 += x[i] * x[i]
		sumY2 += y[i] * y[i]
	}
	numerator := n*sumXY - sumX*sumY
	denominator := math.Sqrt((n*sumX2 - sumX*sumX) * (n*sumY2 - sumY*sumY))
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

func interpretCorrelation(r float64) string {
	var strength string
	switch {
	case math.Abs(r) >= 0.7:
		strength = "Strong"
	case math.Abs(r) >= 0.5:
		strength = "Moderate"
	case math.Abs(r) >= 0.3:
		strength = "Weak"
	default:
		strength = "Very Weak"
	}
	direction := "Negative"
	if r > 0 {
		direction = "Positive"
	}
	return strength + " " + direction
}
