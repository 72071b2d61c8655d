package analytics_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/ricewise/ricewise/internal/domain/models"
	"github.com/ricewise/ricewise/internal/service/analytics"
)

func TestComputeCorrelationsInsufficientData(t *testing.T) {
	records := []models.SalesRecord{
		weekly(2024, 3, 1, 100),
		weekly(2024, 3, 2, 200),
	}
	_, err := analytics.ComputeCorrelations(records)
	if !errors.Is(err, models.ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestComputeCorrelationsPerfectPositive(t *testing.T) {
	records := []models.SalesRecord{
		{PricePerKg: 1, RiceSold: 2, Population: 10, WastePercentage: 1, Competitors: 1},
		{PricePerKg: 2, RiceSold: 4, Population: 20, WastePercentage: 2, Competitors: 2},
		{PricePerKg: 3, RiceSold: 6, Population: 30, WastePercentage: 3, Competitors: 3},
		{PricePerKg: 4, RiceSold: 8, Population: 40, WastePercentage: 4, Competitors: 4},
	}

	report, err := analytics.ComputeCorrelations(records)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(report.PriceVsDemand, 1) {
		t.Fatalf("price vs demand = %v, want 1", report.PriceVsDemand)
	}
	interp, ok := report.Interpretations["price_vs_demand"]
	if !ok || !strings.Contains(interp, "Strong") || !strings.Contains(interp, "Positive") {
		t.Fatalf("interpretation = %q", interp)
	}
}

func TestComputeCorrelationsDegenerateSeries(t *testing.T) {
	// Constant price makes the denominator zero, so the coefficient is zero.
	records := []models.SalesRecord{
		{PricePerKg: 5, RiceSold: 2, Population: 10},
		{PricePerKg: 5, RiceSold: 4, Population: 20},
		{PricePerKg: 5, RiceSold: 6, Population: 30},
	}

	report, err := analytics.ComputeCorrelations(records)
	if err != nil {
		t.Fatal(err)
	}
	if report.PriceVsDemand != 0 {
		t.Fatalf("degenerate price vs demand = %v, want 0", report.PriceVsDemand)
	}
}

func TestInterpretationBuckets(t *testing.T) {
	// Sales and waste move in opposite directions.
	records := []models.SalesRecord{
		{RiceSold: 10, WastePercentage: 30},
		{RiceSold: 20, WastePercentage: 20},
		{RiceSold: 30, WastePercentage: 10},
	}

	report, err := analytics.ComputeCorrelations(records)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(report.DemandVsWaste, -1) {
		t.Fatalf("demand vs waste = %v, want -1", report.DemandVsWaste)
	}
	interp := report.Interpretations["demand_vs_waste"]
	if !strings.Contains(interp, "Strong") || !strings.Contains(interp, "Negative") {
		t.Fatalf("interpretation = %q", interp)
	}
}
