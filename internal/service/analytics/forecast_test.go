package analytics_test

import (
	"errors"
	"testing"
	"time"

	"github.com/ricewise/ricewise/internal/domain/models"
	"github.com/ricewise/ricewise/internal/service/analytics"
)

func forecastRecord(week int, sold, unsold float64, ts time.Time) models.SalesRecord {
	return models.SalesRecord{
		Granularity: models.GranularityWeekly,
		PeriodKey:   "2024-03-W0" + string(rune('0'+week)),
		Year:        2024, Month: 3, Week: week,
		RiceSold: sold, RiceUnsold: unsold,
		Timestamp: ts,
	}
}

func TestBuildForecastInsufficientData(t *testing.T) {
	now := time.Now()
	_, err := analytics.BuildForecast([]models.SalesRecord{forecastRecord(1, 10, 1, now)}, 4, now)
	if !errors.Is(err, models.ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestBuildForecastProjection(t *testing.T) {
	ts := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	records := []models.SalesRecord{
		forecastRecord(1, 10, 4, ts),
		forecastRecord(2, 20, 3, ts.Add(time.Hour)),
		forecastRecord(3, 30, 2, ts.Add(2*time.Hour)),
		forecastRecord(4, 40, 1, ts.Add(3*time.Hour)),
	}

	report, err := analytics.BuildForecast(records, 2, ts)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Forecast) != 2 {
		t.Fatalf("forecast points = %d", len(report.Forecast))
	}
	// Latest record is week 4 (sold 40) with slope 10 per step.
	if !almostEqual(report.Forecast[0].PredictedSold, 50) || !almostEqual(report.Forecast[1].PredictedSold, 60) {
		t.Fatalf("predicted sold = %+v", report.Forecast)
	}
	// Week 4 of March 2024 resolves to the 22nd; points step a week at a time.
	if report.Forecast[0].Period != "2024-03-29" || report.Forecast[1].Period != "2024-04-05" {
		t.Fatalf("periods = %q, %q", report.Forecast[0].Period, report.Forecast[1].Period)
	}
	if report.LastUpdated != "2024-03-W04" {
		t.Fatalf("last updated = %q", report.LastUpdated)
	}
	if report.ForecastMethod == "" {
		t.Fatal("forecast method missing")
	}
}

func TestBuildForecastClampsNegativeVolumes(t *testing.T) {
	ts := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	records := []models.SalesRecord{
		forecastRecord(1, 30, 0, ts),
		forecastRecord(2, 20, 0, ts.Add(time.Hour)),
		forecastRecord(3, 10, 0, ts.Add(2*time.Hour)),
	}

	report, err := analytics.BuildForecast(records, 3, ts)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range report.Forecast {
		if p.PredictedSold < 0 || p.PredictedUnsold < 0 {
			t.Fatalf("negative projection: %+v", p)
		}
	}
	if !almostEqual(report.Forecast[2].PredictedSold, 0) {
		t.Fatalf("third point = %+v", report.Forecast[2])
	}
}

func TestBuildForecastConfidenceLevels(t *testing.T) {
	ts := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	build := func(n int) models.ForecastReport {
		records := make([]models.SalesRecord, n)
		for i := range records {
			records[i] = models.SalesRecord{
				Granularity: models.GranularityDaily,
				Year:        2024, Month: 3, Day: i + 1,
				RiceSold:  float64(10 + i),
				Timestamp: ts.Add(time.Duration(i) * time.Hour),
			}
		}
		report, err := analytics.BuildForecast(records, 1, ts)
		if err != nil {
			t.Fatal(err)
		}
		return report
	}

	if got := build(2).Forecast[0].ConfidenceLevel; got != "Low" {
		t.Fatalf("2 records confidence = %q", got)
	}
	if got := build(4).Forecast[0].ConfidenceLevel; got != "Medium" {
		t.Fatalf("4 records confidence = %q", got)
	}
	if got := build(8).Forecast[0].ConfidenceLevel; got != "High" {
		t.Fatalf("8 records confidence = %q", got)
	}
}

func TestBuildForecastDefaultHorizon(t *testing.T) {
	ts := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	records := []models.SalesRecord{
		forecastRecord(1, 10, 0, ts),
		forecastRecord(2, 20, 0, ts.Add(time.Hour)),
	}

	report, err := analytics.BuildForecast(records, 0, ts)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Forecast) != 4 {
		t.Fatalf("default horizon = %d points", len(report.Forecast))
	}
}
