package models_test

import (
	"testing"
	"time"

	"github.com/ricewise/ricewise/internal/domain/models"
)

func TestWeeksInMonth(t *testing.T) {
	cases := []struct {
		year, month, want int
	}{
		{2023, 2, 4},  // 28 days
		{2024, 2, 5},  // leap year, 29 days
		{2024, 4, 5},  // 30 days
		{2024, 1, 5},  // 31 days
		{2025, 12, 5}, // 31 days
	}
	for _, c := range cases {
		if got := models.WeeksInMonth(c.year, c.month); got != c.want {
			t.Fatalf("WeeksInMonth(%d, %d) = %d, want %d", c.year, c.month, got, c.want)
		}
	}

	// Stable regardless of which day within the month is being reported.
	for m := 1; m <= 12; m++ {
		got := models.WeeksInMonth(2024, m)
		if got != 4 && got != 5 {
			t.Fatalf("WeeksInMonth(2024, %d) = %d, want 4 or 5", m, got)
		}
	}
}

func TestWeekFromDay(t *testing.T) {
	cases := map[int]int{1: 1, 7: 1, 8: 2, 14: 2, 15: 3, 28: 4, 29: 5, 31: 5}
	for day, want := range cases {
		if got := models.WeekFromDay(day); got != want {
			t.Fatalf("WeekFromDay(%d) = %d, want %d", day, got, want)
		}
	}
}

func TestResolvePeriodGranularities(t *testing.T) {
	p, err := models.ResolvePeriod(2024, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if p.Granularity != models.GranularityYearly || p.Key != "2024" {
		t.Fatalf("yearly: got %+v", p)
	}

	p, err = models.ResolvePeriod(2024, 3, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if p.Granularity != models.GranularityMonthly || p.Key != "2024-03" {
		t.Fatalf("monthly: got %+v", p)
	}

	p, err = models.ResolvePeriod(2024, 3, 2, 0)
	if err != nil {
		t.Fatal(err)
	}
	if p.Granularity != models.GranularityWeekly || p.Key != "2024-03-W02" {
		t.Fatalf("weekly: got %+v", p)
	}

	p, err = models.ResolvePeriod(2024, 3, 2, 10)
	if err != nil {
		t.Fatal(err)
	}
	if p.Granularity != models.GranularityDaily || p.Key != "2024-03-10" {
		t.Fatalf("daily: got %+v", p)
	}
}

func TestResolvePeriodClamping(t *testing.T) {
	// Week 9 does not exist in any month; it clamps to the month's last week.
	p, err := models.ResolvePeriod(2024, 3, 9, 0)
	if err != nil {
		t.Fatal(err)
	}
	if p.Week != 5 {
		t.Fatalf("week clamp: got %d, want 5", p.Week)
	}

	// February 2023 has 4 weeks only.
	p, err = models.ResolvePeriod(2023, 2, 5, 0)
	if err != nil {
		t.Fatal(err)
	}
	if p.Week != 4 {
		t.Fatalf("week clamp feb: got %d, want 4", p.Week)
	}

	// Day 3 lies outside week 2 (days 8-14); it clamps to the week start.
	p, err = models.ResolvePeriod(2024, 3, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if p.Day != 8 {
		t.Fatalf("day clamp low: got %d, want 8", p.Day)
	}

	// Day 31 in week 5 of a 30-day month clamps to the last day.
	p, err = models.ResolvePeriod(2024, 4, 5, 31)
	if err != nil {
		t.Fatal(err)
	}
	if p.Day != 30 {
		t.Fatalf("day clamp high: got %d, want 30", p.Day)
	}
}

func TestResolvePeriodInvalid(t *testing.T) {
	if _, err := models.ResolvePeriod(0, 0, 0, 0); err == nil {
		t.Fatal("expected error for missing year")
	}
	if _, err := models.ResolvePeriod(2024, 13, 0, 0); err == nil {
		t.Fatal("expected error for month 13")
	}
}

func TestResolveDateFallbackChain(t *testing.T) {
	daily := models.SalesRecord{Year: 2024, Month: 3, Week: 2, Day: 10}
	d, ok := models.ResolveDate(daily)
	if !ok || !d.Equal(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("daily: got %v %v", d, ok)
	}

	weekly := models.SalesRecord{Year: 2024, Month: 3, Week: 3}
	d, ok = models.ResolveDate(weekly)
	if !ok || d.Day() != 15 {
		t.Fatalf("weekly: got %v %v", d, ok)
	}

	monthly := models.SalesRecord{Year: 2024, Month: 3}
	d, ok = models.ResolveDate(monthly)
	if !ok || d.Day() != 1 || d.Month() != time.March {
		t.Fatalf("monthly: got %v %v", d, ok)
	}

	yearly := models.SalesRecord{Year: 2024}
	d, ok = models.ResolveDate(yearly)
	if !ok || d.Month() != time.January || d.Day() != 1 {
		t.Fatalf("yearly: got %v %v", d, ok)
	}

	// Key-only records fall back to parsing the canonical key.
	keyed := models.SalesRecord{PeriodKey: "2024-03-W02"}
	d, ok = models.ResolveDate(keyed)
	if !ok || !d.Equal(time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("weekly key: got %v %v", d, ok)
	}

	if _, ok := models.ResolveDate(models.SalesRecord{PeriodKey: "garbage"}); ok {
		t.Fatal("expected no date for unparseable key")
	}
}

func TestMonthOf(t *testing.T) {
	if m := models.MonthOf(models.SalesRecord{Month: 7}); m != 7 {
		t.Fatalf("numeric month: got %d", m)
	}
	if m := models.MonthOf(models.SalesRecord{PeriodKey: "2024-05"}); m != 5 {
		t.Fatalf("monthly key: got %d", m)
	}
	if m := models.MonthOf(models.SalesRecord{PeriodKey: "2024-09-W03"}); m != 9 {
		t.Fatalf("weekly key: got %d", m)
	}
	if m := models.MonthOf(models.SalesRecord{PeriodKey: "2024"}); m != 0 {
		t.Fatalf("yearly key: got %d", m)
	}
}
