package analytics_test

import (
	"testing"

	"github.com/ricewise/ricewise/internal/domain/models"
	"github.com/ricewise/ricewise/internal/service/analytics"
)

func TestComputeProgressYearlyEntry(t *testing.T) {
	progress := analytics.ComputeProgress([]models.SalesRecord{yearly(2024, 500)}, 2024)
	if !progress.YearComplete || progress.YearProgress != 100 || !progress.HasYearEntry {
		t.Fatalf("year rollup = %+v", progress)
	}
}

func TestComputeProgressMonthlyCoversWeeks(t *testing.T) {
	progress := analytics.ComputeProgress([]models.SalesRecord{monthly(2024, 3, 100)}, 2024)

	march := progress.Months[2]
	if !march.Complete || march.Progress != 100 {
		t.Fatalf("march = %+v", march)
	}
	if len(march.WeeksPresent) != march.TotalWeeks {
		t.Fatalf("weeks present = %v, total = %d", march.WeeksPresent, march.TotalWeeks)
	}
	if progress.Months[0].Complete {
		t.Fatalf("january should be incomplete: %+v", progress.Months[0])
	}
}

func TestComputeProgressWeeklyEntries(t *testing.T) {
	// February 2023 has four weeks.
	records := []models.SalesRecord{
		weekly(2023, 2, 1, 10),
		weekly(2023, 2, 2, 10),
		weekly(2023, 2, 3, 10),
		weekly(2023, 2, 4, 10),
	}
	progress := analytics.ComputeProgress(records, 2023)

	feb := progress.Months[1]
	if feb.TotalWeeks != 4 || !feb.Complete || feb.Progress != 100 {
		t.Fatalf("february = %+v", feb)
	}
	want := []int{1, 2, 3, 4}
	for i, w := range want {
		if feb.WeeksPresent[i] != w {
			t.Fatalf("weeks present = %v, want %v", feb.WeeksPresent, want)
		}
	}
}

func TestComputeProgressPartialMonth(t *testing.T) {
	records := []models.SalesRecord{
		weekly(2024, 3, 1, 10),
		weekly(2024, 3, 3, 10),
	}
	progress := analytics.ComputeProgress(records, 2024)

	march := progress.Months[2]
	if march.Complete {
		t.Fatalf("march should be incomplete: %+v", march)
	}
	// 2 of 5 weeks.
	if march.Progress != 40 {
		t.Fatalf("march progress = %d, want 40", march.Progress)
	}
}

func TestComputeProgressDiscardsOutOfRangeWeeks(t *testing.T) {
	// February 2023 only has four weeks; a stray week 5 entry is ignored.
	records := []models.SalesRecord{weekly(2023, 2, 5, 10)}
	progress := analytics.ComputeProgress(records, 2023)

	feb := progress.Months[1]
	if len(feb.WeeksPresent) != 0 || feb.Progress != 0 {
		t.Fatalf("february = %+v", feb)
	}
}

func TestComputeProgressDailyEntriesMapToWeeks(t *testing.T) {
	records := []models.SalesRecord{
		daily(2024, 3, 0, 1, 10),  // week 1
		daily(2024, 3, 0, 10, 10), // week 2
	}
	progress := analytics.ComputeProgress(records, 2024)

	march := progress.Months[2]
	if len(march.WeeksPresent) != 2 || march.WeeksPresent[0] != 1 || march.WeeksPresent[1] != 2 {
		t.Fatalf("weeks present = %v", march.WeeksPresent)
	}
}

func TestComputeProgressWrongYearIgnored(t *testing.T) {
	progress := analytics.ComputeProgress([]models.SalesRecord{monthly(2023, 3, 100)}, 2024)
	if progress.Months[2].Records != 0 {
		t.Fatalf("march should have no records: %+v", progress.Months[2])
	}
}
