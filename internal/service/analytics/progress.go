package analytics

import (
	"math"
	"sort"

	"github.com/ricewise/ricewise/internal/domain/models"
)

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// ComputeProgress evaluates data-entry completeness for a year. A monthly
// record with no weekly or daily children counts as full weekly coverage for
// its month; a yearly record marks the whole year complete.
func ComputeProgress(records []models.SalesRecord, year int) models.YearProgress {
	yearEntries := keep(records, func(r models.SalesRecord) bool { return r.Year == year })

	hasYearEntry := false
	for _, r := range yearEntries {
		if r.Granularity == models.GranularityYearly {
			hasYearEntry = true
			break
		}
	}

	months := make([]models.MonthProgress, 0, 12)
	monthsComplete := 0
	weeksPresentYear := 0
	weeksTotalYear := 0
	for m := 1; m <= 12; m++ {
		month := m
		monthEntries := keep(yearEntries, func(r models.SalesRecord) bool { return r.Month == month })

		monthlyPresent := false
		present := map[int]bool{}
		for _, r := range monthEntries {
			if r.Granularity == models.GranularityMonthly {
				monthlyPresent = true
			}
			if r.Week > 0 {
				present[r.Week] = true
			} else if r.Day > 0 {
				present[models.WeekFromDay(r.Day)] = true
			}
		}

		totalWeeks := models.WeeksInMonth(year, month)
		valid := make([]int, 0, totalWeeks)
		for w := range present {
			if w >= 1 && w <= totalWeeks {
				valid = append(valid, w)
			}
		}
		// A monthly entry stands in for full weekly coverage only when no
		// weekly or daily entries exist; otherwise progress tracks exactly
		// the weeks reported.
		if monthlyPresent && len(present) == 0 {
			for w := 1; w <= totalWeeks; w++ {
				valid = append(valid, w)
			}
		}
		sort.Ints(valid)

		complete := len(valid) >= totalWeeks
		progress := int(math.Round(float64(len(valid)) / float64(totalWeeks) * 100))

		weeksTotalYear += totalWeeks
		weeksPresentYear += len(valid)
		if complete {
			monthsComplete++
		}

		months = append(months, models.MonthProgress{
			Month:        month,
			Label:        monthNames[month-1],
			Complete:     complete,
			Progress:     progress,
			WeeksPresent: valid,
			TotalWeeks:   totalWeeks,
			Records:      len(monthEntries),
		})
	}

	yearProgress := 0
	if hasYearEntry {
		yearProgress = 100
	} else if weeksTotalYear > 0 {
		yearProgress = int(math.Round(float64(weeksPresentYear) / float64(weeksTotalYear) * 100))
	}

	return models.YearProgress{
		Year:         year,
		YearProgress: yearProgress,
		YearComplete: hasYearEntry || monthsComplete == 12,
		Months:       months,
		HasYearEntry: hasYearEntry,
	}
}
