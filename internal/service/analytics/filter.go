package analytics

import "github.com/ricewise/ricewise/internal/domain/models"

// Filter selects records by reporting period. Zero fields mean "not
// requested"; Strict disables the hierarchical fallback.
type Filter struct {
	Year   int
	Month  int
	Week   int
	Strict bool
}

// FilterByTime narrows records to the requested period with optional
// hierarchical fallback. Preference order for specificity is weekly > monthly
// > yearly: a caller asking for week 3 of March with no weekly data entered
// still sees the monthly or yearly summary rather than an empty chart.
func FilterByTime(records []models.SalesRecord, f Filter) []models.SalesRecord {
	if len(records) == 0 {
		return records
	}

	byYear := records
	if f.Year != 0 {
		byYear = keep(records, func(r models.SalesRecord) bool { return r.Year == f.Year })
	}

	strict := byYear
	if f.Month != 0 {
		month := f.Month
		strict = keep(strict, func(r models.SalesRecord) bool { return r.Month == month })
	}
	if f.Week != 0 {
		week := f.Week
		strict = keep(strict, func(r models.SalesRecord) bool {
			if r.Week == week {
				return true
			}
			return r.Day > 0 && models.WeekFromDay(r.Day) == week
		})
	}

	if f.Strict {
		return strict
	}
	if len(strict) > 0 {
		return strict
	}

	// The strict match came up empty: substitute coarser records,
	// most-specific-first.
	if f.Week != 0 {
		if f.Month != 0 {
			monthly := keep(byYear, func(r models.SalesRecord) bool {
				return r.Month == f.Month && r.Granularity == models.GranularityMonthly
			})
			if len(monthly) > 0 {
				return monthly
			}
		}
		if f.Year != 0 {
			if yearly := yearlyOnly(byYear); len(yearly) > 0 {
				return yearly
			}
		}
	}
	if f.Month != 0 && f.Year != 0 {
		if yearly := yearlyOnly(byYear); len(yearly) > 0 {
			return yearly
		}
	}

	return byYear
}

func yearlyOnly(records []models.SalesRecord) []models.SalesRecord {
	return keep(records, func(r models.SalesRecord) bool { return r.Granularity == models.GranularityYearly })
}

func keep(records []models.SalesRecord, pred func(models.SalesRecord) bool) []models.SalesRecord {
	out := make([]models.SalesRecord, 0, len(records))
	for _, r := range records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}
