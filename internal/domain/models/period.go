package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Period is the canonical reporting period resolved from raw year/month/week/day
// input. Month, Week and Day are zero when the granularity does not carry them.
type Period struct {
	Granularity Granularity
	Key         string
	Year        int
	Month       int
	Week        int
	Day         int
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// WeeksInMonth returns the number of reporting weeks in a month: 5 when the
// month's last day falls on the 29th or later, otherwise 4. Progress figures
// depend on this exact rule, so it must not be swapped for ceil(days/7).
func WeeksInMonth(year, month int) int {
	if DaysInMonth(year, month) >= 29 {
		return 5
	}
	return 4
}

// WeekFromDay maps a day of month onto its reporting week index (1-based).
func WeekFromDay(day int) int {
	return (day-1)/7 + 1
}

// ResolvePeriod normalizes raw period input into a granularity and canonical
// key. Month, week and day are optional (zero means not provided); week is
// clamped into [1, WeeksInMonth] and day into the day range owned by the
// selected week.
func ResolvePeriod(year, month, week, day int) (Period, error) {
	if year <= 0 {
		return Period{}, fmt.Errorf("%w: year is required", ErrInvalidInput)
	}
	if month == 0 {
		return Period{Granularity: GranularityYearly, Key: strconv.Itoa(year), Year: year}, nil
	}
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	}
	if week == 0 {
		return Period{
			Granularity: GranularityMonthly,
			Key:         fmt.Sprintf("%d-%02d", year, month),
			Year:        year,
			Month:       month,
		}, nil
	}
	if week < 1 {
		week = 1
	}
	if max := WeeksInMonth(year, month); week > max {
		week = max
	}
	if day == 0 {
		return Period{
			Granularity: GranularityWeekly,
			Key:         fmt.Sprintf("%d-%02d-W%02d", year, month, week),
			Year:        year,
			Month:       month,
			Week:        week,
		}, nil
	}
	days := DaysInMonth(year, month)
	startDay := (week-1)*7 + 1
	endDay := week * 7
	if endDay > days {
		endDay = days
	}
	if day < startDay {
		day = startDay
	}
	if day > endDay {
		day = endDay
	}
	return Period{
		Granularity: GranularityDaily,
		Key:         fmt.Sprintf("%d-%02d-%02d", year, month, day),
		Year:        year,
		Month:       month,
		Week:        week,
		Day:         day,
	}, nil
}

// ResolveDate derives a best-effort calendar date for a record. Numeric period
// fields win; a weekly record maps to the first day of its week. When only the
// canonical key is usable it is parsed through an ordered fallback chain.
func ResolveDate(r SalesRecord) (time.Time, bool) {
	switch {
	case r.Year > 0 && r.Month > 0 && r.Day > 0:
		return time.Date(r.Year, time.Month(r.Month), r.Day, 0, 0, 0, 0, time.UTC), true
	case r.Year > 0 && r.Month > 0 && r.Week > 0:
		return time.Date(r.Year, time.Month(r.Month), weekStartDay(r.Year, r.Month, r.Week), 0, 0, 0, 0, time.UTC), true
	case r.Year > 0 && r.Month > 0:
		return time.Date(r.Year, time.Month(r.Month), 1, 0, 0, 0, 0, time.UTC), true
	case r.Year > 0:
		return time.Date(r.Year, time.January, 1, 0, 0, 0, 0, time.UTC), true
	}
	return parsePeriodKey(r.PeriodKey)
}

// MonthOf returns the calendar month a record reports on, or zero when it
// cannot be determined (yearly records).
func MonthOf(r SalesRecord) int {
	if r.Month >= 1 && r.Month <= 12 {
		return r.Month
	}
	for _, layout := range []string{"2006-01-02", "2006-01"} {
		if t, err := time.Parse(layout, r.PeriodKey); err == nil {
			return int(t.Month())
		}
	}
	if ym, _, ok := strings.Cut(r.PeriodKey, "-W"); ok {
		if _, m, ok := splitYearMonth(ym); ok {
			return m
		}
	}
	return 0
}

func parsePeriodKey(key string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", "2006-01", "2006"} {
		if t, err := time.Parse(layout, key); err == nil {
			return t, true
		}
	}
	if ym, wk, ok := strings.Cut(key, "-W"); ok {
		y, m, okYM := splitYearMonth(ym)
		w, err := strconv.Atoi(wk)
		if okYM && err == nil {
			return time.Date(y, time.Month(m), weekStartDay(y, m, w), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

func splitYearMonth(ym string) (year, month int, ok bool) {
	ys, ms, found := strings.Cut(ym, "-")
	if !found {
		return 0, 0, false
	}
	y, errY := strconv.Atoi(ys)
	m, errM := strconv.Atoi(ms)
	if errY != nil || errM != nil || m < 1 || m > 12 {
		return 0, 0, false
	}
	return y, m, true
}

func weekStartDay(year, month, week int) int {
	day := (week-1)*7 + 1
	if last := DaysInMonth(year, month); day > last {
		day = last
	}
	return day
}
