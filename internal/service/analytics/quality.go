package analytics

import (
	"fmt"
	"strings"

	"github.com/ricewise/ricewise/internal/domain/models"
)

// ValidateQuality scores record completeness over the five required inputs and
// reports per-record issues under the stored field names.
func ValidateQuality(records []models.SalesRecord) models.DataQualityReport {
	report := models.DataQualityReport{
		TotalRecords: len(records),
		Issues:       []string{},
	}

	for _, r := range records {
		missing := missingFields(r)
		if len(missing) == 0 {
			report.CompleteRecords++
			continue
		}
		report.IncompleteRecords++
		id := r.ID
		if id == "" {
			id = "unknown"
		}
		report.Issues = append(report.Issues, fmt.Sprintf("Record %s missing: %s", id, strings.Join(missing, ", ")))
	}

	if report.TotalRecords > 0 {
		report.DataQualityScore = float64(report.CompleteRecords) / float64(report.TotalRecords) * 100
	}
	return report
}

// missingFields flags required inputs without a usable value. Quantities
// decode to zero when a migrated document lacks the field, so price and
// population treat non-positive values as absent; sold and unsold legitimately
// record zero and are only flagged when negative.
func missingFields(r models.SalesRecord) []string {
	var missing []string
	if strings.TrimSpace(r.PeriodKey) == "" {
		missing = append(missing, "week_date")
	}
	if r.RiceSold < 0 {
		missing = append(missing, "rice_sold")
	}
	if r.RiceUnsold < 0 {
		missing = append(missing, "rice_unsold")
	}
	if r.PricePerKg <= 0 {
		missing = append(missing, "price_per_kg")
	}
	if r.Population <= 0 {
		missing = append(missing, "population")
	}
	return missing
}
