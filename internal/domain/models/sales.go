package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Granularity is the coarseness of a reporting period.
type Granularity string

const (
	GranularityYearly  Granularity = "yearly"
	GranularityMonthly Granularity = "monthly"
	GranularityWeekly  Granularity = "weekly"
	GranularityDaily   Granularity = "daily"
)

// User roles recognized by the API surface.
const (
	RoleRetailer = "retailer"
	RoleConsumer = "consumer"
)

// SalesRecord is one rice-sales reporting entry. Exactly one period shape is
// populated, consistent with Granularity; Month, Week and Day are zero when
// the granularity does not carry them. The derived metrics are computed once
// at write time and never recomputed on read.
type SalesRecord struct {
	ID              string      `bson:"_id" json:"id"`
	UserID          string      `bson:"user_id" json:"-"`
	Timestamp       time.Time   `bson:"timestamp" json:"timestamp"`
	PeriodKey       string      `bson:"week_date" json:"week_date"`
	Granularity     Granularity `bson:"data_level" json:"data_level"`
	Year            int         `bson:"year" json:"year"`
	Month           int         `bson:"month,omitempty" json:"month,omitempty"`
	Week            int         `bson:"week,omitempty" json:"week,omitempty"`
	Day             int         `bson:"day,omitempty" json:"day,omitempty"`
	RiceSold        float64     `bson:"rice_sold" json:"rice_sold"`
	RiceUnsold      float64     `bson:"rice_unsold" json:"rice_unsold"`
	PricePerKg      float64     `bson:"price_per_kg" json:"price_per_kg"`
	Population      int         `bson:"population" json:"population"`
	AvgConsumption  float64     `bson:"avg_consumption" json:"avg_consumption"`
	PurchasingPower float64     `bson:"purchasing_power" json:"purchasing_power"`
	Competitors     int         `bson:"competitors" json:"competitors"`
	CustomerDemand  string      `bson:"customer_demand" json:"customer_demand"`
	PredictedDemand float64     `bson:"predicted_demand" json:"predicted_demand"`
	WastePercentage float64     `bson:"waste_percentage" json:"waste_percentage"`
	TotalRevenue    float64     `bson:"total_revenue" json:"total_revenue"`
}

// SalesInput carries the raw submission fields before period resolution.
// Month, Week and Day are optional; zero means not provided.
type SalesInput struct {
	Year            int     `json:"year"`
	Month           int     `json:"month"`
	Week            int     `json:"week"`
	Day             int     `json:"day"`
	RiceSold        float64 `json:"rice_sold"`
	RiceUnsold      float64 `json:"rice_unsold"`
	PricePerKg      float64 `json:"price_per_kg"`
	Population      int     `json:"population"`
	AvgConsumption  float64 `json:"avg_consumption"`
	PurchasingPower float64 `json:"purchasing_power"`
	Competitors     int     `json:"competitors"`
	CustomerDemand  string  `json:"customer_demand"`
}

// DemandFormula is the human-readable form of the rice demand model.
const DemandFormula = "(Population × Avg Consumption × Purchasing Power) ÷ (1 + Competitors)"

// PredictedDemand applies the rice demand model. A zero denominator yields 0
// rather than an error.
func PredictedDemand(population, avgConsumption, purchasingPower, competitors float64) float64 {
	denominator := 1 + competitors
	if denominator == 0 {
		return 0
	}
	return population * avgConsumption * purchasingPower / denominator
}

// ComputeWastePercentage returns unsold/(sold+unsold) as a percentage, 0 when
// nothing was recorded.
func ComputeWastePercentage(sold, unsold float64) float64 {
	total := sold + unsold
	if total <= 0 {
		return 0
	}
	return unsold / total * 100
}

// Round2 rounds to two decimal places through a decimal representation so
// values written to and read back from the database compare cleanly.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// NewSalesRecord validates a submission, resolves its reporting period and
// computes the stored derived metrics.
func NewSalesRecord(userID string, in SalesInput, now time.Time) (SalesRecord, error) {
	period, err := ResolvePeriod(in.Year, in.Month, in.Week, in.Day)
	if err != nil {
		return SalesRecord{}, err
	}
	if in.RiceSold < 0 || in.RiceUnsold < 0 {
		return SalesRecord{}, fmt.Errorf("%w: rice quantities must not be negative", ErrInvalidInput)
	}
	if in.PricePerKg < 0 {
		return SalesRecord{}, fmt.Errorf("%w: price per kg must not be negative", ErrInvalidInput)
	}
	if in.Population < 0 {
		return SalesRecord{}, fmt.Errorf("%w: population must not be negative", ErrInvalidInput)
	}
	if in.PurchasingPower < 0 || in.PurchasingPower > 1 {
		return SalesRecord{}, fmt.Errorf("%w: purchasing power must be between 0 and 1", ErrInvalidInput)
	}

	demand := PredictedDemand(float64(in.Population), in.AvgConsumption, in.PurchasingPower, float64(in.Competitors))

	return SalesRecord{
		ID:              uuid.NewString(),
		UserID:          userID,
		Timestamp:       now,
		PeriodKey:       period.Key,
		Granularity:     period.Granularity,
		Year:            period.Year,
		Month:           period.Month,
		Week:            period.Week,
		Day:             period.Day,
		RiceSold:        in.RiceSold,
		RiceUnsold:      in.RiceUnsold,
		PricePerKg:      in.PricePerKg,
		Population:      in.Population,
		AvgConsumption:  in.AvgConsumption,
		PurchasingPower: in.PurchasingPower,
		Competitors:     in.Competitors,
		CustomerDemand:  in.CustomerDemand,
		PredictedDemand: Round2(demand),
		WastePercentage: Round2(ComputeWastePercentage(in.RiceSold, in.RiceUnsold)),
		TotalRevenue:    Round2(in.RiceSold * in.PricePerKg),
	}, nil
}
