package models

// AnalyticsSummary aggregates the filtered record set for the dashboard view.
type AnalyticsSummary struct {
	TotalEntries    int           `json:"total_entries"`
	TotalSold       float64       `json:"total_sold"`
	TotalRevenue    float64       `json:"total_revenue"`
	TotalWaste      float64       `json:"total_waste"`
	AvgPrice        float64       `json:"avg_price"`
	EfficiencyScore string        `json:"efficiency_score"`
	WastePercentage float64       `json:"waste_percentage"`
	ChartData       []ChartBucket `json:"chart_data"`
}

// ChartBucket is one aggregated chart point, keyed by period label.
type ChartBucket struct {
	Period          string  `json:"week"`
	Sold            float64 `json:"sold"`
	Unsold          float64 `json:"unsold"`
	Revenue         float64 `json:"revenue"`
	Price           float64 `json:"price"`
	WastePercentage float64 `json:"waste_percentage"`
}

// TrendReport holds per-metric regression slopes, moving averages and
// seasonality views over the filtered records.
type TrendReport struct {
	SalesTrend          float64            `json:"sales_trend"`
	UnsoldTrend         float64            `json:"unsold_trend"`
	WasteTrend          float64            `json:"waste_trend"`
	PriceTrend          float64            `json:"price_trend"`
	EfficiencyTrend     float64            `json:"efficiency_trend"`
	Labels              []string           `json:"labels"`
	SalesMovingAvg      []float64          `json:"sales_moving_avg"`
	WasteMovingAvg      []float64          `json:"waste_moving_avg"`
	WeekdayPatterns     map[string]float64 `json:"weekly_patterns"`
	WeekOfMonthPatterns map[string]float64 `json:"week_of_month_patterns,omitempty"`
}

// CorrelationReport holds pairwise Pearson coefficients plus qualitative
// interpretations keyed by pair name.
type CorrelationReport struct {
	PriceVsDemand       float64           `json:"price_vs_demand"`
	PopulationVsDemand  float64           `json:"population_vs_demand"`
	CompetitionVsDemand float64           `json:"competition_vs_demand"`
	PriceVsWaste        float64           `json:"price_vs_waste"`
	DemandVsWaste       float64           `json:"demand_vs_waste"`
	Interpretations     map[string]string `json:"interpretations"`
}

// MarketSegment summarizes one population band.
type MarketSegment struct {
	TotalSold          float64 `json:"total_sold"`
	TotalWaste         float64 `json:"total_waste"`
	AvgPrice           float64 `json:"avg_price"`
	AvgWastePercentage float64 `json:"avg_waste_percentage"`
	EfficiencyScore    string  `json:"efficiency_score"`
}

// DataQualityReport scores record completeness across the filtered set.
type DataQualityReport struct {
	TotalRecords      int      `json:"total_records"`
	CompleteRecords   int      `json:"complete_records"`
	IncompleteRecords int      `json:"incomplete_records"`
	DataQualityScore  float64  `json:"data_quality_score"`
	Issues            []string `json:"issues"`
}

// ForecastPoint is one projected week.
type ForecastPoint struct {
	Period                   string  `json:"week"`
	PredictedSold            float64 `json:"predicted_sold"`
	PredictedUnsold          float64 `json:"predicted_unsold"`
	PredictedWastePercentage float64 `json:"predicted_waste_percentage"`
	ConfidenceLevel          string  `json:"confidence_level"`
}

// ForecastReport bundles the projection with the trends it was derived from.
type ForecastReport struct {
	Forecast       []ForecastPoint `json:"forecast"`
	Trends         TrendReport     `json:"trends"`
	LastUpdated    string          `json:"last_updated"`
	ForecastMethod string          `json:"forecast_method"`
}

// MonthProgress describes data-entry completeness for one month.
type MonthProgress struct {
	Month        int    `json:"month"`
	Label        string `json:"label"`
	Complete     bool   `json:"complete"`
	Progress     int    `json:"progress"`
	WeeksPresent []int  `json:"weeks_present"`
	TotalWeeks   int    `json:"total_weeks"`
	Records      int    `json:"records"`
}

// YearProgress rolls month completeness up to the year level.
type YearProgress struct {
	Year         int             `json:"year"`
	YearProgress int             `json:"year_progress"`
	YearComplete bool            `json:"year_complete"`
	Months       []MonthProgress `json:"months"`
	HasYearEntry bool            `json:"has_year_entry"`
}

// Prediction is the response of the on-demand rice demand calculation.
type Prediction struct {
	PredictedDemand float64  `json:"predicted_demand"`
	FormulaUsed     string   `json:"formula_used"`
	Recommendations []string `json:"recommendations"`
}

// MarketDefaults carries the latest known market-analysis inputs so input
// forms can be pre-filled.
type MarketDefaults struct {
	Population      int     `json:"population"`
	AvgConsumption  float64 `json:"avg_consumption"`
	PurchasingPower float64 `json:"purchasing_power"`
	Competitors     int     `json:"competitors"`
	CustomerDemand  string  `json:"customer_demand"`
}
