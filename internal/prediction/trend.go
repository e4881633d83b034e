package prediction

import (
	"math"
	"strconv"

	"alcyxob/fitness-planner/internal/domain"
)

// Trend classifies the direction of a weight series.
type Trend string

const (
	TrendStable           Trend = "stable"
	TrendIncreasing       Trend = "increasing"
	TrendDecreasing       Trend = "decreasing"
	TrendInsufficientData Trend = "insufficient_data"
)

// DefaultMinTrendPoints is the smallest history a trend is fitted to.
const DefaultMinTrendPoints = 3

// stableThresholdKg is the weekly change below which weight counts as stable.
const stableThresholdKg = 0.1

// ForecastHorizons are the forecast distances in days.
var ForecastHorizons = []int{7, 14, 30}

// TrendForecast is the weight trend and its linear extrapolation.
type TrendForecast struct {
	Trend           Trend              `json:"trend"`
	WeeklyChangeKg  float64            `json:"weekly_change"`
	Predictions     map[string]float64 `json:"predictions"`
	ConfidencePct   float64            `json:"confidence"`
	CurrentWeightKg *float64           `json:"current_weight,omitempty"`
}

// HasTrend reports whether enough data was available to fit a trend.
func (f TrendForecast) HasTrend() bool {
	return f.Trend != TrendInsufficientData
}

// TrendAnalyzer fits a two-point trend over a weight history.
type TrendAnalyzer struct {
	// MinPoints is the smallest history analysed; shorter histories report
	// insufficient data. Zero means DefaultMinTrendPoints.
	MinPoints int
}

// NewTrendAnalyzer returns an analyzer with the default minimum history.
func NewTrendAnalyzer() *TrendAnalyzer {
	return &TrendAnalyzer{MinPoints: DefaultMinTrendPoints}
}

func (a *TrendAnalyzer) minPoints() int {
	if a == nil || a.MinPoints <= 0 {
		return DefaultMinTrendPoints
	}
	return a.MinPoints
}

// Analyze sorts the history by date and extrapolates the change between its
// first and last entries. Confidence drops with the scatter of every
// observed weight, not only the endpoints.
func (a *TrendAnalyzer) Analyze(history []domain.WeightEntry) TrendForecast {
	if len(history) < a.minPoints() || len(history) == 0 {
		return TrendForecast{
			Trend:       TrendInsufficientData,
			Predictions: map[string]float64{},
		}
	}

	sorted := sortedWeights(history)
	weights := weightValues(sorted)
	first, last := sorted[0], sorted[len(sorted)-1]

	var dailyChange float64
	if span := daysBetween(first.Date, last.Date); span > 0 {
		dailyChange = (last.WeightKg - first.WeightKg) / float64(span)
	}
	weeklyChange := dailyChange * 7

	trend := TrendIncreasing
	switch {
	case math.Abs(weeklyChange) < stableThresholdKg:
		trend = TrendStable
	case weeklyChange < 0:
		trend = TrendDecreasing
	}

	current := last.WeightKg
	predictions := make(map[string]float64, len(ForecastHorizons))
	for _, h := range ForecastHorizons {
		predictions[HorizonKey(h)] = round(current+dailyChange*float64(h), 1)
	}

	confidence := clamp(100-populationVariance(weights)*10, 0, 100)

	return TrendForecast{
		Trend:           trend,
		WeeklyChangeKg:  round(weeklyChange, 2),
		Predictions:     predictions,
		ConfidencePct:   round(confidence, 1),
		CurrentWeightKg: &current,
	}
}

// HorizonKey is the predictions map key for a horizon, e.g. "7_days".
func HorizonKey(days int) string {
	return strconv.Itoa(days) + "_days"
}
