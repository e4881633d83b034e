package prediction

import (
	"math"
	"sort"
	"time"

	"alcyxob/fitness-planner/internal/domain"

	"github.com/montanaflynn/stats"
)

// populationVariance returns 0 for empty input.
func populationVariance(values []float64) float64 {
	v, err := stats.PopulationVariance(stats.Float64Data(values))
	if err != nil {
		return 0
	}
	return v
}

func mean(values []float64) float64 {
	m, err := stats.Mean(stats.Float64Data(values))
	if err != nil {
		return 0
	}
	return m
}

func round(v float64, decimals int) float64 {
	r, err := stats.Round(v, decimals)
	if err != nil {
		return v
	}
	return r
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// sortedWeights returns a copy of entries ordered oldest first.
func sortedWeights(entries []domain.WeightEntry) []domain.WeightEntry {
	out := make([]domain.WeightEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func weightValues(entries []domain.WeightEntry) []float64 {
	out := make([]float64, len(entries))
	for i, e := range entries {
		out[i] = e.WeightKg
	}
	return out
}

// daysBetween counts calendar days from a to b.
func daysBetween(a, b time.Time) int {
	return int(domain.DayStart(b).Sub(domain.DayStart(a)).Hours() / 24)
}

// distinctDaysWithin counts the calendar days carrying at least one
// exercise in the window of `days` days ending on asOf.
func distinctDaysWithin(logs []domain.ExerciseEntry, asOf time.Time, days int) int {
	end := domain.DayStart(asOf)
	start := end.AddDate(0, 0, -(days - 1))
	seen := make(map[time.Time]struct{})
	for _, l := range logs {
		d := domain.DayStart(l.Date)
		if d.Before(start) || d.After(end) {
			continue
		}
		seen[d] = struct{}{}
	}
	return len(seen)
}
