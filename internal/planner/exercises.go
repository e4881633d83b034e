package planner

import (
	"strings"

	"alcyxob/fitness-planner/internal/domain"
)

const (
	WarmUp   = "Warm-up: 5-10 minutes light cardio and stretching"
	CoolDown = "Cool-down: 5-10 minutes stretching"
)

type exerciseRoutine struct {
	cardio   []string
	strength []string
	balanced []string
}

var exerciseLibrary = map[domain.HealthGoal]exerciseRoutine{
	domain.GoalWeightLoss: {
		cardio: []string{
			"30-40 minutes brisk walking or jogging",
			"20-30 minutes cycling (moderate to high intensity)",
			"15-20 minutes HIIT (High-Intensity Interval Training)",
			"30 minutes swimming",
			"20 minutes jump rope intervals",
		},
		strength: []string{
			"Bodyweight squats: 3 sets of 15-20 reps",
			"Push-ups: 3 sets of 10-15 reps",
			"Lunges: 3 sets of 12 reps per leg",
			"Plank: 3 sets of 45-60 seconds",
			"Mountain climbers: 3 sets of 20 reps",
		},
	},
	domain.GoalMuscleGain: {
		strength: []string{
			"Barbell squats: 4 sets of 8-10 reps (heavy weight)",
			"Bench press: 4 sets of 8-10 reps",
			"Deadlifts: 4 sets of 6-8 reps",
			"Pull-ups or lat pulldowns: 4 sets of 8-12 reps",
			"Overhead press: 3 sets of 8-10 reps",
			"Barbell rows: 4 sets of 8-10 reps",
			"Bicep curls: 3 sets of 10-12 reps",
			"Tricep dips: 3 sets of 10-12 reps",
		},
		cardio: []string{
			"10-15 minutes light cardio warm-up",
			"Optional: 20 minutes low-intensity cardio on rest days",
		},
	},
	domain.GoalMaintenance: {
		balanced: []string{
			"20-30 minutes moderate cardio (jogging, cycling)",
			"Full body workout: squats, push-ups, rows (3 sets of 12)",
			"Core exercises: planks, crunches (3 sets)",
			"Stretching or yoga: 10-15 minutes",
		},
	},
	domain.GoalEndurance: {
		cardio: []string{
			"45-60 minutes steady-state running",
			"30-40 minutes cycling (moderate intensity)",
			"30 minutes swimming",
			"Interval training: 5x (3 min hard, 2 min easy)",
		},
		strength: []string{
			"Light resistance training: 3 sets of 15 reps",
			"Core strengthening: planks, leg raises",
			"Flexibility work: 15 minutes stretching",
		},
	},
}

// SelectExercises returns the day's routine for a goal, wrapped in the
// warm-up and cool-down lines. Goals are matched by keyword so free-form
// values like "fat_loss" still land on a routine.
func SelectExercises(goal domain.HealthGoal) []string {
	g := string(goal.Normalize())

	var body []string
	switch {
	case strings.Contains(g, "loss"):
		r := exerciseLibrary[domain.GoalWeightLoss]
		body = concat(r.cardio[:3], r.strength[:2])
	case strings.Contains(g, "muscle") || strings.Contains(g, "gain"):
		r := exerciseLibrary[domain.GoalMuscleGain]
		body = concat(r.strength[:5], r.cardio[:1])
	case strings.Contains(g, "endurance"):
		r := exerciseLibrary[domain.GoalEndurance]
		body = concat(r.cardio[:3], r.strength[:2])
	default:
		body = exerciseLibrary[domain.GoalMaintenance].balanced
	}

	out := make([]string, 0, len(body)+2)
	out = append(out, WarmUp)
	out = append(out, body...)
	return append(out, CoolDown)
}

func concat(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
