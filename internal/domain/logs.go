package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WeightEntry is one weigh-in.
type WeightEntry struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID   primitive.ObjectID `bson:"userId" json:"-"`
	Date     time.Time          `bson:"date" json:"date"`
	WeightKg float64            `bson:"weightKg" json:"weight"`
	Notes    string             `bson:"notes,omitempty" json:"notes,omitempty"`
}

// CalorieEntry is one logged meal or snack.
type CalorieEntry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID      primitive.ObjectID `bson:"userId" json:"-"`
	Date        time.Time          `bson:"date" json:"date"`
	Calories    int                `bson:"calories" json:"calories"`
	MealType    string             `bson:"mealType" json:"meal_type"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
}

// ExerciseEntry is one completed session.
type ExerciseEntry struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID         primitive.ObjectID `bson:"userId" json:"-"`
	Date           time.Time          `bson:"date" json:"date"`
	Name           string             `bson:"name" json:"exercise_name"`
	DurationMin    int                `bson:"durationMin" json:"duration_minutes"`
	CaloriesBurned *int               `bson:"caloriesBurned,omitempty" json:"calories_burned,omitempty"`
}

// HydrationEntry holds the glasses of water (250 ml) drunk on one day.
// Date is truncated to the start of the day in UTC.
type HydrationEntry struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID  primitive.ObjectID `bson:"userId" json:"-"`
	Date    time.Time          `bson:"date" json:"date"`
	Glasses int                `bson:"glasses" json:"glasses"`
}

// UserLogs bundles every history the prediction engine reads.
type UserLogs struct {
	Weights   []WeightEntry
	Calories  []CalorieEntry
	Exercises []ExerciseEntry
	Hydration []HydrationEntry
}

// DayStart truncates t to midnight UTC.
func DayStart(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
