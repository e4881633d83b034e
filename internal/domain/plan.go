package domain

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MealSlot is one of the four meals of a day plan.
type MealSlot string

const (
	SlotBreakfast MealSlot = "breakfast"
	SlotLunch     MealSlot = "lunch"
	SlotDinner    MealSlot = "dinner"
	SlotSnacks    MealSlot = "snacks"
)

// MealSlots lists the slots in the order they are eaten.
var MealSlots = []MealSlot{SlotBreakfast, SlotLunch, SlotDinner, SlotSnacks}

// Plan sources recorded on DailyPlan.Source.
const (
	SourceAlgorithmic = "algorithmic"
	SourceGenerative  = "generative"
	SourceFallback    = "fallback"
)

// MealItem is one food of a composed meal.
type MealItem struct {
	Category FoodCategory `bson:"category" json:"category"`
	FoodID   string       `bson:"foodId" json:"food_id"`
	Name     string       `bson:"name" json:"name"`
	PortionG int          `bson:"portionG" json:"portion_g"`
}

// Meal is a composed meal for one slot.
type Meal struct {
	Slot        MealSlot   `bson:"slot" json:"slot"`
	Items       []MealItem `bson:"items" json:"items"`
	Calories    int        `bson:"calories" json:"calories"`
	Description string     `bson:"description" json:"description"`
}

// MealPlan carries the per-slot meal descriptions, the shape every plan
// source agrees on.
type MealPlan struct {
	Breakfast string `bson:"breakfast" json:"breakfast"`
	Lunch     string `bson:"lunch" json:"lunch"`
	Dinner    string `bson:"dinner" json:"dinner"`
	Snacks    string `bson:"snacks" json:"snacks"`
}

// Set stores a description under the given slot.
func (m *MealPlan) Set(slot MealSlot, description string) {
	switch slot {
	case SlotBreakfast:
		m.Breakfast = description
	case SlotLunch:
		m.Lunch = description
	case SlotDinner:
		m.Dinner = description
	case SlotSnacks:
		m.Snacks = description
	}
}

// Get returns the description for a slot.
func (m MealPlan) Get(slot MealSlot) string {
	switch slot {
	case SlotBreakfast:
		return m.Breakfast
	case SlotLunch:
		return m.Lunch
	case SlotDinner:
		return m.Dinner
	case SlotSnacks:
		return m.Snacks
	}
	return ""
}

// Complete reports whether every slot has a non-blank description.
func (m MealPlan) Complete() bool {
	for _, slot := range MealSlots {
		if strings.TrimSpace(m.Get(slot)) == "" {
			return false
		}
	}
	return true
}

// DailyPlan is the output of a plan source. Meals is only populated by the
// algorithmic planner.
type DailyPlan struct {
	MealPlan    MealPlan `bson:"mealPlan" json:"meal_plan"`
	Meals       []Meal   `bson:"meals,omitempty" json:"meals,omitempty"`
	Exercises   []string `bson:"exercises" json:"exercises"`
	GroceryList []string `bson:"groceryList" json:"grocery_list"`
	Source      string   `bson:"source" json:"source"`
}

// Plan is a stored plan together with the targets it was generated for.
type Plan struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	BMR           float64            `bson:"bmr" json:"bmr"`
	DailyCalories int                `bson:"dailyCalories" json:"daily_calories"`
	Macros        MacroTarget        `bson:"macros" json:"macros"`
	Plan          DailyPlan          `bson:"plan" json:"plan"`
	ExportKey     string             `bson:"exportKey,omitempty" json:"exportKey,omitempty"` // S3 object key of the last export
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
