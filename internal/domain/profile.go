package domain

import "strings"

// Gender selects the Mifflin-St Jeor constant. Anything other than GenderMale
// uses the female formula.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// ActivityLevel scales BMR into TDEE.
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
	ActivityExtremelyActive  ActivityLevel = "extremely_active"
)

// HealthGoal drives calorie deltas, macro splits and exercise selection.
type HealthGoal string

const (
	GoalWeightLoss     HealthGoal = "weight_loss"
	GoalMaintenance    HealthGoal = "maintenance"
	GoalMuscleGain     HealthGoal = "muscle_gain"
	GoalEndurance      HealthGoal = "endurance"
	GoalAggressiveLoss HealthGoal = "aggressive_loss" // only known to the adaptive calorie model
)

// Normalize lower-cases and trims the raw value so table lookups are
// case-insensitive. Unknown values survive and hit the table defaults.
func (g Gender) Normalize() Gender               { return Gender(normalizeKey(string(g))) }
func (a ActivityLevel) Normalize() ActivityLevel { return ActivityLevel(normalizeKey(string(a))) }
func (h HealthGoal) Normalize() HealthGoal       { return HealthGoal(normalizeKey(string(h))) }

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// UserProfile is the input to every plan and prediction call.
type UserProfile struct {
	Age               int           `bson:"age" json:"age"`
	Gender            Gender        `bson:"gender" json:"gender"`
	HeightCm          float64       `bson:"heightCm" json:"height"`
	WeightKg          float64       `bson:"weightKg" json:"weight"`
	ActivityLevel     ActivityLevel `bson:"activityLevel" json:"activity_level"`
	HealthGoal        HealthGoal    `bson:"healthGoal" json:"health_goal"`
	FoodPreferences   string        `bson:"foodPreferences" json:"food_preferences"`
	Allergies         []string      `bson:"allergies,omitempty" json:"allergies,omitempty"`
	MedicalConditions string        `bson:"medicalConditions,omitempty" json:"medical_conditions,omitempty"` // informational only
}

// DietaryPreferences is what the planner understands of the free-text
// food preference field.
type DietaryPreferences struct {
	Vegetarian bool
	Vegan      bool
	LowCarb    bool
}

// Preferences scans FoodPreferences for the keywords the planner reacts to.
func (p UserProfile) Preferences() DietaryPreferences {
	text := strings.ToLower(p.FoodPreferences)
	vegan := strings.Contains(text, "vegan")
	return DietaryPreferences{
		Vegetarian: vegan || strings.Contains(text, "vegetarian") || strings.Contains(text, "plant-based"),
		Vegan:      vegan,
		LowCarb: strings.Contains(text, "low-carb") || strings.Contains(text, "low carb") ||
			strings.Contains(text, "keto"),
	}
}

// ParseAllergies splits a comma separated allergy string into trimmed,
// non-empty tokens.
func ParseAllergies(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if token := strings.TrimSpace(part); token != "" {
			out = append(out, token)
		}
	}
	return out
}

// MacroTarget holds daily (or per-meal) macro grams.
type MacroTarget struct {
	ProteinG int `bson:"proteinG" json:"protein_g"`
	CarbG    int `bson:"carbG" json:"carb_g"`
	FatG     int `bson:"fatG" json:"fat_g"`
}

// Calories is the energy the macro grams account for (4/4/9 kcal per gram).
func (m MacroTarget) Calories() int {
	return m.ProteinG*4 + m.CarbG*4 + m.FatG*9
}
