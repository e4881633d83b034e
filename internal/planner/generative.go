package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/logger"

	"go.uber.org/zap"
)

// ErrInvalidPlan is returned when generated text is not a usable plan.
var ErrInvalidPlan = errors.New("generated plan is invalid")

// GenerativePlanner asks a text model for the plan and falls back to the
// canned plans when the model is unavailable or answers with garbage.
type GenerativePlanner struct {
	generator TextGenerator
}

// NewGenerativePlanner wraps a text generator as a PlanSource.
func NewGenerativePlanner(generator TextGenerator) *GenerativePlanner {
	return &GenerativePlanner{generator: generator}
}

// GeneratePlan returns the model's plan, or a canned plan when the model
// cannot deliver one. Errors other than unavailability and bad output are
// returned as is.
func (p *GenerativePlanner) GeneratePlan(ctx context.Context, profile domain.UserProfile, dailyCalories int, macros domain.MacroTarget) (*domain.DailyPlan, error) {
	text, err := p.generator.Generate(ctx, BuildPrompt(profile, dailyCalories, macros))
	if err != nil {
		if errors.Is(err, ErrGeneratorUnavailable) || isQuotaMessage(err.Error()) {
			logger.Warn("Plan generator unavailable, serving canned plan", zap.Error(err))
			return FallbackPlan(profile, dailyCalories), nil
		}
		return nil, fmt.Errorf("generating plan: %w", err)
	}

	plan, err := ParseGeneratedPlan(text)
	if err != nil {
		logger.Warn("Generated plan rejected, serving canned plan", zap.Error(err))
		return FallbackPlan(profile, dailyCalories), nil
	}
	return plan, nil
}

func isQuotaMessage(msg string) bool {
	msg = strings.ToLower(msg)
	return strings.Contains(msg, "quota") || strings.Contains(msg, "rate limit")
}

type generatedPlan struct {
	MealPlan    domain.MealPlan `json:"meal_plan"`
	Exercises   []string        `json:"exercises"`
	GroceryList []string        `json:"grocery_list"`
}

// ParseGeneratedPlan extracts the JSON object from model output and checks
// it has the plan shape.
func ParseGeneratedPlan(text string) (*domain.DailyPlan, error) {
	cleaned := cleanLLMResponse(text)
	if cleaned == "" {
		return nil, fmt.Errorf("%w: empty response", ErrInvalidPlan)
	}

	var gp generatedPlan
	if err := json.Unmarshal([]byte(cleaned), &gp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}
	if !gp.MealPlan.Complete() {
		return nil, fmt.Errorf("%w: meal_plan is missing a slot", ErrInvalidPlan)
	}
	if len(gp.Exercises) == 0 {
		return nil, fmt.Errorf("%w: no exercises", ErrInvalidPlan)
	}
	if len(gp.GroceryList) == 0 {
		return nil, fmt.Errorf("%w: empty grocery list", ErrInvalidPlan)
	}

	return &domain.DailyPlan{
		MealPlan:    gp.MealPlan,
		Exercises:   gp.Exercises,
		GroceryList: gp.GroceryList,
		Source:      domain.SourceGenerative,
	}, nil
}

// cleanLLMResponse strips markdown fences and anything around the outermost
// JSON object.
func cleanLLMResponse(response string) string {
	response = strings.TrimSpace(response)
	response = strings.TrimPrefix(response, "```json")
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")
	response = strings.TrimSpace(response)

	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return response[start : end+1]
}

// BuildPrompt renders the planning request for the text model.
func BuildPrompt(profile domain.UserProfile, dailyCalories int, macros domain.MacroTarget) string {
	allergies := "None"
	if len(profile.Allergies) > 0 {
		allergies = strings.Join(profile.Allergies, ", ")
	}
	conditions := profile.MedicalConditions
	if conditions == "" {
		conditions = "None"
	}

	var sb strings.Builder
	sb.WriteString("You are a professional nutritionist and fitness coach. Generate a detailed 1-day personalized diet and exercise plan.\n\n")

	sb.WriteString("USER PROFILE:\n")
	fmt.Fprintf(&sb, "- Age: %d years old\n", profile.Age)
	fmt.Fprintf(&sb, "- Gender: %s\n", profile.Gender)
	fmt.Fprintf(&sb, "- Height: %.1f cm\n", profile.HeightCm)
	fmt.Fprintf(&sb, "- Weight: %.1f kg\n", profile.WeightKg)
	fmt.Fprintf(&sb, "- Activity Level: %s\n", profile.ActivityLevel)
	fmt.Fprintf(&sb, "- Health Goal: %s\n", profile.HealthGoal)
	fmt.Fprintf(&sb, "- Food Preferences: %s\n", profile.FoodPreferences)
	fmt.Fprintf(&sb, "- Allergies: %s\n", allergies)
	fmt.Fprintf(&sb, "- Medical Conditions: %s\n\n", conditions)

	sb.WriteString("NUTRITIONAL TARGETS:\n")
	fmt.Fprintf(&sb, "- Daily Calories: %d kcal\n", dailyCalories)
	fmt.Fprintf(&sb, "- Protein: %dg\n", macros.ProteinG)
	fmt.Fprintf(&sb, "- Carbs: %dg\n", macros.CarbG)
	fmt.Fprintf(&sb, "- Fats: %dg\n\n", macros.FatG)

	sb.WriteString("Return ONLY valid JSON, no additional text, with this structure:\n")
	sb.WriteString(`{
  "meal_plan": {
    "breakfast": "Detailed breakfast meal with portions and approximate calories",
    "lunch": "Detailed lunch meal with portions and approximate calories",
    "dinner": "Detailed dinner meal with portions and approximate calories",
    "snacks": "Healthy snack options with portions and approximate calories"
  },
  "exercises": ["Exercise with sets/reps/duration", "..."],
  "grocery_list": ["Ingredient", "..."]
}
`)
	sb.WriteString("\nRespect food preferences and allergies, consider medical conditions, ")
	sb.WriteString("match exercises to the activity level and goal, and keep meals aligned with the calorie and macro targets.\n")
	return sb.String()
}
