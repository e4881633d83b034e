// Package export renders stored plans as spreadsheets.
package export

import (
	"alcyxob/fitness-planner/internal/domain"
	"bytes"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContentType is the MIME type of the generated workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Sheet names, in workbook order.
const (
	SheetSummary   = "Summary"
	SheetMeals     = "Meals"
	SheetExercises = "Exercises"
	SheetGroceries = "Groceries"
)

// ObjectKey returns a fresh storage key for an export of the user's plan.
func ObjectKey(userID primitive.ObjectID) string {
	return fmt.Sprintf("exports/%s/%s.xlsx", userID.Hex(), uuid.NewString())
}

// PlanWorkbook writes the plan targets, meals, exercises and grocery list
// into a workbook, one sheet each.
func PlanWorkbook(plan domain.Plan) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetSummary); err != nil {
		return nil, err
	}
	for _, name := range []string{SheetMeals, SheetExercises, SheetGroceries} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
	}

	summary := [][]interface{}{
		{"Created", plan.CreatedAt.UTC().Format("2006-01-02 15:04")},
		{"BMR", plan.BMR},
		{"Daily calories", plan.DailyCalories},
		{"Protein (g)", plan.Macros.ProteinG},
		{"Carbs (g)", plan.Macros.CarbG},
		{"Fat (g)", plan.Macros.FatG},
		{"Source", plan.Plan.Source},
	}
	if err := writeRows(f, SheetSummary, summary); err != nil {
		return nil, err
	}

	if err := writeRows(f, SheetMeals, mealRows(plan.Plan)); err != nil {
		return nil, err
	}

	exercises := [][]interface{}{{"#", "Exercise"}}
	for i, e := range plan.Plan.Exercises {
		exercises = append(exercises, []interface{}{i + 1, e})
	}
	if err := writeRows(f, SheetExercises, exercises); err != nil {
		return nil, err
	}

	groceries := [][]interface{}{{"Item"}}
	for _, g := range plan.Plan.GroceryList {
		groceries = append(groceries, []interface{}{g})
	}
	if err := writeRows(f, SheetGroceries, groceries); err != nil {
		return nil, err
	}

	return f.WriteToBuffer()
}

// mealRows prefers the composed meals, which carry calories and portions,
// and falls back to the slot descriptions of generated plans.
func mealRows(p domain.DailyPlan) [][]interface{} {
	rows := [][]interface{}{{"Meal", "Description", "Calories", "Items"}}
	if len(p.Meals) > 0 {
		for _, m := range p.Meals {
			items := make([]string, 0, len(m.Items))
			for _, it := range m.Items {
				items = append(items, fmt.Sprintf("%s %dg", it.Name, it.PortionG))
			}
			rows = append(rows, []interface{}{string(m.Slot), m.Description, m.Calories, strings.Join(items, "; ")})
		}
		return rows
	}
	for _, slot := range domain.MealSlots {
		rows = append(rows, []interface{}{string(slot), p.MealPlan.Get(slot)})
	}
	return rows
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
