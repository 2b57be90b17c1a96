package analytics

import (
	"testing"

	"example.com/finance-tracker/backend/internal/models"
)

// TestClassifyByField checks the record-field rule with its need default.
func TestClassifyByField(t *testing.T) {
	expenses := []models.Expense{
		{Amount: 100, NeedOrWant: models.NeedOrWantNeed},
		{Amount: 200, NeedOrWant: models.NeedOrWantWant},
		{Amount: 50, NeedOrWant: models.NeedOrWantUnsure},
		// Missing field counts as need.
		{Amount: 25},
	}

	got := ClassifyByField(expenses)

	if got.Need != 125 || got.Want != 200 || got.Unsure != 50 {
		t.Fatalf("unexpected split: %+v", got)
	}
}

// TestClassifyByCategoryKeyword checks the fixed keyword buckets.
func TestClassifyByCategoryKeyword(t *testing.T) {
	expenses := []models.Expense{
		{Amount: 100, Category: "Groceries"},
		{Amount: 80, Category: "RENT"},
		{Amount: 60, Category: "Entertainment"},
		{Amount: 40, Category: "Games"},
		{Amount: 20, Category: "Gifts"},
	}

	got := ClassifyByCategoryKeyword(expenses)

	if got.Need != 180 {
		t.Fatalf("unexpected need: %v", got.Need)
	}
	if got.Want != 100 {
		t.Fatalf("unexpected want: %v", got.Want)
	}
	if got.Unsure != 20 {
		t.Fatalf("unexpected unsure: %v", got.Unsure)
	}
}

// TestClassifiersDiverge checks the two rules really are different: a
// "want" record in a need category lands in different buckets.
func TestClassifiersDiverge(t *testing.T) {
	expenses := []models.Expense{
		{Amount: 100, Category: "Food", NeedOrWant: models.NeedOrWantWant},
	}

	byField := ClassifyByField(expenses)
	byKeyword := ClassifyByCategoryKeyword(expenses)

	if byField.Want != 100 {
		t.Fatalf("field rule should follow the record: %+v", byField)
	}
	if byKeyword.Need != 100 {
		t.Fatalf("keyword rule should follow the category: %+v", byKeyword)
	}
}
