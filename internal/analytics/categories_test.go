package analytics

import (
	"testing"

	"example.com/finance-tracker/backend/internal/models"
)

// TestCategoryDistribution checks grouping, shares and ordering.
func TestCategoryDistribution(t *testing.T) {
	expenses := []models.Expense{
		{Amount: 100, Category: "Food"},
		{Amount: 300, Category: "Food"},
		{Amount: 200, Category: "Travel"},
	}

	got := CategoryDistribution(expenses)

	if len(got) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(got))
	}
	if got[0].Category != "Food" || got[0].Amount != 400 {
		t.Fatalf("expected Food=400 first, got %+v", got[0])
	}
	if got[0].Percentage != 66.7 {
		t.Fatalf("expected 66.7, got %v", got[0].Percentage)
	}
	if got[1].Category != "Travel" || got[1].Percentage != 33.3 {
		t.Fatalf("expected Travel=33.3, got %+v", got[1])
	}
}

// TestCategoryDistributionTieOrder checks categories with equal totals come
// back in name order on every run.
func TestCategoryDistributionTieOrder(t *testing.T) {
	expenses := []models.Expense{
		{Amount: 200, Category: "Travel"},
		{Amount: 200, Category: "Food"},
		{Amount: 200, Category: "Rent"},
	}

	for i := 0; i < 10; i++ {
		got := CategoryDistribution(expenses)
		if len(got) != 3 {
			t.Fatalf("expected 3 categories, got %d", len(got))
		}
		if got[0].Category != "Food" || got[1].Category != "Rent" || got[2].Category != "Travel" {
			t.Fatalf("unexpected tie order: %s, %s, %s", got[0].Category, got[1].Category, got[2].Category)
		}
	}
}

// TestCategoryDistributionDefaultsCategory checks blank categories map to Other.
func TestCategoryDistributionDefaultsCategory(t *testing.T) {
	got := CategoryDistribution([]models.Expense{{Amount: 50}})

	if len(got) != 1 || got[0].Category != models.DefaultCategory {
		t.Fatalf("expected Other bucket, got %+v", got)
	}
}

// TestCategoryDistributionEmpty checks empty input yields an empty slice.
func TestCategoryDistributionEmpty(t *testing.T) {
	if got := CategoryDistribution(nil); len(got) != 0 {
		t.Fatalf("expected empty distribution, got %+v", got)
	}
}

// TestCategoryIconFallback checks the lookup falls back to a default icon.
func TestCategoryIconFallback(t *testing.T) {
	if got := CategoryIcon("Food"); got != "🍽️" {
		t.Fatalf("unexpected icon: %s", got)
	}

	if got := CategoryIcon("Cryptozoology"); got != defaultCategoryIcon {
		t.Fatalf("expected default icon, got %s", got)
	}
}

// TestCategoryInsights checks counts, averages and frequency shares.
func TestCategoryInsights(t *testing.T) {
	expenses := []models.Expense{
		{Amount: 100, Category: "Food"},
		{Amount: 300, Category: "Food"},
		{Amount: 200, Category: "Travel"},
		{Amount: 100, Category: "Travel"},
	}

	got := CategoryInsights(expenses)

	if len(got) != 2 {
		t.Fatalf("expected 2 insights, got %d", len(got))
	}
	food := got[0]
	if food.Category != "Food" || food.Count != 2 || food.Average != 200 {
		t.Fatalf("unexpected food insight: %+v", food)
	}
	if food.Frequency != 50 {
		t.Fatalf("expected frequency 50, got %v", food.Frequency)
	}
}
