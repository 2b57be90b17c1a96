package budgeting

import (
	"testing"
	"time"

	"example.com/finance-tracker/backend/internal/models"
)

// TestRemainingNeverNegative checks remaining is floored at zero.
func TestRemainingNeverNegative(t *testing.T) {
	if got := Remaining(100, 250, 0); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}

	if got := Remaining(100, 40, 10); got != 70 {
		t.Fatalf("expected 70, got %v", got)
	}
}

// TestExceededStrict checks spending equal to the budget is not exceeded.
func TestExceededStrict(t *testing.T) {
	if Exceeded(100, 100) {
		t.Fatal("spent == amount must not count as exceeded")
	}

	if !Exceeded(100, 100.01) {
		t.Fatal("spent above amount must count as exceeded")
	}
}

// TestProgressZeroBudget checks the division-by-zero guard.
func TestProgressZeroBudget(t *testing.T) {
	if got := Progress(0, 500); got != 0 {
		t.Fatalf("expected 0 for zero budget, got %v", got)
	}
}

// TestProgressNotClamped checks over-budget progress exceeds 100.
func TestProgressNotClamped(t *testing.T) {
	if got := Progress(100, 150); got != 150 {
		t.Fatalf("expected 150, got %v", got)
	}
}

// TestMonthRange checks calendar month boundary derivation.
func TestMonthRange(t *testing.T) {
	first, last := MonthRange(time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC))

	if first.Format("2006-01-02") != "2024-02-01" {
		t.Fatalf("unexpected first day: %s", first.Format("2006-01-02"))
	}
	// 2024 is a leap year.
	if last.Format("2006-01-02") != "2024-02-29" {
		t.Fatalf("unexpected last day: %s", last.Format("2006-01-02"))
	}
}

// TestNextMonthRangeYearWrap checks December rolls into January.
func TestNextMonthRangeYearWrap(t *testing.T) {
	first, last := NextMonthRange(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC))

	if first.Format("2006-01-02") != "2024-01-01" {
		t.Fatalf("unexpected first day: %s", first.Format("2006-01-02"))
	}
	if last.Format("2006-01-02") != "2024-01-31" {
		t.Fatalf("unexpected last day: %s", last.Format("2006-01-02"))
	}
}

// TestNextRecurringRollover checks rollover is carried only when enabled
// and positive.
func TestNextRecurringRollover(t *testing.T) {
	prev := models.Budget{
		Name:            "Groceries",
		Category:        "Food",
		Amount:          1000,
		Spent:           600,
		StartDate:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		IsRecurring:     true,
		RolloverEnabled: true,
		Alert75:         true,
	}

	next := NextRecurring(prev)

	if next.Spent != 0 {
		t.Fatalf("expected spent reset, got %v", next.Spent)
	}
	if next.RolloverAmount != 400 {
		t.Fatalf("expected rollover 400, got %v", next.RolloverAmount)
	}
	if next.StartDate.Format("2006-01-02") != "2024-04-01" {
		t.Fatalf("unexpected start: %s", next.StartDate.Format("2006-01-02"))
	}
	if next.EndDate.Format("2006-01-02") != "2024-04-30" {
		t.Fatalf("unexpected end: %s", next.EndDate.Format("2006-01-02"))
	}
	if !next.Alert75 {
		t.Fatal("expected alert settings to be copied")
	}
}

// TestNextRecurringRolloverDisabled checks no rollover when disabled or
// when nothing remains.
func TestNextRecurringRolloverDisabled(t *testing.T) {
	prev := models.Budget{
		Amount:          1000,
		Spent:           600,
		EndDate:         time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		RolloverEnabled: false,
	}
	if next := NextRecurring(prev); next.RolloverAmount != 0 {
		t.Fatalf("expected no rollover when disabled, got %v", next.RolloverAmount)
	}

	prev.RolloverEnabled = true
	prev.Spent = 1200
	if next := NextRecurring(prev); next.RolloverAmount != 0 {
		t.Fatalf("expected no rollover when overspent, got %v", next.RolloverAmount)
	}
}

// TestTriggeredAlertsSingleCrossing checks each threshold fires once per
// crossing.
func TestTriggeredAlertsSingleCrossing(t *testing.T) {
	settings := AlertSettings{Alert50: true}

	got := TriggeredAlerts(40, 60, settings)
	if len(got) != 1 || got[0] != 50 {
		t.Fatalf("expected [50], got %v", got)
	}

	// Already above the threshold: no re-trigger.
	if got := TriggeredAlerts(60, 70, settings); len(got) != 0 {
		t.Fatalf("expected no alerts, got %v", got)
	}
}

// TestTriggeredAlertsBoundary checks the inclusive upper bound.
func TestTriggeredAlertsBoundary(t *testing.T) {
	settings := AlertSettings{Alert50: true, Alert75: true, Alert100: true}

	got := TriggeredAlerts(49.9, 50, settings)
	if len(got) != 1 || got[0] != 50 {
		t.Fatalf("expected [50] at exact boundary, got %v", got)
	}

	got = TriggeredAlerts(10, 120, settings)
	if len(got) != 3 {
		t.Fatalf("expected all thresholds, got %v", got)
	}
}

// TestTriggeredAlertsDisabled checks disabled thresholds never fire.
func TestTriggeredAlertsDisabled(t *testing.T) {
	if got := TriggeredAlerts(0, 200, AlertSettings{}); len(got) != 0 {
		t.Fatalf("expected no alerts, got %v", got)
	}
}

// TestSummarizeEmpty checks the zero summary for empty input.
func TestSummarizeEmpty(t *testing.T) {
	got := Summarize(nil)
	if got != (Summary{}) {
		t.Fatalf("expected zero summary, got %+v", got)
	}
}

// TestSummarize checks totals, distinct categories and average progress.
func TestSummarize(t *testing.T) {
	budgets := []models.Budget{
		{Category: "Food", Amount: 1000, Spent: 500, RolloverAmount: 100},
		{Category: "Travel", Amount: 500, Spent: 600},
		{Category: "Food", Amount: 300, Spent: 0},
	}

	got := Summarize(budgets)

	if got.TotalBudget != 1800 {
		t.Fatalf("unexpected total budget: %v", got.TotalBudget)
	}
	if got.TotalSpent != 1100 {
		t.Fatalf("unexpected total spent: %v", got.TotalSpent)
	}
	// 600 + 0 + 300
	if got.TotalRemaining != 900 {
		t.Fatalf("unexpected total remaining: %v", got.TotalRemaining)
	}
	if got.CategoriesCount != 2 {
		t.Fatalf("unexpected category count: %d", got.CategoriesCount)
	}
	if got.OverBudgetCount != 1 {
		t.Fatalf("unexpected over-budget count: %d", got.OverBudgetCount)
	}
	// (50 + 120 + 0) / 3
	if got.AverageProgress != 56.67 {
		t.Fatalf("unexpected average progress: %v", got.AverageProgress)
	}
}

// TestNeedingRenewal checks only expired recurring budgets are returned.
func TestNeedingRenewal(t *testing.T) {
	now := time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)
	budgets := []models.Budget{
		{Name: "expired recurring", IsRecurring: true, EndDate: now.AddDate(0, 0, -2)},
		{Name: "expired one-off", IsRecurring: false, EndDate: now.AddDate(0, 0, -2)},
		{Name: "active recurring", IsRecurring: true, EndDate: now.AddDate(0, 0, 20)},
	}

	got := NeedingRenewal(budgets, now)
	if len(got) != 1 || got[0].Name != "expired recurring" {
		t.Fatalf("unexpected renewal set: %+v", got)
	}
}
