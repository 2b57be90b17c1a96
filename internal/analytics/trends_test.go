package analytics

import (
	"testing"
	"time"

	"example.com/finance-tracker/backend/internal/models"
)

// TestDailyTrendGapFree checks every day of the window appears, zeros
// preserved, ascending order.
func TestDailyTrendGapFree(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	expenses := []models.Expense{
		{Amount: 50, Date: time.Date(2024, 3, 9, 8, 0, 0, 0, time.UTC)},
	}

	got := DailyTrend(expenses, 3, now)

	if len(got) != 3 {
		t.Fatalf("expected 3 points, got %d", len(got))
	}
	if got[0].Date != "2024-03-08" || got[2].Date != "2024-03-10" {
		t.Fatalf("unexpected window: %+v", got)
	}
	if got[0].Amount != 0 || got[1].Amount != 50 || got[2].Amount != 0 {
		t.Fatalf("unexpected amounts: %+v", got)
	}
}

// TestDailyTrendIgnoresOutOfWindow checks expenses outside the window do
// not leak in.
func TestDailyTrendIgnoresOutOfWindow(t *testing.T) {
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	expenses := []models.Expense{
		{Amount: 999, Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
	}

	got := DailyTrend(expenses, 3, now)
	for _, point := range got {
		if point.Amount != 0 {
			t.Fatalf("expected zero series, got %+v", got)
		}
	}
}

// TestMonthlySpendingCalendarOrder checks sorting by calendar order, not by
// label text.
func TestMonthlySpendingCalendarOrder(t *testing.T) {
	expenses := []models.Expense{
		{Amount: 10, Date: time.Date(2023, 12, 5, 0, 0, 0, 0, time.UTC)},
		{Amount: 20, Date: time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)},
		{Amount: 30, Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		{Amount: 5, Date: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)},
	}

	got := MonthlySpending(expenses)

	if len(got) != 3 {
		t.Fatalf("expected 3 months, got %d", len(got))
	}
	// "Apr 2024" sorts before "Dec 2023" alphabetically; calendar order must win.
	if got[0].Label != "Dec 2023" || got[1].Label != "Jan 2024" || got[2].Label != "Apr 2024" {
		t.Fatalf("unexpected order: %+v", got)
	}
	if got[1].Amount != 35 {
		t.Fatalf("expected January total 35, got %v", got[1].Amount)
	}
}

// TestIncomeExpenseTrend checks the trailing six-month window, oldest first.
func TestIncomeExpenseTrend(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	incomes := []models.Income{
		{Amount: 5000, Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{Amount: 4000, Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		// Outside the window.
		{Amount: 9999, Date: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)},
	}
	expenses := []models.Expense{
		{Amount: 1200, Date: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)},
	}

	got := IncomeExpenseTrend(incomes, expenses, 6, now)

	if len(got) != 6 {
		t.Fatalf("expected 6 months, got %d", len(got))
	}
	if got[0].Month != "2024-01" || got[5].Month != "2024-06" {
		t.Fatalf("unexpected window: %s .. %s", got[0].Month, got[5].Month)
	}
	if got[0].Income != 4000 || got[5].Income != 5000 || got[5].Expenses != 1200 {
		t.Fatalf("unexpected sums: %+v", got)
	}
	if got[1].Income != 0 || got[1].Expenses != 0 {
		t.Fatalf("expected empty february, got %+v", got[1])
	}
}

// TestTrendsEmptyInputs checks degradation to zero-valued series.
func TestTrendsEmptyInputs(t *testing.T) {
	now := time.Now()

	if got := DailyTrend(nil, 7, now); len(got) != 7 {
		t.Fatalf("expected full zero series, got %d points", len(got))
	}
	if got := MonthlySpending(nil); len(got) != 0 {
		t.Fatalf("expected empty series, got %+v", got)
	}
	if got := IncomeExpenseTrend(nil, nil, 6, now); len(got) != 6 {
		t.Fatalf("expected 6 zero months, got %d", len(got))
	}
}
