package budgeting

import (
	"math"
	"time"

	"example.com/finance-tracker/backend/internal/models"
)

// Remaining returns how much of a budget is left to spend, including any
// rollover carried in from the previous period. Never negative.
func Remaining(amount, spent, rollover float64) float64 {
	remaining := amount - spent + rollover
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Exceeded reports whether spending is strictly over the budget amount.
func Exceeded(amount, spent float64) bool {
	return spent > amount
}

// Progress returns spending as a percentage of the budget amount. A zero
// budget reports 0. The result is not clamped at 100; display code clamps.
func Progress(amount, spent float64) float64 {
	if amount == 0 {
		return 0
	}
	return spent / amount * 100
}

// MonthRange returns the first and last day of the calendar month
// containing t. The last day is day 0 of the following month.
func MonthRange(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location())
	return first, last
}

// NextMonthRange returns the boundaries of the month after the one
// containing t.
func NextMonthRange(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, t.Location())
	last := time.Date(t.Year(), t.Month()+2, 0, 0, 0, 0, 0, t.Location())
	return first, last
}

// NextRecurring builds the next month's budget from a finished recurring
// budget: same category, amount and settings, spent reset to zero, and the
// previous remaining amount rolled over iff rollover is enabled and there
// is something left.
func NextRecurring(prev models.Budget) models.Budget {
	start, end := NextMonthRange(prev.EndDate)

	rollover := 0.0
	if prev.RolloverEnabled {
		if remaining := Remaining(prev.Amount, prev.Spent, prev.RolloverAmount); remaining > 0 {
			rollover = remaining
		}
	}

	return models.Budget{
		UserID:          prev.UserID,
		Name:            prev.Name,
		Category:        prev.Category,
		Amount:          prev.Amount,
		Spent:           0,
		StartDate:       start,
		EndDate:         end,
		IsRecurring:     prev.IsRecurring,
		RolloverEnabled: prev.RolloverEnabled,
		RolloverAmount:  rollover,
		Alert50:         prev.Alert50,
		Alert75:         prev.Alert75,
		Alert100:        prev.Alert100,
		AlertExceeded:   prev.AlertExceeded,
		Priority:        prev.Priority,
	}
}

// AlertSettings holds the per-threshold enable flags of a budget.
type AlertSettings struct {
	Alert50  bool
	Alert75  bool
	Alert100 bool
}

// SettingsOf extracts the alert settings from a budget record.
func SettingsOf(budget models.Budget) AlertSettings {
	return AlertSettings{
		Alert50:  budget.Alert50,
		Alert75:  budget.Alert75,
		Alert100: budget.Alert100,
	}
}

// TriggeredAlerts returns the enabled thresholds crossed by a progress
// change: prev < threshold <= curr. Each crossing fires exactly once; a
// budget sitting above a threshold does not re-trigger it.
func TriggeredAlerts(prevPct, currPct float64, settings AlertSettings) []int {
	thresholds := []struct {
		value   int
		enabled bool
	}{
		{50, settings.Alert50},
		{75, settings.Alert75},
		{100, settings.Alert100},
	}

	var triggered []int
	for _, threshold := range thresholds {
		if !threshold.enabled {
			continue
		}
		limit := float64(threshold.value)
		if prevPct < limit && currPct >= limit {
			triggered = append(triggered, threshold.value)
		}
	}

	return triggered
}

// Summary aggregates a set of budgets for the overview endpoint.
type Summary struct {
	TotalBudget     float64 `json:"total_budget"`
	TotalSpent      float64 `json:"total_spent"`
	TotalRemaining  float64 `json:"total_remaining"`
	CategoriesCount int     `json:"categories_count"`
	OverBudgetCount int     `json:"over_budget_count"`
	AverageProgress float64 `json:"average_progress"`
}

// Summarize folds budgets into totals. An empty input yields the zero
// summary, not an error.
func Summarize(budgets []models.Budget) Summary {
	var summary Summary
	if len(budgets) == 0 {
		return summary
	}

	categories := make(map[string]struct{}, len(budgets))
	var progressSum float64

	for _, budget := range budgets {
		summary.TotalBudget += budget.Amount
		summary.TotalSpent += budget.Spent
		summary.TotalRemaining += Remaining(budget.Amount, budget.Spent, budget.RolloverAmount)
		categories[budget.Category] = struct{}{}

		if Exceeded(budget.Amount, budget.Spent) {
			summary.OverBudgetCount++
		}
		progressSum += Progress(budget.Amount, budget.Spent)
	}

	summary.CategoriesCount = len(categories)
	summary.AverageProgress = round2(progressSum / float64(len(budgets)))
	return summary
}

// NeedingRenewal returns the recurring budgets whose period ended before now.
func NeedingRenewal(budgets []models.Budget, now time.Time) []models.Budget {
	due := make([]models.Budget, 0)
	for _, budget := range budgets {
		if budget.IsRecurring && budget.EndDate.Before(now) {
			due = append(due, budget)
		}
	}
	return due
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
