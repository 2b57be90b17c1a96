package analytics

import (
	"sort"
	"time"

	"example.com/finance-tracker/backend/internal/models"
	"example.com/finance-tracker/backend/internal/money"
)

// TrendPoint is one day of the spending time series.
type TrendPoint struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// MonthPoint is one month of the spending series.
type MonthPoint struct {
	Month  string  `json:"month"`
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// MonthFlow is one month of the income/expense comparison series.
type MonthFlow struct {
	Month    string  `json:"month"`
	Label    string  `json:"label"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// DailyTrend returns a gap-free series for the window of `days` days ending
// at now: every date appears, dates without expenses carry zero, ascending
// by date.
func DailyTrend(expenses []models.Expense, days int, now time.Time) []TrendPoint {
	if days <= 0 {
		return []TrendPoint{}
	}

	totalsByDay := make(map[string]float64, days)
	start := now.AddDate(0, 0, -(days - 1))
	for d := start; !d.After(now); d = d.AddDate(0, 0, 1) {
		totalsByDay[money.DayKey(d)] = 0
	}

	for _, expense := range expenses {
		key := money.DayKey(expense.Date)
		if _, inWindow := totalsByDay[key]; inWindow {
			totalsByDay[key] += expense.Amount
		}
	}

	series := make([]TrendPoint, 0, days)
	for d := start; !d.After(now); d = d.AddDate(0, 0, 1) {
		key := money.DayKey(d)
		series = append(series, TrendPoint{Date: key, Amount: totalsByDay[key]})
	}

	return series
}

// MonthlySpending groups expenses by calendar month, labeled "Jan 2006" and
// sorted by calendar order, not alphabetically on the label.
func MonthlySpending(expenses []models.Expense) []MonthPoint {
	totalsByMonth := make(map[string]float64)
	for _, expense := range expenses {
		totalsByMonth[money.MonthKey(expense.Date)] += expense.Amount
	}

	series := make([]MonthPoint, 0, len(totalsByMonth))
	for key, amount := range totalsByMonth {
		series = append(series, MonthPoint{Month: key, Label: money.MonthLabel(key), Amount: amount})
	}

	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Month < series[j].Month
	})

	return series
}

// IncomeExpenseTrend sums income and expenses for each of the trailing
// `months` calendar months ending with the month of now, oldest first.
func IncomeExpenseTrend(incomes []models.Income, expenses []models.Expense, months int, now time.Time) []MonthFlow {
	if months <= 0 {
		return []MonthFlow{}
	}

	incomeByMonth := make(map[string]float64)
	for _, income := range incomes {
		incomeByMonth[money.MonthKey(income.Date)] += income.Amount
	}

	expenseByMonth := make(map[string]float64)
	for _, expense := range expenses {
		expenseByMonth[money.MonthKey(expense.Date)] += expense.Amount
	}

	series := make([]MonthFlow, 0, months)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(months - 1), 0)
	for m := 0; m < months; m++ {
		key := money.MonthKey(first.AddDate(0, m, 0))
		series = append(series, MonthFlow{
			Month:    key,
			Label:    money.MonthLabel(key),
			Income:   incomeByMonth[key],
			Expenses: expenseByMonth[key],
		})
	}

	return series
}
