package analytics

import (
	"math"
	"sort"
	"strings"

	"example.com/finance-tracker/backend/internal/models"
)

const defaultCategoryIcon = "💰"

var categoryIcons = map[string]string{
	"food":          "🍽️",
	"groceries":     "🛒",
	"transport":     "🚗",
	"entertainment": "🎬",
	"shopping":      "🛍️",
	"healthcare":    "🏥",
	"utilities":     "💡",
	"rent":          "🏠",
	"housing":       "🏠",
	"travel":        "✈️",
	"education":     "📚",
	"dining":        "🍕",
	"other":         "💰",
}

// CategorySlice is one wedge of the category distribution chart.
type CategorySlice struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
	Icon       string  `json:"icon"`
}

// CategoryInsight enriches a category slice with per-transaction stats.
type CategoryInsight struct {
	CategorySlice
	Count     int     `json:"count"`
	Average   float64 `json:"average"`
	Frequency float64 `json:"frequency"`
}

// CategoryDistribution groups expenses by category (blank categories become
// "Other"), with each group's share of the grand total at one decimal,
// sorted descending by amount.
func CategoryDistribution(expenses []models.Expense) []CategorySlice {
	totals, _ := categoryTotals(expenses)

	var grandTotal float64
	for _, amount := range totals {
		grandTotal += amount
	}

	slices := make([]CategorySlice, 0, len(totals))
	for category, amount := range totals {
		slice := CategorySlice{
			Category: category,
			Amount:   amount,
			Icon:     CategoryIcon(category),
		}
		if grandTotal > 0 {
			slice.Percentage = round1(amount / grandTotal * 100)
		}
		slices = append(slices, slice)
	}

	sort.SliceStable(slices, func(i, j int) bool {
		if slices[i].Amount != slices[j].Amount {
			return slices[i].Amount > slices[j].Amount
		}
		return slices[i].Category < slices[j].Category
	})

	return slices
}

// CategoryInsights is the distribution plus per-category transaction count,
// average amount and frequency share.
func CategoryInsights(expenses []models.Expense) []CategoryInsight {
	_, counts := categoryTotals(expenses)
	distribution := CategoryDistribution(expenses)
	totalCount := len(expenses)

	insights := make([]CategoryInsight, 0, len(distribution))
	for _, slice := range distribution {
		insight := CategoryInsight{CategorySlice: slice, Count: counts[slice.Category]}
		if insight.Count > 0 {
			insight.Average = insight.Amount / float64(insight.Count)
		}
		if totalCount > 0 {
			insight.Frequency = round1(float64(insight.Count) / float64(totalCount) * 100)
		}
		insights = append(insights, insight)
	}

	return insights
}

// CategoryIcon looks up the display icon for a category, falling back to a
// generic one.
func CategoryIcon(category string) string {
	if icon, ok := categoryIcons[strings.ToLower(strings.TrimSpace(category))]; ok {
		return icon
	}
	return defaultCategoryIcon
}

func categoryTotals(expenses []models.Expense) (map[string]float64, map[string]int) {
	totals := make(map[string]float64)
	counts := make(map[string]int)

	for _, expense := range expenses {
		category := normalizeCategory(expense.Category)
		totals[category] += expense.Amount
		counts[category]++
	}

	return totals, counts
}

func normalizeCategory(category string) string {
	if strings.TrimSpace(category) == "" {
		return models.DefaultCategory
	}
	return category
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}
