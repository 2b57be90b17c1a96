package investing

import (
	"sort"
	"strings"
	"time"

	"example.com/finance-tracker/backend/internal/models"
)

// Filters are AND-combined; empty fields match everything.
type Filters struct {
	Type      string
	RiskLevel string
	Category  string
	Search    string
}

// Filter returns the investments matching every non-empty filter. Category
// and search are case-insensitive substring matches; search spans name,
// ticker symbol, sector and category.
func Filter(investments []models.Investment, filters Filters) []models.Investment {
	matched := make([]models.Investment, 0, len(investments))

	for _, investment := range investments {
		if filters.Type != "" && !strings.EqualFold(string(investment.Type), filters.Type) {
			continue
		}
		if filters.RiskLevel != "" && !strings.EqualFold(string(investment.RiskLevel), filters.RiskLevel) {
			continue
		}
		if filters.Category != "" && !containsFold(stringValue(investment.Category), filters.Category) {
			continue
		}
		if filters.Search != "" && !matchesSearch(investment, filters.Search) {
			continue
		}
		matched = append(matched, investment)
	}

	return matched
}

func matchesSearch(investment models.Investment, query string) bool {
	haystacks := []string{
		investment.Name,
		stringValue(investment.TickerSymbol),
		stringValue(investment.Sector),
		stringValue(investment.Category),
	}

	for _, haystack := range haystacks {
		if containsFold(haystack, query) {
			return true
		}
	}
	return false
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func stringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

// Sort orders investments by one of the supported keys without mutating
// the input. String keys compare case-insensitively, numeric and date keys
// numerically; order "desc" reverses. Unknown keys fall back to name.
func Sort(investments []models.Investment, sortBy, order string) []models.Investment {
	sorted := make([]models.Investment, len(investments))
	copy(sorted, investments)

	less := lessFunc(sortBy)
	descending := strings.EqualFold(order, "desc")

	sort.SliceStable(sorted, func(i, j int) bool {
		if descending {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})

	return sorted
}

func lessFunc(sortBy string) func(a, b models.Investment) bool {
	switch sortBy {
	case "investedAmount":
		return func(a, b models.Investment) bool { return a.InvestedAmount < b.InvestedAmount }
	case "currentValue":
		return func(a, b models.Investment) bool { return a.CurrentValue < b.CurrentValue }
	case "pnl":
		return func(a, b models.Investment) bool {
			return ProfitAndLoss(a.CurrentValue, a.InvestedAmount).Amount < ProfitAndLoss(b.CurrentValue, b.InvestedAmount).Amount
		}
	case "pnlPercent":
		return func(a, b models.Investment) bool {
			return ProfitAndLoss(a.CurrentValue, a.InvestedAmount).Percent < ProfitAndLoss(b.CurrentValue, b.InvestedAmount).Percent
		}
	case "cagr":
		now := time.Now()
		return func(a, b models.Investment) bool {
			return CAGR(a.InvestedAmount, a.CurrentValue, a.PurchaseDate, now) < CAGR(b.InvestedAmount, b.CurrentValue, b.PurchaseDate, now)
		}
	case "purchaseDate":
		return func(a, b models.Investment) bool { return a.PurchaseDate.Before(b.PurchaseDate) }
	case "createdAt":
		return func(a, b models.Investment) bool { return a.CreatedAt.Before(b.CreatedAt) }
	default:
		return func(a, b models.Investment) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}
}
