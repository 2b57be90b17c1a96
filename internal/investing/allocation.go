package investing

import (
	"sort"

	"example.com/finance-tracker/backend/internal/models"
)

// Allocation is the per-type slice of the portfolio.
type Allocation struct {
	Type           models.InvestmentType `json:"type"`
	InvestedAmount float64               `json:"invested_amount"`
	CurrentValue   float64               `json:"current_value"`
	Count          int                   `json:"count"`
	PnLAmount      float64               `json:"pnl_amount"`
	PnLPercent     float64               `json:"pnl_percent"`
	Percentage     float64               `json:"percentage"`
}

// AssetAllocation groups investments by type, sorted descending by current
// value, each entry annotated with its share of the total current value.
func AssetAllocation(investments []models.Investment) []Allocation {
	byType := make(map[models.InvestmentType]*Allocation)
	var totalCurrent float64

	for _, investment := range investments {
		entry, ok := byType[investment.Type]
		if !ok {
			entry = &Allocation{Type: investment.Type}
			byType[investment.Type] = entry
		}
		entry.InvestedAmount += investment.InvestedAmount
		entry.CurrentValue += investment.CurrentValue
		entry.Count++
		totalCurrent += investment.CurrentValue
	}

	allocations := make([]Allocation, 0, len(byType))
	for _, entry := range byType {
		pnl := ProfitAndLoss(entry.CurrentValue, entry.InvestedAmount)
		entry.PnLAmount = pnl.Amount
		entry.PnLPercent = pnl.Percent
		if totalCurrent > 0 {
			entry.Percentage = entry.CurrentValue / totalCurrent * 100
		}
		allocations = append(allocations, *entry)
	}

	sort.SliceStable(allocations, func(i, j int) bool {
		if allocations[i].CurrentValue != allocations[j].CurrentValue {
			return allocations[i].CurrentValue > allocations[j].CurrentValue
		}
		return allocations[i].Type < allocations[j].Type
	})

	return allocations
}
