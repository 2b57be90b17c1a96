package investing

import (
	"math"
	"testing"

	"example.com/finance-tracker/backend/internal/models"
)

// TestAssetAllocationEmpty checks an empty portfolio yields an empty slice.
func TestAssetAllocationEmpty(t *testing.T) {
	got := AssetAllocation(nil)
	if len(got) != 0 {
		t.Fatalf("expected empty allocation, got %+v", got)
	}
}

// TestAssetAllocation checks grouping, ordering and percentage shares.
func TestAssetAllocation(t *testing.T) {
	investments := []models.Investment{
		{Type: models.InvestmentTypeStocks, InvestedAmount: 1000, CurrentValue: 1500},
		{Type: models.InvestmentTypeGold, InvestedAmount: 2000, CurrentValue: 2600},
		{Type: models.InvestmentTypeStocks, InvestedAmount: 500, CurrentValue: 1000},
	}

	got := AssetAllocation(investments)

	if len(got) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(got))
	}
	if got[0].Type != models.InvestmentTypeGold {
		t.Fatalf("expected gold first (largest current value), got %s", got[0].Type)
	}
	if got[1].Count != 2 || got[1].CurrentValue != 2500 {
		t.Fatalf("unexpected stocks group: %+v", got[1])
	}

	var percentSum float64
	for _, allocation := range got {
		percentSum += allocation.Percentage
	}
	if math.Abs(percentSum-100) > 1e-9 {
		t.Fatalf("expected percentages to sum to 100, got %v", percentSum)
	}
}

// TestAssetAllocationTieOrder checks groups with equal current value come
// back in type order on every run.
func TestAssetAllocationTieOrder(t *testing.T) {
	investments := []models.Investment{
		{Type: models.InvestmentTypeStocks, InvestedAmount: 1000, CurrentValue: 2000},
		{Type: models.InvestmentTypeGold, InvestedAmount: 1500, CurrentValue: 2000},
		{Type: models.InvestmentTypeCrypto, InvestedAmount: 500, CurrentValue: 2000},
	}

	for i := 0; i < 10; i++ {
		got := AssetAllocation(investments)
		if len(got) != 3 {
			t.Fatalf("expected 3 groups, got %d", len(got))
		}
		if got[0].Type != models.InvestmentTypeCrypto ||
			got[1].Type != models.InvestmentTypeGold ||
			got[2].Type != models.InvestmentTypeStocks {
			t.Fatalf("unexpected tie order: %s, %s, %s", got[0].Type, got[1].Type, got[2].Type)
		}
	}
}
