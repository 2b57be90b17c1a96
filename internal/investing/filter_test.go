package investing

import (
	"testing"
	"time"

	"example.com/finance-tracker/backend/internal/models"
)

func strPtr(value string) *string { return &value }

// TestFilterCombines checks filters are AND-combined.
func TestFilterCombines(t *testing.T) {
	investments := []models.Investment{
		{Name: "Nifty Index Fund", Type: models.InvestmentTypeMutualFunds, RiskLevel: models.RiskLevelModerate},
		{Name: "Infosys", Type: models.InvestmentTypeStocks, RiskLevel: models.RiskLevelModerate, TickerSymbol: strPtr("INFY")},
		{Name: "Bitcoin", Type: models.InvestmentTypeCrypto, RiskLevel: models.RiskLevelHigh},
	}

	got := Filter(investments, Filters{Type: "stocks", RiskLevel: "moderate"})
	if len(got) != 1 || got[0].Name != "Infosys" {
		t.Fatalf("unexpected filter result: %+v", got)
	}
}

// TestFilterSearchSpansFields checks search hits name, ticker, sector and
// category case-insensitively.
func TestFilterSearchSpansFields(t *testing.T) {
	investments := []models.Investment{
		{Name: "Infosys", TickerSymbol: strPtr("INFY"), Sector: strPtr("IT")},
		{Name: "HDFC Bank", Sector: strPtr("Banking")},
	}

	if got := Filter(investments, Filters{Search: "infy"}); len(got) != 1 || got[0].Name != "Infosys" {
		t.Fatalf("expected ticker match, got %+v", got)
	}
	if got := Filter(investments, Filters{Search: "BANK"}); len(got) != 1 || got[0].Name != "HDFC Bank" {
		t.Fatalf("expected sector match, got %+v", got)
	}
	if got := Filter(investments, Filters{Search: "missing"}); len(got) != 0 {
		t.Fatalf("expected no match, got %+v", got)
	}
}

// TestSortByName checks case-insensitive name ordering and descending flag.
func TestSortByName(t *testing.T) {
	investments := []models.Investment{
		{Name: "zomato"},
		{Name: "Airtel"},
		{Name: "HDFC"},
	}

	asc := Sort(investments, "name", "asc")
	if asc[0].Name != "Airtel" || asc[2].Name != "zomato" {
		t.Fatalf("unexpected ascending order: %+v", asc)
	}

	desc := Sort(investments, "name", "desc")
	if desc[0].Name != "zomato" {
		t.Fatalf("unexpected descending order: %+v", desc)
	}

	// Input must stay untouched.
	if investments[0].Name != "zomato" {
		t.Fatal("expected input slice to be unchanged")
	}
}

// TestSortByPnL checks numeric ordering on the derived pnl key.
func TestSortByPnL(t *testing.T) {
	investments := []models.Investment{
		{Name: "flat", InvestedAmount: 1000, CurrentValue: 1000},
		{Name: "winner", InvestedAmount: 1000, CurrentValue: 1500},
		{Name: "loser", InvestedAmount: 1000, CurrentValue: 700},
	}

	got := Sort(investments, "pnl", "desc")
	if got[0].Name != "winner" || got[2].Name != "loser" {
		t.Fatalf("unexpected pnl order: %+v", got)
	}
}

// TestSortStableOnTies checks equal keys keep input order.
func TestSortStableOnTies(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	investments := []models.Investment{
		{Name: "first", PurchaseDate: day},
		{Name: "second", PurchaseDate: day},
	}

	got := Sort(investments, "purchaseDate", "asc")
	if got[0].Name != "first" || got[1].Name != "second" {
		t.Fatalf("expected stable order, got %+v", got)
	}
}
