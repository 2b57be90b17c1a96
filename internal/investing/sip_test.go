package investing

import (
	"math"
	"testing"

	"example.com/finance-tracker/backend/internal/models"
)

// TestSIPEmpty checks no transactions yields the zero struct.
func TestSIPEmpty(t *testing.T) {
	if got := SIP(nil, 5000); got != (SIPMetrics{}) {
		t.Fatalf("expected zero metrics, got %+v", got)
	}
}

// TestSIPMetrics checks totals, average NAV and pnl against current value.
func TestSIPMetrics(t *testing.T) {
	transactions := []models.SIPTransaction{
		{Amount: 1000, Units: 10},
		{Amount: 1000, Units: 8},
	}

	got := SIP(transactions, 2500)

	if got.TotalInvested != 2000 || got.TotalUnits != 18 {
		t.Fatalf("unexpected totals: %+v", got)
	}
	if math.Abs(got.AverageNAV-111.1111) > 0.001 {
		t.Fatalf("unexpected average NAV: %v", got.AverageNAV)
	}
	if got.PnLAmount != 500 || got.PnLPercent != 25 {
		t.Fatalf("unexpected pnl: %+v", got)
	}
}

// TestSIPZeroUnits checks the average NAV guard.
func TestSIPZeroUnits(t *testing.T) {
	got := SIP([]models.SIPTransaction{{Amount: 1000, Units: 0}}, 1000)
	if got.AverageNAV != 0 {
		t.Fatalf("expected average NAV 0, got %v", got.AverageNAV)
	}
}
