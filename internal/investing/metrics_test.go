package investing

import (
	"math"
	"testing"
	"time"

	"example.com/finance-tracker/backend/internal/models"
)

// TestCAGRZeroElapsed checks zero elapsed time yields 0, not Inf/NaN.
func TestCAGRZeroElapsed(t *testing.T) {
	now := time.Now()

	got := CAGR(1000, 1000, now, now)
	if got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("expected finite result, got %v", got)
	}
}

// TestCAGRDegenerateInputs checks non-positive values return 0.
func TestCAGRDegenerateInputs(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	if got := CAGR(0, 1000, start, end); got != 0 {
		t.Fatalf("expected 0 for zero initial, got %v", got)
	}
	if got := CAGR(1000, -5, start, end); got != 0 {
		t.Fatalf("expected 0 for negative final, got %v", got)
	}
}

// TestCAGRDoubling checks a doubling over two years is close to 41.4%.
func TestCAGRDoubling(t *testing.T) {
	start := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(2, 0, 0)

	got := CAGR(1000, 2000, start, end)
	if math.Abs(got-41.42) > 0.2 {
		t.Fatalf("expected roughly 41.42, got %v", got)
	}
}

// TestProfitAndLoss checks the documented example.
func TestProfitAndLoss(t *testing.T) {
	got := ProfitAndLoss(1200, 1000)
	if got.Amount != 200 || got.Percent != 20 {
		t.Fatalf("expected {200 20}, got %+v", got)
	}
}

// TestProfitAndLossZeroInvested checks the division guard.
func TestProfitAndLossZeroInvested(t *testing.T) {
	got := ProfitAndLoss(500, 0)
	if got.Amount != 500 || got.Percent != 0 {
		t.Fatalf("expected percent 0 for zero invested, got %+v", got)
	}
}

// TestPortfolio checks totals and SIP sub-totals.
func TestPortfolio(t *testing.T) {
	investments := []models.Investment{
		{InvestedAmount: 1000, CurrentValue: 1200, IsSIP: true},
		{InvestedAmount: 2000, CurrentValue: 1800},
	}

	got := Portfolio(investments)

	if got.TotalInvested != 3000 || got.TotalCurrent != 3000 {
		t.Fatalf("unexpected totals: %+v", got)
	}
	if got.Count != 2 || got.SIPCount != 1 {
		t.Fatalf("unexpected counts: %+v", got)
	}
	if got.SIPInvested != 1000 || got.SIPCurrentValue != 1200 {
		t.Fatalf("unexpected SIP totals: %+v", got)
	}
	if got.TotalPnL != 0 || got.PnLPercent != 0 {
		t.Fatalf("unexpected pnl: %+v", got)
	}
}

// TestPortfolioEmpty checks the zero summary for no investments.
func TestPortfolioEmpty(t *testing.T) {
	if got := Portfolio(nil); got != (PortfolioSummary{}) {
		t.Fatalf("expected zero summary, got %+v", got)
	}
}
