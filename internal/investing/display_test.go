package investing

import (
	"testing"

	"example.com/finance-tracker/backend/internal/models"
)

// TestTypeDisplayNameFallback checks unknown types pass through.
func TestTypeDisplayNameFallback(t *testing.T) {
	if got := TypeDisplayName(models.InvestmentTypeMutualFunds); got != "Mutual Funds" {
		t.Fatalf("unexpected display name: %s", got)
	}

	if got := TypeDisplayName(models.InvestmentType("bonds")); got != "bonds" {
		t.Fatalf("expected passthrough, got %s", got)
	}
}

// TestRiskLevelColorDefault checks the gray fallback.
func TestRiskLevelColorDefault(t *testing.T) {
	if got := RiskLevelColor(models.RiskLevelHigh); got != "red" {
		t.Fatalf("unexpected color: %s", got)
	}

	if got := RiskLevelColor(models.RiskLevel("unknown")); got != "gray" {
		t.Fatalf("expected gray fallback, got %s", got)
	}
}

// TestPnLColor checks sign-based coloring.
func TestPnLColor(t *testing.T) {
	if PnLColor(10) != "green" || PnLColor(-10) != "red" || PnLColor(0) != "gray" {
		t.Fatal("unexpected pnl colors")
	}
}
