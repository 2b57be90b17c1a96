package analytics

import (
	"testing"
)

// TestFinancialHealthNoData checks the all-zero case reports 0 and no data.
func TestFinancialHealthNoData(t *testing.T) {
	got := FinancialHealth(HealthInput{})

	if got.Score != 0 || got.HasData {
		t.Fatalf("expected zero score without data, got %+v", got)
	}
}

// TestFinancialHealthNeutralDefault checks partial data reports 40.
func TestFinancialHealthNeutralDefault(t *testing.T) {
	got := FinancialHealth(HealthInput{TotalInvestments: 50000})

	if got.Score != 40 || got.HasData {
		t.Fatalf("expected neutral 40, got %+v", got)
	}

	got = FinancialHealth(HealthInput{MonthlyIncome: 50000})
	if got.Score != 40 || got.HasData {
		t.Fatalf("expected neutral 40 with income but no expenses, got %+v", got)
	}
}

// TestFinancialHealthComposite checks the component arithmetic.
func TestFinancialHealthComposite(t *testing.T) {
	got := FinancialHealth(HealthInput{
		MonthlyIncome:       100000,
		MonthlyExpenses:     40000,
		MonthlyDebtPayments: 10000,
		TotalInvestments:    600000,
	})

	if !got.HasData {
		t.Fatal("expected has_data")
	}

	// surplus = 50000; emergency: 50000/40000/3*25 = 10.4166
	if got.EmergencyFund < 10.41 || got.EmergencyFund > 10.42 {
		t.Fatalf("unexpected emergency fund component: %v", got.EmergencyFund)
	}
	// debt: 25 - 10% * 100 = 15
	if got.DebtRatio != 15 {
		t.Fatalf("unexpected debt component: %v", got.DebtRatio)
	}
	// savings: 50% rate -> capped at 25
	if got.SavingsRate != 25 {
		t.Fatalf("unexpected savings component: %v", got.SavingsRate)
	}
	// investment: 600000/1200000*100 = 50 -> capped at 25
	if got.Investment != 25 {
		t.Fatalf("unexpected investment component: %v", got.Investment)
	}
	// round(10.4166 + 15 + 25 + 25) = 75
	if got.Score != 75 {
		t.Fatalf("unexpected score: %d", got.Score)
	}
}

// TestFinancialHealthCap checks the score never exceeds 100.
func TestFinancialHealthCap(t *testing.T) {
	got := FinancialHealth(HealthInput{
		MonthlyIncome:    100000,
		MonthlyExpenses:  1,
		TotalInvestments: 10000000,
	})

	if got.Score > 100 {
		t.Fatalf("expected cap at 100, got %d", got.Score)
	}
}

// TestNetWorthAndCashFlow checks the derivations.
func TestNetWorthAndCashFlow(t *testing.T) {
	if got := NetWorth(100000, 50000, 30000, 20000); got != 100000 {
		t.Fatalf("unexpected net worth: %v", got)
	}

	if got := CashFlow(50000, 30000, 5000); got != 15000 {
		t.Fatalf("unexpected cash flow: %v", got)
	}
}

// TestSavingsRateZeroIncome checks the division guard.
func TestSavingsRateZeroIncome(t *testing.T) {
	if got := SavingsRate(5000, 0); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}

	if got := SavingsRate(15000, 50000); got != 0.3 {
		t.Fatalf("unexpected savings rate: %v", got)
	}
}
