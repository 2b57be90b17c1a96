package analytics

import "math"

// neutralHealthScore is reported when there is some financial data but not
// enough to compute the composite.
const neutralHealthScore = 40

// HealthScore is the 0-100 composite of four 0-25 components.
type HealthScore struct {
	Score         int     `json:"score"`
	HasData       bool    `json:"has_data"`
	EmergencyFund float64 `json:"emergency_fund"`
	DebtRatio     float64 `json:"debt_ratio"`
	SavingsRate   float64 `json:"savings_rate"`
	Investment    float64 `json:"investment"`
}

// HealthInput carries the monthly figures the score is computed from.
type HealthInput struct {
	MonthlyIncome       float64
	MonthlyExpenses     float64
	MonthlyDebtPayments float64
	TotalInvestments    float64
	TotalIncome         float64
}

// FinancialHealth computes the composite score. It is only meaningful when
// both monthly income and expenses are positive; with partial data it
// reports a neutral 40, and with no data at all it reports 0.
func FinancialHealth(input HealthInput) HealthScore {
	if input.MonthlyIncome <= 0 || input.MonthlyExpenses <= 0 {
		if input.TotalIncome > 0 || input.MonthlyIncome > 0 || input.TotalInvestments > 0 {
			return HealthScore{Score: neutralHealthScore}
		}
		return HealthScore{}
	}

	surplus := input.MonthlyIncome - input.MonthlyExpenses - input.MonthlyDebtPayments

	// Three months of expenses covered by surplus maxes the component.
	emergencyFund := clamp(surplus/input.MonthlyExpenses/3*25, 0, 25)

	debtRatio := math.Max(25-(input.MonthlyDebtPayments/input.MonthlyIncome)*100, 0)

	// A 50% savings rate caps the component.
	savingsRate := clamp(surplus/input.MonthlyIncome*100/2, 0, 25)

	investment := math.Min(input.TotalInvestments/math.Max(input.MonthlyIncome*12, 1000)*100, 25)

	total := math.Round(emergencyFund + debtRatio + savingsRate + investment)
	if total > 100 {
		total = 100
	}

	return HealthScore{
		Score:         int(total),
		HasData:       true,
		EmergencyFund: emergencyFund,
		DebtRatio:     debtRatio,
		SavingsRate:   savingsRate,
		Investment:    investment,
	}
}

// NetWorth is total income plus investments minus expenses and debt.
func NetWorth(totalIncome, totalInvestments, totalExpenses, totalDebt float64) float64 {
	return totalIncome + totalInvestments - totalExpenses - totalDebt
}

// CashFlow is the monthly surplus after expenses and debt payments.
func CashFlow(monthlyIncome, monthlyExpenses, monthlyDebtPayments float64) float64 {
	return monthlyIncome - monthlyExpenses - monthlyDebtPayments
}

// SavingsRate is net monthly savings as a fraction of monthly income, 0
// when there is no income.
func SavingsRate(netMonthlySavings, monthlyIncome float64) float64 {
	if monthlyIncome == 0 {
		return 0
	}
	return netMonthlySavings / monthlyIncome
}

func clamp(value, low, high float64) float64 {
	return math.Min(math.Max(value, low), high)
}
