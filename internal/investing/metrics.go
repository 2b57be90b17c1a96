package investing

import (
	"math"
	"time"

	"example.com/finance-tracker/backend/internal/models"
)

const daysPerYear = 365.25

// CAGR returns the compound annual growth rate as a percentage. Degenerate
// inputs (non-positive values, non-positive duration) return 0 rather than
// Inf or NaN. The elapsed time is floored at one day.
func CAGR(initial, final float64, start, end time.Time) float64 {
	if initial <= 0 || final <= 0 {
		return 0
	}

	days := end.Sub(start).Hours() / 24
	if days < 1 {
		days = 1
	}
	years := days / daysPerYear
	if years <= 0 {
		return 0
	}

	return (math.Pow(final/initial, 1/years) - 1) * 100
}

// PnL is an absolute and relative profit/loss pair.
type PnL struct {
	Amount  float64 `json:"amount"`
	Percent float64 `json:"percent"`
}

// ProfitAndLoss compares current value against invested amount. Percent is
// 0 when nothing was invested.
func ProfitAndLoss(currentValue, investedAmount float64) PnL {
	pnl := PnL{Amount: currentValue - investedAmount}
	if investedAmount > 0 {
		pnl.Percent = pnl.Amount / investedAmount * 100
	}
	return pnl
}

// PortfolioSummary aggregates a whole investment list.
type PortfolioSummary struct {
	TotalInvested   float64 `json:"total_invested"`
	TotalCurrent    float64 `json:"total_current"`
	Count           int     `json:"count"`
	SIPCount        int     `json:"sip_count"`
	SIPInvested     float64 `json:"sip_invested"`
	SIPCurrentValue float64 `json:"sip_current_value"`
	TotalPnL        float64 `json:"total_pnl"`
	PnLPercent      float64 `json:"pnl_percent"`
}

// Portfolio totals invested/current value with SIP sub-totals. Empty input
// yields the zero summary.
func Portfolio(investments []models.Investment) PortfolioSummary {
	var summary PortfolioSummary

	for _, investment := range investments {
		summary.TotalInvested += investment.InvestedAmount
		summary.TotalCurrent += investment.CurrentValue
		summary.Count++

		if investment.IsSIP {
			summary.SIPCount++
			summary.SIPInvested += investment.InvestedAmount
			summary.SIPCurrentValue += investment.CurrentValue
		}
	}

	pnl := ProfitAndLoss(summary.TotalCurrent, summary.TotalInvested)
	summary.TotalPnL = pnl.Amount
	summary.PnLPercent = pnl.Percent
	return summary
}
