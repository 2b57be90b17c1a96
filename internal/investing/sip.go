package investing

import "example.com/finance-tracker/backend/internal/models"

// SIPMetrics summarizes a systematic investment plan's transactions.
type SIPMetrics struct {
	TotalInvested float64 `json:"total_invested"`
	TotalUnits    float64 `json:"total_units"`
	AverageNAV    float64 `json:"average_nav"`
	PnLAmount     float64 `json:"pnl_amount"`
	PnLPercent    float64 `json:"pnl_percent"`
}

// SIP totals the transactions and compares them against the current value.
// No transactions yields the zero struct.
func SIP(transactions []models.SIPTransaction, currentValue float64) SIPMetrics {
	var metrics SIPMetrics
	if len(transactions) == 0 {
		return metrics
	}

	for _, transaction := range transactions {
		metrics.TotalInvested += transaction.Amount
		metrics.TotalUnits += transaction.Units
	}

	if metrics.TotalInvested > 0 && metrics.TotalUnits > 0 {
		metrics.AverageNAV = metrics.TotalInvested / metrics.TotalUnits
	}

	pnl := ProfitAndLoss(currentValue, metrics.TotalInvested)
	metrics.PnLAmount = pnl.Amount
	metrics.PnLPercent = pnl.Percent
	return metrics
}
