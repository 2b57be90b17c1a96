package investing

import "example.com/finance-tracker/backend/internal/models"

var typeDisplayNames = map[models.InvestmentType]string{
	models.InvestmentTypeStocks:       "Stocks",
	models.InvestmentTypeMutualFunds:  "Mutual Funds",
	models.InvestmentTypeCrypto:       "Cryptocurrency",
	models.InvestmentTypeGold:         "Gold",
	models.InvestmentTypeRealEstate:   "Real Estate",
	models.InvestmentTypeFixedDeposit: "Fixed Deposit",
	models.InvestmentTypeOther:        "Other",
}

var riskLevelColors = map[models.RiskLevel]string{
	models.RiskLevelLow:      "green",
	models.RiskLevelModerate: "yellow",
	models.RiskLevelHigh:     "red",
}

// TypeDisplayName maps an investment type to its display label. Unknown
// types fall back to the raw value.
func TypeDisplayName(investmentType models.InvestmentType) string {
	if name, ok := typeDisplayNames[investmentType]; ok {
		return name
	}
	return string(investmentType)
}

// RiskLevelColor maps a risk level to its chart color, defaulting to gray.
func RiskLevelColor(riskLevel models.RiskLevel) string {
	if color, ok := riskLevelColors[riskLevel]; ok {
		return color
	}
	return "gray"
}

// PnLColor returns the display color for a profit/loss value.
func PnLColor(value float64) string {
	switch {
	case value > 0:
		return "green"
	case value < 0:
		return "red"
	default:
		return "gray"
	}
}
