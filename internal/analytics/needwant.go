package analytics

import (
	"strings"

	"example.com/finance-tracker/backend/internal/models"
)

// NeedWantSplit is the three-way amount distribution for the
// need/want/unsure chart.
type NeedWantSplit struct {
	Need   float64 `json:"need"`
	Want   float64 `json:"want"`
	Unsure float64 `json:"unsure"`
}

// Two classification rules exist: the expense analytics view trusts the
// per-record field, the dashboard view derives the bucket from the
// category name. They must not be unified.

var needCategories = map[string]struct{}{
	"food":       {},
	"groceries":  {},
	"healthcare": {},
	"utilities":  {},
	"transport":  {},
	"rent":       {},
	"housing":    {},
}

var wantCategories = map[string]struct{}{
	"entertainment": {},
	"shopping":      {},
	"dining":        {},
	"travel":        {},
	"hobbies":       {},
	"games":         {},
}

// ClassifyByField splits expenses on their need_or_want field; records
// without the field count as need.
func ClassifyByField(expenses []models.Expense) NeedWantSplit {
	var split NeedWantSplit

	for _, expense := range expenses {
		switch expense.NeedOrWant {
		case models.NeedOrWantWant:
			split.Want += expense.Amount
		case models.NeedOrWantUnsure:
			split.Unsure += expense.Amount
		default:
			split.Need += expense.Amount
		}
	}

	return split
}

// ClassifyByCategoryKeyword splits expenses on a fixed keyword mapping over
// the lower-cased category; unknown categories land in unsure.
func ClassifyByCategoryKeyword(expenses []models.Expense) NeedWantSplit {
	var split NeedWantSplit

	for _, expense := range expenses {
		category := strings.ToLower(strings.TrimSpace(expense.Category))
		switch {
		case isKeyword(category, needCategories):
			split.Need += expense.Amount
		case isKeyword(category, wantCategories):
			split.Want += expense.Amount
		default:
			split.Unsure += expense.Amount
		}
	}

	return split
}

func isKeyword(category string, bucket map[string]struct{}) bool {
	_, ok := bucket[category]
	return ok
}
