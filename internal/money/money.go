package money

import (
	"strings"
	"time"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

const (
	// DefaultCurrency is the display currency for all amounts.
	DefaultCurrency = "INR"

	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"
	labelLayout = "Jan 2006"
)

// CurrencySymbol returns the display symbol for an ISO currency code.
// Unknown codes fall back to the code itself.
func CurrencySymbol(code string) string {
	currency := gomoney.GetCurrency(strings.ToUpper(strings.TrimSpace(code)))
	if currency == nil || currency.Grapheme == "" {
		return code
	}
	return currency.Grapheme
}

// FormatAmount renders an amount with the ₹ prefix and Indian-system
// digit grouping, always with two decimal places.
func FormatAmount(value float64) string {
	return FormatAmountIn(value, DefaultCurrency)
}

// FormatAmountIn renders an amount with the given currency's symbol.
func FormatAmountIn(value float64, code string) string {
	symbol := CurrencySymbol(code)

	negative := value < 0
	if negative {
		value = -value
	}

	fixed := decimal.NewFromFloat(value).StringFixed(2)
	integer, fraction, _ := strings.Cut(fixed, ".")

	grouped := groupIndian(integer)
	if negative {
		return "-" + symbol + grouped + "." + fraction
	}
	return symbol + grouped + "." + fraction
}

// FormatPercent renders a percentage with two decimal places.
func FormatPercent(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(2) + "%"
}

// groupIndian inserts commas in the Indian numbering system: the last
// three digits form one group, the rest are grouped in pairs
// (1234567 -> 12,34,567).
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	parts = append(parts, tail)

	return strings.Join(parts, ",")
}

// DayKey returns the daily bucket key for a timestamp.
func DayKey(t time.Time) string {
	return t.Format(dayLayout)
}

// MonthKey returns the monthly bucket key for a timestamp.
func MonthKey(t time.Time) string {
	return t.Format(monthLayout)
}

// MonthLabel converts a monthly bucket key into its display label
// ("2024-03" -> "Mar 2024"). Unparseable keys are returned unchanged.
func MonthLabel(key string) string {
	t, err := time.Parse(monthLayout, key)
	if err != nil {
		return key
	}
	return t.Format(labelLayout)
}
