package money

import (
	"testing"
	"time"
)

// TestFormatAmountIndianGrouping checks the Indian numbering system grouping.
func TestFormatAmountIndianGrouping(t *testing.T) {
	cases := map[float64]string{
		0:          "₹0.00",
		999:        "₹999.00",
		1000:       "₹1,000.00",
		123456.78:  "₹1,23,456.78",
		1234567.89: "₹12,34,567.89",
		12345678:   "₹1,23,45,678.00",
	}

	for value, want := range cases {
		if got := FormatAmount(value); got != want {
			t.Fatalf("FormatAmount(%v) = %s, want %s", value, got, want)
		}
	}
}

// TestFormatAmountNegative checks the sign placement for negative amounts.
func TestFormatAmountNegative(t *testing.T) {
	if got := FormatAmount(-1500.5); got != "-₹1,500.50" {
		t.Fatalf("unexpected negative formatting: %s", got)
	}
}

// TestCurrencySymbolFallback checks unknown codes fall back to the code.
func TestCurrencySymbolFallback(t *testing.T) {
	if got := CurrencySymbol("INR"); got != "₹" {
		t.Fatalf("expected rupee symbol, got %s", got)
	}

	if got := CurrencySymbol("ZZZ"); got != "ZZZ" {
		t.Fatalf("expected code fallback, got %s", got)
	}
}

// TestFormatPercent checks two-decimal percent rendering.
func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(33.333); got != "33.33%" {
		t.Fatalf("unexpected percent: %s", got)
	}
}

// TestMonthLabel checks bucket key to label conversion.
func TestMonthLabel(t *testing.T) {
	if got := MonthLabel("2024-03"); got != "Mar 2024" {
		t.Fatalf("unexpected label: %s", got)
	}

	if got := MonthLabel("garbage"); got != "garbage" {
		t.Fatalf("expected passthrough for bad key, got %s", got)
	}
}

// TestBucketKeys checks day and month key formats.
func TestBucketKeys(t *testing.T) {
	ts := time.Date(2024, 3, 7, 15, 4, 5, 0, time.UTC)

	if got := DayKey(ts); got != "2024-03-07" {
		t.Fatalf("unexpected day key: %s", got)
	}
	if got := MonthKey(ts); got != "2024-03" {
		t.Fatalf("unexpected month key: %s", got)
	}
}
