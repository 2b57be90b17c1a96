package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func rangeContext(from, to string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest("GET", "/api/v1/expenses?from="+from+"&to="+to, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

// TestParseDateRangeValid checks a bounded range parses.
func TestParseDateRangeValid(t *testing.T) {
	from, to, bounded, err := parseDateRange(rangeContext("2024-01-01", "2024-01-31"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !bounded {
		t.Fatal("expected bounded range")
	}

	if from.Format(dateLayout) != "2024-01-01" {
		t.Fatalf("unexpected from: %s", from.Format(dateLayout))
	}
	if to.Format(dateLayout) != "2024-01-31" {
		t.Fatalf("unexpected to: %s", to.Format(dateLayout))
	}
}

// TestParseDateRangeAbsent checks that no params means no bounds.
func TestParseDateRangeAbsent(t *testing.T) {
	_, _, bounded, err := parseDateRange(rangeContext("", ""))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if bounded {
		t.Fatal("expected unbounded range")
	}
}

// TestParseDateRangeInvalid checks malformed and inverted ranges fail.
func TestParseDateRangeInvalid(t *testing.T) {
	if _, _, _, err := parseDateRange(rangeContext("2024-01-01", "")); err == nil {
		t.Fatal("expected error for half-open range")
	}

	if _, _, _, err := parseDateRange(rangeContext("2024/01/01", "2024-01-31")); err == nil {
		t.Fatal("expected error for invalid from format")
	}

	if _, _, _, err := parseDateRange(rangeContext("2024-02-01", "2024-01-31")); err == nil {
		t.Fatal("expected error for to before from")
	}
}

// TestFormatFloat checks CSV amounts keep two decimals.
func TestFormatFloat(t *testing.T) {
	if got := formatFloat(1234.5); got != "1234.50" {
		t.Fatalf("expected 1234.50, got %s", got)
	}
}
