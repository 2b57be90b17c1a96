package handlers

import (
	"encoding/json"
	"strings"
	"testing"
)

// TestOverviewResponseInvestmentField checks the investment total is labeled
// as a current value, not as the amount put in.
func TestOverviewResponseInvestmentField(t *testing.T) {
	data, err := json.Marshal(OverviewResponse{TotalInvestmentValue: 5000})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	body := string(data)
	if !strings.Contains(body, `"total_investment_value":5000`) {
		t.Fatalf("expected total_investment_value field, got %s", body)
	}
	if strings.Contains(body, `"total_invested"`) {
		t.Fatalf("unexpected total_invested field: %s", body)
	}
}
