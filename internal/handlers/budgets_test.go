package handlers

import (
	"testing"

	"example.com/finance-tracker/backend/internal/models"
)

// TestToBudgetResponse checks derived figures are attached to the row.
func TestToBudgetResponse(t *testing.T) {
	budget := models.Budget{
		Amount:         1000,
		Spent:          1200,
		RolloverAmount: 100,
	}

	got := toBudgetResponse(budget)

	if got.Remaining != 0 {
		t.Fatalf("expected remaining 0, got %v", got.Remaining)
	}
	if got.Progress != 120 {
		t.Fatalf("expected progress 120, got %v", got.Progress)
	}
	if !got.Exceeded {
		t.Fatal("expected exceeded")
	}
}

// TestBoolValue checks the alert flag default.
func TestBoolValue(t *testing.T) {
	if !boolValue(nil, true) {
		t.Fatal("expected fallback true")
	}

	off := false
	if boolValue(&off, true) {
		t.Fatal("expected explicit false to win")
	}
}
