package budgeting

import (
	"testing"
	"time"
)

// TestValidateOK checks a well-formed budget passes.
func TestValidateOK(t *testing.T) {
	result := Validate(Input{
		Name:      "Groceries",
		Category:  "Food",
		Amount:    1000,
		StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	})

	if !result.Valid || len(result.Errors) != 0 {
		t.Fatalf("expected valid, got %+v", result)
	}
}

// TestValidateBlamesFields checks every violation names its field.
func TestValidateBlamesFields(t *testing.T) {
	result := Validate(Input{Amount: -5})

	if result.Valid {
		t.Fatal("expected invalid result")
	}

	fields := make(map[string]bool, len(result.Errors))
	for _, fieldError := range result.Errors {
		fields[fieldError.Field] = true
	}

	for _, want := range []string{"name", "category", "amount", "start_date", "end_date"} {
		if !fields[want] {
			t.Fatalf("expected error for field %s, got %+v", want, result.Errors)
		}
	}
}

// TestValidateDateOrder checks start must precede end.
func TestValidateDateOrder(t *testing.T) {
	result := Validate(Input{
		Name:      "Rent",
		Category:  "Housing",
		Amount:    1,
		StartDate: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})

	if result.Valid {
		t.Fatal("expected invalid result")
	}
	if len(result.Errors) != 1 || result.Errors[0].Field != "end_date" {
		t.Fatalf("expected single end_date error, got %+v", result.Errors)
	}
}
