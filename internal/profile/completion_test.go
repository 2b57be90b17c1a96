package profile

import (
	"testing"
	"time"

	"example.com/finance-tracker/backend/internal/models"
)

func strPtr(value string) *string { return &value }

// TestCompleteTwoOfEight checks name+email scores 25%.
func TestCompleteTwoOfEight(t *testing.T) {
	user := models.User{
		Email: "user@example.com",
		Name:  strPtr("Priya"),
	}

	got := Complete(user)

	if got.Percent != 25 {
		t.Fatalf("expected 25, got %d", got.Percent)
	}
	if len(got.CompletedKeys) != 2 || len(got.MissingKeys) != 6 {
		t.Fatalf("unexpected key split: %+v", got)
	}
}

// TestCompleteEmpty checks a blank profile scores 0.
func TestCompleteEmpty(t *testing.T) {
	got := Complete(models.User{})

	if got.Percent != 0 {
		t.Fatalf("expected 0, got %d", got.Percent)
	}
	if got.Sections.BasicInfo || got.Sections.ContactDetails || got.Sections.FinancialInfo {
		t.Fatalf("expected all sections incomplete, got %+v", got.Sections)
	}
}

// TestCompleteFull checks a fully filled profile scores 100 with all
// sections complete.
func TestCompleteFull(t *testing.T) {
	dob := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)
	user := models.User{
		Email:         "user@example.com",
		Name:          strPtr("Priya"),
		Phone:         strPtr("+91 98765 43210"),
		Occupation:    strPtr("Engineer"),
		MonthlyIncome: 120000,
		DateOfBirth:   &dob,
		ProfileImage:  strPtr("https://example.com/p.png"),
		Address:       models.Address{City: strPtr("Pune")},
	}

	got := Complete(user)

	if got.Percent != 100 {
		t.Fatalf("expected 100, got %d", got.Percent)
	}
	if !got.Sections.BasicInfo || !got.Sections.ContactDetails || !got.Sections.FinancialInfo {
		t.Fatalf("expected all sections complete, got %+v", got.Sections)
	}
}

// TestCompleteSectionsConsistent checks the address check feeds both the
// percentage and the contact section.
func TestCompleteSectionsConsistent(t *testing.T) {
	user := models.User{
		Email:   "user@example.com",
		Phone:   strPtr("12345"),
		Address: models.Address{Street: strPtr("MG Road")},
	}

	got := Complete(user)

	if !got.Sections.ContactDetails {
		t.Fatalf("expected contact section complete, got %+v", got.Sections)
	}
	// email + phone + address = 3 of 8 -> 37.5 rounds to 38.
	if got.Percent != 38 {
		t.Fatalf("expected 38, got %d", got.Percent)
	}
}
