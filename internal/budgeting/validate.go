package budgeting

import (
	"strings"
	"time"
)

// Input carries the user-supplied budget fields to validate.
type Input struct {
	Name      string
	Category  string
	Amount    float64
	StartDate time.Time
	EndDate   time.Time
}

// FieldError blames a specific form field, so callers route messages
// without matching on message text.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult is returned instead of an error; validation never fails
// the request pipeline.
type ValidationResult struct {
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors,omitempty"`
}

// Validate checks budget input and reports every violated field.
func Validate(input Input) ValidationResult {
	var errs []FieldError

	if strings.TrimSpace(input.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	if strings.TrimSpace(input.Category) == "" {
		errs = append(errs, FieldError{Field: "category", Message: "category is required"})
	}
	if input.Amount <= 0 {
		errs = append(errs, FieldError{Field: "amount", Message: "amount must be greater than 0"})
	}
	if input.StartDate.IsZero() {
		errs = append(errs, FieldError{Field: "start_date", Message: "start date is required"})
	}
	if input.EndDate.IsZero() {
		errs = append(errs, FieldError{Field: "end_date", Message: "end date is required"})
	}
	if !input.StartDate.IsZero() && !input.EndDate.IsZero() && !input.StartDate.Before(input.EndDate) {
		errs = append(errs, FieldError{Field: "end_date", Message: "end date must be after start date"})
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}
