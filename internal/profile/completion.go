package profile

import (
	"math"

	"example.com/finance-tracker/backend/internal/models"
)

// Sections is the coarse three-section view used by the collapsible
// profile UI. It is derived from the same fields as the percentage.
type Sections struct {
	BasicInfo      bool `json:"basic_info"`
	ContactDetails bool `json:"contact_details"`
	FinancialInfo  bool `json:"financial_info"`
}

// Completion reports how filled-in a user profile is.
type Completion struct {
	Percent       int      `json:"percent"`
	CompletedKeys []string `json:"completed_keys"`
	MissingKeys   []string `json:"missing_keys"`
	Sections      Sections `json:"sections"`
}

// Complete scores a profile over eight equally weighted presence checks,
// rounded to the nearest percent.
func Complete(user models.User) Completion {
	checks := []struct {
		key     string
		present bool
	}{
		{"name", hasText(user.Name)},
		{"email", user.Email != ""},
		{"phone", hasText(user.Phone)},
		{"address", hasText(user.Address.Street) || hasText(user.Address.City)},
		{"monthly_income", user.MonthlyIncome > 0},
		{"occupation", hasText(user.Occupation)},
		{"date_of_birth", user.DateOfBirth != nil},
		{"profile_image", hasText(user.ProfileImage)},
	}

	completion := Completion{
		CompletedKeys: make([]string, 0, len(checks)),
		MissingKeys:   make([]string, 0, len(checks)),
	}

	completed := 0
	for _, check := range checks {
		if check.present {
			completed++
			completion.CompletedKeys = append(completion.CompletedKeys, check.key)
		} else {
			completion.MissingKeys = append(completion.MissingKeys, check.key)
		}
	}

	completion.Percent = int(math.Round(float64(completed) / float64(len(checks)) * 100))
	completion.Sections = Sections{
		BasicInfo:      hasText(user.Name) && user.DateOfBirth != nil && hasText(user.Occupation),
		ContactDetails: user.Email != "" && hasText(user.Phone) && (hasText(user.Address.Street) || hasText(user.Address.City)),
		FinancialInfo:  user.MonthlyIncome > 0,
	}

	return completion
}

func hasText(value *string) bool {
	return value != nil && *value != ""
}
