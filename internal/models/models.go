package models

import (
	"time"

	"github.com/google/uuid"
)

type NeedOrWant string

type IncomeFrequency string

type InvestmentType string

type RiskLevel string

type SIPFrequency string

type BudgetPriority string

const (
	NeedOrWantNeed   NeedOrWant = "need"
	NeedOrWantWant   NeedOrWant = "want"
	NeedOrWantUnsure NeedOrWant = "unsure"

	FrequencyOneTime IncomeFrequency = "one-time"
	FrequencyWeekly  IncomeFrequency = "weekly"
	FrequencyMonthly IncomeFrequency = "monthly"
	FrequencyYearly  IncomeFrequency = "yearly"

	InvestmentTypeStocks       InvestmentType = "stocks"
	InvestmentTypeMutualFunds  InvestmentType = "mutual-funds"
	InvestmentTypeCrypto       InvestmentType = "crypto"
	InvestmentTypeGold         InvestmentType = "gold"
	InvestmentTypeRealEstate   InvestmentType = "real-estate"
	InvestmentTypeFixedDeposit InvestmentType = "fixed-deposit"
	InvestmentTypeOther        InvestmentType = "other"

	RiskLevelLow      RiskLevel = "low"
	RiskLevelModerate RiskLevel = "moderate"
	RiskLevelHigh     RiskLevel = "high"

	SIPFrequencyMonthly   SIPFrequency = "monthly"
	SIPFrequencyQuarterly SIPFrequency = "quarterly"
	SIPFrequencyYearly    SIPFrequency = "yearly"

	PriorityLow    BudgetPriority = "low"
	PriorityMedium BudgetPriority = "medium"
	PriorityHigh   BudgetPriority = "high"
)

// DefaultCategory is used when an expense arrives without a category.
const DefaultCategory = "Other"

type Address struct {
	Street     *string `json:"street,omitempty"`
	City       *string `json:"city,omitempty"`
	State      *string `json:"state,omitempty"`
	PostalCode *string `json:"postal_code,omitempty"`
}

type User struct {
	ID            uuid.UUID  `json:"id"`
	Email         string     `json:"email"`
	PasswordHash  string     `json:"-"`
	Name          *string    `json:"name,omitempty"`
	Phone         *string    `json:"phone,omitempty"`
	Occupation    *string    `json:"occupation,omitempty"`
	MonthlyIncome float64    `json:"monthly_income"`
	DateOfBirth   *time.Time `json:"date_of_birth,omitempty"`
	ProfileImage  *string    `json:"profile_image,omitempty"`
	Address       Address    `json:"address"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type Expense struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Amount      float64    `json:"amount"`
	Category    string     `json:"category"`
	Description *string    `json:"description,omitempty"`
	Date        time.Time  `json:"date"`
	NeedOrWant  NeedOrWant `json:"need_or_want"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type Income struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Amount    float64         `json:"amount"`
	Category  string          `json:"category"`
	Source    string          `json:"source"`
	Frequency IncomeFrequency `json:"frequency"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type Debt struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	Name           string     `json:"name"`
	OriginalAmount float64    `json:"original_amount"`
	CurrentBalance float64    `json:"current_balance"`
	InterestRate   float64    `json:"interest_rate"`
	MinimumPayment float64    `json:"minimum_payment"`
	DueDate        *time.Time `json:"due_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type Investment struct {
	ID             uuid.UUID      `json:"id"`
	UserID         uuid.UUID      `json:"user_id"`
	Name           string         `json:"name"`
	Type           InvestmentType `json:"type"`
	TickerSymbol   *string        `json:"ticker_symbol,omitempty"`
	Sector         *string        `json:"sector,omitempty"`
	Category       *string        `json:"category,omitempty"`
	RiskLevel      RiskLevel      `json:"risk_level"`
	InvestedAmount float64        `json:"invested_amount"`
	CurrentValue   float64        `json:"current_value"`
	PurchaseDate   time.Time      `json:"purchase_date"`
	IsSIP          bool           `json:"is_sip"`
	SIPAmount      *float64       `json:"sip_amount,omitempty"`
	SIPStartDate   *time.Time     `json:"sip_start_date,omitempty"`
	SIPFrequency   *SIPFrequency  `json:"sip_frequency,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

type SIPTransaction struct {
	ID           uuid.UUID `json:"id"`
	InvestmentID uuid.UUID `json:"investment_id"`
	Amount       float64   `json:"amount"`
	Units        float64   `json:"units"`
	NAV          float64   `json:"nav"`
	Date         time.Time `json:"date"`
	CreatedAt    time.Time `json:"created_at"`
}

type Budget struct {
	ID              uuid.UUID      `json:"id"`
	UserID          uuid.UUID      `json:"user_id"`
	Name            string         `json:"name"`
	Category        string         `json:"category"`
	Amount          float64        `json:"amount"`
	Spent           float64        `json:"spent"`
	StartDate       time.Time      `json:"start_date"`
	EndDate         time.Time      `json:"end_date"`
	IsRecurring     bool           `json:"is_recurring"`
	RolloverEnabled bool           `json:"rollover_enabled"`
	RolloverAmount  float64        `json:"rollover_amount"`
	Alert50         bool           `json:"alert_50"`
	Alert75         bool           `json:"alert_75"`
	Alert100        bool           `json:"alert_100"`
	AlertExceeded   bool           `json:"alert_exceeded"`
	Priority        BudgetPriority `json:"priority"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

type RefreshToken struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	TokenHash  string     `json:"-"`
	ExpiresAt  time.Time  `json:"expires_at"`
	CreatedAt  time.Time  `json:"created_at"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty"`
	ReplacedBy *uuid.UUID `json:"replaced_by,omitempty"`
}
