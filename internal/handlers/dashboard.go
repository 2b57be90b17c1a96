package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"example.com/finance-tracker/backend/internal/analytics"
	"example.com/finance-tracker/backend/internal/auth"
	"example.com/finance-tracker/backend/internal/budgeting"
	"example.com/finance-tracker/backend/internal/money"
	"example.com/finance-tracker/backend/internal/repository"
)

type DashboardHandler struct {
	Users       *repository.UserRepository
	Expenses    *repository.ExpenseRepository
	Incomes     *repository.IncomeRepository
	Debts       *repository.DebtRepository
	Investments *repository.InvestmentRepository
}

// NewDashboardHandler creates the dashboard handler.
func NewDashboardHandler(
	users *repository.UserRepository,
	expenses *repository.ExpenseRepository,
	incomes *repository.IncomeRepository,
	debts *repository.DebtRepository,
	investments *repository.InvestmentRepository,
) *DashboardHandler {
	return &DashboardHandler{
		Users:       users,
		Expenses:    expenses,
		Incomes:     incomes,
		Debts:       debts,
		Investments: investments,
	}
}

type OverviewResponse struct {
	TotalIncome          float64               `json:"total_income"`
	TotalExpenses        float64               `json:"total_expenses"`
	TotalInvestmentValue float64               `json:"total_investment_value"`
	TotalDebt            float64               `json:"total_debt"`
	MonthlyIncome        float64               `json:"monthly_income"`
	MonthlyExpenses      float64               `json:"monthly_expenses"`
	NetWorth             float64               `json:"net_worth"`
	CashFlow             float64               `json:"cash_flow"`
	SavingsRate          float64               `json:"savings_rate"`
	Health               analytics.HealthScore `json:"health"`
	Display              OverviewDisplay       `json:"display"`
}

// OverviewDisplay carries the pre-formatted strings the dashboard renders
// verbatim.
type OverviewDisplay struct {
	NetWorth        string `json:"net_worth"`
	CashFlow        string `json:"cash_flow"`
	MonthlyIncome   string `json:"monthly_income"`
	MonthlyExpenses string `json:"monthly_expenses"`
	SavingsRate     string `json:"savings_rate"`
}

type TrendsResponse struct {
	DailyTrend    []analytics.TrendPoint    `json:"daily_trend"`
	MonthlyFlow   []analytics.MonthFlow     `json:"monthly_flow"`
	Distribution  []analytics.CategorySlice `json:"distribution"`
	NeedWantSplit analytics.NeedWantSplit   `json:"need_want_split"`
}

// Overview returns totals, net worth, cash flow, savings rate and the
// financial health score. Empty data sets degrade to zeros.
func (h *DashboardHandler) Overview(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	ctx := c.Request().Context()

	user, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		return serverError(c)
	}

	totalIncome, err := h.Incomes.Total(ctx, userID)
	if err != nil {
		return serverError(c)
	}

	totalExpenses, err := h.Expenses.Total(ctx, userID)
	if err != nil {
		return serverError(c)
	}

	debtTotals, err := h.Debts.Totals(ctx, userID)
	if err != nil {
		return serverError(c)
	}

	investments, err := h.Investments.ListByUser(ctx, userID)
	if err != nil {
		return serverError(c)
	}

	// Current market value, not the amount originally put in.
	var totalInvestmentValue float64
	for _, investment := range investments {
		totalInvestmentValue += investment.CurrentValue
	}

	monthStart, monthEnd := budgeting.MonthRange(time.Now())

	monthlyIncome, err := h.Incomes.SumBetween(ctx, userID, monthStart, monthEnd)
	if err != nil {
		return serverError(c)
	}
	// A salary recorded in the profile stands in for months without
	// income records.
	if monthlyIncome == 0 {
		monthlyIncome = user.MonthlyIncome
	}

	monthlyExpenses, err := h.Expenses.SumBetween(ctx, userID, monthStart, monthEnd)
	if err != nil {
		return serverError(c)
	}

	netWorth := analytics.NetWorth(totalIncome, totalInvestmentValue, totalExpenses, debtTotals.TotalBalance)
	cashFlow := analytics.CashFlow(monthlyIncome, monthlyExpenses, debtTotals.TotalMinimumPayment)
	savingsRate := analytics.SavingsRate(cashFlow, monthlyIncome)

	health := analytics.FinancialHealth(analytics.HealthInput{
		MonthlyIncome:       monthlyIncome,
		MonthlyExpenses:     monthlyExpenses,
		MonthlyDebtPayments: debtTotals.TotalMinimumPayment,
		TotalInvestments:    totalInvestmentValue,
		TotalIncome:         totalIncome,
	})

	return c.JSON(http.StatusOK, OverviewResponse{
		TotalIncome:          totalIncome,
		TotalExpenses:        totalExpenses,
		TotalInvestmentValue: totalInvestmentValue,
		TotalDebt:            debtTotals.TotalBalance,
		MonthlyIncome:        monthlyIncome,
		MonthlyExpenses:      monthlyExpenses,
		NetWorth:             netWorth,
		CashFlow:             cashFlow,
		SavingsRate:          savingsRate,
		Health:               health,
		Display: OverviewDisplay{
			NetWorth:        money.FormatAmount(netWorth),
			CashFlow:        money.FormatAmount(cashFlow),
			MonthlyIncome:   money.FormatAmount(monthlyIncome),
			MonthlyExpenses: money.FormatAmount(monthlyExpenses),
			SavingsRate:     money.FormatPercent(savingsRate),
		},
	})
}

// Trends returns the daily spending trend, the six-month income/expense
// flow, the category distribution and the keyword-driven need/want split.
func (h *DashboardHandler) Trends(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	days := 7
	if raw := strings.TrimSpace(c.QueryParam("days")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return badRequest(c, "invalid days")
		}
		if parsed > 90 {
			parsed = 90
		}
		days = parsed
	}

	ctx := c.Request().Context()

	expenses, err := h.Expenses.ListByUser(ctx, userID)
	if err != nil {
		return serverError(c)
	}

	incomes, err := h.Incomes.ListByUser(ctx, userID)
	if err != nil {
		return serverError(c)
	}

	now := time.Now()

	return c.JSON(http.StatusOK, TrendsResponse{
		DailyTrend:    analytics.DailyTrend(expenses, days, now),
		MonthlyFlow:   analytics.IncomeExpenseTrend(incomes, expenses, 6, now),
		Distribution:  analytics.CategoryDistribution(expenses),
		NeedWantSplit: analytics.ClassifyByCategoryKeyword(expenses),
	})
}
