package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/finance-tracker/backend/internal/analytics"
	"example.com/finance-tracker/backend/internal/auth"
	"example.com/finance-tracker/backend/internal/models"
	"example.com/finance-tracker/backend/internal/repository"
)

const dateLayout = "2006-01-02"

type ExpenseHandler struct {
	Expenses *repository.ExpenseRepository
}

// NewExpenseHandler creates the expense handler.
func NewExpenseHandler(expenses *repository.ExpenseRepository) *ExpenseHandler {
	return &ExpenseHandler{Expenses: expenses}
}

type ExpenseRequest struct {
	Amount      float64 `json:"amount" validate:"gte=0"`
	Category    string  `json:"category" validate:"max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Date        string  `json:"date" validate:"required"`
	NeedOrWant  string  `json:"need_or_want" validate:"omitempty,oneof=need want unsure"`
}

type ExpenseAnalyticsResponse struct {
	Insights        []analytics.CategoryInsight `json:"insights"`
	NeedWantSplit   analytics.NeedWantSplit     `json:"need_want_split"`
	MonthlySpending []analytics.MonthPoint      `json:"monthly_spending"`
}

// List returns the user's expenses, optionally bounded by from/to dates.
func (h *ExpenseHandler) List(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	from, to, bounded, err := parseDateRange(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	var expenses []models.Expense
	if bounded {
		expenses, err = h.Expenses.ListByUserBetween(c.Request().Context(), userID, from, to)
	} else {
		expenses, err = h.Expenses.ListByUser(c.Request().Context(), userID)
	}
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, map[string][]models.Expense{"expenses": expenses})
}

// Create records an expense.
func (h *ExpenseHandler) Create(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	expense, err := h.bindExpense(c, userID)
	if err != nil {
		return badRequest(c, err.Error())
	}

	created, err := h.Expenses.Create(c.Request().Context(), expense)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusCreated, created)
}

// Update replaces an expense.
func (h *ExpenseHandler) Update(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid expense id")
	}

	expense, err := h.bindExpense(c, userID)
	if err != nil {
		return badRequest(c, err.Error())
	}
	expense.ID = expenseID

	updated, err := h.Expenses.Update(c.Request().Context(), userID, expense)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "expense not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, updated)
}

// Delete removes an expense.
func (h *ExpenseHandler) Delete(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid expense id")
	}

	if err := h.Expenses.Delete(c.Request().Context(), userID, expenseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "expense not found")
		}
		return serverError(c)
	}

	return c.NoContent(http.StatusNoContent)
}

// Analytics returns category insights, the field-driven need/want split and
// the monthly spending series over the user's expenses.
func (h *ExpenseHandler) Analytics(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	expenses, err := h.Expenses.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, ExpenseAnalyticsResponse{
		Insights:        analytics.CategoryInsights(expenses),
		NeedWantSplit:   analytics.ClassifyByField(expenses),
		MonthlySpending: analytics.MonthlySpending(expenses),
	})
}

func (h *ExpenseHandler) bindExpense(c echo.Context, userID uuid.UUID) (models.Expense, error) {
	var req ExpenseRequest
	if err := c.Bind(&req); err != nil {
		return models.Expense{}, errors.New("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return models.Expense{}, errors.New("validation failed")
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return models.Expense{}, errors.New("invalid date format")
	}

	needOrWant := models.NeedOrWant(req.NeedOrWant)
	if needOrWant == "" {
		needOrWant = models.NeedOrWantNeed
	}

	return models.Expense{
		UserID:      userID,
		Amount:      req.Amount,
		Category:    strings.TrimSpace(req.Category),
		Description: req.Description,
		Date:        date,
		NeedOrWant:  needOrWant,
	}, nil
}

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(value))
}

func parseDateRange(c echo.Context) (time.Time, time.Time, bool, error) {
	fromRaw := strings.TrimSpace(c.QueryParam("from"))
	toRaw := strings.TrimSpace(c.QueryParam("to"))
	if fromRaw == "" && toRaw == "" {
		return time.Time{}, time.Time{}, false, nil
	}
	if fromRaw == "" || toRaw == "" {
		return time.Time{}, time.Time{}, false, errors.New("from and to must be provided together")
	}

	from, err := parseDate(fromRaw)
	if err != nil {
		return time.Time{}, time.Time{}, false, errors.New("invalid from format")
	}

	to, err := parseDate(toRaw)
	if err != nil {
		return time.Time{}, time.Time{}, false, errors.New("invalid to format")
	}

	if to.Before(from) {
		return time.Time{}, time.Time{}, false, errors.New("to must not be before from")
	}

	return from, to, true, nil
}
