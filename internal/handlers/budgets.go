package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/finance-tracker/backend/internal/auth"
	"example.com/finance-tracker/backend/internal/budgeting"
	"example.com/finance-tracker/backend/internal/models"
	"example.com/finance-tracker/backend/internal/notifications"
	"example.com/finance-tracker/backend/internal/repository"
)

type BudgetHandler struct {
	Budgets  *repository.BudgetRepository
	Notifier *notifications.Hub
}

// NewBudgetHandler creates the budget handler.
func NewBudgetHandler(budgets *repository.BudgetRepository, notifier *notifications.Hub) *BudgetHandler {
	return &BudgetHandler{Budgets: budgets, Notifier: notifier}
}

type BudgetRequest struct {
	Name            string  `json:"name" validate:"max=200"`
	Category        string  `json:"category" validate:"max=100"`
	Amount          float64 `json:"amount"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	IsRecurring     bool    `json:"is_recurring"`
	RolloverEnabled bool    `json:"rollover_enabled"`
	Alert50         *bool   `json:"alert_50"`
	Alert75         *bool   `json:"alert_75"`
	Alert100        *bool   `json:"alert_100"`
	AlertExceeded   *bool   `json:"alert_exceeded"`
	Priority        string  `json:"priority" validate:"omitempty,oneof=low medium high"`
}

type BudgetSpentRequest struct {
	Spent float64 `json:"spent" validate:"gte=0"`
}

// BudgetResponse is a budget annotated with its derived figures.
type BudgetResponse struct {
	models.Budget
	Remaining float64 `json:"remaining"`
	Progress  float64 `json:"progress"`
	Exceeded  bool    `json:"exceeded"`
}

type RenewalResponse struct {
	Renewed []BudgetResponse `json:"renewed"`
	Count   int              `json:"count"`
}

// List returns the user's budgets.
func (h *BudgetHandler) List(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	budgets, err := h.Budgets.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	response := make([]BudgetResponse, 0, len(budgets))
	for _, budget := range budgets {
		response = append(response, toBudgetResponse(budget))
	}

	return c.JSON(http.StatusOK, map[string][]BudgetResponse{"budgets": response})
}

// Create validates and records a budget.
func (h *BudgetHandler) Create(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	budget, result, err := bindBudget(c, userID)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if !result.Valid {
		return c.JSON(http.StatusBadRequest, result)
	}

	created, err := h.Budgets.Create(c.Request().Context(), budget)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusCreated, toBudgetResponse(created))
}

// Update validates and replaces a budget.
func (h *BudgetHandler) Update(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	budgetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid budget id")
	}

	budget, result, err := bindBudget(c, userID)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if !result.Valid {
		return c.JSON(http.StatusBadRequest, result)
	}
	budget.ID = budgetID

	updated, err := h.Budgets.Update(c.Request().Context(), userID, budget)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "budget not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, toBudgetResponse(updated))
}

// UpdateSpent sets the spent amount and publishes alerts for every enabled
// threshold the update crossed.
func (h *BudgetHandler) UpdateSpent(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	budgetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid budget id")
	}

	var req BudgetSpentRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	previous, err := h.Budgets.GetByID(c.Request().Context(), userID, budgetID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "budget not found")
		}
		return serverError(c)
	}

	updated, err := h.Budgets.UpdateSpent(c.Request().Context(), userID, budgetID, req.Spent)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "budget not found")
		}
		return serverError(c)
	}

	h.publishAlerts(userID, previous, updated)

	return c.JSON(http.StatusOK, toBudgetResponse(updated))
}

// Delete removes a budget.
func (h *BudgetHandler) Delete(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	budgetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid budget id")
	}

	if err := h.Budgets.Delete(c.Request().Context(), userID, budgetID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "budget not found")
		}
		return serverError(c)
	}

	return c.NoContent(http.StatusNoContent)
}

// Summary returns the aggregated budget figures.
func (h *BudgetHandler) Summary(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	budgets, err := h.Budgets.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, budgeting.Summarize(budgets))
}

// ProcessRenewals creates next-month copies for recurring budgets whose
// period has ended. Safe to call repeatedly; already-renewed periods are
// skipped.
func (h *BudgetHandler) ProcessRenewals(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	expired, err := h.Budgets.ListRecurringExpired(c.Request().Context(), userID, time.Now())
	if err != nil {
		return serverError(c)
	}

	renewed := make([]BudgetResponse, 0, len(expired))
	for _, budget := range expired {
		next := budgeting.NextRecurring(budget)

		exists, err := h.Budgets.HasForPeriod(c.Request().Context(), userID, next.Category, next.StartDate)
		if err != nil {
			return serverError(c)
		}
		if exists {
			continue
		}

		created, err := h.Budgets.Create(c.Request().Context(), next)
		if err != nil {
			return serverError(c)
		}

		renewed = append(renewed, toBudgetResponse(created))
		if h.Notifier != nil {
			h.Notifier.Publish(userID, notifications.Event{
				Type: notifications.EventBudgetRenewed,
				Data: notifications.BudgetAlertData{
					BudgetID:   created.ID,
					BudgetName: created.Name,
					Category:   created.Category,
					Spent:      created.Spent,
					Amount:     created.Amount,
				},
			})
		}
	}

	return c.JSON(http.StatusOK, RenewalResponse{Renewed: renewed, Count: len(renewed)})
}

func (h *BudgetHandler) publishAlerts(userID uuid.UUID, previous, updated models.Budget) {
	if h.Notifier == nil {
		return
	}

	prevPct := budgeting.Progress(previous.Amount, previous.Spent)
	currPct := budgeting.Progress(updated.Amount, updated.Spent)

	for _, threshold := range budgeting.TriggeredAlerts(prevPct, currPct, budgeting.SettingsOf(updated)) {
		h.Notifier.Publish(userID, notifications.Event{
			Type: notifications.EventBudgetAlert,
			Data: notifications.BudgetAlertData{
				BudgetID:   updated.ID,
				BudgetName: updated.Name,
				Category:   updated.Category,
				Threshold:  threshold,
				Spent:      updated.Spent,
				Amount:     updated.Amount,
				Progress:   currPct,
			},
		})
	}

	newlyExceeded := !budgeting.Exceeded(previous.Amount, previous.Spent) &&
		budgeting.Exceeded(updated.Amount, updated.Spent)
	if newlyExceeded && updated.AlertExceeded {
		h.Notifier.Publish(userID, notifications.Event{
			Type: notifications.EventBudgetExceeded,
			Data: notifications.BudgetAlertData{
				BudgetID:   updated.ID,
				BudgetName: updated.Name,
				Category:   updated.Category,
				Spent:      updated.Spent,
				Amount:     updated.Amount,
				Progress:   currPct,
			},
		})
	}
}

func bindBudget(c echo.Context, userID uuid.UUID) (models.Budget, budgeting.ValidationResult, error) {
	var req BudgetRequest
	if err := c.Bind(&req); err != nil {
		return models.Budget{}, budgeting.ValidationResult{}, errors.New("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return models.Budget{}, budgeting.ValidationResult{}, errors.New("validation failed")
	}

	var startDate, endDate time.Time
	if raw := strings.TrimSpace(req.StartDate); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			return models.Budget{}, budgeting.ValidationResult{}, errors.New("invalid start_date format")
		}
		startDate = parsed
	}
	if raw := strings.TrimSpace(req.EndDate); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			return models.Budget{}, budgeting.ValidationResult{}, errors.New("invalid end_date format")
		}
		endDate = parsed
	}

	result := budgeting.Validate(budgeting.Input{
		Name:      req.Name,
		Category:  req.Category,
		Amount:    req.Amount,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if !result.Valid {
		return models.Budget{}, result, nil
	}

	priority := models.BudgetPriority(req.Priority)
	if priority == "" {
		priority = models.PriorityMedium
	}

	return models.Budget{
		UserID:          userID,
		Name:            strings.TrimSpace(req.Name),
		Category:        strings.TrimSpace(req.Category),
		Amount:          req.Amount,
		StartDate:       startDate,
		EndDate:         endDate,
		IsRecurring:     req.IsRecurring,
		RolloverEnabled: req.RolloverEnabled,
		Alert50:         boolValue(req.Alert50, true),
		Alert75:         boolValue(req.Alert75, true),
		Alert100:        boolValue(req.Alert100, true),
		AlertExceeded:   boolValue(req.AlertExceeded, true),
		Priority:        priority,
	}, result, nil
}

func toBudgetResponse(budget models.Budget) BudgetResponse {
	return BudgetResponse{
		Budget:    budget,
		Remaining: budgeting.Remaining(budget.Amount, budget.Spent, budget.RolloverAmount),
		Progress:  budgeting.Progress(budget.Amount, budget.Spent),
		Exceeded:  budgeting.Exceeded(budget.Amount, budget.Spent),
	}
}

func boolValue(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}
