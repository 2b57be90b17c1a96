package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/finance-tracker/backend/internal/auth"
	"example.com/finance-tracker/backend/internal/models"
	"example.com/finance-tracker/backend/internal/repository"
)

type DebtHandler struct {
	Debts *repository.DebtRepository
}

// NewDebtHandler creates the debt handler.
func NewDebtHandler(debts *repository.DebtRepository) *DebtHandler {
	return &DebtHandler{Debts: debts}
}

type DebtRequest struct {
	Name           string  `json:"name" validate:"required,max=200"`
	OriginalAmount float64 `json:"original_amount" validate:"gte=0"`
	CurrentBalance float64 `json:"current_balance" validate:"gte=0"`
	InterestRate   float64 `json:"interest_rate" validate:"gte=0"`
	MinimumPayment float64 `json:"minimum_payment" validate:"gte=0"`
	DueDate        *string `json:"due_date"`
}

// List returns the user's debts.
func (h *DebtHandler) List(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	debts, err := h.Debts.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, map[string][]models.Debt{"debts": debts})
}

// Create records a debt.
func (h *DebtHandler) Create(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	debt, err := bindDebt(c, userID)
	if err != nil {
		return badRequest(c, err.Error())
	}

	created, err := h.Debts.Create(c.Request().Context(), debt)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusCreated, created)
}

// Update replaces a debt.
func (h *DebtHandler) Update(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	debtID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid debt id")
	}

	debt, err := bindDebt(c, userID)
	if err != nil {
		return badRequest(c, err.Error())
	}
	debt.ID = debtID

	updated, err := h.Debts.Update(c.Request().Context(), userID, debt)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "debt not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, updated)
}

// Delete removes a debt.
func (h *DebtHandler) Delete(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	debtID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid debt id")
	}

	if err := h.Debts.Delete(c.Request().Context(), userID, debtID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "debt not found")
		}
		return serverError(c)
	}

	return c.NoContent(http.StatusNoContent)
}

func bindDebt(c echo.Context, userID uuid.UUID) (models.Debt, error) {
	var req DebtRequest
	if err := c.Bind(&req); err != nil {
		return models.Debt{}, errors.New("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return models.Debt{}, errors.New("validation failed")
	}

	var dueDate *time.Time
	if req.DueDate != nil && strings.TrimSpace(*req.DueDate) != "" {
		parsed, err := parseDate(*req.DueDate)
		if err != nil {
			return models.Debt{}, errors.New("invalid due_date format")
		}
		dueDate = &parsed
	}

	return models.Debt{
		UserID:         userID,
		Name:           strings.TrimSpace(req.Name),
		OriginalAmount: req.OriginalAmount,
		CurrentBalance: req.CurrentBalance,
		InterestRate:   req.InterestRate,
		MinimumPayment: req.MinimumPayment,
		DueDate:        dueDate,
	}, nil
}
