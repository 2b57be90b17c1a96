package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/finance-tracker/backend/internal/auth"
	"example.com/finance-tracker/backend/internal/models"
	"example.com/finance-tracker/backend/internal/repository"
)

type IncomeHandler struct {
	Incomes *repository.IncomeRepository
}

// NewIncomeHandler creates the income handler.
func NewIncomeHandler(incomes *repository.IncomeRepository) *IncomeHandler {
	return &IncomeHandler{Incomes: incomes}
}

type IncomeRequest struct {
	Amount    float64 `json:"amount" validate:"gte=0"`
	Category  string  `json:"category" validate:"required,max=100"`
	Source    string  `json:"source" validate:"required,max=200"`
	Frequency string  `json:"frequency" validate:"required,oneof=one-time weekly monthly yearly"`
	Date      string  `json:"date" validate:"required"`
}

// List returns the user's incomes.
func (h *IncomeHandler) List(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	incomes, err := h.Incomes.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, map[string][]models.Income{"incomes": incomes})
}

// Create records an income.
func (h *IncomeHandler) Create(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	income, err := bindIncome(c, userID)
	if err != nil {
		return badRequest(c, err.Error())
	}

	created, err := h.Incomes.Create(c.Request().Context(), income)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusCreated, created)
}

// Update replaces an income.
func (h *IncomeHandler) Update(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	incomeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid income id")
	}

	income, err := bindIncome(c, userID)
	if err != nil {
		return badRequest(c, err.Error())
	}
	income.ID = incomeID

	updated, err := h.Incomes.Update(c.Request().Context(), userID, income)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "income not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, updated)
}

// Delete removes an income.
func (h *IncomeHandler) Delete(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	incomeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid income id")
	}

	if err := h.Incomes.Delete(c.Request().Context(), userID, incomeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "income not found")
		}
		return serverError(c)
	}

	return c.NoContent(http.StatusNoContent)
}

func bindIncome(c echo.Context, userID uuid.UUID) (models.Income, error) {
	var req IncomeRequest
	if err := c.Bind(&req); err != nil {
		return models.Income{}, errors.New("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return models.Income{}, errors.New("validation failed")
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return models.Income{}, errors.New("invalid date format")
	}

	return models.Income{
		UserID:    userID,
		Amount:    req.Amount,
		Category:  strings.TrimSpace(req.Category),
		Source:    strings.TrimSpace(req.Source),
		Frequency: models.IncomeFrequency(req.Frequency),
		Date:      date,
	}, nil
}
