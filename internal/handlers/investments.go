package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/finance-tracker/backend/internal/auth"
	"example.com/finance-tracker/backend/internal/investing"
	"example.com/finance-tracker/backend/internal/models"
	"example.com/finance-tracker/backend/internal/repository"
)

type InvestmentHandler struct {
	Investments *repository.InvestmentRepository
}

// NewInvestmentHandler creates the investment handler.
func NewInvestmentHandler(investments *repository.InvestmentRepository) *InvestmentHandler {
	return &InvestmentHandler{Investments: investments}
}

type InvestmentRequest struct {
	Name           string   `json:"name" validate:"required,max=200"`
	Type           string   `json:"type" validate:"required,oneof=stocks mutual-funds crypto gold real-estate fixed-deposit other"`
	TickerSymbol   *string  `json:"ticker_symbol" validate:"omitempty,max=20"`
	Sector         *string  `json:"sector" validate:"omitempty,max=100"`
	Category       *string  `json:"category" validate:"omitempty,max=100"`
	RiskLevel      string   `json:"risk_level" validate:"required,oneof=low moderate high"`
	InvestedAmount float64  `json:"invested_amount" validate:"gte=0"`
	CurrentValue   float64  `json:"current_value" validate:"gte=0"`
	PurchaseDate   string   `json:"purchase_date" validate:"required"`
	IsSIP          bool     `json:"is_sip"`
	SIPAmount      *float64 `json:"sip_amount" validate:"omitempty,gt=0"`
	SIPStartDate   *string  `json:"sip_start_date"`
	SIPFrequency   *string  `json:"sip_frequency" validate:"omitempty,oneof=monthly quarterly yearly"`
}

type SIPTransactionRequest struct {
	Amount float64 `json:"amount" validate:"gt=0"`
	Units  float64 `json:"units" validate:"gte=0"`
	NAV    float64 `json:"nav" validate:"gte=0"`
	Date   string  `json:"date" validate:"required"`
}

// InvestmentResponse is an investment annotated with its derived metrics.
type InvestmentResponse struct {
	models.Investment
	PnLAmount       float64 `json:"pnl_amount"`
	PnLPercent      float64 `json:"pnl_percent"`
	CAGR            float64 `json:"cagr"`
	TypeDisplayName string  `json:"type_display_name"`
	RiskLevelColor  string  `json:"risk_level_color"`
	PnLColor        string  `json:"pnl_color"`
}

type InvestmentSummaryResponse struct {
	Portfolio  investing.PortfolioSummary `json:"portfolio"`
	Allocation []investing.Allocation     `json:"allocation"`
}

// List returns the user's investments, filtered and sorted per query params.
func (h *InvestmentHandler) List(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	investments, err := h.Investments.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	filters := investing.Filters{
		Type:      strings.TrimSpace(c.QueryParam("type")),
		RiskLevel: strings.TrimSpace(c.QueryParam("risk_level")),
		Category:  strings.TrimSpace(c.QueryParam("category")),
		Search:    strings.TrimSpace(c.QueryParam("search")),
	}
	investments = investing.Filter(investments, filters)

	if sortBy := strings.TrimSpace(c.QueryParam("sort_by")); sortBy != "" {
		investments = investing.Sort(investments, sortBy, strings.TrimSpace(c.QueryParam("order")))
	}

	now := time.Now()
	response := make([]InvestmentResponse, 0, len(investments))
	for _, investment := range investments {
		response = append(response, toInvestmentResponse(investment, now))
	}

	return c.JSON(http.StatusOK, map[string][]InvestmentResponse{"investments": response})
}

// Create records an investment.
func (h *InvestmentHandler) Create(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	investment, err := bindInvestment(c, userID)
	if err != nil {
		return badRequest(c, err.Error())
	}

	created, err := h.Investments.Create(c.Request().Context(), investment)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusCreated, toInvestmentResponse(created, time.Now()))
}

// Update replaces an investment.
func (h *InvestmentHandler) Update(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	investmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid investment id")
	}

	investment, err := bindInvestment(c, userID)
	if err != nil {
		return badRequest(c, err.Error())
	}
	investment.ID = investmentID

	updated, err := h.Investments.Update(c.Request().Context(), userID, investment)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "investment not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, toInvestmentResponse(updated, time.Now()))
}

// Delete removes an investment.
func (h *InvestmentHandler) Delete(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	investmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid investment id")
	}

	if err := h.Investments.Delete(c.Request().Context(), userID, investmentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "investment not found")
		}
		return serverError(c)
	}

	return c.NoContent(http.StatusNoContent)
}

// Summary returns portfolio totals and the asset allocation.
func (h *InvestmentHandler) Summary(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	investments, err := h.Investments.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, InvestmentSummaryResponse{
		Portfolio:  investing.Portfolio(investments),
		Allocation: investing.AssetAllocation(investments),
	})
}

// CreateSIPTransaction records a SIP installment.
func (h *InvestmentHandler) CreateSIPTransaction(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	investmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid investment id")
	}

	var req SIPTransactionRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return badRequest(c, "invalid date format")
	}

	created, err := h.Investments.CreateSIPTransaction(c.Request().Context(), userID, models.SIPTransaction{
		InvestmentID: investmentID,
		Amount:       req.Amount,
		Units:        req.Units,
		NAV:          req.NAV,
		Date:         date,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "investment not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusCreated, created)
}

// SIPMetrics returns the aggregated SIP metrics of an investment.
func (h *InvestmentHandler) SIPMetrics(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	investmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid investment id")
	}

	investment, err := h.Investments.GetByID(c.Request().Context(), userID, investmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "investment not found")
		}
		return serverError(c)
	}

	transactions, err := h.Investments.ListSIPTransactions(c.Request().Context(), userID, investmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "investment not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, investing.SIP(transactions, investment.CurrentValue))
}

func bindInvestment(c echo.Context, userID uuid.UUID) (models.Investment, error) {
	var req InvestmentRequest
	if err := c.Bind(&req); err != nil {
		return models.Investment{}, errors.New("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return models.Investment{}, errors.New("validation failed")
	}

	purchaseDate, err := parseDate(req.PurchaseDate)
	if err != nil {
		return models.Investment{}, errors.New("invalid purchase_date format")
	}

	var sipStartDate *time.Time
	if req.SIPStartDate != nil && strings.TrimSpace(*req.SIPStartDate) != "" {
		parsed, err := parseDate(*req.SIPStartDate)
		if err != nil {
			return models.Investment{}, errors.New("invalid sip_start_date format")
		}
		sipStartDate = &parsed
	}

	var sipFrequency *models.SIPFrequency
	if req.SIPFrequency != nil {
		frequency := models.SIPFrequency(*req.SIPFrequency)
		sipFrequency = &frequency
	}

	return models.Investment{
		UserID:         userID,
		Name:           strings.TrimSpace(req.Name),
		Type:           models.InvestmentType(req.Type),
		TickerSymbol:   req.TickerSymbol,
		Sector:         req.Sector,
		Category:       req.Category,
		RiskLevel:      models.RiskLevel(req.RiskLevel),
		InvestedAmount: req.InvestedAmount,
		CurrentValue:   req.CurrentValue,
		PurchaseDate:   purchaseDate,
		IsSIP:          req.IsSIP,
		SIPAmount:      req.SIPAmount,
		SIPStartDate:   sipStartDate,
		SIPFrequency:   sipFrequency,
	}, nil
}

func toInvestmentResponse(investment models.Investment, now time.Time) InvestmentResponse {
	pnl := investing.ProfitAndLoss(investment.CurrentValue, investment.InvestedAmount)

	return InvestmentResponse{
		Investment:      investment,
		PnLAmount:       pnl.Amount,
		PnLPercent:      pnl.Percent,
		CAGR:            investing.CAGR(investment.InvestedAmount, investment.CurrentValue, investment.PurchaseDate, now),
		TypeDisplayName: investing.TypeDisplayName(investment.Type),
		RiskLevelColor:  investing.RiskLevelColor(investment.RiskLevel),
		PnLColor:        investing.PnLColor(pnl.Amount),
	}
}
