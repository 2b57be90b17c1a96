package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"example.com/finance-tracker/backend/internal/auth"
	"example.com/finance-tracker/backend/internal/models"
	"example.com/finance-tracker/backend/internal/profile"
	"example.com/finance-tracker/backend/internal/repository"
)

type ProfileHandler struct {
	Users *repository.UserRepository
}

// NewProfileHandler creates the profile handler.
func NewProfileHandler(users *repository.UserRepository) *ProfileHandler {
	return &ProfileHandler{Users: users}
}

type ProfileRequest struct {
	Name          *string `json:"name" validate:"omitempty,max=100"`
	Phone         *string `json:"phone" validate:"omitempty,max=20"`
	Occupation    *string `json:"occupation" validate:"omitempty,max=100"`
	MonthlyIncome float64 `json:"monthly_income" validate:"gte=0"`
	DateOfBirth   *string `json:"date_of_birth"`
	ProfileImage  *string `json:"profile_image" validate:"omitempty,url,max=500"`
	Street        *string `json:"street" validate:"omitempty,max=200"`
	City          *string `json:"city" validate:"omitempty,max=100"`
	State         *string `json:"state" validate:"omitempty,max=100"`
	PostalCode    *string `json:"postal_code" validate:"omitempty,max=20"`
}

type ProfileResponse struct {
	User models.User `json:"user"`
}

// Get returns the current user's profile.
func (h *ProfileHandler) Get(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	user, err := h.Users.GetByID(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "user not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, ProfileResponse{User: user})
}

// Update replaces the editable profile fields.
func (h *ProfileHandler) Update(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	var dateOfBirth *time.Time
	if req.DateOfBirth != nil && strings.TrimSpace(*req.DateOfBirth) != "" {
		parsed, err := parseDate(*req.DateOfBirth)
		if err != nil {
			return badRequest(c, "invalid date_of_birth format")
		}
		dateOfBirth = &parsed
	}

	update := repository.ProfileUpdate{
		Name:          normalizeName(req.Name),
		Phone:         normalizeName(req.Phone),
		Occupation:    normalizeName(req.Occupation),
		MonthlyIncome: req.MonthlyIncome,
		DateOfBirth:   dateOfBirth,
		ProfileImage:  normalizeName(req.ProfileImage),
		Address: models.Address{
			Street:     normalizeName(req.Street),
			City:       normalizeName(req.City),
			State:      normalizeName(req.State),
			PostalCode: normalizeName(req.PostalCode),
		},
	}

	user, err := h.Users.UpdateProfile(c.Request().Context(), userID, update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "user not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, ProfileResponse{User: user})
}

// Completion returns how filled-in the profile is.
func (h *ProfileHandler) Completion(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	user, err := h.Users.GetByID(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "user not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, profile.Complete(user))
}
