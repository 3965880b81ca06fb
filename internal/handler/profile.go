package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bapa-labs/bapa-api/internal/middleware"
	"github.com/bapa-labs/bapa-api/internal/model"
	"github.com/bapa-labs/bapa-api/internal/repository"
)

// Usage limit reported alongside the post-increment counter. The limit is
// informational only; requests past it are not rejected.
const apiRequestsLimit = 1000

// Fixed fallbacks substituted when the stored profile lacks a field.
var (
	defaultStrengths          = []string{"Analytical Thinking", "Problem Solving"}
	defaultWeaknesses         = []string{"Time Management", "Detail Orientation"}
	defaultCommunicationStyle = "Direct and concise"
)

// ProfileHandler bundles dependencies for the key-gated profile endpoint.
type ProfileHandler struct {
	Users     *repository.UserRepo
	Responses *repository.ResponseRepo
	Keys      *repository.KeyRepo
}

func NewProfileHandler(u *repository.UserRepo, r *repository.ResponseRepo, k *repository.KeyRepo) *ProfileHandler {
	return &ProfileHandler{Users: u, Responses: r, Keys: k}
}

type profileResp struct {
	UserID             string             `json:"user_id"`
	Email              string             `json:"email"`
	SovereigntyScore   float64            `json:"sovereignty_score"`
	ProfileType        string             `json:"profile_type"`
	Strengths          []string           `json:"strengths"`
	Weaknesses         []string           `json:"weaknesses"`
	CommunicationStyle string             `json:"communication_style"`
	OCEMatrix          map[string]float64 `json:"oce_matrix"`
	LastUpdated        time.Time          `json:"last_updated"`
	APIRequestsUsed    int                `json:"api_requests_used"`
	APIRequestsLimit   int                `json:"api_requests_limit"`
}

// GetProfile resolves the bearer credential set by the BearerKey middleware
// to a user, returns that user's most recent response as a denormalized
// view, and bumps the key's usage counter. The counter update is
// read-then-write and unguarded: concurrent fetches on one key may
// under-count, which is acceptable for advisory usage reporting.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	raw, _ := c.Get(middleware.ContextKeyAPIKey).(string)
	if raw == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing or malformed credential"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	key, err := h.Keys.GetActiveByToken(ctx, raw)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidKey) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or inactive token"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	user, err := h.Users.GetByID(ctx, key.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	responses, err := h.Responses.ListByUser(ctx, user.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if len(responses) == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no results for this user"})
	}
	latest := latestResponse(responses)

	key, err = h.Keys.IncrementRequests(ctx, key)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	view := profileResp{
		UserID:             user.ID,
		Email:              user.Email,
		SovereigntyScore:   latest.SovereigntyScore,
		ProfileType:        latest.Profile.Type,
		Strengths:          latest.Profile.Strengths,
		Weaknesses:         latest.Profile.Weaknesses,
		CommunicationStyle: latest.Profile.CommunicationStyle,
		OCEMatrix:          latest.OCEMatrix,
		LastUpdated:        latest.CreatedAt,
		APIRequestsUsed:    key.RequestsCount,
		APIRequestsLimit:   apiRequestsLimit,
	}
	if view.ProfileType == "" {
		view.ProfileType = fallbackProfileType
	}
	if view.Strengths == nil {
		view.Strengths = defaultStrengths
	}
	if view.Weaknesses == nil {
		view.Weaknesses = defaultWeaknesses
	}
	if view.CommunicationStyle == "" {
		view.CommunicationStyle = defaultCommunicationStyle
	}
	if view.OCEMatrix == nil {
		view.OCEMatrix = map[string]float64{}
	}
	return c.JSON(http.StatusOK, view)
}

// latestResponse picks the response with the greatest CreatedAt. Ties break
// toward the later record, matching insertion order.
func latestResponse(responses []model.Response) model.Response {
	latest := responses[0]
	for _, r := range responses[1:] {
		if !r.CreatedAt.Before(latest.CreatedAt) {
			latest = r
		}
	}
	return latest
}
