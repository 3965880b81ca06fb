package handler

import (
	"context" // provides context with cancellation for store calls
	"errors"
	"net/http" // HTTP status codes and primitives
	"time"     // timeouts for store calls

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/bapa-labs/bapa-api/internal/model"
	"github.com/bapa-labs/bapa-api/internal/queue"
	"github.com/bapa-labs/bapa-api/internal/repository"
	queue_publisher "github.com/bapa-labs/bapa-api/internal/service"
	"github.com/bapa-labs/bapa-api/internal/utils"
)

// Submission defaults. Omitted payload fields are filled in rather than
// rejected.
const (
	defaultSovereigntyScore = 75.5
	defaultLanguage         = "EN"
	fallbackProfileType     = "Not specified"
)

// SubmitHandler bundles dependencies for the submission endpoint.
type SubmitHandler struct {
	Users     *repository.UserRepo
	Responses *repository.ResponseRepo
	Keys      *repository.KeyRepo
}

func NewSubmitHandler(u *repository.UserRepo, r *repository.ResponseRepo, k *repository.KeyRepo) *SubmitHandler {
	return &SubmitHandler{Users: u, Responses: r, Keys: k}
}

// ----- DTOs -----

type submitReq struct {
	Email            string             `json:"email"`
	Language         string             `json:"language"`
	Answers          map[string]float64 `json:"answers"`
	SovereigntyScore *float64           `json:"sovereignty_score"` // pointer so an omitted score is distinguishable from 0
	OCEMatrix        map[string]float64 `json:"oce_matrix"`
	Profile          model.Profile      `json:"profile"`
}

type submitResp struct {
	Status           string   `json:"status"`
	UserID           string   `json:"user_id"`
	ResponseID       string   `json:"response_id"`
	APIKey           string   `json:"api_key"`
	SovereigntyScore float64  `json:"sovereignty_score"`
	ProfileType      string   `json:"profile_type"`
	NextSteps        []string `json:"next_steps"`
}

// Submit accepts a survey submission: it resolves or creates the user,
// persists the response, mints a fresh API key and returns all three ids.
// The three writes are not transactional; a failure after the response
// insert leaves a response without a key, which this design accepts.
func (h *SubmitHandler) Submit(c echo.Context) error {
	var req submitReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	email := req.Email
	if email == "" {
		email = utils.PlaceholderEmail()
	}
	score := defaultSovereigntyScore
	if req.SovereigntyScore != nil {
		score = *req.SovereigntyScore
	}
	lang := req.Language
	if lang == "" {
		lang = defaultLanguage
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	user, err := h.Users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		user, err = h.Users.Create(ctx, email)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	resp, err := h.Responses.Create(ctx, repository.NewResponse{
		UserID:           user.ID,
		Language:         lang,
		Answers:          req.Answers,
		SovereigntyScore: score,
		OCEMatrix:        req.OCEMatrix,
		Profile:          req.Profile,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	token, err := utils.NewAPIKey()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if _, err := h.Keys.Create(ctx, user.ID, token); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	profileType := req.Profile.Type
	if profileType == "" {
		profileType = fallbackProfileType
	}

	// Fire-and-forget event for downstream consumers; a broker failure must
	// never fail the submission itself.
	ev := queue.SubmissionAcceptedEvent{
		UserID:           user.ID,
		ResponseID:       resp.ID,
		Email:            user.Email,
		Language:         lang,
		SovereigntyScore: score,
		ProfileType:      profileType,
		AcceptedAt:       time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		pctx, pcancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer pcancel()
		_ = queue_publisher.PublishSubmissionAccepted(pctx, ev)
	}()

	return c.JSON(http.StatusOK, submitResp{
		Status:           "success",
		UserID:           user.ID,
		ResponseID:       resp.ID,
		APIKey:           token,
		SovereigntyScore: score,
		ProfileType:      profileType,
		NextSteps: []string{
			"Store your API key securely - it will not be shown again",
			"Fetch your profile with: GET /api/v1/profile (Authorization: Bearer <api_key>)",
		},
	})
}
