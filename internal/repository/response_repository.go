package repository

import (
	"context"
	"fmt"

	"github.com/bapa-labs/bapa-api/internal/model"
	"github.com/bapa-labs/bapa-api/internal/store"
)

type ResponseRepo struct{ Store store.Store }

func NewResponseRepo(s store.Store) *ResponseRepo { return &ResponseRepo{Store: s} }

// NewResponse carries the fields of a response to be created. The handler
// has already applied submission defaults by the time this is built.
type NewResponse struct {
	UserID           string
	Language         string
	Answers          map[string]float64
	SovereigntyScore float64
	OCEMatrix        map[string]float64
	Profile          model.Profile
}

// Create inserts a response row for a user. Structured fields are stored as
// JSON; nil maps are written as empty objects so reads never see NULL.
func (r *ResponseRepo) Create(ctx context.Context, n NewResponse) (model.Response, error) {
	if n.Answers == nil {
		n.Answers = map[string]float64{}
	}
	if n.OCEMatrix == nil {
		n.OCEMatrix = map[string]float64{}
	}
	rec := store.Record{
		"user_id":           n.UserID,
		"language":          n.Language,
		"answers":           encodeJSON(n.Answers),
		"sovereignty_score": n.SovereigntyScore,
		"oce_matrix":        encodeJSON(n.OCEMatrix),
		"profile":           encodeJSON(n.Profile),
	}
	recs, err := r.Store.Insert(ctx, store.TableResponses, rec)
	if err != nil {
		return model.Response{}, err
	}
	row, ok := firstRecord(recs)
	if !ok {
		return model.Response{}, &store.WriteError{Table: store.TableResponses, Err: fmt.Errorf("insert returned no record")}
	}
	return responseFromRecord(row), nil
}

// ListByUser returns every response belonging to a user, in store order.
// Picking the most recent one is the caller's concern.
func (r *ResponseRepo) ListByUser(ctx context.Context, userID string) ([]model.Response, error) {
	recs, err := r.Store.Select(ctx, store.TableResponses, map[string]any{"user_id": userID}, 0)
	if err != nil {
		return nil, err
	}
	out := make([]model.Response, 0, len(recs))
	for _, rec := range recs {
		out = append(out, responseFromRecord(rec))
	}
	return out, nil
}

func responseFromRecord(rec store.Record) model.Response {
	resp := model.Response{
		ID:               asString(rec["id"]),
		UserID:           asString(rec["user_id"]),
		Language:         asString(rec["language"]),
		SovereigntyScore: asFloat(rec["sovereignty_score"]),
		CreatedAt:        asTime(rec["created_at"]),
	}
	decodeJSON(rec["answers"], &resp.Answers)
	decodeJSON(rec["oce_matrix"], &resp.OCEMatrix)
	decodeJSON(rec["profile"], &resp.Profile)
	return resp
}
