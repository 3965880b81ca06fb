package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bapa-labs/bapa-api/internal/model"
	"github.com/bapa-labs/bapa-api/internal/store"
)

func TestUserRepoCreateAndGet(t *testing.T) {
	repo := NewUserRepo(store.NewNullStore())
	ctx := context.Background()

	_, err := repo.GetByEmail(ctx, "a@x.com")
	require.ErrorIs(t, err, ErrNotFound)

	created, err := repo.Create(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "a@x.com", created.Email)
	require.False(t, created.CreatedAt.IsZero())

	byEmail, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Equal(t, created.ID, byEmail.ID)

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", byID.Email)
}

func TestUserRepoEmailIsCaseSensitive(t *testing.T) {
	repo := NewUserRepo(store.NewNullStore())
	ctx := context.Background()

	_, err := repo.Create(ctx, "A@x.com")
	require.NoError(t, err)

	_, err = repo.GetByEmail(ctx, "a@x.com")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestResponseRepoRoundTrip(t *testing.T) {
	st := store.NewNullStore()
	users := NewUserRepo(st)
	responses := NewResponseRepo(st)
	ctx := context.Background()

	u, err := users.Create(ctx, "a@x.com")
	require.NoError(t, err)

	created, err := responses.Create(ctx, NewResponse{
		UserID:           u.ID,
		Language:         "EN",
		Answers:          map[string]float64{"q1": 5, "q2": 3},
		SovereigntyScore: 78.5,
		OCEMatrix:        map[string]float64{"openness": 0.8},
		Profile: model.Profile{
			Type:      "Synthesizer",
			Strengths: []string{"Strategic Thinking"},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, u.ID, created.UserID)

	list, err := responses.ListByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	got := list[0]
	require.Equal(t, map[string]float64{"q1": 5, "q2": 3}, got.Answers)
	require.Equal(t, 78.5, got.SovereigntyScore)
	require.Equal(t, map[string]float64{"openness": 0.8}, got.OCEMatrix)
	require.Equal(t, "Synthesizer", got.Profile.Type)
	require.Equal(t, []string{"Strategic Thinking"}, got.Profile.Strengths)
	require.Empty(t, got.Profile.Weaknesses)
}

func TestResponseRepoNilMapsBecomeEmptyObjects(t *testing.T) {
	st := store.NewNullStore()
	responses := NewResponseRepo(st)
	ctx := context.Background()

	created, err := responses.Create(ctx, NewResponse{UserID: "u1", Language: "EN", SovereigntyScore: 75.5})
	require.NoError(t, err)
	require.NotNil(t, created.Answers)
	require.Empty(t, created.Answers)
	require.NotNil(t, created.OCEMatrix)
}

func TestKeyRepoLifecycle(t *testing.T) {
	st := store.NewNullStore()
	keys := NewKeyRepo(st)
	ctx := context.Background()

	created, err := keys.Create(ctx, "u1", "bapa_abc")
	require.NoError(t, err)
	require.True(t, created.IsActive)
	require.Equal(t, 0, created.RequestsCount)

	got, err := keys.GetActiveByToken(ctx, "bapa_abc")
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)

	_, err = keys.GetActiveByToken(ctx, "bapa_missing")
	require.ErrorIs(t, err, ErrInvalidKey)

	// The counter only ever moves up.
	for want := 1; want <= 3; want++ {
		got, err = keys.IncrementRequests(ctx, got)
		require.NoError(t, err)
		require.Equal(t, want, got.RequestsCount)
	}
}

func TestKeyRepoInactiveKeyIsInvalid(t *testing.T) {
	st := store.NewNullStore()
	keys := NewKeyRepo(st)
	ctx := context.Background()

	_, err := st.Insert(ctx, store.TableAPIKeys, store.Record{
		"user_id":        "u1",
		"token":          "bapa_revoked",
		"is_active":      false,
		"requests_count": 0,
	})
	require.NoError(t, err)

	_, err = keys.GetActiveByToken(ctx, "bapa_revoked")
	require.ErrorIs(t, err, ErrInvalidKey)
}

func TestConvertCoercions(t *testing.T) {
	// MySQL driver shapes: []byte text, int64 tinyint, parseTime time.Time.
	require.Equal(t, "x", asString([]byte("x")))
	require.Equal(t, 78.5, asFloat([]byte("78.5")))
	require.Equal(t, 7, asInt(int64(7)))
	require.True(t, asBool(int64(1)))
	require.False(t, asBool(int64(0)))
	require.True(t, asBool([]byte("1")))

	ts := asTime([]byte("2026-08-30 12:00:05"))
	require.Equal(t, 2026, ts.Year())

	var m map[string]float64
	decodeJSON([]byte(`{"q1":5}`), &m)
	require.Equal(t, map[string]float64{"q1": 5}, m)
}
