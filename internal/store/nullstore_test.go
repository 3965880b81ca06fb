package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNullStoreInsertAssignsIDAndCreatedAt(t *testing.T) {
	s := NewNullStore()
	recs, err := s.Insert(context.Background(), TableUsers, Record{"email": "a@x.com"})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.NotEmpty(t, recs[0]["id"])
	require.NotNil(t, recs[0]["created_at"])
	require.Equal(t, "a@x.com", recs[0]["email"])
}

func TestNullStoreSelectFilters(t *testing.T) {
	s := NewNullStore()
	ctx := context.Background()
	_, err := s.Insert(ctx, TableUsers, Record{"email": "a@x.com"})
	require.NoError(t, err)
	_, err = s.Insert(ctx, TableUsers, Record{"email": "b@x.com"})
	require.NoError(t, err)

	recs, err := s.Select(ctx, TableUsers, map[string]any{"email": "b@x.com"}, 0)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	all, err := s.Select(ctx, TableUsers, nil, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)

	limited, err := s.Select(ctx, TableUsers, nil, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)

	none, err := s.Select(ctx, TableUsers, map[string]any{"email": "missing@x.com"}, 0)
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestNullStoreUpdatePatchesByID(t *testing.T) {
	s := NewNullStore()
	ctx := context.Background()
	recs, err := s.Insert(ctx, TableAPIKeys, Record{"token": "bapa_t", "requests_count": 0})
	require.NoError(t, err)
	id := recs[0]["id"].(string)

	updated, err := s.Update(ctx, TableAPIKeys, id, Record{"requests_count": 3})
	require.NoError(t, err)
	require.Len(t, updated, 1)
	require.Equal(t, 3, updated[0]["requests_count"])
	require.Equal(t, "bapa_t", updated[0]["token"])

	// Unknown id updates nothing.
	missing, err := s.Update(ctx, TableAPIKeys, "nope", Record{"requests_count": 9})
	require.NoError(t, err)
	require.Empty(t, missing)
}

func TestNullStoreRejectsUnknownTable(t *testing.T) {
	s := NewNullStore()
	ctx := context.Background()

	_, err := s.Select(ctx, "nope", nil, 0)
	require.ErrorIs(t, err, ErrUnknownTable)
	var re *ReadError
	require.ErrorAs(t, err, &re)

	_, err = s.Insert(ctx, "nope", Record{})
	require.ErrorIs(t, err, ErrUnknownTable)
	var we *WriteError
	require.ErrorAs(t, err, &we)
}

func TestNullStoreReturnsCopies(t *testing.T) {
	s := NewNullStore()
	ctx := context.Background()
	recs, err := s.Insert(ctx, TableUsers, Record{"email": "a@x.com"})
	require.NoError(t, err)
	recs[0]["email"] = "tampered"

	again, err := s.Select(ctx, TableUsers, nil, 0)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", again[0]["email"])
}
