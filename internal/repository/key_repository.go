package repository

import (
	"context"
	"fmt"

	"github.com/bapa-labs/bapa-api/internal/model"
	"github.com/bapa-labs/bapa-api/internal/store"
)

// KeyRepo persists and resolves opaque API keys (the `api_keys` table).
type KeyRepo struct{ Store store.Store }

func NewKeyRepo(s store.Store) *KeyRepo { return &KeyRepo{Store: s} }

// Create mints a key row for a user: active, zero requests used.
func (r *KeyRepo) Create(ctx context.Context, userID, token string) (model.APIKey, error) {
	rec := store.Record{
		"user_id":        userID,
		"token":          token,
		"is_active":      true,
		"requests_count": 0,
	}
	recs, err := r.Store.Insert(ctx, store.TableAPIKeys, rec)
	if err != nil {
		return model.APIKey{}, err
	}
	row, ok := firstRecord(recs)
	if !ok {
		return model.APIKey{}, &store.WriteError{Table: store.TableAPIKeys, Err: fmt.Errorf("insert returned no record")}
	}
	return keyFromRecord(row), nil
}

// GetActiveByToken resolves a bearer token to its key record. Inactive and
// unknown tokens both come back as ErrInvalidKey.
func (r *KeyRepo) GetActiveByToken(ctx context.Context, token string) (model.APIKey, error) {
	filters := map[string]any{"token": token, "is_active": true}
	recs, err := r.Store.Select(ctx, store.TableAPIKeys, filters, 1)
	if err != nil {
		return model.APIKey{}, err
	}
	rec, ok := firstRecord(recs)
	if !ok {
		return model.APIKey{}, ErrInvalidKey
	}
	return keyFromRecord(rec), nil
}

// IncrementRequests bumps the usage counter by one and returns the key as
// stored afterwards. This is a read-then-write with no locking; concurrent
// requests on the same key can under-count, which is acceptable because the
// count is advisory.
func (r *KeyRepo) IncrementRequests(ctx context.Context, key model.APIKey) (model.APIKey, error) {
	patch := store.Record{"requests_count": key.RequestsCount + 1}
	recs, err := r.Store.Update(ctx, store.TableAPIKeys, key.ID, patch)
	if err != nil {
		return model.APIKey{}, err
	}
	rec, ok := firstRecord(recs)
	if !ok {
		return model.APIKey{}, ErrNotFound
	}
	return keyFromRecord(rec), nil
}

func keyFromRecord(rec store.Record) model.APIKey {
	return model.APIKey{
		ID:            asString(rec["id"]),
		UserID:        asString(rec["user_id"]),
		Token:         asString(rec["token"]),
		IsActive:      asBool(rec["is_active"]),
		RequestsCount: asInt(rec["requests_count"]),
		CreatedAt:     asTime(rec["created_at"]),
	}
}
