package repository

import (
	"context"
	"fmt"

	"github.com/bapa-labs/bapa-api/internal/model"
	"github.com/bapa-labs/bapa-api/internal/store"
)

type UserRepo struct{ Store store.Store }

func NewUserRepo(s store.Store) *UserRepo { return &UserRepo{Store: s} }

// GetByEmail fetches a user by exact email match. At most one user per email
// is expected; if duplicates exist the first match wins, a data-integrity
// assumption the store does not itself enforce.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	recs, err := r.Store.Select(ctx, store.TableUsers, map[string]any{"email": email}, 1)
	if err != nil {
		return model.User{}, err
	}
	rec, ok := firstRecord(recs)
	if !ok {
		return model.User{}, ErrNotFound
	}
	return userFromRecord(rec), nil
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (model.User, error) {
	recs, err := r.Store.Select(ctx, store.TableUsers, map[string]any{"id": id}, 1)
	if err != nil {
		return model.User{}, err
	}
	rec, ok := firstRecord(recs)
	if !ok {
		return model.User{}, ErrNotFound
	}
	return userFromRecord(rec), nil
}

// Create inserts a user with the given email and returns it as stored.
func (r *UserRepo) Create(ctx context.Context, email string) (model.User, error) {
	recs, err := r.Store.Insert(ctx, store.TableUsers, store.Record{"email": email})
	if err != nil {
		return model.User{}, err
	}
	rec, ok := firstRecord(recs)
	if !ok {
		return model.User{}, &store.WriteError{Table: store.TableUsers, Err: fmt.Errorf("insert returned no record")}
	}
	return userFromRecord(rec), nil
}

func userFromRecord(rec store.Record) model.User {
	return model.User{
		ID:        asString(rec["id"]),
		Email:     asString(rec["email"]),
		CreatedAt: asTime(rec["created_at"]),
	}
}
