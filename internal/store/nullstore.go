package store

import (
	"context"
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"
)

// NullStore is the in-memory Store variant. It backs the service when no
// database is configured (STORE_MODE=mock) and doubles as the test double.
// Records are kept per table in insertion order, which keeps created_at
// ordering deterministic for tests.
type NullStore struct {
	mu     sync.RWMutex
	tables map[string][]Record
}

func NewNullStore() *NullStore {
	return &NullStore{tables: map[string][]Record{}}
}

var _ Store = (*NullStore)(nil)

func (s *NullStore) Select(ctx context.Context, table string, filters map[string]any, limit int) ([]Record, error) {
	if !allowedTables[table] {
		return nil, &ReadError{Table: table, Err: ErrUnknownTable}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []Record{}
	for _, rec := range s.tables[table] {
		if !matches(rec, filters) {
			continue
		}
		out = append(out, clone(rec))
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (s *NullStore) Insert(ctx context.Context, table string, rec Record) ([]Record, error) {
	if !allowedTables[table] {
		return nil, &WriteError{Table: table, Err: ErrUnknownTable}
	}
	row := clone(rec)
	if id, ok := row["id"].(string); !ok || id == "" {
		row["id"] = uuid.NewString()
	}
	if _, ok := row["created_at"]; !ok {
		row["created_at"] = time.Now().UTC()
	}

	s.mu.Lock()
	s.tables[table] = append(s.tables[table], row)
	s.mu.Unlock()

	return []Record{clone(row)}, nil
}

func (s *NullStore) Update(ctx context.Context, table string, id string, patch Record) ([]Record, error) {
	if !allowedTables[table] {
		return nil, &WriteError{Table: table, Err: ErrUnknownTable}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range s.tables[table] {
		if rec["id"] == id {
			for k, v := range patch {
				rec[k] = v
			}
			return []Record{clone(rec)}, nil
		}
	}
	return []Record{}, nil
}

// matches reports whether every filter pair equals the record's value.
// Repositories write and read through the same store instance, so values
// compare with their original types.
func matches(rec Record, filters map[string]any) bool {
	for k, want := range filters {
		got, ok := rec[k]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

func clone(rec Record) Record {
	cp := make(Record, len(rec))
	for k, v := range rec {
		cp[k] = v
	}
	return cp
}
