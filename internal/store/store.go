// Package store provides generic record access over the named tables used by
// the API. A Store exposes only three operations: filtered selects, inserts
// and patches by id. The typed repositories compose on top of this interface,
// so swapping the live database for the in-memory variant is a startup
// decision rather than something handlers branch on.
package store

import (
	"context"
	"errors"
	"fmt"
)

// Record is a single row as a column → value mapping. Structured columns
// (answers, oce_matrix, profile) travel through a Record as raw JSON bytes;
// encoding and decoding is the repositories' job.
type Record map[string]any

// Store is the record-access collaborator shared by both backends.
// Filters are exact-match column/value pairs combined with AND. A limit of
// zero means no limit. Insert and Update return the affected records as the
// store now holds them, id and created_at included.
type Store interface {
	Select(ctx context.Context, table string, filters map[string]any, limit int) ([]Record, error)
	Insert(ctx context.Context, table string, rec Record) ([]Record, error)
	Update(ctx context.Context, table string, id string, patch Record) ([]Record, error)
}

// Table names known to the service. Both store variants reject anything else
// so a typo surfaces as an error instead of a silent empty result.
const (
	TableUsers     = "users"
	TableResponses = "responses"
	TableAPIKeys   = "api_keys"
)

var allowedTables = map[string]bool{
	TableUsers:     true,
	TableResponses: true,
	TableAPIKeys:   true,
}

// ErrUnknownTable is returned when a caller names a table outside the fixed
// set above.
var ErrUnknownTable = errors.New("unknown table")

// ReadError wraps a failed select with the table it targeted. Handlers
// translate it into a server error response.
type ReadError struct {
	Table string
	Err   error
}

func (e *ReadError) Error() string { return fmt.Sprintf("store: select %s: %v", e.Table, e.Err) }
func (e *ReadError) Unwrap() error { return e.Err }

// WriteError wraps a failed insert or update with the table it targeted.
type WriteError struct {
	Table string
	Err   error
}

func (e *WriteError) Error() string { return fmt.Sprintf("store: write %s: %v", e.Table, e.Err) }
func (e *WriteError) Unwrap() error { return e.Err }
