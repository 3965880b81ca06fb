package store

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LiveStore implements Store on top of a MySQL connection pool. Rows are
// scanned generically via rows.Columns so the store needs no per-table
// schema knowledge; column types arrive as whatever the driver produces
// (int64, []byte, time.Time with parseTime enabled).
type LiveStore struct{ DB *sql.DB }

func NewLiveStore(db *sql.DB) *LiveStore { return &LiveStore{DB: db} }

var _ Store = (*LiveStore)(nil)

// Select fetches records matching all filters. Filter keys are sorted so the
// generated SQL is stable.
func (s *LiveStore) Select(ctx context.Context, table string, filters map[string]any, limit int) ([]Record, error) {
	q, args, err := buildSelect(table, filters, limit)
	if err != nil {
		return nil, &ReadError{Table: table, Err: err}
	}
	rows, err := s.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, &ReadError{Table: table, Err: err}
	}
	defer rows.Close()

	out, err := scanRecords(rows)
	if err != nil {
		return nil, &ReadError{Table: table, Err: err}
	}
	return out, nil
}

// Insert writes a record and returns it as stored. Missing id and created_at
// are assigned here: ids are app-generated UUIDs so they stay opaque strings,
// matching what the in-memory store produces.
func (s *LiveStore) Insert(ctx context.Context, table string, rec Record) ([]Record, error) {
	if !allowedTables[table] {
		return nil, &WriteError{Table: table, Err: ErrUnknownTable}
	}
	row := make(Record, len(rec)+2)
	for k, v := range rec {
		row[k] = v
	}
	id, ok := row["id"].(string)
	if !ok || id == "" {
		id = uuid.NewString()
		row["id"] = id
	}
	if _, ok := row["created_at"]; !ok {
		row["created_at"] = time.Now().UTC()
	}

	cols := make([]string, 0, len(row))
	for k := range row {
		if !isIdent(k) {
			return nil, &WriteError{Table: table, Err: fmt.Errorf("bad column name %q", k)}
		}
		cols = append(cols, k)
	}
	sort.Strings(cols)

	args := make([]any, 0, len(cols))
	marks := make([]string, 0, len(cols))
	for _, c := range cols {
		args = append(args, row[c])
		marks = append(marks, "?")
	}
	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(cols, ","), strings.Join(marks, ","))
	if _, err := s.DB.ExecContext(ctx, q, args...); err != nil {
		return nil, &WriteError{Table: table, Err: err}
	}
	return s.selectByID(ctx, table, id)
}

// Update applies a patch to the record with the given id and returns the
// record as stored afterwards.
func (s *LiveStore) Update(ctx context.Context, table string, id string, patch Record) ([]Record, error) {
	if !allowedTables[table] {
		return nil, &WriteError{Table: table, Err: ErrUnknownTable}
	}
	if len(patch) == 0 {
		return s.selectByID(ctx, table, id)
	}
	cols := make([]string, 0, len(patch))
	for k := range patch {
		if !isIdent(k) {
			return nil, &WriteError{Table: table, Err: fmt.Errorf("bad column name %q", k)}
		}
		cols = append(cols, k)
	}
	sort.Strings(cols)

	sets := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols)+1)
	for _, c := range cols {
		sets = append(sets, c+"=?")
		args = append(args, patch[c])
	}
	args = append(args, id)
	q := fmt.Sprintf("UPDATE %s SET %s WHERE id=?", table, strings.Join(sets, ","))
	if _, err := s.DB.ExecContext(ctx, q, args...); err != nil {
		return nil, &WriteError{Table: table, Err: err}
	}
	return s.selectByID(ctx, table, id)
}

// selectByID re-reads a record after a write so callers get the row as the
// database now holds it.
func (s *LiveStore) selectByID(ctx context.Context, table, id string) ([]Record, error) {
	return s.Select(ctx, table, map[string]any{"id": id}, 1)
}

func buildSelect(table string, filters map[string]any, limit int) (string, []any, error) {
	if !allowedTables[table] {
		return "", nil, ErrUnknownTable
	}
	var b strings.Builder
	b.WriteString("SELECT * FROM ")
	b.WriteString(table)

	keys := make([]string, 0, len(filters))
	for k := range filters {
		if !isIdent(k) {
			return "", nil, fmt.Errorf("bad column name %q", k)
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]any, 0, len(keys)+1)
	for i, k := range keys {
		if i == 0 {
			b.WriteString(" WHERE ")
		} else {
			b.WriteString(" AND ")
		}
		b.WriteString(k)
		b.WriteString("=?")
		args = append(args, filters[k])
	}
	if limit > 0 {
		b.WriteString(" LIMIT ?")
		args = append(args, limit)
	}
	return b.String(), args, nil
}

func scanRecords(rows *sql.Rows) ([]Record, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	out := []Record{}
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		rec := make(Record, len(cols))
		for i, c := range cols {
			rec[c] = vals[i]
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// isIdent accepts plain snake_case column names. Values are always bound as
// placeholders; this guards the identifiers we interpolate ourselves.
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
