package repository

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/bapa-labs/bapa-api/internal/store"
)

// Driver values differ between the two store variants: MySQL hands back
// int64/[]byte/time.Time while the in-memory store returns whatever the
// repositories originally wrote. These helpers normalize both shapes.

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	}
	return ""
}

func asFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int64:
		return float64(t)
	case int:
		return float64(t)
	case []byte:
		f, _ := strconv.ParseFloat(string(t), 64)
		return f
	case string:
		f, _ := strconv.ParseFloat(t, 64)
		return f
	}
	return 0
}

func asInt(v any) int {
	switch t := v.(type) {
	case int:
		return t
	case int64:
		return int(t)
	case float64:
		return int(t)
	case []byte:
		n, _ := strconv.Atoi(string(t))
		return n
	case string:
		n, _ := strconv.Atoi(t)
		return n
	}
	return 0
}

func asBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case int64:
		return t != 0
	case int:
		return t != 0
	case []byte:
		return string(t) == "1" || string(t) == "true"
	case string:
		return t == "1" || t == "true"
	}
	return false
}

func asTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case []byte:
		return parseTime(string(t))
	case string:
		return parseTime(t)
	}
	return time.Time{}
}

func parseTime(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05.999999", "2006-01-02 15:04:05"} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts
		}
	}
	return time.Time{}
}

// decodeJSON unmarshals a JSON column into out. Absent or NULL columns leave
// out untouched so callers keep their zero value.
func decodeJSON(v any, out any) {
	switch t := v.(type) {
	case []byte:
		_ = json.Unmarshal(t, out)
	case json.RawMessage:
		_ = json.Unmarshal(t, out)
	case string:
		_ = json.Unmarshal([]byte(t), out)
	}
}

// encodeJSON marshals a structured column for storage. Both store variants
// carry it as raw bytes.
func encodeJSON(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		return []byte("{}")
	}
	return b
}

// firstRecord unwraps the single-record result shape shared by Insert and
// Update.
func firstRecord(recs []store.Record) (store.Record, bool) {
	if len(recs) == 0 {
		return nil, false
	}
	return recs[0], true
}
