package model

import "time"

// APIKey models an entry in the `api_keys` table. One key is minted per
// submission and never rotated. The token is stored in the clear because
// the profile endpoint resolves it by exact match on every request.
// RequestsCount grows by one per successful profile fetch; the increment is
// best-effort, so the count is advisory rather than exact under concurrency.
type APIKey struct {
	ID            string    // api_keys.id
	UserID        string    // api_keys.user_id
	Token         string    // api_keys.token
	IsActive      bool      // api_keys.is_active
	RequestsCount int       // api_keys.requests_count
	CreatedAt     time.Time // api_keys.created_at
}
