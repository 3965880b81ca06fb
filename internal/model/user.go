package model

import "time"

// User represents a record in the `users` table. A user is created on the
// first submission from a new email address and is never mutated or deleted
// by this service. Email is the identity key: exact, case-sensitive match,
// no verification. The json tags are omitted because these structs are used
// by the repository layer; handlers define separate response types.
//
// Fields:
//  ID        – opaque identifier (UUID string).
//  Email     – unique email address, or a synthesized placeholder.
//  CreatedAt – timestamp of creation.
type User struct {
	ID        string    // users.id
	Email     string    // users.email
	CreatedAt time.Time // users.created_at
}
