// Package repository provides typed access to users, responses and API keys
// on top of the generic record store. Sentinel errors defined here let
// handlers distinguish auth failures from missing data without inspecting
// error strings; anything else bubbling up from the store is a storage
// failure and maps to an HTTP 500.
package repository

import "errors"

// ErrNotFound is returned when a lookup matches no record. Handlers
// translate it into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrInvalidKey is returned when an API key does not exist or is inactive.
// Handlers translate it into an HTTP 401 response. The two cases are
// deliberately indistinguishable to the caller.
var ErrInvalidKey = errors.New("invalid or inactive token")
