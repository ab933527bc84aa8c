// Package apperr defines the sentinel errors shared across the client engine.
package apperr

import "errors"

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrConflict indicates the entity was already claimed by another driver (HTTP 409).
// Terminal for the caller: refresh the view instead of retrying.
var ErrConflict = errors.New("already taken")

// ErrBlocked indicates the cash-ceiling gate rejected the claim. Terminal
// until the driver's balance changes; the remote service is never called.
var ErrBlocked = errors.New("blocked by cash ceiling")

// ErrNotFound indicates that the requested entity does not exist anymore.
var ErrNotFound = errors.New("not found")

// ErrNetwork indicates a transient transport failure; the caller may retry.
var ErrNetwork = errors.New("network error")

// ErrUnauthorized indicates the bearer token was rejected after one refresh attempt.
var ErrUnauthorized = errors.New("unauthorized")

// ErrMalformedEvent indicates a push payload that did not classify; it is
// logged and dropped, never fatal to the channel.
var ErrMalformedEvent = errors.New("malformed event")
