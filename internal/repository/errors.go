// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrForbidden indicates that the current user is not
// authorized to perform an operation on a resource owned by
// someone else, while ErrInvalidTransition signals that a camera
// status change does not follow the allowed lifecycle (pending may
// only move to active or rejected; active and inactive toggle).
package repository

import "errors"

// ErrForbidden is returned when the caller attempts an operation
// on a resource they do not own. Handlers should translate this
// into an HTTP 403 response.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidTransition is returned when a camera status update would
// violate the status lifecycle, such as approving a camera that is
// not pending. Handlers should translate this into an HTTP 409
// response.
var ErrInvalidTransition = errors.New("invalid status transition")
