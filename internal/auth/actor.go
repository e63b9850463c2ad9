// Package auth defines the actor model used for authorization decisions
// and helpers for issuing and hashing credentials. An Actor is the
// resolved identity and role behind a request; every role-gated
// operation funnels through Authorize so Forbidden is handled uniformly
// instead of scattering ad hoc role checks across handlers.
package auth

import "errors"

// Roles stored on the users table and embedded in access tokens.
const (
	RoleViewer  = "viewer"
	RoleCreator = "creator"
	RoleAdmin   = "admin"
)

// ErrUnauthenticated is returned when no valid session exists. Callers
// that require a logged-in actor must reject the request; a gated view
// is never silently served as anonymous.
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrForbidden is returned when a valid actor's role is insufficient
// for the requested operation.
var ErrForbidden = errors.New("forbidden")

// Actor is the resolved identity making a request. The role comes from
// the users row, not from the token, so a role change takes effect on
// the next request.
type Actor struct {
	ID   string
	Role string
}

// Capability names an operation class that a role may or may not hold.
type Capability string

const (
	// CapReviewCameras allows approving or rejecting pending cameras.
	CapReviewCameras Capability = "review_cameras"
	// CapViewPlatformStats allows reading the platform-wide dashboard.
	CapViewPlatformStats Capability = "view_platform_stats"
	// CapManageOwnCameras allows submitting cameras and toggling their
	// active state.
	CapManageOwnCameras Capability = "manage_own_cameras"
	// CapUseLibrary allows reading the actor's own favorites,
	// subscriptions and transactions.
	CapUseLibrary Capability = "use_library"
)

// grants maps each capability to the roles holding it.
var grants = map[Capability]map[string]bool{
	CapReviewCameras:     {RoleAdmin: true},
	CapViewPlatformStats: {RoleAdmin: true},
	CapManageOwnCameras:  {RoleCreator: true, RoleAdmin: true},
	CapUseLibrary:        {RoleViewer: true, RoleCreator: true, RoleAdmin: true},
}

// Authorize checks that the actor holds the capability. It returns
// ErrUnauthenticated for a zero actor and ErrForbidden when the actor's
// role does not grant the capability.
func Authorize(a Actor, cap Capability) error {
	if a.ID == "" {
		return ErrUnauthenticated
	}
	if !grants[cap][a.Role] {
		return ErrForbidden
	}
	return nil
}

// ValidRole reports whether s is a role self-registration may claim.
// Admins are provisioned out of band, never via signup.
func ValidRole(s string) bool {
	return s == RoleViewer || s == RoleCreator
}
