// Package identity provides authenticated identity management for FolioBoard
// requests.
//
// An Identity is derived from a verified session token and exists only for
// the duration of a request. It carries the claims the policy layer needs
// (user id, role) plus display fields and request context.
//
// # Basic Usage
//
//	// Create identity from verified session claims
//	id := identity.FromClaims(claims)
//
//	// Add request context
//	id.WithRemoteIP(clientIP)
//
//	// Store in request context
//	ctx = identity.Set(ctx, id)
//
//	// Retrieve from context
//	id, ok := identity.Get(ctx)
//
// Handlers that allow anonymous access use the ok result of Get to
// distinguish "anonymous" from an authenticated caller. The admin role is an
// explicit claim resolved once at login; the policy layer never compares
// against literal user ids.
package identity
