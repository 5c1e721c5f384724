// Package authz holds the single ownership rule of the system: the
// user who created a board is the only one allowed to mutate it.
// There are no roles, groups or delegated permissions.
package authz

import (
	"blogapp/internal/app/user"
	"blogapp/internal/web"
)

// Authorize decides whether principal may mutate a resource owned by
// ownerID. It returns web.ErrUnauthenticated when there is no
// principal, web.ErrForbidden when the principal is not the owner,
// and nil when the mutation is allowed.
func Authorize(principal *user.User, ownerID uint64) error {
	if principal == nil {
		return web.ErrUnauthenticated
	}
	if principal.ID != ownerID {
		return web.ErrForbidden
	}
	return nil
}
