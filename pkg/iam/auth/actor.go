package auth

import "github.com/portalhq/jobboard/pkg/kernel"

// Actor is the authenticated caller as seen by the services.
type Actor struct {
	UserID kernel.UserID
	Role   Role
	Email  kernel.Email
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

// CanActOn is the single ownership predicate used by every protected
// resource: admins may act on anything, everyone else only on resources
// owned by their own user.
func (a Actor) CanActOn(ownerUserID kernel.UserID) bool {
	return a.Role == RoleAdmin || a.UserID == ownerUserID
}
