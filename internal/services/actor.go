package services

import "github.com/artatlas/atlas-api/internal/models"

// Actor identifies the authenticated caller of a service method. Services
// never reach into ambient session state; handlers resolve the actor from
// the request and pass it explicitly. A nil *Actor is an anonymous caller.
type Actor struct {
	ID       uint
	Username string
	Role     string
}

func (a *Actor) Authenticated() bool {
	return a != nil && a.ID != 0
}

func (a *Actor) IsAdmin() bool {
	return a != nil && a.Role == models.RoleAdmin
}

// Owns reports whether the actor is the owning user of a record.
func (a *Actor) Owns(userID uint) bool {
	return a != nil && a.ID == userID
}
