// Package policies holds the pure authorization predicates, one set per
// protected resource. Every rule reads only the actor's precomputed
// Capabilities and the already-loaded target row; no policy does I/O.
package policies

import (
	"github.com/Caarnus/newburgh-lodge/internal/auth"
	"github.com/Caarnus/newburgh-lodge/internal/constants"
)

// memberAccess is the shared "signed-in lodge member" capability used by
// private newsletters and member-scoped events.
func memberAccess(caps auth.Capabilities) bool {
	return caps.IsMember || caps.IsOfficer || caps.IsSecretary || caps.IsAdmin ||
		caps.Degree > constants.DegreeNone
}

func officerAccess(caps auth.Capabilities) bool {
	return caps.IsOfficer || caps.IsSecretary || caps.IsAdmin
}

// AdminAccessPolicy gates the user-management surface as a whole.
type AdminAccessPolicy struct{}

func (AdminAccessPolicy) Access(caps auth.Capabilities) bool {
	return caps.IsAdmin || caps.IsSecretary
}
