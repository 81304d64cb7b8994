package auth

import (
	"github.com/Caarnus/newburgh-lodge/internal/constants"
)

// Capabilities is the per-request snapshot of what the acting user may do.
// It is computed once from the user's role rows when the request is
// authenticated and passed explicitly into policies and workflows, so the
// role table is never re-read mid-request.
type Capabilities struct {
	Degree      constants.Degree
	IsMember    bool
	IsOfficer   bool
	IsSecretary bool
	IsAdmin     bool
}

// CapabilitiesFromRoles folds a user's assigned role codes into a
// Capabilities value. Degree is the highest Craft rank present; the office
// flags are independent of the degree ladder.
func CapabilitiesFromRoles(codes []constants.RoleCode) Capabilities {
	var caps Capabilities
	for _, code := range codes {
		if d := constants.DegreeForRole(code); d > caps.Degree {
			caps.Degree = d
		}
		switch code {
		case constants.RoleMember:
			caps.IsMember = true
		case constants.RoleOfficer:
			caps.IsOfficer = true
		case constants.RoleSecretary:
			caps.IsSecretary = true
		case constants.RoleAdmin:
			caps.IsAdmin = true
		}
	}
	return caps
}

// AtLeast reports whether the holder's degree meets the required one.
// Office flags never satisfy a degree requirement.
func (c Capabilities) AtLeast(required constants.Degree) bool {
	return c.Degree >= required
}
