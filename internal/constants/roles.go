package constants

import (
	"database/sql/driver"
	"fmt"
)

// RoleCode mirrors the seeded 'code' column of the roles table
type RoleCode string

const (
	RoleNone              RoleCode = "None"
	RoleUser              RoleCode = "User"
	RoleMember            RoleCode = "Member"
	RoleEnteredApprentice RoleCode = "Entered Apprentice"
	RoleFellowcraft       RoleCode = "Fellowcraft"
	RoleMasterMason       RoleCode = "Master Mason"
	RoleOfficer           RoleCode = "Officer"
	RoleSecretary         RoleCode = "Secretary"
	RoleAdmin             RoleCode = "Administrator"
)

// Stringer, convenient for fmt / logs.
func (r RoleCode) String() string { return string(r) }

// KnownRoleCodes is the closed set of assignable role codes, in seed order.
var KnownRoleCodes = []RoleCode{
	RoleAdmin,
	RoleSecretary,
	RoleOfficer,
	RoleMasterMason,
	RoleFellowcraft,
	RoleEnteredApprentice,
	RoleMember,
	RoleUser,
}

// IsKnownRoleCode reports whether code is one of the seeded roles.
func IsKnownRoleCode(code string) bool {
	for _, r := range KnownRoleCodes {
		if r == RoleCode(code) {
			return true
		}
	}
	return false
}

/* ---------- DB adapters so sqlx (or database/sql) scans/values cleanly ---------- */

// Scan implements the sql.Scanner interface
func (r *RoleCode) Scan(src interface{}) error {
	if src == nil {
		*r = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*r = RoleCode(v)
	case []byte:
		*r = RoleCode(v)
	default:
		return fmt.Errorf("RoleCode: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (r RoleCode) Value() (driver.Value, error) { return string(r), nil }

// Degree is the ordinal Craft rank. Office roles (Officer, Secretary,
// Administrator) are a separate axis and never enter the degree order.
type Degree int

const (
	DegreeNone Degree = iota
	DegreeEnteredApprentice
	DegreeFellowcraft
	DegreeMasterMason
)

func (d Degree) String() string {
	switch d {
	case DegreeMasterMason:
		return RoleMasterMason.String()
	case DegreeFellowcraft:
		return RoleFellowcraft.String()
	case DegreeEnteredApprentice:
		return RoleEnteredApprentice.String()
	default:
		return RoleNone.String()
	}
}

// DegreeForRole maps a Craft role code to its ordinal degree. Non-Craft
// roles map to DegreeNone.
func DegreeForRole(code RoleCode) Degree {
	switch code {
	case RoleMasterMason:
		return DegreeMasterMason
	case RoleFellowcraft:
		return DegreeFellowcraft
	case RoleEnteredApprentice:
		return DegreeEnteredApprentice
	default:
		return DegreeNone
	}
}

// ParseDegree resolves the lowercase degree names stored on event records
// ("none", "entered apprentice", "fellowcraft", "master mason").
func ParseDegree(s string) (Degree, bool) {
	switch s {
	case "none", "":
		return DegreeNone, true
	case "entered apprentice":
		return DegreeEnteredApprentice, true
	case "fellowcraft":
		return DegreeFellowcraft, true
	case "master mason":
		return DegreeMasterMason, true
	}
	return DegreeNone, false
}
