package auth

import (
	"testing"

	"github.com/Caarnus/newburgh-lodge/internal/constants"
)

func TestCapabilitiesFromRoles_HighestDegreeWins(t *testing.T) {
	caps := CapabilitiesFromRoles([]constants.RoleCode{
		constants.RoleEnteredApprentice,
		constants.RoleMasterMason,
		constants.RoleFellowcraft,
	})

	if caps.Degree != constants.DegreeMasterMason {
		t.Errorf("Expected Master Mason degree, got %v", caps.Degree)
	}
}

func TestCapabilitiesFromRoles_OfficeFlagsAreOrthogonal(t *testing.T) {
	caps := CapabilitiesFromRoles([]constants.RoleCode{
		constants.RoleOfficer,
		constants.RoleSecretary,
		constants.RoleAdmin,
	})

	if !caps.IsOfficer || !caps.IsSecretary || !caps.IsAdmin {
		t.Error("Expected all office flags set")
	}
	if caps.Degree != constants.DegreeNone {
		t.Errorf("Office roles must not grant a degree, got %v", caps.Degree)
	}
}

func TestCapabilitiesFromRoles_Member(t *testing.T) {
	caps := CapabilitiesFromRoles([]constants.RoleCode{constants.RoleMember})

	if !caps.IsMember {
		t.Error("Expected IsMember set")
	}
	if caps.IsOfficer || caps.IsSecretary || caps.IsAdmin {
		t.Error("Member role must not set office flags")
	}
}

func TestAtLeast(t *testing.T) {
	fellowcraft := Capabilities{Degree: constants.DegreeFellowcraft}

	if !fellowcraft.AtLeast(constants.DegreeNone) {
		t.Error("Fellowcraft should satisfy a None requirement")
	}
	if !fellowcraft.AtLeast(constants.DegreeFellowcraft) {
		t.Error("Fellowcraft should satisfy its own degree")
	}
	if fellowcraft.AtLeast(constants.DegreeMasterMason) {
		t.Error("Fellowcraft should not satisfy Master Mason")
	}

	// Admin without a degree still fails degree requirements.
	admin := Capabilities{IsAdmin: true}
	if admin.AtLeast(constants.DegreeEnteredApprentice) {
		t.Error("Office flags must never satisfy a degree requirement")
	}
}
