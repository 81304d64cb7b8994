package constants

import "testing"

func TestDegreeOrdering(t *testing.T) {
	if !(DegreeNone < DegreeEnteredApprentice &&
		DegreeEnteredApprentice < DegreeFellowcraft &&
		DegreeFellowcraft < DegreeMasterMason) {
		t.Error("Expected degrees to order None < Entered Apprentice < Fellowcraft < Master Mason")
	}
}

func TestDegreeForRole(t *testing.T) {
	cases := []struct {
		code RoleCode
		want Degree
	}{
		{RoleMasterMason, DegreeMasterMason},
		{RoleFellowcraft, DegreeFellowcraft},
		{RoleEnteredApprentice, DegreeEnteredApprentice},
		{RoleMember, DegreeNone},
		{RoleOfficer, DegreeNone},
		{RoleSecretary, DegreeNone},
		{RoleAdmin, DegreeNone},
	}

	for _, c := range cases {
		if got := DegreeForRole(c.code); got != c.want {
			t.Errorf("DegreeForRole(%q) = %v, want %v", c.code, got, c.want)
		}
	}
}

func TestParseDegree(t *testing.T) {
	cases := []struct {
		raw  string
		want Degree
		ok   bool
	}{
		{"none", DegreeNone, true},
		{"", DegreeNone, true},
		{"entered apprentice", DegreeEnteredApprentice, true},
		{"fellowcraft", DegreeFellowcraft, true},
		{"master mason", DegreeMasterMason, true},
		{"Master Mason", DegreeNone, false},
		{"grandmaster", DegreeNone, false},
	}

	for _, c := range cases {
		got, ok := ParseDegree(c.raw)
		if got != c.want || ok != c.ok {
			t.Errorf("ParseDegree(%q) = (%v, %v), want (%v, %v)", c.raw, got, ok, c.want, c.ok)
		}
	}
}

func TestIsKnownRoleCode(t *testing.T) {
	for _, code := range KnownRoleCodes {
		if !IsKnownRoleCode(string(code)) {
			t.Errorf("Expected %q to be a known role code", code)
		}
	}

	if IsKnownRoleCode("Grand Master") {
		t.Error("Did not expect 'Grand Master' to be a known role code")
	}
	if IsKnownRoleCode("administrator") {
		t.Error("Role codes are case sensitive, 'administrator' should not match")
	}
}
