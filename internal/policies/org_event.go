package policies

import (
	"github.com/Caarnus/newburgh-lodge/internal/auth"
	"github.com/Caarnus/newburgh-lodge/internal/constants"
	gormModels "github.com/Caarnus/newburgh-lodge/internal/models/gorm"
)

type OrgEventPolicy struct{}

func (OrgEventPolicy) ViewAny(caps auth.Capabilities) bool {
	return true
}

func (OrgEventPolicy) View(caps auth.Capabilities, event *gormModels.OrgEvent) bool {
	if event.IsPublic {
		return true
	}

	required, _ := constants.ParseDegree(event.DegreeRequired)
	if !caps.AtLeast(required) {
		return false
	}

	switch event.OpenTo {
	case "officers":
		return officerAccess(caps)
	case "members":
		return memberAccess(caps)
	default:
		return memberAccess(caps)
	}
}

func (OrgEventPolicy) Create(caps auth.Capabilities) bool {
	return officerAccess(caps)
}

func (OrgEventPolicy) Update(caps auth.Capabilities, event *gormModels.OrgEvent) bool {
	return officerAccess(caps)
}

func (OrgEventPolicy) Delete(caps auth.Capabilities, event *gormModels.OrgEvent) bool {
	return officerAccess(caps)
}

func (OrgEventPolicy) Restore(caps auth.Capabilities, event *gormModels.OrgEvent) bool {
	return caps.IsAdmin
}

func (OrgEventPolicy) ForceDelete(caps auth.Capabilities, event *gormModels.OrgEvent) bool {
	return caps.IsAdmin
}
