package policies

import (
	"github.com/Caarnus/newburgh-lodge/internal/auth"
	gormModels "github.com/Caarnus/newburgh-lodge/internal/models/gorm"
)

// RolePolicy: the seeded role table is admin-only in every verb.
type RolePolicy struct{}

func (RolePolicy) ViewAny(caps auth.Capabilities) bool { return caps.IsAdmin }

func (RolePolicy) View(caps auth.Capabilities, role *gormModels.Role) bool { return caps.IsAdmin }

func (RolePolicy) Create(caps auth.Capabilities) bool { return caps.IsAdmin }

func (RolePolicy) Update(caps auth.Capabilities, role *gormModels.Role) bool { return caps.IsAdmin }

func (RolePolicy) Delete(caps auth.Capabilities, role *gormModels.Role) bool { return caps.IsAdmin }

func (RolePolicy) Restore(caps auth.Capabilities, role *gormModels.Role) bool { return caps.IsAdmin }

func (RolePolicy) ForceDelete(caps auth.Capabilities, role *gormModels.Role) bool {
	return caps.IsAdmin
}
