package policies

import (
	"github.com/Caarnus/newburgh-lodge/internal/auth"
	gormModels "github.com/Caarnus/newburgh-lodge/internal/models/gorm"
)

type NewsletterPolicy struct{}

func (NewsletterPolicy) ViewAny(caps auth.Capabilities) bool {
	return true
}

func (NewsletterPolicy) View(caps auth.Capabilities, newsletter *gormModels.Newsletter) bool {
	return newsletter.IsPublic || memberAccess(caps)
}

func (NewsletterPolicy) Create(caps auth.Capabilities) bool {
	return caps.IsOfficer || caps.IsSecretary || caps.IsAdmin
}

func (NewsletterPolicy) Update(caps auth.Capabilities, newsletter *gormModels.Newsletter) bool {
	return caps.IsOfficer || caps.IsSecretary || caps.IsAdmin
}

func (NewsletterPolicy) Delete(caps auth.Capabilities, newsletter *gormModels.Newsletter) bool {
	return caps.IsSecretary || caps.IsAdmin
}

func (NewsletterPolicy) Restore(caps auth.Capabilities, newsletter *gormModels.Newsletter) bool {
	return caps.IsAdmin
}

func (NewsletterPolicy) ForceDelete(caps auth.Capabilities, newsletter *gormModels.Newsletter) bool {
	return caps.IsAdmin
}
