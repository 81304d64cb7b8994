package policies

import (
	"github.com/Caarnus/newburgh-lodge/internal/auth"
	gormModels "github.com/Caarnus/newburgh-lodge/internal/models/gorm"
)

// ContentTilePolicy: tiles render on public pages, so reads are open;
// layout management is an officer concern.
type ContentTilePolicy struct{}

func (ContentTilePolicy) ViewAny(caps auth.Capabilities) bool {
	return true
}

func (ContentTilePolicy) View(caps auth.Capabilities, tile *gormModels.ContentTile) bool {
	return true
}

func (ContentTilePolicy) Create(caps auth.Capabilities) bool {
	return officerAccess(caps)
}

func (ContentTilePolicy) Update(caps auth.Capabilities, tile *gormModels.ContentTile) bool {
	return officerAccess(caps)
}

func (ContentTilePolicy) Delete(caps auth.Capabilities, tile *gormModels.ContentTile) bool {
	return officerAccess(caps)
}

func (ContentTilePolicy) Restore(caps auth.Capabilities, tile *gormModels.ContentTile) bool {
	return caps.IsAdmin
}

func (ContentTilePolicy) ForceDelete(caps auth.Capabilities, tile *gormModels.ContentTile) bool {
	return caps.IsAdmin
}
