package gorm

import (
	"time"

	"github.com/Caarnus/newburgh-lodge/internal/constants"
)

// Role is seeded reference data; rows are never created or removed by the
// application after the seed.
type Role struct {
	ID        uint               `gorm:"column:id;primaryKey"`
	Code      constants.RoleCode `gorm:"column:code;uniqueIndex"`
	Name      string             `gorm:"column:name"`
	CreatedAt time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Role) TableName() string {
	return "roles"
}
