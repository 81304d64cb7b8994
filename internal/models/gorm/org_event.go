package gorm

import (
	"time"

	gormlib "gorm.io/gorm"
)

type OrgEvent struct {
	ID          uint       `gorm:"column:id;primaryKey"`
	Title       string     `gorm:"column:title"`
	Description *string    `gorm:"column:description"`
	Location    *string    `gorm:"column:location"`
	Timezone    string     `gorm:"column:timezone"`
	AllDay      bool       `gorm:"column:all_day"`
	Start       *time.Time `gorm:"column:start"` // stored in UTC
	End         *time.Time `gorm:"column:end"`   // stored in UTC
	TypeID      *uint      `gorm:"column:type_id"`

	MasonsOnly     bool   `gorm:"column:masons_only"`
	OpenTo         string `gorm:"column:open_to;default:all"` // all | members | officers
	DegreeRequired string `gorm:"column:degree_required;default:none"`
	IsPublic       bool   `gorm:"column:is_public;default:true"`

	Repeats bool    `gorm:"column:repeats"`
	RRule   *string `gorm:"column:rrule"`

	CreatedAt time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time          `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gormlib.DeletedAt  `gorm:"column:deleted_at;index"`

	// Relationships
	Type *OrgEventType `gorm:"foreignKey:TypeID"`
}

// TableName specifies the table name for GORM
func (OrgEvent) TableName() string {
	return "org_events"
}

type OrgEventType struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Category  string    `gorm:"column:category"`
	Color     string    `gorm:"column:color"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (OrgEventType) TableName() string {
	return "org_event_types"
}
