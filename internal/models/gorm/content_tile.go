package gorm

import (
	"time"

	gormlib "gorm.io/gorm"
)

type ContentTile struct {
	ID      uint    `gorm:"column:id;primaryKey"`
	Page    string  `gorm:"column:page;default:welcome"`
	Type    string  `gorm:"column:type"`
	Slug    string  `gorm:"column:slug;uniqueIndex"`
	Title   *string `gorm:"column:title"`
	Config  JSONMap `gorm:"column:config;type:json"`

	ColStart int  `gorm:"column:col_start;default:1"`
	RowStart int  `gorm:"column:row_start;default:1"`
	ColSpan  int  `gorm:"column:col_span;default:1"`
	RowSpan  int  `gorm:"column:row_span;default:1"`
	Sort     int  `gorm:"column:sort;default:0"`
	Enabled  bool `gorm:"column:enabled;default:true"`

	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time         `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gormlib.DeletedAt `gorm:"column:deleted_at;index"`
}

// TableName specifies the table name for GORM
func (ContentTile) TableName() string {
	return "content_tiles"
}
