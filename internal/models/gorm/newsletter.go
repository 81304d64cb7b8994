package gorm

import (
	"time"

	gormlib "gorm.io/gorm"
)

type Newsletter struct {
	ID        uint    `gorm:"column:id;primaryKey"`
	Title     string  `gorm:"column:title"`
	Issue     *string `gorm:"column:issue"`
	Summary   *string `gorm:"column:summary"`
	Body      string  `gorm:"column:body"`
	IsPublic  bool    `gorm:"column:is_public;default:false"`
	CreatedBy *uint   `gorm:"column:created_by"`

	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time         `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gormlib.DeletedAt `gorm:"column:deleted_at;index"`
}

// TableName specifies the table name for GORM
func (Newsletter) TableName() string {
	return "newsletters"
}
