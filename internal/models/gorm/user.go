package gorm

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:name"`
	Email        string    `gorm:"column:email;uniqueIndex"`
	PasswordHash string    `gorm:"column:password"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Roles []Role `gorm:"many2many:role_user;"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}
