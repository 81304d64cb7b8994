package gorm

import (
	"time"

	gormlib "gorm.io/gorm"
)

type TriviaQuestion struct {
	ID         uint    `gorm:"column:id;primaryKey"`
	Question   string  `gorm:"column:question"`
	Answer     string  `gorm:"column:answer"`
	Category   string  `gorm:"column:category;index"`
	Difficulty int     `gorm:"column:difficulty"`
	Reference  *string `gorm:"column:reference"`

	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time         `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gormlib.DeletedAt `gorm:"column:deleted_at;index"`
}

// TableName specifies the table name for GORM
func (TriviaQuestion) TableName() string {
	return "trivia_questions"
}
