package gorm

import (
	"time"
)

// AuditLog is append-only: rows are created once per mutating admin action
// and never updated or deleted by the application.
type AuditLog struct {
	ID         uint   `gorm:"column:id;primaryKey"`
	ActorID    *uint  `gorm:"column:actor_id"`
	ActorType  string `gorm:"column:actor_type"`
	ActorGuard string `gorm:"column:actor_guard"`

	Action string `gorm:"column:action;index"`

	SubjectType string `gorm:"column:subject_type"`
	SubjectID   *uint  `gorm:"column:subject_id"`

	SecondarySubjectType string `gorm:"column:secondary_subject_type"`
	SecondarySubjectID   *uint  `gorm:"column:secondary_subject_id"`

	Before JSONMap `gorm:"column:before;type:json"`
	After  JSONMap `gorm:"column:after;type:json"`
	Meta   JSONMap `gorm:"column:meta;type:json"`

	IP        string `gorm:"column:ip"`
	UserAgent string `gorm:"column:user_agent;size:255"`
	RequestID string `gorm:"column:request_id;index"`

	Succeeded    bool    `gorm:"column:succeeded"`
	ErrorMessage *string `gorm:"column:error_message"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (AuditLog) TableName() string {
	return "audit_logs"
}
