package audit

import (
	"fmt"

	reqctx "github.com/Caarnus/newburgh-lodge/internal/context"
	gormModels "github.com/Caarnus/newburgh-lodge/internal/models/gorm"
	"gorm.io/gorm"
)

// SubjectKind is the closed set of resource types an audit entry may point
// at. Kept as explicit tags rather than runtime type names.
type SubjectKind string

const (
	SubjectUser           SubjectKind = "user"
	SubjectRole           SubjectKind = "role"
	SubjectEvent          SubjectKind = "event"
	SubjectEventType      SubjectKind = "event_type"
	SubjectNewsletter     SubjectKind = "newsletter"
	SubjectContentTile    SubjectKind = "content_tile"
	SubjectTriviaQuestion SubjectKind = "trivia_question"
)

// Subject identifies the resource a mutating action touched.
type Subject struct {
	Kind SubjectKind
	ID   uint
}

// Entry is everything the caller supplies for one audit row. Zero-value
// Succeeded means success; set Failed + ErrorMessage to record a failure.
type Entry struct {
	Action    string
	Subject   *Subject
	Secondary *Subject
	Before    map[string]interface{}
	After     map[string]interface{}
	Meta      map[string]interface{}

	Failed       bool
	ErrorMessage string
}

const userAgentMax = 255

// Recorder appends immutable audit rows. It takes the *gorm.DB per call so
// a workflow can hand it the transaction its mutations run in; the audit
// row then commits or rolls back with them.
type Recorder struct{}

func NewRecorder() *Recorder { return &Recorder{} }

// Record writes exactly one audit_logs row. A write failure is surfaced to
// the caller, never swallowed.
func (r *Recorder) Record(db *gorm.DB, rc reqctx.RequestContext, e Entry) error {
	row := gormModels.AuditLog{
		ActorType:  "system",
		ActorGuard: rc.Guard,
		Action:     e.Action,
		Before:     gormModels.JSONMap(e.Before),
		After:      gormModels.JSONMap(e.After),
		Meta:       gormModels.JSONMap(e.Meta),
		IP:         rc.IP,
		UserAgent:  truncate(rc.UserAgent, userAgentMax),
		RequestID:  rc.RequestID,
		Succeeded:  !e.Failed,
	}

	if rc.Authenticated() {
		actorID := rc.ActorID
		row.ActorID = &actorID
		row.ActorType = "user"
	}
	if row.ActorGuard == "" {
		row.ActorGuard = "web"
	}

	if e.Subject != nil {
		id := e.Subject.ID
		row.SubjectType = string(e.Subject.Kind)
		row.SubjectID = &id
	}
	if e.Secondary != nil {
		id := e.Secondary.ID
		row.SecondarySubjectType = string(e.Secondary.Kind)
		row.SecondarySubjectID = &id
	}
	if e.ErrorMessage != "" {
		msg := e.ErrorMessage
		row.ErrorMessage = &msg
	}

	if err := db.Create(&row).Error; err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
