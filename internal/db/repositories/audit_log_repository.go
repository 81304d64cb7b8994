package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// AuditLogRepository is the read-only reporting side of the audit trail.
// Writes go through the audit recorder on the ORM connection; this listing
// path stays on sqlx.
type AuditLogRepository struct {
	db *sqlx.DB
}

func NewAuditLogRepository(db *sqlx.DB) *AuditLogRepository {
	return &AuditLogRepository{db}
}

type AuditLogRecord struct {
	ID           uint      `db:"id"`
	ActorID      *uint     `db:"actor_id"`
	ActorType    string    `db:"actor_type"`
	Action       string    `db:"action"`
	SubjectType  *string   `db:"subject_type"`
	SubjectID    *uint     `db:"subject_id"`
	IP           *string   `db:"ip"`
	RequestID    *string   `db:"request_id"`
	Succeeded    bool      `db:"succeeded"`
	ErrorMessage *string   `db:"error_message"`
	CreatedAt    time.Time `db:"created_at"`
}

// ListPage returns one page of entries, newest first, plus the total count.
func (r *AuditLogRepository) ListPage(ctx context.Context, page, perPage int) ([]AuditLogRecord, int, error) {
	if page < 1 {
		page = 1
	}

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM audit_logs`); err != nil {
		return nil, 0, fmt.Errorf("failed to count audit entries: %w", err)
	}

	query := `
		SELECT id, actor_id, actor_type, action, subject_type, subject_id,
		       ip, request_id, succeeded, error_message, created_at
		FROM audit_logs
		ORDER BY id DESC
		LIMIT $1 OFFSET $2;
	`

	var records []AuditLogRecord
	if err := r.db.SelectContext(ctx, &records, query, perPage, (page-1)*perPage); err != nil {
		return nil, 0, fmt.Errorf("failed to list audit entries: %w", err)
	}

	return records, total, nil
}
