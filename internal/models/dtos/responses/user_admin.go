package responses

import "time"

// UserRow is the admin user-management projection.
type UserRow struct {
	ID      uint     `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Roles   []string `json:"roles"`
	IsAdmin bool     `json:"isAdmin"`
}

type UserListResponse struct {
	Users []UserRow `json:"users"`
	Roles []string  `json:"roles"`
}

type AuditLogRow struct {
	ID           uint      `json:"id"`
	ActorID      *uint     `json:"actor_id"`
	ActorType    string    `json:"actor_type"`
	Action       string    `json:"action"`
	SubjectType  string    `json:"subject_type"`
	SubjectID    *uint     `json:"subject_id"`
	IP           string    `json:"ip"`
	RequestID    string    `json:"request_id"`
	Succeeded    bool      `json:"succeeded"`
	ErrorMessage *string   `json:"error_message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type AuditLogPage struct {
	Entries []AuditLogRow `json:"entries"`
	Total   int           `json:"total"`
	Page    int           `json:"page"`
	PerPage int           `json:"per_page"`
}
