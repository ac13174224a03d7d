package domain

import "time"

// AuditLog is one navigation event. It is write-only: nothing restores
// session state from it.
type AuditLog struct {
	ID        int64                  `db:"id" json:"id"`
	SessionID string                 `db:"session_id" json:"session_id"`
	Action    string                 `db:"action" json:"action"`
	Category  string                 `db:"category" json:"category"`
	Details   map[string]interface{} `db:"details" json:"details"`
	IP        string                 `db:"ip" json:"ip,omitempty"`
	UserAgent string                 `db:"user_agent" json:"user_agent,omitempty"`
	CreatedAt time.Time              `db:"created_at" json:"created_at"`
}

// Audit action categories
const (
	AuditCategorySession = "session"
	AuditCategoryPage    = "page"
)

// Audit actions
const (
	AuditActionSessionStart = "session_start"
	AuditActionSessionEvict = "session_evict"

	AuditActionNavigate = "navigate"
	AuditActionTaskAdd  = "task_add"
	AuditActionNotesSet = "notes_save"
	AuditActionTimerSet = "timer_set"
)
