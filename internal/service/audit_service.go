package service

import (
	"context"
	"time"

	"studydesk/internal/domain"
	"studydesk/internal/logger"
	"studydesk/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

type auditStore interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// AuditService records navigation events. Without a database it only logs
// at debug level.
type AuditService struct {
	repo auditStore
}

// NewAuditService creates a new audit service; db may be nil.
func NewAuditService(db *pgxpool.Pool) *AuditService {
	if db == nil {
		return &AuditService{}
	}
	return &AuditService{repo: repository.NewAuditRepository(db)}
}

// RequestMeta is the caller information attached to audit entries.
type RequestMeta struct {
	IP        string
	UserAgent string
}

// Log creates a new audit log entry. Failures are logged, never returned.
func (s *AuditService) Log(ctx context.Context, sessionID, action, category string, meta RequestMeta, details map[string]interface{}) {
	if s == nil || s.repo == nil {
		logger.Debug("audit", "session_id", sessionID, "action", action, "category", category)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	entry := &domain.AuditLog{
		SessionID: sessionID,
		Action:    action,
		Category:  category,
		Details:   details,
		IP:        meta.IP,
		UserAgent: meta.UserAgent,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		logger.Error("failed to create audit log", "error", err, "action", action, "session_id", sessionID)
	}
}
