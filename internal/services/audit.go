package services

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/finledger/wallet-ledger/internal/logger"
	"github.com/finledger/wallet-ledger/internal/models"
)

// AuditAppender defines the write side of the audit trail.
type AuditAppender interface {
	Append(ctx context.Context, tx *sqlx.Tx, event *models.AuditEventDB) error
}

// ReviewQueuer pushes flagged audit events for manual review.
type ReviewQueuer interface {
	Push(ctx context.Context, event *models.AuditEventDB) error
}

// AuditService records every balance-affecting decision. Records written via
// Log share the caller's transaction scope: if the append fails, the mutation
// it documents rolls back with it.
type AuditService struct {
	repo  AuditAppender
	queue ReviewQueuer
}

func NewAuditService(repo AuditAppender, queue ReviewQueuer) *AuditService {
	return &AuditService{repo: repo, queue: queue}
}

// Log appends one audit record inside the caller's locked scope. The error
// must be propagated by the caller so the scope rolls back on failure.
func (s *AuditService) Log(ctx context.Context, tx *sqlx.Tx, event *models.AuditEventDB) error {
	return s.repo.Append(ctx, tx, event)
}

// EnqueueReview pushes a suspicious event onto the review queue. Called after
// the owning scope committed; a queue failure is logged but never unwinds the
// already-committed mutation.
func (s *AuditService) EnqueueReview(ctx context.Context, event *models.AuditEventDB) {
	if !event.Suspicious() {
		return
	}
	if s.queue == nil {
		logger.Log.Warnw("review queue not configured, skipping", "audit_id", event.AuditID)
		return
	}
	if err := s.queue.Push(ctx, event); err != nil {
		logger.Log.Errorw("failed to enqueue audit event for review", "audit_id", event.AuditID, "error", err)
	}
}

// LogSecurityEvent writes an audit record in its own scope, outside any
// rolled-back operation, and flags it for review. Used for integrity
// violations where the failed operation's scope cannot carry the record.
func (s *AuditService) LogSecurityEvent(ctx context.Context, event *models.AuditEventDB) {
	if err := s.repo.Append(ctx, nil, event); err != nil {
		logger.Log.Errorw("failed to append security audit event", "event_type", event.EventType, "error", err)
		return
	}
	s.EnqueueReview(ctx, event)
}
